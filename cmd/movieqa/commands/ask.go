package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ProjetoPAA/projetoPAA/internal/engine"
	"github.com/ProjetoPAA/projetoPAA/internal/service"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask questions about the movie catalog",
	Long: `Ask answers questions about the loaded movie catalog.

With a question argument it answers once and exits. Without arguments it
starts an interactive conversation that keeps track of the last matched
movie, so follow-ups like "E o ano?" refer to it. Type "sair" or "exit"
to leave.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := service.LoadCatalogRecords(cfg, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	qa := service.BuildEngine(records, cfg, logger)

	state := &engine.SessionState{}

	// One-shot mode: answer the joined arguments and exit.
	if len(args) > 0 {
		return answerOnce(qa, strings.Join(args, " "), state)
	}

	title := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)
	title.Println("Movie QA")
	faint.Printf("%d filmes carregados. Digite \"sair\" para encerrar.\n\n", qa.CatalogSize())

	prompt := color.New(color.FgGreen, color.Bold).Sprint("pergunta> ")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "sair", "exit", "quit":
			faint.Println("Até logo!")
			return nil
		}

		if err := answerOnce(qa, question, state); err != nil {
			return err
		}
	}
}

func answerOnce(qa *engine.Engine, question string, state *engine.SessionState) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " pensando..."
	sp.Start()

	result, err := qa.AnswerQuestion(question, state)
	sp.Stop()
	if err != nil {
		return err
	}

	color.New(color.FgYellow).Println(result.Answer)
	if verbose && result.MatchedTitle != "" {
		color.New(color.Faint).Printf("  (filme: %s, score: %.3f)\n", result.MatchedTitle, result.Score)
	}
	fmt.Println()
	return nil
}
