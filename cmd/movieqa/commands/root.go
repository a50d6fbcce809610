package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ProjetoPAA/projetoPAA/internal/config"
	"github.com/ProjetoPAA/projetoPAA/internal/observability"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "movieqa",
	Short: "Movie QA - natural-language questions over a movie catalog",
	Long: `movieqa answers natural-language questions about a fixed movie catalog,
matching each question against a TF-IDF index of the records and replying
with templated answers for the detected question type.

Use "ask" for an interactive conversation and "fetch" to populate the
catalog from the OMDb API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the configuration honoring the --config flag, and a
// logger matching the --verbose flag.
func loadConfig() (*config.Config, *observability.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Observability.LogLevel
	if verbose {
		level = "debug"
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		ServiceName: "movieqa",
	})
	return cfg, logger, nil
}
