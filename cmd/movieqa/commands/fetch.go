package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
	"github.com/ProjetoPAA/projetoPAA/internal/omdb"
)

var (
	fetchOut        string
	fetchSQLitePath string
	fetchTitlesFile string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [title ...]",
	Short: "Fetch movie data from the OMDb API into the catalog",
	Long: `Fetch looks up each title on the OMDb API and writes the resulting
records to the catalog JSON file. With no title arguments it fetches the
built-in superhero movie list. Titles that OMDb does not know are
skipped with a warning.

Requires an OMDb API key, via the config file or MOVIEQA_OMDB_API_KEY.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "output JSON file (default: configured catalog path)")
	fetchCmd.Flags().StringVar(&fetchSQLitePath, "sqlite", "", "also persist the records to this SQLite database")
	fetchCmd.Flags().StringVar(&fetchTitlesFile, "titles-file", "", "read titles from a file, one per line")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := omdb.NewClient(omdb.Config{
		APIKey:  cfg.OMDB.APIKey,
		BaseURL: cfg.OMDB.BaseURL,
		Timeout: cfg.OMDB.Timeout,
	})
	if err != nil {
		return fmt.Errorf("omdb client: %w", err)
	}

	titles := args
	if fetchTitlesFile != "" {
		titles, err = readTitlesFile(fetchTitlesFile)
		if err != nil {
			return err
		}
	}
	if len(titles) == 0 {
		titles = defaultTitles
	}

	out := fetchOut
	if out == "" {
		out = cfg.Catalog.JSONPath
	}

	ctx := cmd.Context()
	bar := progressbar.Default(int64(len(titles)), "fetching")

	records := make([]catalog.MovieRecord, 0, len(titles))
	for _, title := range titles {
		rec, err := client.FetchMovie(ctx, title)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn().Str("title", title).Err(err).Msg("Skipping title")
			_ = bar.Add(1)
			continue
		}
		records = append(records, rec)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if len(records) == 0 {
		return fmt.Errorf("no movies fetched; nothing written")
	}

	if err := catalog.SaveFile(out, records); err != nil {
		return err
	}
	logger.Info().Int("movies", len(records)).Str("path", out).Msg("Catalog written")

	if fetchSQLitePath != "" {
		if err := persistSQLite(ctx, fetchSQLitePath, records); err != nil {
			return err
		}
		logger.Info().Str("path", fetchSQLitePath).Msg("Catalog persisted to SQLite")
	}

	return nil
}

func persistSQLite(ctx context.Context, path string, records []catalog.MovieRecord) error {
	db, err := catalog.OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	store := catalog.NewStore(db)
	if err := store.Init(ctx); err != nil {
		return err
	}
	return store.ReplaceAll(ctx, records)
}

func readTitlesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read titles file: %w", err)
	}

	var titles []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			titles = append(titles, line)
		}
	}
	return titles, nil
}

// defaultTitles is the superhero catalog the service ships with.
var defaultTitles = []string{
	"Iron Man", "The Incredible Hulk", "Thor", "Captain America: The First Avenger",
	"The Avengers",
	"Guardians of the Galaxy", "Ant-Man",
	"Doctor Strange", "Spider-Man: Homecoming",
	"Black Panther", "Captain Marvel",
	"Black Widow", "Shang-Chi and the Legend of the Ten Rings",
	"Eternals",
	"X-Men", "X2",
	"The Wolverine", "Deadpool",
	"Logan", "Dark Phoenix", "The New Mutants", "The Dark Knight",
	"Man of Steel", "Suicide Squad", "Justice League", "Aquaman", "Shazam!", "Joker",
	"Birds of Prey", "Wonder Woman 1984",
	"The Batman", "Black Adam", "Shazam! Fury of the Gods", "The Flash", "Hellboy (2019)", "The Crow",
	"The Mask", "Men in Black",
	"The Phantom", "The Shadow", "The Rocketeer", "Blade", "Blade II",
	"Blade: Trinity", "The Punisher (2004)", "Punisher: War Zone", "Pokémon: Detective Pikachu", "Dragonball Evolution",
	"Teenage Mutant Ninja Turtles", "Mortal Kombat", "Prince of Persia: The Sands of Time",
	"Warcraft", "Tron: Legacy", "The League of Extraordinary Gentlemen",
	"Ghost in the Shell", "Alita: Battle Angel", "Ready Player One",
	"Scott Pilgrim vs. the World", "R.I.P.D.", "Power Rangers (2017)", "The Incredibles", "Big Hero 6", "Megamind",
}
