package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/marqview/reelscout/config"
	"github.com/marqview/reelscout/kvstore"
	"github.com/marqview/reelscout/store"
	"github.com/marqview/reelscout/tmdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	kv      *kvstore.Store
	movies  *store.Store

	// Command flags
	flagPages     int
	flagGenre     string
	flagYear      string
	flagMinRating string
	localFilter   string
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reelscout",
	Short: "Discover trending movies, search, and curate favorites",
	Long: `reelscout is a movie discovery tool backed by the TMDB metadata API.
It lists the daily trending feed, searches with optional filters, keeps a
durable favorites list, and remembers your last search across runs.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: teardownApp,
	RunE:               runHome,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagGenre, "genre", "", "filter by genre id(s), e.g. 878")
	cmd.Flags().StringVar(&flagYear, "year", "", "filter by primary release year")
	cmd.Flags().StringVar(&flagMinRating, "min-rating", "", "minimum vote average, e.g. 7.0")
	cmd.Flags().IntVar(&flagPages, "pages", 1, "number of pages to fetch")
}

func currentFilters() tmdb.Filters {
	return tmdb.Filters{
		Genre:     flagGenre,
		Year:      flagYear,
		MinRating: flagMinRating,
	}
}

// initializeApp initializes the configuration, logger, clients and store
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, logger,
		tmdb.WithLanguage(cfg.TMDB.Language))
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	statePath, err := cfg.StatePath()
	if err != nil {
		return err
	}
	kv, err = kvstore.Open(statePath)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}

	movies = store.New(client, kv, logger)
	return nil
}

func teardownApp(cmd *cobra.Command, args []string) error {
	if kv != nil {
		return kv.Close()
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when enabled and writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// runHome performs the startup fetches (trending page 1 plus any persisted
// search) and renders both tracks.
func runHome(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := movies.Init(ctx); err != nil {
		return err
	}

	snap := movies.Snapshot()
	if snap.Err != "" {
		fmt.Println(snap.Err)
	}

	printMovies("Trending today", snap.Trending, snap.TrendingPage, snap.TrendingTotalPages)
	if snap.Query != "" {
		fmt.Println()
		printMovies(fmt.Sprintf("Results for %q", snap.Query), snap.Results, snap.ResultsPage, snap.ResultsTotalPages)
	}
	return nil
}

// trendingCmd represents the trending command
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List the daily trending movies",
	Long:  `List the daily trending movie feed, optionally narrowed by genre, year or minimum rating.`,
	RunE:  runTrending,
}

func init() {
	addFilterFlags(trendingCmd)
}

func runTrending(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if err := movies.LoadTrending(ctx, 1, currentFilters()); err != nil {
		return err
	}
	for i := 1; i < flagPages; i++ {
		if err := movies.LoadMoreTrending(ctx); err != nil {
			return err
		}
	}

	snap := movies.Snapshot()
	printMovies("Trending today", snap.Trending, snap.TrendingPage, snap.TrendingTotalPages)
	return nil
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies by title",
	Long: `Search movies by title, optionally narrowed by genre, year or minimum
rating. The query is remembered and resumed on the next plain reelscout run.
A --local-filter expression narrows the fetched results client-side.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	addFilterFlags(searchCmd)
	searchCmd.Flags().StringVar(&localFilter, "local-filter", "", "client-side filter expression, e.g. 'Rating >= 7'")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := strings.Join(args, " ")

	if err := movies.Search(ctx, query, 1, currentFilters()); err != nil {
		return err
	}
	for i := 1; i < flagPages; i++ {
		if err := movies.LoadMoreResults(ctx); err != nil {
			return err
		}
	}

	snap := movies.Snapshot()
	results := snap.Results
	if localFilter != "" {
		f, err := compileLocalFilter(localFilter)
		if err != nil {
			return err
		}
		results = f.Apply(results)
	}

	printMovies(fmt.Sprintf("Results for %q", snap.Query), results, snap.ResultsPage, snap.ResultsTotalPages)
	return nil
}

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the remembered search session",
	Long:  `Clear the active search results, query, filters and the persisted last-search value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		movies.ResetSearch()
		fmt.Println("Search session cleared.")
		return nil
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or clients needed
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reelscout %s (built %s)\n", version, buildTime)
	},
}
