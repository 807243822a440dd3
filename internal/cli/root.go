// Package cli implements the command-line interface for cubie.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie/internal/config"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubie",
	Short: "Cubie-level cube simulator",
	Long: `cubie - a cubie-level model of a 3x3 cube with five face generators
(U, D, R, L, B).

Measure how many repetitions a move sequence needs to return to solved,
generate seeded scrambles, and keep a log of past runs.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubie/cubie.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file path (default: ~/.cubie/state.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setupLogging sends debug logs to stderr when --verbose is set.
func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// loadSettings opens the settings file from flag or default.
func loadSettings() (*config.StateFile, error) {
	var sf *config.StateFile
	var err error

	if configPath != "" {
		sf, err = config.NewStateFile(configPath)
	} else {
		sf, err = config.NewDefaultStateFile()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logger.Debug("settings loaded", "path", sf.Path())
	return sf, nil
}

// openDB opens the run database. The --db flag wins over the settings
// file, which wins over the default path.
func openDB(settings *config.StateFile) (*storage.DB, error) {
	path := dbPath
	if path == "" && settings != nil {
		path = settings.DBPath()
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("database open", "path", db.Path())
	return db, nil
}

// saveRun stores a run and remembers it as the last run.
func saveRun(settings *config.StateFile, run storage.Run) (string, error) {
	db, err := openDB(settings)
	if err != nil {
		return "", err
	}
	defer db.Close()

	id, err := storage.NewRunRepository(db).Create(run)
	if err != nil {
		return "", err
	}

	if err := settings.SetLastRun(id); err != nil {
		logger.Warn("failed to record last run", "run_id", id, "error", err)
	}

	logger.Debug("run saved", "run_id", id, "kind", run.Kind)
	return id, nil
}
