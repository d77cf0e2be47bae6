package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/viewstash/internal/config"
	"github.com/jask/viewstash/internal/logging"
	"github.com/jask/viewstash/internal/storage"
	"github.com/jask/viewstash/internal/ui"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "formpad",
	Short: "Switchable terminal forms that never lose your typing",
	Long: `Formpad is a small notepad of terminal forms. Switch between them
freely: whatever is typed into a form is parked when it leaves the
screen and replayed into a fresh instance when it returns. Submitted
forms land in a local sqlite database.

Keys: ctrl+n/ctrl+p switch forms, ctrl+s submits, ctrl+k opens the
command palette, ctrl+c quits.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every stored submission",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPurge()
	},
}

var (
	flagConfig   string
	flagDB       string
	flagLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the sqlite database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace/debug/info/warn/error)")
	rootCmd.AddCommand(purgeCmd)
}

func loadConfig() (config.Config, error) {
	// Load and Save both resolve FORMPAD_CONFIG, so the in-app config
	// command writes back to the same file the flag pointed at.
	if flagConfig != "" {
		if err := os.Setenv("FORMPAD_CONFIG", flagConfig); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagDB != "" {
		cfg.Database.Path = flagDB
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

func openDB(cfg config.Config) (*sql.DB, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := storage.RunEmbeddedMigrations(cfg.Database.Path); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	return db, func() { db.Close() }, nil
}

func runTUI() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	db, closeDB, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := storage.SeedExamples(ctx, db); err != nil {
		return fmt.Errorf("seed examples: %w", err)
	}

	repo := storage.NewSubmissionRepo(db)
	p := tea.NewProgram(ui.New(ctx, cfg, repo), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runPurge() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	db, closeDB, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	repo := storage.NewSubmissionRepo(db)
	count, err := repo.Purge(context.Background())
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}
	fmt.Printf("purged %d submissions\n", count)
	return nil
}
