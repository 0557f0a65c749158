package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/dojo/internal/cli"
	"github.com/alexanderramin/dojo/internal/config"
	"github.com/alexanderramin/dojo/internal/content"
	"github.com/alexanderramin/dojo/internal/db"
	"github.com/alexanderramin/dojo/internal/history"
	"github.com/alexanderramin/dojo/internal/progress"
	"github.com/alexanderramin/dojo/internal/workflow"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data directory: env var or default ~/.dojo
	dataDir := os.Getenv("DOJO_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".dojo")
	}

	cfg, err := config.Load(config.DefaultPath(dataDir))
	if err != nil {
		return err
	}
	if cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}

	store, warnings, err := content.Load()
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	table := workflow.NewTable(store.Stages(), store.RequestTypes(), store.RiskProfiles(), store.Constraints())

	prog := progress.NewStore(filepath.Join(dataDir, "state.json"), progress.Totals{
		Lessons:      len(store.LessonCatalog()),
		QuizItems:    len(store.QuizBank()),
		Scenarios:    len(store.ScenarioBank()),
		RequestTypes: len(store.RequestTypes()),
	})

	app := &cli.App{
		Content:  store,
		Table:    table,
		Progress: prog,
		Config:   cfg,
	}

	// The attempt journal is best-effort: the app works without it.
	if database, err := db.OpenDB(filepath.Join(dataDir, "history.db")); err != nil {
		fmt.Fprintf(os.Stderr, "warning: attempt journal disabled: %v\n", err)
	} else {
		defer database.Close()
		app.Attempts = history.NewSQLiteAttemptRepo(database)
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
