package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/dojo/internal/config"
	"github.com/alexanderramin/dojo/internal/content"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/history"
	"github.com/alexanderramin/dojo/internal/progress"
	"github.com/alexanderramin/dojo/internal/workflow"
)

// App holds the wired dependencies used by CLI commands and TUI views.
type App struct {
	Content  *content.Store
	Table    workflow.Table
	Progress *progress.Store
	Attempts history.AttemptRepo // nil when the journal db is unavailable
	Config   *config.Config

	// IsInteractive reports whether stdin is a terminal; the bare command
	// launches the TUI only when it is.
	IsInteractive func() bool
}

// JournalAttempt appends a practice attempt to the history journal.
// Best-effort: a missing or broken journal never interrupts a session.
func (a *App) JournalAttempt(kind domain.AttemptKind, score, total int, requestType string) {
	if a.Attempts == nil {
		return
	}
	_ = a.Attempts.Create(context.Background(), &history.Attempt{
		ID:          uuid.NewString(),
		Kind:        kind,
		Score:       score,
		Total:       total,
		RequestType: requestType,
		CreatedAt:   time.Now(),
	})
}

// NewRootCmd creates the top-level "dojo" command and registers all
// subcommands against the provided App. The bare command starts the TUI
// when running in a terminal.
func NewRootCmd(app *App) *cobra.Command {
	var noAnimations bool

	root := &cobra.Command{
		Use:   "dojo",
		Short: "Interactive trainer for adaptive AI-assisted delivery workflows",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags win over the config file.
			if noAnimations {
				app.Config.Animations = false
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.PersistentFlags().BoolVar(&noAnimations, "no-animations", false, "disable cursor and transition animations")

	root.AddCommand(
		newSimulateCmd(app),
		newReportCmd(app),
		newHistoryCmd(app),
		newResetCmd(app),
	)

	return root
}
