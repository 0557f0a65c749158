package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/history"
)

// kindValue is a pflag.Value that only accepts known attempt kinds.
type kindValue struct {
	kind domain.AttemptKind
}

var _ pflag.Value = (*kindValue)(nil)

func (v *kindValue) String() string { return string(v.kind) }
func (v *kindValue) Type() string   { return "kind" }

func (v *kindValue) Set(s string) error {
	switch domain.AttemptKind(s) {
	case domain.AttemptQuiz, domain.AttemptGatekeeper, domain.AttemptSimulator:
		v.kind = domain.AttemptKind(s)
		return nil
	}
	return fmt.Errorf("must be one of quiz, gatekeeper, simulator")
}

// newHistoryCmd lists journaled practice attempts.
func newHistoryCmd(app *App) *cobra.Command {
	var (
		kind  kindValue
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent practice attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Attempts == nil {
				return fmt.Errorf("attempt journal is unavailable")
			}

			var (
				attempts []*history.Attempt
				err      error
			)
			if kind.kind != "" {
				attempts, err = app.Attempts.ListByKind(cmd.Context(), kind.kind, limit)
			} else {
				attempts, err = app.Attempts.ListRecent(cmd.Context(), limit)
			}
			if err != nil {
				return fmt.Errorf("loading attempts: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAttemptList(attempts))
			return nil
		},
	}

	cmd.Flags().VarP(&kind, "kind", "k", "filter by kind (quiz, gatekeeper, simulator)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of attempts to show")

	return cmd
}
