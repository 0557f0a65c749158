package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
)

// newResetCmd wipes all progress and the attempt journal.
func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("this erases all progress; re-run with --yes to confirm")
			}

			app.Progress.Reset()
			if app.Attempts != nil {
				if err := app.Attempts.DeleteAll(cmd.Context()); err != nil {
					return fmt.Errorf("clearing attempt journal: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Progress reset."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")

	return cmd
}
