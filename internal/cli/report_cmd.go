package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
)

// newReportCmd prints the progress dashboard, or writes it to a file.
func newReportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print or export the progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := formatter.FormatProgressReport(app.Progress.Record(), app.Progress.Overall())

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(report), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")

	return cmd
}
