package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/progress"
	"github.com/alexanderramin/dojo/internal/workflow"
)

// newSimulateCmd resolves a workflow configuration non-interactively and
// prints the plan, for scripting and quick checks without the TUI.
func newSimulateCmd(app *App) *cobra.Command {
	var (
		requestType string
		risk        string
		constraints []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Resolve a workflow for a request configuration",
		Example: `  dojo simulate --type bugfix --risk low
  dojo simulate --type greenfield --risk high --constraint regulated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := workflow.Selection{
				RequestType: requestType,
				RiskProfile: domain.RiskLevel(risk),
				Constraints: constraints,
			}
			resolved, err := workflow.Resolve(app.Table, sel)
			if err != nil {
				return err
			}

			rt, _ := app.Content.RequestType(sel.RequestType)
			rp, _ := app.Content.RiskProfile(sel.RiskProfile)
			var cs []domain.Constraint
			for _, id := range sel.Constraints {
				for _, c := range app.Content.Constraints() {
					if c.ID == id {
						cs = append(cs, c)
					}
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkflowPlan(formatter.WorkflowPlanData{
				Phases:      app.Content.Phases(),
				Stages:      app.Content.Stages(),
				RequestType: rt,
				Risk:        rp,
				Constraints: cs,
				Resolved:    *resolved,
			}))

			unlocked := app.Progress.RecordSimulationRun(sel.RequestType)
			app.JournalAttempt(domain.AttemptSimulator, resolved.ActiveCount(), len(app.Content.Stages()), sel.RequestType)
			for _, id := range unlocked {
				if a, ok := progress.AchievementByID(id); ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("★ Achievement unlocked: "+a.Name))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&requestType, "type", "t", "", "request type id (greenfield, brownfield, frontend, bugfix)")
	cmd.Flags().StringVarP(&risk, "risk", "r", string(domain.RiskLow), "risk profile id (low, medium, high)")
	cmd.Flags().StringSliceVarP(&constraints, "constraint", "c", nil, "constraint ids, repeatable")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
