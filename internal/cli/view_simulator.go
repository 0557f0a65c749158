package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/workflow"
)

// newSimulatorView builds the workflow configuration wizard. On completion
// the selection is resolved and the simulation view is pushed in its place.
func newSimulatorView(state *SharedState) View {
	app := state.App

	var (
		requestType string
		risk        = string(domain.RiskLow)
		constraints []string
	)

	typeOpts := make([]huh.Option[string], 0)
	for _, rt := range app.Content.RequestTypes() {
		typeOpts = append(typeOpts, huh.NewOption(rt.Name, rt.ID))
	}
	riskOpts := make([]huh.Option[string], 0)
	for _, rp := range app.Content.RiskProfiles() {
		riskOpts = append(riskOpts, huh.NewOption(rp.Name, string(rp.ID)))
	}
	constraintOpts := make([]huh.Option[string], 0)
	for _, c := range app.Content.Constraints() {
		constraintOpts = append(constraintOpts, huh.NewOption(c.Name, c.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What kind of request is this?").
				Options(typeOpts...).
				Value(&requestType),
			huh.NewSelect[string]().
				Title("How risky is failure?").
				Options(riskOpts...).
				Value(&risk),
			huh.NewMultiSelect[string]().
				Title("Which constraints apply?").
				Options(constraintOpts...).
				Value(&constraints),
		),
	).WithTheme(dojoHuhTheme()).WithShowHelp(false)

	return newWizardView(state, "Simulator", form, func() tea.Cmd {
		return runSimulation(state, workflow.Selection{
			RequestType: requestType,
			RiskProfile: domain.RiskLevel(risk),
			Constraints: constraints,
		})
	})
}

// runSimulation resolves the selection, records the run, and pushes the
// simulation view. The wizard has already popped itself by the time this
// command runs.
func runSimulation(state *SharedState, sel workflow.Selection) tea.Cmd {
	app := state.App
	resolved, err := workflow.Resolve(app.Table, sel)
	if err != nil {
		return pushView(newSimulationErrView(state, err))
	}

	unlocked := app.Progress.RecordSimulationRun(sel.RequestType)
	app.JournalAttempt(domain.AttemptSimulator, resolved.ActiveCount(), len(app.Content.Stages()), sel.RequestType)

	return tea.Batch(
		pushView(newSimulationView(state, *resolved)),
		announceAchievements(unlocked),
	)
}
