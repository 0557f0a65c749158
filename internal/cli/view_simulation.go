package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/workflow"
)

// simulationView shows a resolved workflow as a phase-grouped timeline.
// The cursor moves over stages; enter opens the stage's full card.
type simulationView struct {
	state    *SharedState
	resolved workflow.Resolved

	stages []domain.Stage // content order, only stages with decisions
	cursor int
	detail bool
}

func newSimulationView(state *SharedState, resolved workflow.Resolved) *simulationView {
	v := &simulationView{state: state, resolved: resolved}
	for _, s := range state.App.Content.Stages() {
		if _, ok := resolved.Decision(s.ID); ok {
			v.stages = append(v.stages, s)
		}
	}
	return v
}

func (v *simulationView) ID() ViewID    { return ViewSimulation }
func (v *simulationView) Title() string { return "Plan" }

func (v *simulationView) ShortHelp() []key.Binding {
	if v.detail {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "back to plan")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "stage")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reconfigure")),
	}
}

func (v *simulationView) Init() tea.Cmd { return nil }

func (v *simulationView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if v.detail {
			switch msg.String() {
			case "enter", "backspace":
				v.detail = false
			}
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.stages)-1 {
				v.cursor++
			}
		case "enter":
			if len(v.stages) > 0 {
				v.detail = true
			}
		case "r":
			return v, replaceView(newSimulatorView(v.state))
		}
	}
	return v, nil
}

func (v *simulationView) View() string {
	if v.detail && v.cursor < len(v.stages) {
		stage := v.stages[v.cursor]
		dec, _ := v.resolved.Decision(stage.ID)
		return "\n" + indent(formatter.FormatStageDetail(stage, dec))
	}

	app := v.state.App
	var b strings.Builder

	rt, _ := app.Content.RequestType(v.resolved.Selection.RequestType)
	rp, _ := app.Content.RiskProfile(v.resolved.Selection.RiskProfile)
	b.WriteString(fmt.Sprintf("\n  %s %s  %s  %s\n",
		formatter.Dim("Configuration:"),
		formatter.Bold(rt.Name),
		formatter.RiskIndicator(rp.ID),
		formatter.Dim(constraintLabel(app, v.resolved.Selection.Constraints)),
	))
	b.WriteString(fmt.Sprintf("  %s executes, %d stages total\n",
		formatter.StyleGreen.Render(fmt.Sprintf("%d", v.resolved.ActiveCount())),
		len(v.stages)))

	var lastPhase domain.Phase
	for i, stage := range v.stages {
		if stage.Phase != lastPhase {
			lastPhase = stage.Phase
			b.WriteString("\n  " + formatter.StyleBlue.Render(strings.ToUpper(string(stage.Phase))) + "\n")
		}
		dec, _ := v.resolved.Decision(stage.ID)

		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		gateMark := " "
		if stage.Gate != nil && dec.Status == domain.StatusExecute {
			gateMark = formatter.StyleHeader.Render("⛩")
		}
		b.WriteString(fmt.Sprintf("  %s%-24s %-32s %s %s\n",
			cursor,
			formatter.StatusColor(dec.Status).Render(stage.Name),
			formatter.StatusIndicator(dec.Status),
			gateMark,
			formatter.Dim(dec.Reason),
		))
	}

	return b.String()
}

func constraintLabel(app *App, ids []string) string {
	if len(ids) == 0 {
		return "no constraints"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, c := range app.Content.Constraints() {
			if c.ID == id {
				names = append(names, c.Name)
			}
		}
	}
	return strings.Join(names, ", ")
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}

// simulationErrView reports a resolution failure (unknown configuration id).
type simulationErrView struct {
	state *SharedState
	err   error
}

func newSimulationErrView(state *SharedState, err error) *simulationErrView {
	return &simulationErrView{state: state, err: err}
}

func (v *simulationErrView) ID() ViewID    { return ViewSimulation }
func (v *simulationErrView) Title() string { return "Plan" }
func (v *simulationErrView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reconfigure")),
	}
}
func (v *simulationErrView) Init() tea.Cmd { return nil }

func (v *simulationErrView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "r" {
		return v, replaceView(newSimulatorView(v.state))
	}
	return v, nil
}

func (v *simulationErrView) View() string {
	return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
}
