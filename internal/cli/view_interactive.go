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

// interactiveView walks through the planning questions one at a time. Every
// answer feeds the same resolver the simulator uses, so the stage counts on
// screen always match what a direct simulation of the current configuration
// would produce.
type interactiveView struct {
	state *SharedState

	questions []domain.SimQuestion
	qIdx      int
	cursor    int

	sel      workflow.Selection
	resolved *workflow.Resolved
	lastNote string
	finished bool
}

func newInteractiveView(state *SharedState) *interactiveView {
	questions := state.App.Content.SimQuestions()
	return &interactiveView{
		state:     state,
		questions: questions,
		sel:       workflow.Selection{RiskProfile: domain.RiskLow},
		finished:  len(questions) == 0,
	}
}

func (v *interactiveView) ID() ViewID    { return ViewInteractive }
func (v *interactiveView) Title() string { return "Walkthrough" }

func (v *interactiveView) ShortHelp() []key.Binding {
	if v.finished {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "see full plan")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "option")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
	}
}

func (v *interactiveView) Init() tea.Cmd { return nil }

func (v *interactiveView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.finished {
		if msgKey.String() == "enter" && v.resolved != nil {
			unlocked := v.state.App.Progress.RecordSimulationRun(v.sel.RequestType)
			v.state.App.JournalAttempt(domain.AttemptSimulator,
				v.resolved.ActiveCount(), len(v.state.App.Content.Stages()), v.sel.RequestType)
			return v, tea.Batch(
				replaceView(newSimulationView(v.state, *v.resolved)),
				announceAchievements(unlocked),
			)
		}
		return v, nil
	}

	if v.qIdx >= len(v.questions) {
		v.finished = true
		return v, nil
	}
	q := v.questions[v.qIdx]
	switch msgKey.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(q.Options)-1 {
			v.cursor++
		}
	case "enter":
		v.answer(q.Options[v.cursor])
	}
	return v, nil
}

func (v *interactiveView) answer(opt domain.SimOption) {
	v.sel = v.sel.Apply(opt.Effect)
	v.lastNote = opt.Effect.Explanation

	if v.sel.RequestType != "" {
		if resolved, err := workflow.Resolve(v.state.App.Table, v.sel); err == nil {
			v.resolved = resolved
		}
	}

	v.cursor = 0
	v.qIdx++
	if v.qIdx >= len(v.questions) {
		v.finished = true
	}
}

func (v *interactiveView) View() string {
	var b strings.Builder

	b.WriteString("\n  " + v.renderConfig() + "\n")
	if v.lastNote != "" {
		b.WriteString("  " + formatter.StyleYellow.Render("↳ ") + formatter.Dim(v.lastNote) + "\n")
	}

	if v.finished {
		b.WriteString("\n  " + formatter.Bold("All questions answered.") + "\n")
		if v.resolved != nil {
			b.WriteString(fmt.Sprintf("  Your workflow executes %s of %d stages.\n",
				formatter.StyleGreen.Render(fmt.Sprintf("%d", v.resolved.ActiveCount())),
				len(v.state.App.Content.Stages())))
		}
		b.WriteString("\n  " + formatter.Dim("Press enter to inspect the full plan.") + "\n")
		return b.String()
	}

	q := v.questions[v.qIdx]
	b.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		formatter.Dim(fmt.Sprintf("Question %d/%d", v.qIdx+1, len(v.questions))),
		formatter.Bold(q.Prompt)))

	for i, opt := range q.Options {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString("  " + cursor + style.Render(opt.Label) + "\n")
	}

	b.WriteString("\n  " + formatter.Dim(q.Principle) + "\n")
	return b.String()
}

func (v *interactiveView) renderConfig() string {
	app := v.state.App

	typeLabel := formatter.Dim("request type not set")
	if rt, ok := app.Content.RequestType(v.sel.RequestType); ok {
		typeLabel = formatter.Bold(rt.Name)
	}

	parts := []string{
		typeLabel,
		formatter.RiskIndicator(v.sel.RiskProfile),
		formatter.Dim(constraintLabel(app, v.sel.Constraints)),
	}
	line := strings.Join(parts, "  ")

	if v.resolved != nil {
		line += formatter.Dim("  ·  ") + fmt.Sprintf("%s of %d stages execute",
			formatter.StyleGreen.Render(fmt.Sprintf("%d", v.resolved.ActiveCount())),
			len(app.Content.Stages()))
	}
	return line
}
