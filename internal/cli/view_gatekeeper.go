package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/session"
)

// gateRecorder persists gatekeeper results to the progress store and mirrors
// them into the attempt journal.
type gateRecorder struct{ app *App }

func (r gateRecorder) RecordScenarioResult(passed, total int, missed []string) []string {
	unlocked := r.app.Progress.RecordScenarioResult(passed, total, missed)
	r.app.JournalAttempt(domain.AttemptGatekeeper, passed, total, "")
	return unlocked
}

// gatekeeperView drives the gatekeeper drill: decide, justify, get graded.
type gatekeeperView struct {
	state  *SharedState
	sess   *session.GateSession
	cursor int
}

func newGatekeeperView(state *SharedState) *gatekeeperView {
	rng := newSessionRand(state)
	sess := session.NewGateSession(state.App.Content.ScenarioBank(), rng, gateRecorder{state.App})
	return &gatekeeperView{state: state, sess: sess}
}

func (v *gatekeeperView) ID() ViewID    { return ViewGatekeeper }
func (v *gatekeeperView) Title() string { return "Gatekeeper" }

func (v *gatekeeperView) ShortHelp() []key.Binding {
	switch v.sess.Phase() {
	case session.GateDeciding:
		return []key.Binding{
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reject")),
		}
	case session.GateChoosingReasons:
		return []key.Binding{
			key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		}
	case session.GateFeedback:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		}
	}
	return nil
}

func (v *gatekeeperView) Init() tea.Cmd { return nil }

func (v *gatekeeperView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.sess.Phase() {
	case session.GateDeciding:
		switch msgKey.String() {
		case "a":
			v.sess.Decide(domain.DecisionApprove)
			v.cursor = 0
		case "r":
			v.sess.Decide(domain.DecisionReject)
			v.cursor = 0
		}

	case session.GateChoosingReasons:
		sc, _ := v.sess.Current()
		switch msgKey.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(sc.Reasons)-1 {
				v.cursor++
			}
		case " ":
			v.sess.ToggleReason(v.cursor)
		case "enter":
			v.sess.Submit()
		}

	case session.GateFeedback:
		if msgKey.String() == "enter" {
			v.sess.Next()
			if v.sess.Phase() == session.GateDone {
				return v, announceAchievements(v.sess.Results().Unlocked)
			}
		}
	}
	return v, nil
}

func (v *gatekeeperView) View() string {
	if v.sess.Phase() == session.GateDone {
		return v.renderResults()
	}

	sc, pos := v.sess.Current()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n  %s  %s\n",
		formatter.Dim(fmt.Sprintf("Scenario %d of %d", pos, v.sess.Total())),
		formatter.StyleBlue.Render(sc.Scenario.Phase+" / "+sc.Scenario.Stage)))

	b.WriteString("\n  " + formatter.Bold("Context") + "\n")
	b.WriteString(wrapIndent(sc.Scenario.Context, "  ") + "\n")
	b.WriteString("\n  " + formatter.Bold("Submitted plan") + "\n")
	b.WriteString(wrapIndent(sc.Scenario.Plan, "  ") + "\n")

	if len(sc.Scenario.Evidence) > 0 {
		b.WriteString("\n  " + formatter.Dim("Required evidence:") + "\n")
		for _, e := range sc.Scenario.Evidence {
			b.WriteString("    " + formatter.Dim("· "+e) + "\n")
		}
	}

	switch v.sess.Phase() {
	case session.GateDeciding:
		b.WriteString("\n  " + formatter.StyleHeader.Render("Your call:") + "  " +
			formatter.StyleGreen.Render("[a]pprove") + "  " +
			formatter.StyleRed.Render("[r]eject") + "\n")

	case session.GateChoosingReasons:
		b.WriteString(fmt.Sprintf("\n  %s %s\n",
			formatter.Dim("You chose:"),
			decisionLabel(v.sess.Decision())))
		b.WriteString("  " + formatter.Bold("Why? Select the reasons that support your call.") + "\n\n")
		for i, r := range sc.Reasons {
			cursor := "  "
			if i == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}
			box := "[ ]"
			if v.sess.ReasonSelected(i) {
				box = formatter.StyleGreen.Render("[x]")
			}
			b.WriteString("  " + cursor + box + " " + r.Text + "\n")
		}

	case session.GateFeedback:
		out := v.sess.LastOutcome()
		b.WriteString("\n")
		if out.Passed {
			b.WriteString("  " + formatter.StyleGreen.Render("✓ PASSED") + "\n")
		} else {
			b.WriteString("  " + formatter.StyleRed.Render("✗ MISSED") + "\n")
		}
		correct := decisionLabel(sc.Scenario.CorrectAction)
		b.WriteString(fmt.Sprintf("  %s %s", formatter.Dim("Correct call:"), correct))
		if !out.DecisionCorrect {
			b.WriteString("  " + formatter.Dim("(you chose ") + decisionLabel(out.Decision) + formatter.Dim(")"))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %d valid, %d invalid selected\n",
			formatter.Dim("Reasoning:"), out.ValidSelected, out.InvalidSelected))
		b.WriteString("\n  " + formatter.Dim("Valid reasons were:") + "\n")
		for _, r := range sc.Scenario.ValidReasons {
			b.WriteString("    " + formatter.StyleGreen.Render("✓") + " " + r + "\n")
		}
	}

	return b.String()
}

func (v *gatekeeperView) renderResults() string {
	res := v.sess.Results()
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("DRILL COMPLETE") + "\n\n")
	b.WriteString(fmt.Sprintf("  Passed %s of %d scenarios\n",
		formatter.Bold(fmt.Sprintf("%d", res.Passed)), res.Total))
	if res.Total > 0 {
		b.WriteString("  " + formatter.RenderProgress(float64(res.Passed)/float64(res.Total), 20) + "\n")
	}
	b.WriteString("\n  " + formatter.Dim("esc to go back") + "\n")
	return b.String()
}

func decisionLabel(d domain.Decision) string {
	if d == domain.DecisionApprove {
		return formatter.StyleGreen.Render("APPROVE")
	}
	return formatter.StyleRed.Render("REJECT")
}

// wrapIndent does a crude word wrap at 76 columns with the given prefix.
func wrapIndent(text, prefix string) string {
	words := strings.Fields(text)
	var b strings.Builder
	line := prefix
	for _, w := range words {
		if len(line)+len(w)+1 > 78 {
			b.WriteString(line + "\n")
			line = prefix
		}
		if line == prefix {
			line += w
		} else {
			line += " " + w
		}
	}
	if line != prefix {
		b.WriteString(line)
	}
	return b.String()
}
