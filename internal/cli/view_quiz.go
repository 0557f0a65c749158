package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dojo/internal/cli/formatter"
	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/session"
)

// quizRecorder persists quiz results to the progress store and mirrors them
// into the attempt journal.
type quizRecorder struct{ app *App }

func (r quizRecorder) RecordQuizResult(correct, total int, missed []string) []string {
	unlocked := r.app.Progress.RecordQuizResult(correct, total, missed)
	r.app.JournalAttempt(domain.AttemptQuiz, correct, total, "")
	return unlocked
}

// quizView drives a quiz run.
type quizView struct {
	state     *SharedState
	sess      *session.QuizSession
	reviewing bool
}

func newQuizView(state *SharedState) *quizView {
	rng := newSessionRand(state)
	sess := session.NewQuizSession(state.App.Content.QuizBank(), rng, quizRecorder{state.App})
	return &quizView{state: state, sess: sess}
}

// newSessionRand seeds a session rand source, honoring the test seed.
func newSessionRand(state *SharedState) *rand.Rand {
	seed := state.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (v *quizView) ID() ViewID    { return ViewQuiz }
func (v *quizView) Title() string { return "Quiz" }

func (v *quizView) ShortHelp() []key.Binding {
	if v.sess.Finished() {
		bindings := []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		}
		if len(v.sess.Results().Missed) > 0 {
			bindings = append(bindings,
				key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "review mistakes")))
		}
		return bindings
	}
	if v.sess.Answered() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("1", "4"), key.WithHelp("1-4", "answer")),
	}
}

func (v *quizView) Init() tea.Cmd { return nil }

func (v *quizView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.sess.Finished() {
		switch msgKey.String() {
		case "r":
			v.sess.Restart()
			v.reviewing = false
		case "m":
			if len(v.sess.Results().Missed) > 0 {
				v.reviewing = !v.reviewing
			}
		}
		return v, nil
	}

	if v.sess.Answered() {
		if msgKey.String() == "enter" {
			v.sess.Next()
			if v.sess.Finished() {
				return v, announceAchievements(v.sess.Results().Unlocked)
			}
		}
		return v, nil
	}

	switch msgKey.String() {
	case "1", "2", "3", "4":
		choice := int(msgKey.String()[0] - '1')
		v.sess.Answer(choice)
	}
	return v, nil
}

// gradeBand maps a score onto an encouragement line for the results screen.
func gradeBand(correct, total int) string {
	switch pct := 100 * correct / total; {
	case pct >= 90:
		return "Excellent. You know this methodology cold."
	case pct >= 70:
		return "Solid. Review the missed explanations and try again."
	case pct >= 50:
		return "Getting there. The lessons cover what you missed."
	default:
		return "Rough run. Start with the lessons, then come back."
	}
}

func (v *quizView) View() string {
	var b strings.Builder

	if v.sess.Finished() {
		res := v.sess.Results()
		if v.reviewing {
			return v.renderReview(res)
		}
		b.WriteString("\n  " + formatter.StyleHeader.Render("QUIZ COMPLETE") + "\n\n")
		b.WriteString(fmt.Sprintf("  Score: %s\n",
			formatter.Bold(fmt.Sprintf("%d / %d", res.Correct, res.Total))))
		if res.Total > 0 {
			b.WriteString("  " + formatter.RenderProgress(float64(res.Correct)/float64(res.Total), 20) + "\n")
		}
		if res.Total > 0 {
			if res.Correct == res.Total {
				b.WriteString("\n  " + formatter.StyleYellow.Render("Perfect run!") + "\n")
			} else {
				b.WriteString("\n  " + formatter.Dim(gradeBand(res.Correct, res.Total)) + "\n")
			}
		}
		if len(res.Missed) > 0 {
			b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("m to review the %d you missed, r to retry, esc to go back", len(res.Missed))) + "\n")
		} else {
			b.WriteString("\n  " + formatter.Dim("r to retry, esc to go back") + "\n")
		}
		return b.String()
	}

	return v.renderQuestion()
}

// renderReview lists the missed questions with the right answer and its
// explanation.
func (v *quizView) renderReview(res session.QuizResults) string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("REVIEW MISTAKES") + "\n")

	for _, q := range res.Missed {
		b.WriteString("\n  " + formatter.Bold(q.Item.Prompt) + "\n")
		b.WriteString("  " + formatter.StyleGreen.Render("✓ "+q.Options[q.Correct]) + "\n")
		b.WriteString("  " + formatter.Dim(q.Item.Explanation) + "\n")
	}

	b.WriteString("\n  " + formatter.Dim("m to go back to results") + "\n")
	return b.String()
}

func (v *quizView) renderQuestion() string {
	var b strings.Builder

	q, pos := v.sess.Current()
	b.WriteString(fmt.Sprintf("\n  %s\n\n  %s\n\n",
		formatter.Dim(fmt.Sprintf("Question %d of %d", pos, v.sess.Total())),
		formatter.Bold(q.Item.Prompt)))

	answer := v.sess.LastAnswer()
	for i, opt := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case v.sess.Answered() && i == answer.CorrectIdx:
			b.WriteString("  " + formatter.StyleGreen.Render("✓ "+label) + "\n")
		case v.sess.Answered() && i == answer.Chosen:
			b.WriteString("  " + formatter.StyleRed.Render("✗ "+label) + "\n")
		case v.sess.Answered():
			b.WriteString("  " + formatter.Dim("  "+label) + "\n")
		default:
			b.WriteString("    " + formatter.StyleFg.Render(label) + "\n")
		}
	}

	if v.sess.Answered() {
		b.WriteString("\n")
		if answer.Correct {
			b.WriteString("  " + formatter.StyleGreen.Render("Correct!") + "\n")
		} else {
			b.WriteString("  " + formatter.StyleRed.Render("Not quite.") + "\n")
		}
		b.WriteString("  " + formatter.Dim(answer.Explanation) + "\n")
	}

	return b.String()
}
