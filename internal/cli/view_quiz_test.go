package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestQuizView_ReviewMistakes(t *testing.T) {
	app := testApp(t)
	state := &SharedState{App: app, Seed: 1}
	v := newQuizView(state)

	// Miss every question, then finish.
	for !v.sess.Finished() {
		q, _ := v.sess.Current()
		v.sess.Answer((q.Correct + 1) % len(q.Options))
		v.sess.Next()
	}
	res := v.sess.Results()
	require.NotEmpty(t, res.Missed)

	out := v.View()
	assert.Contains(t, out, "QUIZ COMPLETE")
	assert.Contains(t, out, "m to review")

	model, _ := v.Update(keyRune('m'))
	v = model.(*quizView)
	out = v.View()
	assert.Contains(t, out, "REVIEW MISTAKES")
	assert.Contains(t, out, res.Missed[0].Item.Prompt)
	assert.Contains(t, out, res.Missed[0].Options[res.Missed[0].Correct])
	assert.Contains(t, out, res.Missed[0].Item.Explanation)

	// The missed ids land in the progress record, replacing nothing older.
	rec := app.Progress.Record()
	assert.Len(t, rec.Quiz.Missed, res.Total)

	// m toggles back, r leaves review and starts over.
	model, _ = v.Update(keyRune('m'))
	v = model.(*quizView)
	assert.Contains(t, v.View(), "QUIZ COMPLETE")

	model, _ = v.Update(keyRune('r'))
	v = model.(*quizView)
	assert.False(t, v.reviewing)
	assert.False(t, v.sess.Finished())
}

func TestQuizView_PerfectRunHasNoReview(t *testing.T) {
	app := testApp(t)
	v := newQuizView(&SharedState{App: app, Seed: 1})

	for !v.sess.Finished() {
		q, _ := v.sess.Current()
		v.sess.Answer(q.Correct)
		v.sess.Next()
	}

	out := v.View()
	assert.Contains(t, out, "Perfect run!")
	assert.NotContains(t, out, "m to review")

	// m is inert with nothing to review.
	model, _ := v.Update(keyRune('m'))
	v = model.(*quizView)
	assert.False(t, v.reviewing)
}
