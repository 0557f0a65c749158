package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}

func TestSimulateCmd(t *testing.T) {
	app := testApp(t)

	out, err := runCmd(t, app, "simulate", "--type", "bugfix", "--risk", "low")
	require.NoError(t, err)

	assert.Contains(t, out, "Bug Fix")
	assert.Contains(t, out, "EXECUTE")
	assert.Contains(t, out, "SKIP")
	assert.Contains(t, out, "Reverse Engineering")

	// The run lands in the progress record.
	rec := app.Progress.Record()
	assert.Equal(t, 1, rec.Simulator.Runs)
	assert.Equal(t, []string{"bugfix"}, rec.Simulator.RequestTypesExplored)
}

func TestSimulateCmd_ConstraintPromotes(t *testing.T) {
	app := testApp(t)

	plain, err := runCmd(t, app, "simulate", "--type", "bugfix")
	require.NoError(t, err)
	forced, err := runCmd(t, app, "simulate", "--type", "bugfix", "--constraint", "regulated")
	require.NoError(t, err)

	assert.NotContains(t, plain, "forced by constraint")
	assert.Contains(t, forced, "forced by constraint")
}

func TestSimulateCmd_UnknownType(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "simulate", "--type", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration id")
}

func TestSimulateCmd_RequiresType(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "simulate")
	require.Error(t, err)
}

func TestReportCmd(t *testing.T) {
	app := testApp(t)
	app.Progress.RecordQuizResult(18, 24, nil)

	out, err := runCmd(t, app, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "PROGRESS REPORT")
	assert.Contains(t, out, "last 18/24")
	assert.Contains(t, out, "Achievements")
}

func TestReportCmd_WritesFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "report.txt")

	out, err := runCmd(t, app, "report", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PROGRESS REPORT")
}

func TestHistoryCmd_NoJournal(t *testing.T) {
	app := testApp(t)
	app.Attempts = nil

	_, err := runCmd(t, app, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal is unavailable")
}

func TestHistoryCmd_RejectsUnknownKind(t *testing.T) {
	app := testApp(t)

	_, err := runCmd(t, app, "history", "--kind", "banana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quiz, gatekeeper, simulator")
}

func TestResetCmd(t *testing.T) {
	app := testApp(t)
	app.Progress.RecordQuizResult(24, 24, nil)

	_, err := runCmd(t, app, "reset")
	require.Error(t, err, "reset without --yes must refuse")
	assert.NotZero(t, app.Progress.Record().Gamification.XP)

	out, err := runCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset.")
	assert.Zero(t, app.Progress.Record().Gamification.XP)
}

func TestJournalAttempt_NilRepoIsNoop(t *testing.T) {
	app := testApp(t)
	app.Attempts = nil

	// Must not panic.
	app.JournalAttempt("quiz", 1, 2, "")
}
