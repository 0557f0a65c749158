package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTotals() Totals {
	return Totals{Lessons: 6, QuizItems: 24, Scenarios: 10, RequestTypes: 4}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "state.json"), testTotals())
}

func TestNewStore_FreshRecord(t *testing.T) {
	s := newTestStore(t)

	rec := s.Record()
	assert.Equal(t, SchemaVersion, rec.Schema)
	assert.Equal(t, 1, rec.Gamification.Level)
	assert.Equal(t, "Novice", rec.Gamification.Title)
	assert.Equal(t, 0, rec.Gamification.XP)
	assert.Equal(t, 6, rec.Lessons.TotalAvailable)
	assert.NotNil(t, rec.Lessons.InProgress)
	assert.False(t, rec.FirstOpened.IsZero())
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := NewStore(path, testTotals())
	s.RecordQuizResult(20, 24, []string{"q3", "q7", "q11", "q20"})
	s.MarkLessonCompleted("lesson-overview")

	// A fresh store over the same file sees the saved record.
	reloaded := NewStore(path, testTotals())
	rec := reloaded.Record()
	assert.Equal(t, 20, rec.Quiz.LastScore)
	assert.Equal(t, 20, rec.Quiz.BestScore)
	assert.Equal(t, []string{"q3", "q7", "q11", "q20"}, rec.Quiz.Missed)
	assert.Equal(t, []string{"lesson-overview"}, rec.Lessons.Completed)
	assert.Equal(t, s.Record().Gamification.XP, rec.Gamification.XP)
}

func TestStore_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path, testTotals())
	assert.Equal(t, 0, s.Record().Gamification.XP)
}

func TestStore_SchemaMismatchStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"$schema":"progress-v0","gamification":{"xp":999}}`), 0o644))

	s := NewStore(path, testTotals())
	assert.Equal(t, 0, s.Record().Gamification.XP, "old schema should be discarded")
}

func TestRecordQuizResult_BestScoreNeverDecreases(t *testing.T) {
	s := newTestStore(t)

	s.RecordQuizResult(20, 24, nil)
	rec := s.Record()
	assert.Equal(t, 20, rec.Quiz.BestScore)
	assert.Equal(t, 20, rec.Quiz.LastScore)

	s.RecordQuizResult(18, 24, nil)
	rec = s.Record()
	assert.Equal(t, 20, rec.Quiz.BestScore, "a worse run must not lower the best score")
	assert.Equal(t, 18, rec.Quiz.LastScore, "the last score always reflects the latest run")
	assert.Equal(t, 2, rec.Quiz.Attempts)
}

func TestRecordQuizResult_MissedSetReplaces(t *testing.T) {
	s := newTestStore(t)

	s.RecordQuizResult(20, 24, []string{"q1", "q2", "q3", "q4"})
	s.RecordQuizResult(18, 24, []string{"q5", "q6", "q7", "q8", "q9", "q10"})

	rec := s.Record()
	assert.Equal(t, []string{"q5", "q6", "q7", "q8", "q9", "q10"}, rec.Quiz.Missed,
		"each run's missed set replaces the previous one, no union")

	s.RecordQuizResult(24, 24, nil)
	assert.Empty(t, s.Record().Quiz.Missed, "a clean run clears the set")
}

func TestRecordScenarioResult_MissedSetReplaces(t *testing.T) {
	s := newTestStore(t)

	s.RecordScenarioResult(8, 10, []string{"s1", "s2"})
	s.RecordScenarioResult(9, 10, []string{"s4"})

	assert.Equal(t, []string{"s4"}, s.Record().Gatekeeper.Missed)
}

func TestRecordQuizResult_XP(t *testing.T) {
	s := newTestStore(t)

	s.RecordQuizResult(10, 24, nil)
	assert.Equal(t, 10*XPQuizCorrect+XPQuizComplete, s.Record().Gamification.XP)
}

func TestRecordQuizResult_PerfectBonus(t *testing.T) {
	s := newTestStore(t)

	s.RecordQuizResult(24, 24, nil)
	assert.Equal(t, 24*XPQuizCorrect+XPQuizComplete+XPQuizPerfect, s.Record().Gamification.XP)
	assert.Contains(t, s.Record().Achievements.Unlocked, "perfect-score")
}

func TestLessonProgress_SectionXPForwardOnly(t *testing.T) {
	s := newTestStore(t)

	s.MarkLessonStarted("lesson-resolver")
	s.UpdateLessonProgress("lesson-resolver", 2)
	assert.Equal(t, 2*XPLessonSection, s.Record().Gamification.XP)

	// Paging back and forward again must not double-award.
	s.UpdateLessonProgress("lesson-resolver", 1)
	s.UpdateLessonProgress("lesson-resolver", 2)
	assert.Equal(t, 2*XPLessonSection, s.Record().Gamification.XP)

	s.UpdateLessonProgress("lesson-resolver", 3)
	assert.Equal(t, 3*XPLessonSection, s.Record().Gamification.XP)
}

func TestLessonProgress_TracksPositionAndStartTime(t *testing.T) {
	s := newTestStore(t)

	s.MarkLessonStarted("lesson-resolver")
	started := s.Record().Lessons.InProgress["lesson-resolver"].StartedAt
	require.False(t, started.IsZero())

	s.UpdateLessonProgress("lesson-resolver", 2)
	s.UpdateLessonProgress("lesson-resolver", 1)

	lp := s.Record().Lessons.InProgress["lesson-resolver"]
	assert.Equal(t, 1, lp.LastSection, "position follows the reader backward too")
	assert.Equal(t, 2, lp.Furthest)
	assert.Equal(t, started, lp.StartedAt, "the start time survives progress updates")
}

func TestMarkLessonCompleted_Idempotent(t *testing.T) {
	s := newTestStore(t)

	unlocked := s.MarkLessonCompleted("lesson-overview")
	assert.Contains(t, unlocked, "first-steps")
	xp := s.Record().Gamification.XP
	assert.Equal(t, XPLessonComplete, xp)

	assert.Empty(t, s.MarkLessonCompleted("lesson-overview"))
	assert.Equal(t, xp, s.Record().Gamification.XP, "repeat completion awards nothing")
	assert.Len(t, s.Record().Lessons.Completed, 1)
}

func TestMarkLessonCompleted_ClearsInProgress(t *testing.T) {
	s := newTestStore(t)

	s.MarkLessonStarted("lesson-gates")
	s.UpdateLessonProgress("lesson-gates", 1)
	s.MarkLessonCompleted("lesson-gates")

	rec := s.Record()
	assert.NotContains(t, rec.Lessons.InProgress, "lesson-gates")
	assert.Contains(t, rec.Lessons.Completed, "lesson-gates")
}

func TestRecordSimulationRun_NewTypeBonus(t *testing.T) {
	s := newTestStore(t)

	s.RecordSimulationRun("bugfix")
	assert.Equal(t, XPSimulatorRun+XPSimulatorNew, s.Record().Gamification.XP)

	s.RecordSimulationRun("bugfix")
	assert.Equal(t, 2*XPSimulatorRun+XPSimulatorNew, s.Record().Gamification.XP,
		"repeat type earns the run reward only")

	rec := s.Record()
	assert.Equal(t, 2, rec.Simulator.Runs)
	assert.Equal(t, []string{"bugfix"}, rec.Simulator.RequestTypesExplored)
}

func TestRecordSimulationRun_ExplorerAchievement(t *testing.T) {
	s := newTestStore(t)

	for _, rt := range []string{"greenfield", "brownfield", "frontend"} {
		assert.NotContains(t, s.RecordSimulationRun(rt), "simulator-explorer")
	}
	assert.Contains(t, s.RecordSimulationRun("bugfix"), "simulator-explorer")
}

func TestAchievements_UnlockOnceAndStay(t *testing.T) {
	s := newTestStore(t)

	unlocked := s.RecordQuizResult(20, 24, nil) // 83%
	assert.Contains(t, unlocked, "quiz-master")

	// A later weak run does not re-announce or revoke the unlock.
	unlocked = s.RecordQuizResult(5, 24, nil)
	assert.NotContains(t, unlocked, "quiz-master")
	assert.Contains(t, s.Record().Achievements.Unlocked, "quiz-master")
}

func TestCompletionist(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{
		"lesson-overview", "lesson-resolver", "lesson-inception",
		"lesson-construction", "lesson-gates", "lesson-operations",
	} {
		s.MarkLessonCompleted(id)
	}
	s.RecordQuizResult(20, 24, nil) // 83%, deliberately short of perfect
	s.RecordScenarioResult(9, 10, nil)
	for _, rt := range []string{"greenfield", "brownfield", "frontend"} {
		s.RecordSimulationRun(rt)
	}
	unlocked := s.RecordSimulationRun("bugfix")

	assert.Contains(t, unlocked, "completionist")
	assert.NotContains(t, s.Record().Achievements.Unlocked, "perfect-score",
		"completionist must not require a perfect quiz run")
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewStore(path, testTotals())
	s.RecordQuizResult(24, 24, nil)

	s.Reset()

	rec := s.Record()
	assert.Equal(t, 0, rec.Gamification.XP)
	assert.Empty(t, rec.Achievements.Unlocked)
	assert.False(t, rec.Quiz.Completed)

	// The reset is persisted, not just in memory.
	assert.Equal(t, 0, NewStore(path, testTotals()).Record().Gamification.XP)
}

func TestOverall(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 0.0, s.Overall().OverallPercent)

	s.MarkLessonCompleted("lesson-overview")
	s.MarkLessonCompleted("lesson-resolver")
	s.MarkLessonCompleted("lesson-gates") // 50% of 6
	s.RecordQuizResult(12, 24, nil)       // 50%
	s.RecordScenarioResult(5, 10, nil)    // 50%
	s.RecordSimulationRun("bugfix")
	s.RecordSimulationRun("frontend") // 50% of 4

	sum := s.Overall()
	assert.InDelta(t, 50.0, sum.LessonsPercent, 0.01)
	assert.InDelta(t, 50.0, sum.QuizPercent, 0.01)
	assert.InDelta(t, 50.0, sum.GatePercent, 0.01)
	assert.InDelta(t, 50.0, sum.SimulatorPercent, 0.01)
	assert.InDelta(t, 50.0, sum.OverallPercent, 0.01)
}

func TestOverall_UsesLastScoreNotBest(t *testing.T) {
	s := newTestStore(t)

	s.RecordQuizResult(24, 24, nil)
	s.RecordQuizResult(12, 24, nil)

	assert.InDelta(t, 50.0, s.Overall().QuizPercent, 0.01,
		"the dashboard shows current form, not the best run")
}
