package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Store wraps the progress record with load/save and the mutation API.
// Mutations persist immediately; a failed save is tolerated silently so a
// read-only home directory degrades to in-memory progress instead of
// breaking the session.
type Store struct {
	path   string
	totals Totals
	rec    *Record
	now    func() time.Time
}

// NewStore loads the record at path, or starts a fresh one when the file is
// missing, unreadable, or carries a different schema version.
func NewStore(path string, totals Totals) *Store {
	s := &Store{path: path, totals: totals, now: time.Now}
	s.rec = s.load()
	// Content totals may have grown since the record was written.
	s.rec.Lessons.TotalAvailable = totals.Lessons
	return s
}

func (s *Store) load() *Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return newRecord(s.now(), s.totals)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Schema != SchemaVersion {
		return newRecord(s.now(), s.totals)
	}
	if rec.Lessons.InProgress == nil {
		rec.Lessons.InProgress = make(map[string]LessonProgress)
	}
	return &rec
}

func (s *Store) save() {
	s.rec.LastUpdated = s.now()
	data, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}

// Record returns the current record for read-only display.
func (s *Store) Record() Record { return *s.rec }

// Reset discards all progress and starts a fresh record.
func (s *Store) Reset() {
	s.rec = newRecord(s.now(), s.totals)
	s.save()
}

// ── lessons ──────────────────────────────────────────────────────────────────

// MarkLessonStarted records that a lesson was opened, stamping the start
// time on first open. Reopening keeps the original entry.
func (s *Store) MarkLessonStarted(id string) {
	if s.rec.lessonCompleted(id) {
		return
	}
	if _, ok := s.rec.Lessons.InProgress[id]; !ok {
		s.rec.Lessons.InProgress[id] = LessonProgress{StartedAt: s.now()}
		s.save()
	}
}

// UpdateLessonProgress records the last section viewed, in either
// direction. Section XP is awarded only for ground beyond the furthest
// section ever reached, so paging back and forth earns nothing extra.
func (s *Store) UpdateLessonProgress(id string, section int) []string {
	if s.rec.lessonCompleted(id) {
		return nil
	}
	lp, ok := s.rec.Lessons.InProgress[id]
	if !ok {
		lp = LessonProgress{StartedAt: s.now()}
	}
	lp.LastSection = section

	var unlocked []string
	if section > lp.Furthest {
		s.rec.awardXP((section - lp.Furthest) * XPLessonSection)
		lp.Furthest = section
		unlocked = s.rec.checkAchievements(s.totals)
	}
	s.rec.Lessons.InProgress[id] = lp
	s.save()
	return unlocked
}

// MarkLessonCompleted records completion and awards lesson XP. Repeat
// completions of the same lesson award nothing.
func (s *Store) MarkLessonCompleted(id string) []string {
	if s.rec.lessonCompleted(id) {
		return nil
	}
	s.rec.Lessons.Completed = append(s.rec.Lessons.Completed, id)
	sort.Strings(s.rec.Lessons.Completed)
	delete(s.rec.Lessons.InProgress, id)
	s.rec.awardXP(XPLessonComplete)
	unlocked := s.rec.checkAchievements(s.totals)
	s.save()
	return unlocked
}

// ── quiz and gatekeeper ──────────────────────────────────────────────────────

// RecordQuizResult records a completed quiz run. BestScore only moves up;
// LastScore always reflects this run. The missed item ids replace the
// previous run's set so review always shows current mistakes.
func (s *Store) RecordQuizResult(correct, total int, missed []string) []string {
	st := &s.rec.Quiz
	st.Completed = true
	st.Attempts++
	st.LastScore = correct
	st.Total = total
	st.Missed = append([]string(nil), missed...)
	if correct > st.BestScore {
		st.BestScore = correct
	}

	xp := correct*XPQuizCorrect + XPQuizComplete
	if total > 0 && correct == total {
		xp += XPQuizPerfect
	}
	s.rec.awardXP(xp)

	unlocked := s.rec.checkAchievements(s.totals)
	s.save()
	return unlocked
}

// RecordScenarioResult records a completed gatekeeper drill. Missed
// scenario ids replace the previous run's set.
func (s *Store) RecordScenarioResult(passed, total int, missed []string) []string {
	st := &s.rec.Gatekeeper
	st.Completed = true
	st.Attempts++
	st.LastScore = passed
	st.Total = total
	st.Missed = append([]string(nil), missed...)
	if passed > st.BestScore {
		st.BestScore = passed
	}

	s.rec.awardXP(passed*XPGateCorrect + XPGateComplete)

	unlocked := s.rec.checkAchievements(s.totals)
	s.save()
	return unlocked
}

// ── simulator ────────────────────────────────────────────────────────────────

// RecordSimulationRun records a simulator run for the given request type.
// First-time exploration of a type earns bonus XP.
func (s *Store) RecordSimulationRun(requestType string) []string {
	s.rec.Simulator.Runs++
	s.rec.Simulator.LastRun = s.now()

	xp := XPSimulatorRun
	if requestType != "" && !s.rec.typeExplored(requestType) {
		s.rec.Simulator.RequestTypesExplored = append(s.rec.Simulator.RequestTypesExplored, requestType)
		sort.Strings(s.rec.Simulator.RequestTypesExplored)
		xp += XPSimulatorNew
	}
	s.rec.awardXP(xp)

	unlocked := s.rec.checkAchievements(s.totals)
	s.save()
	return unlocked
}

// ── summary ──────────────────────────────────────────────────────────────────

// Summary is the dashboard view of the record.
type Summary struct {
	LessonsPercent   float64
	QuizPercent      float64
	GatePercent      float64
	SimulatorPercent float64
	OverallPercent   float64
	XP               int
	Level            int
	Title            string
	XPToNext         int
	Unlocked         int
	Achievements     int
}

// Overall computes completion percentages. Quiz and gatekeeper use the last
// score so the dashboard reflects current form; achievements key off best
// scores instead.
func (s *Store) Overall() Summary {
	r := s.rec
	sum := Summary{
		XP:           r.Gamification.XP,
		Level:        r.Gamification.Level,
		Title:        r.Gamification.Title,
		XPToNext:     XPToNextLevel(r.Gamification.XP),
		Unlocked:     len(r.Achievements.Unlocked),
		Achievements: len(Achievements),
	}
	if s.totals.Lessons > 0 {
		sum.LessonsPercent = 100 * float64(len(r.Lessons.Completed)) / float64(s.totals.Lessons)
	}
	if r.Quiz.Total > 0 {
		sum.QuizPercent = 100 * float64(r.Quiz.LastScore) / float64(r.Quiz.Total)
	}
	if r.Gatekeeper.Total > 0 {
		sum.GatePercent = 100 * float64(r.Gatekeeper.LastScore) / float64(r.Gatekeeper.Total)
	}
	if s.totals.RequestTypes > 0 {
		sum.SimulatorPercent = 100 * float64(len(r.Simulator.RequestTypesExplored)) / float64(s.totals.RequestTypes)
	}
	sum.OverallPercent = (sum.LessonsPercent + sum.QuizPercent + sum.GatePercent + sum.SimulatorPercent) / 4
	return sum
}
