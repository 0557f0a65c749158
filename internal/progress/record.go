// Package progress owns the learner's persistent progress record: activity
// stats, lesson state, achievements, and gamification. The record lives in a
// single JSON document; reads and writes go through Store.
package progress

import "time"

// SchemaVersion tags the on-disk record. A file with a different schema is
// discarded and replaced with a fresh record.
const SchemaVersion = "progress-v1"

// Record is the full persisted progress document.
type Record struct {
	Schema       string            `json:"$schema"`
	FirstOpened  time.Time         `json:"first_opened"`
	LastUpdated  time.Time         `json:"last_updated"`
	Quiz         ActivityStats     `json:"quiz"`
	Gatekeeper   ActivityStats     `json:"gatekeeper"`
	Lessons      LessonStats       `json:"lessons"`
	Simulator    SimulatorStats    `json:"simulator"`
	Achievements AchievementState  `json:"achievements"`
	Gamification GamificationState `json:"gamification"`
}

// ActivityStats tracks a scored activity (quiz or gatekeeper drill).
// LastScore/Total reflect the most recent completed run; BestScore is the
// highest score ever achieved and never decreases. Missed holds the item
// ids gotten wrong on the latest run; each run replaces the set.
type ActivityStats struct {
	Completed bool     `json:"completed"`
	Attempts  int      `json:"attempts"`
	LastScore int      `json:"last_score"`
	Total     int      `json:"total"`
	BestScore int      `json:"best_score"`
	Missed    []string `json:"missed,omitempty"`
}

// LessonStats tracks lesson completion. InProgress maps lesson id to the
// reader's position in lessons opened but not yet finished.
type LessonStats struct {
	Completed      []string                  `json:"completed"`
	InProgress     map[string]LessonProgress `json:"in_progress"`
	TotalAvailable int                       `json:"total_available"`
}

// LessonProgress is the resumable state of an open lesson. LastSection
// follows the reader in both directions; Furthest only grows and bounds
// section XP.
type LessonProgress struct {
	StartedAt   time.Time `json:"started_at"`
	LastSection int       `json:"last_section"`
	Furthest    int       `json:"furthest_section"`
}

// SimulatorStats tracks workflow simulator usage.
type SimulatorStats struct {
	Runs                 int       `json:"runs"`
	RequestTypesExplored []string  `json:"request_types_explored"`
	LastRun              time.Time `json:"last_run,omitempty"`
}

// AchievementState lists unlocked achievement ids. Unlocks are permanent.
type AchievementState struct {
	Unlocked []string `json:"unlocked"`
}

// GamificationState carries experience points and the derived level.
type GamificationState struct {
	XP    int    `json:"xp"`
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Totals describes the available content, used to initialize a fresh record
// and to compute completion percentages.
type Totals struct {
	Lessons      int
	QuizItems    int
	Scenarios    int
	RequestTypes int
}

func newRecord(now time.Time, totals Totals) *Record {
	return &Record{
		Schema:      SchemaVersion,
		FirstOpened: now,
		LastUpdated: now,
		Lessons: LessonStats{
			InProgress:     make(map[string]LessonProgress),
			TotalAvailable: totals.Lessons,
		},
		Gamification: GamificationState{Level: 1, Title: LevelTitle(0)},
	}
}

func (r *Record) lessonCompleted(id string) bool {
	for _, c := range r.Lessons.Completed {
		if c == id {
			return true
		}
	}
	return false
}

func (r *Record) typeExplored(id string) bool {
	for _, t := range r.Simulator.RequestTypesExplored {
		if t == id {
			return true
		}
	}
	return false
}

func (r *Record) achievementUnlocked(id string) bool {
	for _, a := range r.Achievements.Unlocked {
		if a == id {
			return true
		}
	}
	return false
}
