package progress

// Achievement is a named milestone with a predicate over the record.
// Predicates are monotonic: once true they stay true, so unlocks never
// need revoking.
type Achievement struct {
	ID          string
	Name        string
	Description string
	check       func(r *Record, t Totals) bool
}

// The predicates completionist depends on are named functions rather than
// inline closures, so its check never has to walk the Achievements slice.
func scholarDone(r *Record, t Totals) bool {
	return t.Lessons > 0 && len(r.Lessons.Completed) >= t.Lessons
}

func quizMasterDone(r *Record, t Totals) bool {
	return t.QuizItems > 0 && r.Quiz.BestScore*100 >= t.QuizItems*80
}

func gatekeeperDone(r *Record, t Totals) bool {
	return t.Scenarios > 0 && r.Gatekeeper.BestScore*100 >= t.Scenarios*80
}

func explorerDone(r *Record, t Totals) bool {
	return t.RequestTypes > 0 && len(r.Simulator.RequestTypesExplored) >= t.RequestTypes
}

// Achievements lists every unlockable milestone, in display order.
var Achievements = []Achievement{
	{
		ID:          "first-steps",
		Name:        "First Steps",
		Description: "Complete your first lesson",
		check: func(r *Record, _ Totals) bool {
			return len(r.Lessons.Completed) >= 1
		},
	},
	{
		ID:          "scholar",
		Name:        "Scholar",
		Description: "Complete every lesson",
		check:       scholarDone,
	},
	{
		ID:          "quiz-master",
		Name:        "Quiz Master",
		Description: "Score 80% or higher on the quiz",
		check:       quizMasterDone,
	},
	{
		ID:          "perfect-score",
		Name:        "Perfect Score",
		Description: "Answer every quiz question correctly in one run",
		check: func(r *Record, t Totals) bool {
			return t.QuizItems > 0 && r.Quiz.BestScore >= t.QuizItems
		},
	},
	{
		ID:          "gatekeeper",
		Name:        "Gatekeeper",
		Description: "Pass 80% of gate scenarios in one drill",
		check:       gatekeeperDone,
	},
	{
		ID:          "simulator-explorer",
		Name:        "Simulator Explorer",
		Description: "Simulate a workflow for every request type",
		check:       explorerDone,
	},
	{
		ID:          "completionist",
		Name:        "Completionist",
		Description: "Earn Scholar, Quiz Master, Gatekeeper, and Simulator Explorer",
		check: func(r *Record, t Totals) bool {
			return scholarDone(r, t) && quizMasterDone(r, t) &&
				gatekeeperDone(r, t) && explorerDone(r, t)
		},
	},
}

// AchievementByID looks up an achievement definition.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// checkAchievements evaluates all predicates and appends newly unlocked ids,
// returning them for announcement. Already-unlocked achievements are kept
// even if content totals change underneath them.
func (r *Record) checkAchievements(t Totals) []string {
	var unlocked []string
	for _, a := range Achievements {
		if r.achievementUnlocked(a.ID) {
			continue
		}
		if a.check(r, t) {
			r.Achievements.Unlocked = append(r.Achievements.Unlocked, a.ID)
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
