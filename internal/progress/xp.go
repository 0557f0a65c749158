package progress

// XP rewards per event.
const (
	XPLessonSection  = 10
	XPLessonComplete = 100
	XPQuizCorrect    = 25
	XPQuizComplete   = 50
	XPQuizPerfect    = 200
	XPGateCorrect    = 30
	XPGateComplete   = 75
	XPSimulatorRun   = 20
	XPSimulatorNew   = 50
)

type levelThreshold struct {
	XP    int
	Title string
}

// levelThresholds must stay sorted by XP ascending. Level is the 1-based
// index of the highest threshold reached.
var levelThresholds = []levelThreshold{
	{0, "Novice"},
	{100, "Apprentice"},
	{300, "Practitioner"},
	{600, "Specialist"},
	{1000, "Expert"},
	{1500, "Master"},
	{2500, "Grandmaster"},
	{4000, "Champion"},
}

// LevelForXP returns the 1-based level for an XP total.
func LevelForXP(xp int) int {
	level := 1
	for i, t := range levelThresholds {
		if xp >= t.XP {
			level = i + 1
		}
	}
	return level
}

// LevelTitle returns the title for an XP total.
func LevelTitle(xp int) string {
	return levelThresholds[LevelForXP(xp)-1].Title
}

// XPToNextLevel returns the XP remaining until the next level, or 0 at the
// top level.
func XPToNextLevel(xp int) int {
	level := LevelForXP(xp)
	if level >= len(levelThresholds) {
		return 0
	}
	return levelThresholds[level].XP - xp
}

func (r *Record) awardXP(amount int) {
	r.Gamification.XP += amount
	r.Gamification.Level = LevelForXP(r.Gamification.XP)
	r.Gamification.Title = LevelTitle(r.Gamification.XP)
}
