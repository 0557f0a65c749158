package domain

// QuizItem is a single multiple-choice question. Correct indexes into
// Options and never changes; only display order is shuffled per presentation.
type QuizItem struct {
	ID          string
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// Scenario is one gatekeeper exercise: an AI-proposed plan the learner must
// approve or reject, justified by reasons picked from a combined pool.
type Scenario struct {
	ID             string
	Phase          string
	Stage          string
	Context        string
	Plan           string
	CorrectAction  Decision
	ValidReasons   []string
	InvalidReasons []string
	Evidence       []string
}
