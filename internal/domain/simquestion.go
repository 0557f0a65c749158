package domain

// SimQuestion drives the question-based simulator surface. Each answer
// carries a configuration effect; the workflow itself is always recomputed
// by the resolver from the accumulated configuration, so the interactive
// surface can never diverge from the selector surface.
type SimQuestion struct {
	ID        string
	Prompt    string
	Principle string
	Options   []SimOption
}

type SimOption struct {
	ID     string
	Label  string
	Effect ConfigEffect
}

// ConfigEffect is the configuration delta applied when an option is chosen.
// Zero-value fields leave the corresponding part of the configuration alone.
type ConfigEffect struct {
	RequestType    string    // set the request type
	Risk           RiskLevel // set the risk profile
	AddConstraints []string  // add to the constraint set
	Explanation    string
}
