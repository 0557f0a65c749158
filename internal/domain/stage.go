package domain

// Stage is one unit of methodology work. Stages are loaded once from the
// content store and treated as immutable for the process lifetime.
type Stage struct {
	ID          string
	Name        string
	Description string
	Phase       Phase
	// Mandatory stages execute for every configuration, overriding
	// request-type policy and all modifiers.
	Mandatory bool
	Questions []StageQuestion
	Artifacts []string
	Gate      *Gate
}

// StageQuestion is a structured question asked while a stage runs.
// It is display material for the simulation surfaces only.
type StageQuestion struct {
	ID      string
	Text    string
	Multi   bool // select-multiple vs select-one
	Options []string
}

// Gate is the approval checkpoint attached to a stage.
type Gate struct {
	Name             string
	Criteria         []string
	EvidenceRequired []string
}

// PhaseInfo carries display metadata for a phase.
type PhaseInfo struct {
	ID     Phase
	Name   string
	Ritual string
}
