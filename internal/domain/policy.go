package domain

// RequestType categorizes the engineering work being simulated and carries
// the base execution policy for every stage.
type RequestType struct {
	ID          string
	Name        string
	Description string
	// Policies maps stage id -> base policy. Every request type is expected
	// to cover every stage; a missing entry resolves as conditional.
	Policies map[string]StagePolicy
}

// StagePolicy is the per-request-type base policy for one stage.
type StagePolicy struct {
	Status StageStatus
	Reason string
}

// StageModifier upgrades a stage toward execution. There is deliberately no
// force-skip polarity: modifiers only ever promote.
type StageModifier struct {
	ForceExecute bool
}

// RiskProfile is a severity tier that can force additional stages to run.
type RiskProfile struct {
	ID          RiskLevel
	Name        string
	Description string
	Modifiers   map[string]StageModifier
}

// Constraint is an independent condition (e.g. regulated) that can force
// additional stages to run. Multiple constraints compose as a set.
type Constraint struct {
	ID          string
	Name        string
	Description string
	Modifiers   map[string]StageModifier
}
