package domain

type Phase string

const (
	PhaseInception    Phase = "inception"
	PhaseConstruction Phase = "construction"
	PhaseOperations   Phase = "operations"
)

// Phases lists the fixed phase order used for grouping stages.
var Phases = []Phase{PhaseInception, PhaseConstruction, PhaseOperations}

type StageStatus string

const (
	StatusExecute     StageStatus = "execute"
	StatusSkip        StageStatus = "skip"
	StatusConditional StageStatus = "conditional"
)

// ValidStageStatuses is the canonical set of accepted policy strings.
var ValidStageStatuses = map[string]bool{
	"execute": true, "skip": true, "conditional": true,
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type AttemptKind string

const (
	AttemptQuiz       AttemptKind = "quiz"
	AttemptGatekeeper AttemptKind = "gatekeeper"
	AttemptSimulator  AttemptKind = "simulator"
)
