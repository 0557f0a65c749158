package content

// JSON schema types for the embedded content bank. These mirror the on-disk
// shape; conversion to domain types happens after validation.

type stagesFile struct {
	Phases []phaseJSON `json:"phases"`
	Stages []stageJSON `json:"stages"`
}

type phaseJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Ritual string `json:"ritual,omitempty"`
}

type stageJSON struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Phase       string         `json:"phase"`
	Mandatory   bool           `json:"mandatory,omitempty"`
	Questions   []questionJSON `json:"questions,omitempty"`
	Artifacts   []string       `json:"artifacts,omitempty"`
	Gate        *gateJSON      `json:"gate,omitempty"`
}

type questionJSON struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type,omitempty"` // "single" (default) or "multi"
	Options []string `json:"options"`
}

type gateJSON struct {
	Name             string   `json:"name"`
	Criteria         []string `json:"criteria"`
	EvidenceRequired []string `json:"evidence_required"`
}

type policiesFile struct {
	Types        []requestTypeJSON `json:"types"`
	RiskProfiles []riskProfileJSON `json:"risk_profiles"`
	Constraints  []constraintJSON  `json:"constraints"`
}

type requestTypeJSON struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Stages      map[string]policyJSON  `json:"stages"`
}

type policyJSON struct {
	Execute string `json:"execute"` // execute | skip | conditional
	Reason  string `json:"reason,omitempty"`
}

type riskProfileJSON struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	StageModifiers map[string]modifierJSON `json:"stage_modifiers,omitempty"`
}

type constraintJSON struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	StageModifiers map[string]modifierJSON `json:"stage_modifiers,omitempty"`
}

type modifierJSON struct {
	ForceExecute bool `json:"force_execute"`
}

type quizFile struct {
	Questions []quizItemJSON `json:"questions"`
}

type quizItemJSON struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

type gatesFile struct {
	Scenarios []scenarioJSON `json:"scenarios"`
}

type scenarioJSON struct {
	ID        string        `json:"id"`
	Phase     string        `json:"phase"`
	Stage     string        `json:"stage"`
	Context   string        `json:"context"`
	AIPlan    string        `json:"ai_plan"`
	Decisions decisionsJSON `json:"decisions"`
	Evidence  []string      `json:"evidence_checklist"`
}

type decisionsJSON struct {
	CorrectAction  string   `json:"correct_action"`
	ValidReasons   []string `json:"valid_reasons"`
	InvalidReasons []string `json:"invalid_reasons"`
}

type lessonsFile struct {
	Lessons []lessonJSON `json:"lessons"`
}

type lessonJSON struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Sections    []sectionJSON `json:"sections"`
}

type sectionJSON struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type glossaryFile struct {
	Terms []termJSON `json:"terms"`
}

type termJSON struct {
	ID         string   `json:"id"`
	Term       string   `json:"term"`
	Definition string   `json:"definition"`
	Related    []string `json:"related,omitempty"`
}

type simQuestionsFile struct {
	Questions []simQuestionJSON `json:"questions"`
}

type simQuestionJSON struct {
	ID        string          `json:"id"`
	Prompt    string          `json:"prompt"`
	Principle string          `json:"principle"`
	Options   []simOptionJSON `json:"options"`
}

type simOptionJSON struct {
	ID     string     `json:"id"`
	Label  string     `json:"label"`
	Effect effectJSON `json:"effect"`
}

type effectJSON struct {
	RequestType    string   `json:"request_type,omitempty"`
	Risk           string   `json:"risk,omitempty"`
	AddConstraints []string `json:"add_constraints,omitempty"`
	Explanation    string   `json:"explanation"`
}
