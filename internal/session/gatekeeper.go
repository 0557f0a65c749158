package session

import (
	"math/rand"

	"github.com/alexanderramin/dojo/internal/domain"
)

// GateRecorder persists a finished gatekeeper drill, including the ids of
// the scenarios missed, and reports newly unlocked achievement ids.
type GateRecorder interface {
	RecordScenarioResult(passed, total int, missed []string) []string
}

// GatePhase is the per-scenario state of the drill.
type GatePhase int

const (
	// GateDeciding: the learner reads the scenario and picks approve or reject.
	GateDeciding GatePhase = iota
	// GateChoosingReasons: the learner selects the reasons behind the decision.
	GateChoosingReasons
	// GateFeedback: the graded outcome is on screen.
	GateFeedback
	// GateDone: all scenarios are graded.
	GateDone
)

// PresentedReason is one selectable justification. Valid and invalid reasons
// are mixed in shuffled order so position carries no signal.
type PresentedReason struct {
	Text  string
	Valid bool
}

// PresentedScenario is a scenario with its reason list in display order.
type PresentedScenario struct {
	Scenario domain.Scenario
	Reasons  []PresentedReason
}

// ScenarioOutcome is the grade for one scenario. Passing requires the
// correct decision backed by mostly valid reasoning: strictly more valid
// than invalid reasons selected.
type ScenarioOutcome struct {
	Decision        domain.Decision
	DecisionCorrect bool
	ValidSelected   int
	InvalidSelected int
	Passed          bool
}

// GateResults summarizes a finished drill.
type GateResults struct {
	Passed   int
	Total    int
	Outcomes []ScenarioOutcome
	Missed   []string
	Unlocked []string
}

// GateSession runs the gatekeeper drill: for each scenario the learner
// decides approve/reject, justifies the call, and gets graded feedback.
type GateSession struct {
	rng      *rand.Rand
	recorder GateRecorder

	scenarios []PresentedScenario
	cursor    int
	phase     GatePhase

	decision domain.Decision
	selected map[int]bool
	outcomes []ScenarioOutcome
	passed   int
	missed   []string
	recorded bool
	unlocked []string
}

// NewGateSession builds a drill over the full scenario bank, shuffling
// scenario order and each scenario's reason list.
func NewGateSession(bank []domain.Scenario, rng *rand.Rand, recorder GateRecorder) *GateSession {
	s := &GateSession{rng: rng, recorder: recorder}
	order := rng.Perm(len(bank))
	s.scenarios = make([]PresentedScenario, 0, len(bank))
	for _, i := range order {
		s.scenarios = append(s.scenarios, presentScenario(bank[i], rng))
	}
	s.selected = make(map[int]bool)
	if len(s.scenarios) == 0 {
		s.phase = GateDone
	}
	return s
}

func presentScenario(sc domain.Scenario, rng *rand.Rand) PresentedScenario {
	reasons := make([]PresentedReason, 0, len(sc.ValidReasons)+len(sc.InvalidReasons))
	for _, r := range sc.ValidReasons {
		reasons = append(reasons, PresentedReason{Text: r, Valid: true})
	}
	for _, r := range sc.InvalidReasons {
		reasons = append(reasons, PresentedReason{Text: r})
	}
	rng.Shuffle(len(reasons), func(i, j int) {
		reasons[i], reasons[j] = reasons[j], reasons[i]
	})
	return PresentedScenario{Scenario: sc, Reasons: reasons}
}

// Phase returns the current drill phase.
func (s *GateSession) Phase() GatePhase { return s.phase }

// Current returns the scenario under the cursor and its 1-based position.
func (s *GateSession) Current() (PresentedScenario, int) {
	if s.cursor >= len(s.scenarios) {
		return PresentedScenario{}, 0
	}
	return s.scenarios[s.cursor], s.cursor + 1
}

// Total returns the number of scenarios in this drill.
func (s *GateSession) Total() int { return len(s.scenarios) }

// Decide records the approve/reject call and moves to reason selection.
func (s *GateSession) Decide(d domain.Decision) {
	if s.phase != GateDeciding {
		return
	}
	s.decision = d
	s.phase = GateChoosingReasons
}

// Decision returns the call made for the current scenario.
func (s *GateSession) Decision() domain.Decision { return s.decision }

// ToggleReason flips the selection of a reason by display index.
func (s *GateSession) ToggleReason(i int) {
	if s.phase != GateChoosingReasons {
		return
	}
	sc, _ := s.Current()
	if i < 0 || i >= len(sc.Reasons) {
		return
	}
	s.selected[i] = !s.selected[i]
}

// ReasonSelected reports whether the reason at a display index is selected.
func (s *GateSession) ReasonSelected(i int) bool { return s.selected[i] }

// Submit grades the current scenario and moves to feedback.
func (s *GateSession) Submit() (ScenarioOutcome, bool) {
	if s.phase != GateChoosingReasons {
		return ScenarioOutcome{}, false
	}
	sc, _ := s.Current()
	out := ScenarioOutcome{
		Decision:        s.decision,
		DecisionCorrect: s.decision == sc.Scenario.CorrectAction,
	}
	for i, r := range sc.Reasons {
		if !s.selected[i] {
			continue
		}
		if r.Valid {
			out.ValidSelected++
		} else {
			out.InvalidSelected++
		}
	}
	out.Passed = out.DecisionCorrect && out.ValidSelected > out.InvalidSelected
	if out.Passed {
		s.passed++
	} else {
		s.missed = append(s.missed, sc.Scenario.ID)
	}
	s.outcomes = append(s.outcomes, out)
	s.phase = GateFeedback
	return out, true
}

// LastOutcome returns the grade shown during feedback.
func (s *GateSession) LastOutcome() ScenarioOutcome {
	if len(s.outcomes) == 0 {
		return ScenarioOutcome{}
	}
	return s.outcomes[len(s.outcomes)-1]
}

// Next advances past a graded scenario. Advancing past the final scenario
// finishes the drill and records the result.
func (s *GateSession) Next() {
	if s.phase != GateFeedback {
		return
	}
	s.cursor++
	s.selected = make(map[int]bool)
	s.decision = ""
	if s.cursor >= len(s.scenarios) {
		s.finish()
		return
	}
	s.phase = GateDeciding
}

func (s *GateSession) finish() {
	s.phase = GateDone
	if s.recorded || s.recorder == nil {
		return
	}
	s.recorded = true
	s.unlocked = s.recorder.RecordScenarioResult(s.passed, len(s.scenarios), s.missed)
}

// Results returns the final tally. Valid once the phase is GateDone.
func (s *GateSession) Results() GateResults {
	return GateResults{
		Passed:   s.passed,
		Total:    len(s.scenarios),
		Outcomes: s.outcomes,
		Missed:   s.missed,
		Unlocked: s.unlocked,
	}
}
