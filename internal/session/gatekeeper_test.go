package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dojo/internal/domain"
)

type fakeGateRecorder struct {
	calls  int
	passed int
	total  int
	missed []string
}

func (f *fakeGateRecorder) RecordScenarioResult(passed, total int, missed []string) []string {
	f.calls++
	f.passed = passed
	f.total = total
	f.missed = missed
	return nil
}

func gateBank() []domain.Scenario {
	return []domain.Scenario{
		{
			ID:             "s1",
			CorrectAction:  domain.DecisionReject,
			ValidReasons:   []string{"v1", "v2"},
			InvalidReasons: []string{"i1"},
		},
		{
			ID:             "s2",
			CorrectAction:  domain.DecisionApprove,
			ValidReasons:   []string{"v1"},
			InvalidReasons: []string{"i1", "i2"},
		},
	}
}

// selectReasons toggles reasons by validity, returning how many were selected.
func selectReasons(s *GateSession, valid, invalid int) {
	sc, _ := s.Current()
	for i, r := range sc.Reasons {
		if r.Valid && valid > 0 {
			s.ToggleReason(i)
			valid--
		}
		if !r.Valid && invalid > 0 {
			s.ToggleReason(i)
			invalid--
		}
	}
}

func TestGateSession_PassRequiresDecisionAndReasoning(t *testing.T) {
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(3)), nil)
	sc, pos := s.Current()
	require.Equal(t, 1, pos)
	require.Equal(t, GateDeciding, s.Phase())

	s.Decide(sc.Scenario.CorrectAction)
	require.Equal(t, GateChoosingReasons, s.Phase())
	selectReasons(s, 2, 0)

	out, ok := s.Submit()
	require.True(t, ok)
	assert.True(t, out.DecisionCorrect)
	assert.True(t, out.Passed)
	assert.Equal(t, GateFeedback, s.Phase())
}

func TestGateSession_WrongDecisionFailsDespiteGoodReasons(t *testing.T) {
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(3)), nil)
	sc, _ := s.Current()

	wrong := domain.DecisionApprove
	if sc.Scenario.CorrectAction == domain.DecisionApprove {
		wrong = domain.DecisionReject
	}
	s.Decide(wrong)
	selectReasons(s, 2, 0)

	out, ok := s.Submit()
	require.True(t, ok)
	assert.False(t, out.DecisionCorrect)
	assert.False(t, out.Passed)
}

func TestGateSession_TiedReasonsFail(t *testing.T) {
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(3)), nil)
	sc, _ := s.Current()

	s.Decide(sc.Scenario.CorrectAction)
	selectReasons(s, 1, 1)

	out, ok := s.Submit()
	require.True(t, ok)
	assert.True(t, out.DecisionCorrect)
	assert.Equal(t, 1, out.ValidSelected)
	assert.Equal(t, 1, out.InvalidSelected)
	assert.False(t, out.Passed, "valid must strictly outnumber invalid")
}

func TestGateSession_NoReasonsSelectedFails(t *testing.T) {
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(3)), nil)
	sc, _ := s.Current()

	s.Decide(sc.Scenario.CorrectAction)
	out, ok := s.Submit()
	require.True(t, ok)
	assert.False(t, out.Passed, "an unjustified decision never passes")
}

func TestGateSession_ShuffleMixesReasonsWithValidity(t *testing.T) {
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(9)), nil)
	sc, _ := s.Current()

	valid := 0
	for _, r := range sc.Reasons {
		if r.Valid {
			valid++
		}
	}
	assert.Equal(t, len(sc.Scenario.ValidReasons), valid)
	assert.Len(t, sc.Reasons, len(sc.Scenario.ValidReasons)+len(sc.Scenario.InvalidReasons))
}

func TestGateSession_SelectionResetsBetweenScenarios(t *testing.T) {
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(5)), nil)

	sc, _ := s.Current()
	s.Decide(sc.Scenario.CorrectAction)
	s.ToggleReason(0)
	_, ok := s.Submit()
	require.True(t, ok)
	s.Next()

	require.Equal(t, GateDeciding, s.Phase())
	assert.False(t, s.ReasonSelected(0), "selections must not leak across scenarios")
	assert.Equal(t, domain.Decision(""), s.Decision())
}

func TestGateSession_RecordsOnceOnFinish(t *testing.T) {
	rec := &fakeGateRecorder{}
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(5)), rec)

	for s.Phase() != GateDone {
		sc, _ := s.Current()
		s.Decide(sc.Scenario.CorrectAction)
		selectReasons(s, 1, 0)
		_, ok := s.Submit()
		require.True(t, ok)
		s.Next()
	}

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, 2, rec.passed)
	assert.Equal(t, 2, rec.total)
	assert.Empty(t, rec.missed)

	res := s.Results()
	assert.Equal(t, 2, res.Passed)
	assert.Len(t, res.Outcomes, 2)
}

func TestGateSession_ReportsMissedScenarioIDs(t *testing.T) {
	rec := &fakeGateRecorder{}
	s := NewGateSession(gateBank(), rand.New(rand.NewSource(5)), rec)

	// Fail every scenario by submitting without reasons.
	var wantIDs []string
	for s.Phase() != GateDone {
		sc, _ := s.Current()
		wantIDs = append(wantIDs, sc.Scenario.ID)
		s.Decide(sc.Scenario.CorrectAction)
		_, ok := s.Submit()
		require.True(t, ok)
		s.Next()
	}

	assert.Equal(t, 0, rec.passed)
	assert.Equal(t, wantIDs, rec.missed)
	assert.Equal(t, wantIDs, s.Results().Missed)
}
