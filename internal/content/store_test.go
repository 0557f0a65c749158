package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dojo/internal/domain"
	"github.com/alexanderramin/dojo/internal/workflow"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	s, warnings, err := Load()
	require.NoError(t, err)
	assert.Empty(t, warnings, "shipped content should have full policy coverage")
	return s
}

func TestLoad_BankSizes(t *testing.T) {
	s := loadStore(t)

	assert.Len(t, s.Phases(), 3)
	assert.Len(t, s.Stages(), 14)
	assert.Len(t, s.RequestTypes(), 4)
	assert.Len(t, s.RiskProfiles(), 3)
	assert.Len(t, s.Constraints(), 3)
	assert.Len(t, s.QuizBank(), 24)
	assert.Len(t, s.ScenarioBank(), 10)
	assert.Len(t, s.LessonCatalog(), 6)
	assert.Len(t, s.GlossaryTerms(), 22)
	assert.Len(t, s.SimQuestions(), 5)
}

func TestLoad_Lookups(t *testing.T) {
	s := loadStore(t)

	stage, ok := s.Stage("reverse-engineering")
	require.True(t, ok)
	assert.Equal(t, domain.PhaseInception, stage.Phase)
	assert.False(t, stage.Mandatory)
	assert.NotNil(t, stage.Gate)

	_, ok = s.Stage("nope")
	assert.False(t, ok)

	rt, ok := s.RequestType("bugfix")
	require.True(t, ok)
	assert.Len(t, rt.Policies, len(s.Stages()), "every stage gets a policy entry")

	rp, ok := s.RiskProfile(domain.RiskHigh)
	require.True(t, ok)
	assert.True(t, rp.Modifiers["nfr-requirements"].ForceExecute)

	lesson, ok := s.Lesson("lesson-overview")
	require.True(t, ok)
	assert.NotEmpty(t, lesson.Sections)
}

func TestLoad_StagesGroupedByPhaseOrder(t *testing.T) {
	s := loadStore(t)

	// Stages appear in phase order: all inception before construction
	// before operations.
	rank := map[domain.Phase]int{
		domain.PhaseInception:    0,
		domain.PhaseConstruction: 1,
		domain.PhaseOperations:   2,
	}
	prev := 0
	for _, st := range s.Stages() {
		r, ok := rank[st.Phase]
		require.True(t, ok, "stage %s has unknown phase %s", st.ID, st.Phase)
		assert.GreaterOrEqual(t, r, prev, "stage %s out of phase order", st.ID)
		prev = r
	}
}

func TestLoad_SimQuestionEffectsReferToRealIDs(t *testing.T) {
	s := loadStore(t)

	types := make(map[string]bool)
	for _, rt := range s.RequestTypes() {
		types[rt.ID] = true
	}
	constraints := make(map[string]bool)
	for _, c := range s.Constraints() {
		constraints[c.ID] = true
	}

	for _, q := range s.SimQuestions() {
		for _, opt := range q.Options {
			if opt.Effect.RequestType != "" {
				assert.True(t, types[opt.Effect.RequestType],
					"question %s option %s names unknown type %s", q.ID, opt.ID, opt.Effect.RequestType)
			}
			if opt.Effect.Risk != "" {
				_, ok := s.RiskProfile(opt.Effect.Risk)
				assert.True(t, ok, "question %s option %s names unknown risk %s", q.ID, opt.ID, opt.Effect.Risk)
			}
			for _, id := range opt.Effect.AddConstraints {
				assert.True(t, constraints[id],
					"question %s option %s names unknown constraint %s", q.ID, opt.ID, id)
			}
		}
	}
}

// End-to-end over the shipped policy table: the canonical configurations
// resolve the way the lessons teach them.
func TestShippedPolicies_ResolveAsTaught(t *testing.T) {
	s := loadStore(t)
	table := workflow.NewTable(s.Stages(), s.RequestTypes(), s.RiskProfiles(), s.Constraints())

	t.Run("bugfix low risk", func(t *testing.T) {
		r, err := workflow.Resolve(table, workflow.Selection{RequestType: "bugfix", RiskProfile: domain.RiskLow})
		require.NoError(t, err)

		d, _ := r.Decision("reverse-engineering")
		assert.Equal(t, domain.StatusExecute, d.Status)
		d, _ = r.Decision("application-design")
		assert.Equal(t, domain.StatusSkip, d.Status)
		d, _ = r.Decision("nfr-requirements")
		assert.Equal(t, domain.StatusSkip, d.Status)
	})

	t.Run("bugfix regulated", func(t *testing.T) {
		r, err := workflow.Resolve(table, workflow.Selection{
			RequestType: "bugfix",
			RiskProfile: domain.RiskLow,
			Constraints: []string{"regulated"},
		})
		require.NoError(t, err)

		d, _ := r.Decision("nfr-requirements")
		assert.Equal(t, domain.StatusExecute, d.Status, "compliance forces the NFR stage")
	})

	t.Run("frontend security-critical", func(t *testing.T) {
		r, err := workflow.Resolve(table, workflow.Selection{
			RequestType: "frontend",
			RiskProfile: domain.RiskLow,
			Constraints: []string{"security-critical"},
		})
		require.NoError(t, err)

		for _, id := range []string{"nfr-requirements", "nfr-design"} {
			d, _ := r.Decision(id)
			assert.Equal(t, domain.StatusExecute, d.Status, id)
		}
	})

	t.Run("high risk forces the NFR set", func(t *testing.T) {
		r, err := workflow.Resolve(table, workflow.Selection{RequestType: "greenfield", RiskProfile: domain.RiskHigh})
		require.NoError(t, err)

		for _, id := range []string{"nfr-requirements", "nfr-design", "infrastructure-design", "operations"} {
			d, _ := r.Decision(id)
			assert.Equal(t, domain.StatusExecute, d.Status, id)
		}
	})

	t.Run("mandatory stages execute everywhere", func(t *testing.T) {
		for _, rt := range s.RequestTypes() {
			r, err := workflow.Resolve(table, workflow.Selection{RequestType: rt.ID, RiskProfile: domain.RiskLow})
			require.NoError(t, err)
			for _, st := range s.Stages() {
				if !st.Mandatory {
					continue
				}
				d, _ := r.Decision(st.ID)
				assert.Equal(t, domain.StatusExecute, d.Status, "%s/%s", rt.ID, st.ID)
			}
		}
	})
}
