package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/dojo/internal/domain"
)

func TestSelectionApply(t *testing.T) {
	sel := Selection{RiskProfile: domain.RiskLow}

	sel = sel.Apply(domain.ConfigEffect{RequestType: "bugfix"})
	assert.Equal(t, "bugfix", sel.RequestType)
	assert.Equal(t, domain.RiskLow, sel.RiskProfile, "empty risk effect leaves risk alone")

	sel = sel.Apply(domain.ConfigEffect{Risk: domain.RiskHigh, AddConstraints: []string{"regulated"}})
	assert.Equal(t, domain.RiskHigh, sel.RiskProfile)
	assert.Equal(t, []string{"regulated"}, sel.Constraints)

	// Re-adding the same constraint must not duplicate it.
	sel = sel.Apply(domain.ConfigEffect{AddConstraints: []string{"regulated", "legacy-integration"}})
	assert.Equal(t, []string{"legacy-integration", "regulated"}, sel.Constraints, "constraints deduplicated and sorted")
}

func TestSelectionApply_DoesNotMutateReceiver(t *testing.T) {
	orig := Selection{RequestType: "bugfix", RiskProfile: domain.RiskLow, Constraints: []string{"regulated"}}

	_ = orig.Apply(domain.ConfigEffect{AddConstraints: []string{"security-critical"}})

	assert.Equal(t, []string{"regulated"}, orig.Constraints)
}
