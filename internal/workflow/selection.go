package workflow

import (
	"sort"

	"github.com/alexanderramin/dojo/internal/domain"
)

// Apply returns a copy of the selection updated by a configuration effect.
// Constraint additions are deduplicated and kept sorted so that resolving
// the same accumulated answers always sees the same selection.
func (s Selection) Apply(e domain.ConfigEffect) Selection {
	out := Selection{
		RequestType: s.RequestType,
		RiskProfile: s.RiskProfile,
		Constraints: append([]string(nil), s.Constraints...),
	}
	if e.RequestType != "" {
		out.RequestType = e.RequestType
	}
	if e.Risk != "" {
		out.RiskProfile = e.Risk
	}
	for _, id := range e.AddConstraints {
		if !containsString(out.Constraints, id) {
			out.Constraints = append(out.Constraints, id)
		}
	}
	sort.Strings(out.Constraints)
	return out
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
