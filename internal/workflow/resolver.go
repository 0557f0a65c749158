// Package workflow computes which methodology stages execute for a given
// project configuration. Resolution is a pure function over the immutable
// policy table: identical inputs always yield identical output, and it is
// safe to call from anywhere, repeatedly.
package workflow

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/dojo/internal/domain"
)

// ErrUnknownConfig is returned when a selection names a request type, risk
// profile, or constraint id that does not exist in the policy table. This is
// a caller bug: the presentation layer should only offer valid ids.
var ErrUnknownConfig = errors.New("unknown configuration id")

// Table is the static stage policy table the resolver evaluates against.
// Built once from the content store and never mutated.
type Table struct {
	Stages       []domain.Stage
	RequestTypes map[string]domain.RequestType
	RiskProfiles map[domain.RiskLevel]domain.RiskProfile
	Constraints  map[string]domain.Constraint
}

// NewTable indexes the given definitions for resolution.
func NewTable(stages []domain.Stage, types []domain.RequestType, risks []domain.RiskProfile, constraints []domain.Constraint) Table {
	t := Table{
		Stages:       stages,
		RequestTypes: make(map[string]domain.RequestType, len(types)),
		RiskProfiles: make(map[domain.RiskLevel]domain.RiskProfile, len(risks)),
		Constraints:  make(map[string]domain.Constraint, len(constraints)),
	}
	for _, rt := range types {
		t.RequestTypes[rt.ID] = rt
	}
	for _, rp := range risks {
		t.RiskProfiles[rp.ID] = rp
	}
	for _, c := range constraints {
		t.Constraints[c.ID] = c
	}
	return t
}

// Selection is one project configuration to resolve.
type Selection struct {
	RequestType string
	RiskProfile domain.RiskLevel
	Constraints []string
}

// StageDecision is the final per-stage outcome.
type StageDecision struct {
	StageID string
	Status  domain.StageStatus
	// Reason is display material explaining the decision.
	Reason string
}

// Resolved is the ephemeral result of resolving one selection. It is never
// persisted; callers recompute on demand.
type Resolved struct {
	Selection Selection
	Decisions []StageDecision // in policy-table stage order
	byStage   map[string]int
}

// Decision returns the decision for a stage id.
func (r *Resolved) Decision(stageID string) (StageDecision, bool) {
	i, ok := r.byStage[stageID]
	if !ok {
		return StageDecision{}, false
	}
	return r.Decisions[i], true
}

// ActiveCount returns how many stages resolved to execute.
func (r *Resolved) ActiveCount() int {
	n := 0
	for _, d := range r.Decisions {
		if d.Status == domain.StatusExecute {
			n++
		}
	}
	return n
}

// Resolve computes the execution status of every stage for the selection.
//
// Per stage, in order:
//  1. Globally mandatory stages execute unconditionally.
//  2. The request type's base policy applies; a missing entry defaults to
//     conditional (a content gap, tolerated rather than fatal).
//  3. If the risk profile or any selected constraint forces the stage, a
//     skip or conditional base is promoted to execute. Promotion is the only
//     modifier polarity: nothing ever demotes an execute base.
func Resolve(t Table, sel Selection) (*Resolved, error) {
	rt, ok := t.RequestTypes[sel.RequestType]
	if !ok {
		return nil, fmt.Errorf("%w: request type %q", ErrUnknownConfig, sel.RequestType)
	}
	rp, ok := t.RiskProfiles[sel.RiskProfile]
	if !ok {
		return nil, fmt.Errorf("%w: risk profile %q", ErrUnknownConfig, sel.RiskProfile)
	}
	constraints := make([]domain.Constraint, 0, len(sel.Constraints))
	for _, id := range sel.Constraints {
		c, ok := t.Constraints[id]
		if !ok {
			return nil, fmt.Errorf("%w: constraint %q", ErrUnknownConfig, id)
		}
		constraints = append(constraints, c)
	}

	res := &Resolved{
		Selection: sel,
		Decisions: make([]StageDecision, 0, len(t.Stages)),
		byStage:   make(map[string]int, len(t.Stages)),
	}

	for _, stage := range t.Stages {
		d := resolveStage(stage, rt, rp, constraints)
		res.byStage[stage.ID] = len(res.Decisions)
		res.Decisions = append(res.Decisions, d)
	}
	return res, nil
}

func resolveStage(stage domain.Stage, rt domain.RequestType, rp domain.RiskProfile, constraints []domain.Constraint) StageDecision {
	if stage.Mandatory {
		return StageDecision{
			StageID: stage.ID,
			Status:  domain.StatusExecute,
			Reason:  "mandatory for all workflows",
		}
	}

	policy, ok := rt.Policies[stage.ID]
	if !ok {
		// Explicit defensive default for a content gap (see content
		// validation, which reports these at load time).
		policy = domain.StagePolicy{Status: domain.StatusConditional, Reason: "no policy defined"}
	}

	if policy.Status == domain.StatusExecute {
		return StageDecision{StageID: stage.ID, Status: domain.StatusExecute, Reason: policy.Reason}
	}

	if rp.Modifiers[stage.ID].ForceExecute {
		return StageDecision{
			StageID: stage.ID,
			Status:  domain.StatusExecute,
			Reason:  fmt.Sprintf("forced by %s risk profile", rp.ID),
		}
	}
	for _, c := range constraints {
		if c.Modifiers[stage.ID].ForceExecute {
			return StageDecision{
				StageID: stage.ID,
				Status:  domain.StatusExecute,
				Reason:  fmt.Sprintf("forced by constraint %q", c.ID),
			}
		}
	}

	return StageDecision{StageID: stage.ID, Status: policy.Status, Reason: policy.Reason}
}
