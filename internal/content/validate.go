package content

import (
	"fmt"

	"github.com/alexanderramin/dojo/internal/domain"
)

var validQuestionTypes = map[string]bool{"": true, "single": true, "multi": true}

// validateStages checks the stage bank and fills stageIDs for cross-checks.
func validateStages(f *stagesFile, stageIDs map[string]bool) []error {
	var errs []error

	phaseIDs := make(map[string]bool)
	for i, p := range f.Phases {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("phases[%d].id is required", i))
			continue
		}
		if phaseIDs[p.ID] {
			errs = append(errs, fmt.Errorf("phases[%d]: duplicate id %q", i, p.ID))
		}
		phaseIDs[p.ID] = true
	}

	for i, s := range f.Stages {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("stages[%d].id is required", i))
			continue
		}
		if stageIDs[s.ID] {
			errs = append(errs, fmt.Errorf("stages[%d]: duplicate id %q", i, s.ID))
		}
		stageIDs[s.ID] = true
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("stage %q: name is required", s.ID))
		}
		if !phaseIDs[s.Phase] {
			errs = append(errs, fmt.Errorf("stage %q: unknown phase %q", s.ID, s.Phase))
		}
		for _, q := range s.Questions {
			if !validQuestionTypes[q.Type] {
				errs = append(errs, fmt.Errorf("stage %q question %q: invalid type %q", s.ID, q.ID, q.Type))
			}
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Errorf("stage %q question %q: options are required", s.ID, q.ID))
			}
		}
		if s.Gate != nil && s.Gate.Name == "" {
			errs = append(errs, fmt.Errorf("stage %q: gate.name is required", s.ID))
		}
	}

	return errs
}

// validatePolicies checks request types, risk profiles, and constraints
// against the known stage ids. A request type missing a policy for some
// stage is a tolerated gap (the resolver defaults it to conditional), so it
// is reported as a warning, not an error.
func validatePolicies(f *policiesFile, stageIDs map[string]bool) (errs []error, warnings []string) {
	typeIDs := make(map[string]bool)
	for i, rt := range f.Types {
		if rt.ID == "" {
			errs = append(errs, fmt.Errorf("types[%d].id is required", i))
			continue
		}
		if typeIDs[rt.ID] {
			errs = append(errs, fmt.Errorf("types[%d]: duplicate id %q", i, rt.ID))
		}
		typeIDs[rt.ID] = true

		for stageID, p := range rt.Stages {
			if !stageIDs[stageID] {
				errs = append(errs, fmt.Errorf("request type %q: policy for unknown stage %q", rt.ID, stageID))
			}
			if !domain.ValidStageStatuses[p.Execute] {
				errs = append(errs, fmt.Errorf("request type %q stage %q: invalid policy %q", rt.ID, stageID, p.Execute))
			}
		}
		for stageID := range stageIDs {
			if _, ok := rt.Stages[stageID]; !ok {
				warnings = append(warnings, fmt.Sprintf("request type %q: no policy for stage %q, defaulting to conditional", rt.ID, stageID))
			}
		}
	}

	riskIDs := make(map[string]bool)
	for i, rp := range f.RiskProfiles {
		if rp.ID == "" {
			errs = append(errs, fmt.Errorf("risk_profiles[%d].id is required", i))
			continue
		}
		if riskIDs[rp.ID] {
			errs = append(errs, fmt.Errorf("risk_profiles[%d]: duplicate id %q", i, rp.ID))
		}
		riskIDs[rp.ID] = true
		for stageID := range rp.StageModifiers {
			if !stageIDs[stageID] {
				errs = append(errs, fmt.Errorf("risk profile %q: modifier for unknown stage %q", rp.ID, stageID))
			}
		}
	}

	constraintIDs := make(map[string]bool)
	for i, c := range f.Constraints {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("constraints[%d].id is required", i))
			continue
		}
		if constraintIDs[c.ID] {
			errs = append(errs, fmt.Errorf("constraints[%d]: duplicate id %q", i, c.ID))
		}
		constraintIDs[c.ID] = true
		for stageID := range c.StageModifiers {
			if !stageIDs[stageID] {
				errs = append(errs, fmt.Errorf("constraint %q: modifier for unknown stage %q", c.ID, stageID))
			}
		}
	}

	return errs, warnings
}

func validateQuiz(f *quizFile) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, q := range f.Questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("questions[%d].id is required", i))
			continue
		}
		if ids[q.ID] {
			errs = append(errs, fmt.Errorf("questions[%d]: duplicate id %q", i, q.ID))
		}
		ids[q.ID] = true
		if len(q.Options) != 4 {
			errs = append(errs, fmt.Errorf("question %q: expected 4 options, got %d", q.ID, len(q.Options)))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Errorf("question %q: correct index %d out of range", q.ID, q.Correct))
		}
	}
	return errs
}

func validateGates(f *gatesFile) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, s := range f.Scenarios {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("scenarios[%d].id is required", i))
			continue
		}
		if ids[s.ID] {
			errs = append(errs, fmt.Errorf("scenarios[%d]: duplicate id %q", i, s.ID))
		}
		ids[s.ID] = true
		if a := s.Decisions.CorrectAction; a != string(domain.DecisionApprove) && a != string(domain.DecisionReject) {
			errs = append(errs, fmt.Errorf("scenario %q: invalid correct_action %q", s.ID, a))
		}
		if len(s.Decisions.ValidReasons) == 0 {
			errs = append(errs, fmt.Errorf("scenario %q: valid_reasons are required", s.ID))
		}
	}
	return errs
}

func validateLessons(f *lessonsFile) []error {
	var errs []error
	ids := make(map[string]bool)
	for i, l := range f.Lessons {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("lessons[%d].id is required", i))
			continue
		}
		if ids[l.ID] {
			errs = append(errs, fmt.Errorf("lessons[%d]: duplicate id %q", i, l.ID))
		}
		ids[l.ID] = true
		if len(l.Sections) == 0 {
			errs = append(errs, fmt.Errorf("lesson %q: sections are required", l.ID))
		}
	}
	return errs
}

func validateSimQuestions(f *simQuestionsFile, stageIDs map[string]bool, policies *policiesFile) []error {
	var errs []error

	typeIDs := make(map[string]bool)
	for _, rt := range policies.Types {
		typeIDs[rt.ID] = true
	}
	riskIDs := make(map[string]bool)
	for _, rp := range policies.RiskProfiles {
		riskIDs[rp.ID] = true
	}
	constraintIDs := make(map[string]bool)
	for _, c := range policies.Constraints {
		constraintIDs[c.ID] = true
	}

	for i, q := range f.Questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("sim questions[%d].id is required", i))
			continue
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("sim question %q: options are required", q.ID))
		}
		for _, opt := range q.Options {
			e := opt.Effect
			if e.RequestType != "" && !typeIDs[e.RequestType] {
				errs = append(errs, fmt.Errorf("sim question %q option %q: unknown request type %q", q.ID, opt.ID, e.RequestType))
			}
			if e.Risk != "" && !riskIDs[e.Risk] {
				errs = append(errs, fmt.Errorf("sim question %q option %q: unknown risk %q", q.ID, opt.ID, e.Risk))
			}
			for _, c := range e.AddConstraints {
				if !constraintIDs[c] {
					errs = append(errs, fmt.Errorf("sim question %q option %q: unknown constraint %q", q.ID, opt.ID, c))
				}
			}
		}
	}
	return errs
}
