package content

import "github.com/alexanderramin/dojo/internal/domain"

// convert maps the validated JSON schema into domain types.
func (s *Store) convert(stagesF *stagesFile, policiesF *policiesFile, quizF *quizFile, gatesF *gatesFile, lessonsF *lessonsFile, glossaryF *glossaryFile, simF *simQuestionsFile) {
	s.phases = make([]domain.PhaseInfo, 0, len(stagesF.Phases))
	for _, p := range stagesF.Phases {
		s.phases = append(s.phases, domain.PhaseInfo{
			ID:     domain.Phase(p.ID),
			Name:   p.Name,
			Ritual: p.Ritual,
		})
	}

	s.stages = make([]domain.Stage, 0, len(stagesF.Stages))
	for _, sj := range stagesF.Stages {
		stage := domain.Stage{
			ID:          sj.ID,
			Name:        sj.Name,
			Description: sj.Description,
			Phase:       domain.Phase(sj.Phase),
			Mandatory:   sj.Mandatory,
			Artifacts:   sj.Artifacts,
		}
		for _, qj := range sj.Questions {
			stage.Questions = append(stage.Questions, domain.StageQuestion{
				ID:      qj.ID,
				Text:    qj.Text,
				Multi:   qj.Type == "multi",
				Options: qj.Options,
			})
		}
		if sj.Gate != nil {
			stage.Gate = &domain.Gate{
				Name:             sj.Gate.Name,
				Criteria:         sj.Gate.Criteria,
				EvidenceRequired: sj.Gate.EvidenceRequired,
			}
		}
		s.stageByID[stage.ID] = len(s.stages)
		s.stages = append(s.stages, stage)
	}

	s.requestTypes = make([]domain.RequestType, 0, len(policiesF.Types))
	for _, tj := range policiesF.Types {
		rt := domain.RequestType{
			ID:          tj.ID,
			Name:        tj.Name,
			Description: tj.Description,
			Policies:    make(map[string]domain.StagePolicy, len(tj.Stages)),
		}
		for stageID, pj := range tj.Stages {
			rt.Policies[stageID] = domain.StagePolicy{
				Status: domain.StageStatus(pj.Execute),
				Reason: pj.Reason,
			}
		}
		s.typeByID[rt.ID] = len(s.requestTypes)
		s.requestTypes = append(s.requestTypes, rt)
	}

	s.riskProfiles = make([]domain.RiskProfile, 0, len(policiesF.RiskProfiles))
	for _, rj := range policiesF.RiskProfiles {
		rp := domain.RiskProfile{
			ID:          domain.RiskLevel(rj.ID),
			Name:        rj.Name,
			Description: rj.Description,
			Modifiers:   convertModifiers(rj.StageModifiers),
		}
		s.riskByID[rp.ID] = len(s.riskProfiles)
		s.riskProfiles = append(s.riskProfiles, rp)
	}

	s.constraints = make([]domain.Constraint, 0, len(policiesF.Constraints))
	for _, cj := range policiesF.Constraints {
		s.constraints = append(s.constraints, domain.Constraint{
			ID:          cj.ID,
			Name:        cj.Name,
			Description: cj.Description,
			Modifiers:   convertModifiers(cj.StageModifiers),
		})
	}

	s.quiz = make([]domain.QuizItem, 0, len(quizF.Questions))
	for _, qj := range quizF.Questions {
		s.quiz = append(s.quiz, domain.QuizItem{
			ID:          qj.ID,
			Prompt:      qj.Prompt,
			Options:     qj.Options,
			Correct:     qj.Correct,
			Explanation: qj.Explanation,
		})
	}

	s.scenarios = make([]domain.Scenario, 0, len(gatesF.Scenarios))
	for _, sj := range gatesF.Scenarios {
		s.scenarios = append(s.scenarios, domain.Scenario{
			ID:             sj.ID,
			Phase:          sj.Phase,
			Stage:          sj.Stage,
			Context:        sj.Context,
			Plan:           sj.AIPlan,
			CorrectAction:  domain.Decision(sj.Decisions.CorrectAction),
			ValidReasons:   sj.Decisions.ValidReasons,
			InvalidReasons: sj.Decisions.InvalidReasons,
			Evidence:       sj.Evidence,
		})
	}

	s.lessons = make([]domain.Lesson, 0, len(lessonsF.Lessons))
	for _, lj := range lessonsF.Lessons {
		lesson := domain.Lesson{
			ID:          lj.ID,
			Title:       lj.Title,
			Description: lj.Description,
		}
		for _, sec := range lj.Sections {
			lesson.Sections = append(lesson.Sections, domain.LessonSection{
				Title: sec.Title,
				Body:  sec.Body,
			})
		}
		s.lessonByID[lesson.ID] = len(s.lessons)
		s.lessons = append(s.lessons, lesson)
	}

	s.glossary = make([]domain.GlossaryTerm, 0, len(glossaryF.Terms))
	for _, tj := range glossaryF.Terms {
		s.glossary = append(s.glossary, domain.GlossaryTerm{
			ID:         tj.ID,
			Term:       tj.Term,
			Definition: tj.Definition,
			Related:    tj.Related,
		})
	}

	s.simQuestions = make([]domain.SimQuestion, 0, len(simF.Questions))
	for _, qj := range simF.Questions {
		q := domain.SimQuestion{
			ID:        qj.ID,
			Prompt:    qj.Prompt,
			Principle: qj.Principle,
		}
		for _, oj := range qj.Options {
			q.Options = append(q.Options, domain.SimOption{
				ID:    oj.ID,
				Label: oj.Label,
				Effect: domain.ConfigEffect{
					RequestType:    oj.Effect.RequestType,
					Risk:           domain.RiskLevel(oj.Effect.Risk),
					AddConstraints: oj.Effect.AddConstraints,
					Explanation:    oj.Effect.Explanation,
				},
			})
		}
		s.simQuestions = append(s.simQuestions, q)
	}
}

func convertModifiers(mods map[string]modifierJSON) map[string]domain.StageModifier {
	out := make(map[string]domain.StageModifier, len(mods))
	for stageID, m := range mods {
		out[stageID] = domain.StageModifier{ForceExecute: m.ForceExecute}
	}
	return out
}
