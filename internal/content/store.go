// Package content is the read-only provider of methodology content: stage
// and policy definitions, quiz and scenario banks, lessons, glossary, and
// simulator questions. Everything is embedded in the binary, parsed and
// validated once at startup, and immutable afterwards.
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/dojo/internal/domain"
)

//go:embed data/*.json
var contentFS embed.FS

// Store holds the loaded content bank.
type Store struct {
	phases       []domain.PhaseInfo
	stages       []domain.Stage
	stageByID    map[string]int
	requestTypes []domain.RequestType
	typeByID     map[string]int
	riskProfiles []domain.RiskProfile
	riskByID     map[domain.RiskLevel]int
	constraints  []domain.Constraint
	quiz         []domain.QuizItem
	scenarios    []domain.Scenario
	lessons      []domain.Lesson
	lessonByID   map[string]int
	glossary     []domain.GlossaryTerm
	simQuestions []domain.SimQuestion
}

// Load parses and validates the embedded content bank. Validation errors
// are fatal (malformed content is a build defect); policy-coverage gaps are
// returned as warnings and tolerated by the resolver.
func Load() (*Store, []string, error) {
	var stagesF stagesFile
	if err := readJSON("data/stages.json", &stagesF); err != nil {
		return nil, nil, err
	}
	var policiesF policiesFile
	if err := readJSON("data/request-types.json", &policiesF); err != nil {
		return nil, nil, err
	}
	var quizF quizFile
	if err := readJSON("data/quiz.json", &quizF); err != nil {
		return nil, nil, err
	}
	var gatesF gatesFile
	if err := readJSON("data/gates.json", &gatesF); err != nil {
		return nil, nil, err
	}
	var lessonsF lessonsFile
	if err := readJSON("data/lessons.json", &lessonsF); err != nil {
		return nil, nil, err
	}
	var glossaryF glossaryFile
	if err := readJSON("data/glossary.json", &glossaryF); err != nil {
		return nil, nil, err
	}
	var simF simQuestionsFile
	if err := readJSON("data/sim-questions.json", &simF); err != nil {
		return nil, nil, err
	}

	stageIDs := make(map[string]bool)
	var errs []error
	errs = append(errs, validateStages(&stagesF, stageIDs)...)
	policyErrs, warnings := validatePolicies(&policiesF, stageIDs)
	errs = append(errs, policyErrs...)
	errs = append(errs, validateQuiz(&quizF)...)
	errs = append(errs, validateGates(&gatesF)...)
	errs = append(errs, validateLessons(&lessonsF)...)
	errs = append(errs, validateSimQuestions(&simF, stageIDs, &policiesF)...)
	if len(errs) > 0 {
		return nil, warnings, fmt.Errorf("content validation: %w", errors.Join(errs...))
	}

	s := &Store{
		stageByID:  make(map[string]int),
		typeByID:   make(map[string]int),
		riskByID:   make(map[domain.RiskLevel]int),
		lessonByID: make(map[string]int),
	}
	s.convert(&stagesF, &policiesF, &quizF, &gatesF, &lessonsF, &glossaryF, &simF)
	return s, warnings, nil
}

func readJSON(name string, v any) error {
	data, err := contentFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// ── lookups ──────────────────────────────────────────────────────────────────

func (s *Store) Phases() []domain.PhaseInfo { return s.phases }

func (s *Store) Stages() []domain.Stage { return s.stages }

func (s *Store) Stage(id string) (domain.Stage, bool) {
	i, ok := s.stageByID[id]
	if !ok {
		return domain.Stage{}, false
	}
	return s.stages[i], true
}

func (s *Store) RequestTypes() []domain.RequestType { return s.requestTypes }

func (s *Store) RequestType(id string) (domain.RequestType, bool) {
	i, ok := s.typeByID[id]
	if !ok {
		return domain.RequestType{}, false
	}
	return s.requestTypes[i], true
}

func (s *Store) RiskProfiles() []domain.RiskProfile { return s.riskProfiles }

func (s *Store) RiskProfile(id domain.RiskLevel) (domain.RiskProfile, bool) {
	i, ok := s.riskByID[id]
	if !ok {
		return domain.RiskProfile{}, false
	}
	return s.riskProfiles[i], true
}

func (s *Store) Constraints() []domain.Constraint { return s.constraints }

func (s *Store) QuizBank() []domain.QuizItem { return s.quiz }

func (s *Store) ScenarioBank() []domain.Scenario { return s.scenarios }

// LessonCatalog returns catalog metadata for all lessons, in content order.
func (s *Store) LessonCatalog() []domain.LessonMeta {
	metas := make([]domain.LessonMeta, len(s.lessons))
	for i, l := range s.lessons {
		metas[i] = domain.LessonMeta{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Sections:    len(l.Sections),
		}
	}
	return metas
}

func (s *Store) Lesson(id string) (domain.Lesson, bool) {
	i, ok := s.lessonByID[id]
	if !ok {
		return domain.Lesson{}, false
	}
	return s.lessons[i], true
}

func (s *Store) GlossaryTerms() []domain.GlossaryTerm { return s.glossary }

func (s *Store) SimQuestions() []domain.SimQuestion { return s.simQuestions }
