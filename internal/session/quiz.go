// Package session holds the state machines behind the practice activities.
// Sessions are plain in-memory structs driven by the TUI views; scoring and
// persistence side effects go through a recorder at completion.
package session

import (
	"math/rand"

	"github.com/alexanderramin/dojo/internal/domain"
)

// QuizRecorder persists a finished quiz run, including the ids of the
// questions answered wrong, and reports newly unlocked achievement ids.
type QuizRecorder interface {
	RecordQuizResult(correct, total int, missed []string) []string
}

// PresentedQuestion is a quiz item with its options in display order. The
// correct answer keeps its identity through the shuffle.
type PresentedQuestion struct {
	Item    domain.QuizItem
	Options []string
	Correct int
}

// QuizAnswer is the outcome of answering one question.
type QuizAnswer struct {
	Chosen      int
	Correct     bool
	CorrectIdx  int
	Explanation string
}

// QuizResults summarizes a finished run. Missed carries the questions
// answered wrong, as presented, for the review screen.
type QuizResults struct {
	Correct  int
	Total    int
	Missed   []PresentedQuestion
	Unlocked []string
}

// QuizSession walks a learner through the quiz bank one question at a time.
// Each question is answered exactly once; results are recorded exactly once
// per run.
type QuizSession struct {
	bank     []domain.QuizItem
	rng      *rand.Rand
	recorder QuizRecorder

	questions []PresentedQuestion
	cursor    int
	answered  bool
	last      QuizAnswer
	correct   int
	missed    []PresentedQuestion
	finished  bool
	recorded  bool
	unlocked  []string
}

// NewQuizSession builds a session over the full bank. Question order and
// per-question option order are shuffled with the given source.
func NewQuizSession(bank []domain.QuizItem, rng *rand.Rand, recorder QuizRecorder) *QuizSession {
	s := &QuizSession{bank: bank, rng: rng, recorder: recorder}
	s.deal()
	return s
}

func (s *QuizSession) deal() {
	order := s.rng.Perm(len(s.bank))
	s.questions = make([]PresentedQuestion, 0, len(s.bank))
	for _, i := range order {
		s.questions = append(s.questions, presentQuestion(s.bank[i], s.rng))
	}
	s.cursor = 0
	s.answered = false
	s.last = QuizAnswer{}
	s.correct = 0
	s.missed = nil
	s.finished = len(s.questions) == 0
	s.recorded = false
	s.unlocked = nil
}

// presentQuestion shuffles the option display order while tracking where the
// correct option lands.
func presentQuestion(item domain.QuizItem, rng *rand.Rand) PresentedQuestion {
	perm := rng.Perm(len(item.Options))
	options := make([]string, len(item.Options))
	correct := 0
	for displayIdx, origIdx := range perm {
		options[displayIdx] = item.Options[origIdx]
		if origIdx == item.Correct {
			correct = displayIdx
		}
	}
	return PresentedQuestion{Item: item, Options: options, Correct: correct}
}

// Current returns the question under the cursor and its 1-based position.
func (s *QuizSession) Current() (PresentedQuestion, int) {
	if s.finished || s.cursor >= len(s.questions) {
		return PresentedQuestion{}, 0
	}
	return s.questions[s.cursor], s.cursor + 1
}

// Total returns the number of questions in this run.
func (s *QuizSession) Total() int { return len(s.questions) }

// Answered reports whether the current question has been answered.
func (s *QuizSession) Answered() bool { return s.answered }

// LastAnswer returns feedback for the most recent answer.
func (s *QuizSession) LastAnswer() QuizAnswer { return s.last }

// Answer grades the chosen display index for the current question. A second
// answer to the same question is ignored.
func (s *QuizSession) Answer(choice int) (QuizAnswer, bool) {
	if s.finished || s.answered {
		return QuizAnswer{}, false
	}
	q := s.questions[s.cursor]
	if choice < 0 || choice >= len(q.Options) {
		return QuizAnswer{}, false
	}
	s.answered = true
	s.last = QuizAnswer{
		Chosen:      choice,
		Correct:     choice == q.Correct,
		CorrectIdx:  q.Correct,
		Explanation: q.Item.Explanation,
	}
	if s.last.Correct {
		s.correct++
	} else {
		s.missed = append(s.missed, q)
	}
	return s.last, true
}

// Next advances past an answered question. Advancing past the final
// question finishes the run and records the result.
func (s *QuizSession) Next() {
	if s.finished || !s.answered {
		return
	}
	s.cursor++
	s.answered = false
	if s.cursor >= len(s.questions) {
		s.finish()
	}
}

func (s *QuizSession) finish() {
	s.finished = true
	if s.recorded || s.recorder == nil {
		return
	}
	s.recorded = true
	ids := make([]string, len(s.missed))
	for i, q := range s.missed {
		ids[i] = q.Item.ID
	}
	s.unlocked = s.recorder.RecordQuizResult(s.correct, len(s.questions), ids)
}

// Finished reports whether the run is over.
func (s *QuizSession) Finished() bool { return s.finished }

// Results returns the final tally. Valid once Finished.
func (s *QuizSession) Results() QuizResults {
	return QuizResults{
		Correct:  s.correct,
		Total:    len(s.questions),
		Missed:   s.missed,
		Unlocked: s.unlocked,
	}
}

// Restart deals a fresh run over the same bank. The finished run stays
// recorded; the new one records on its own completion.
func (s *QuizSession) Restart() { s.deal() }
