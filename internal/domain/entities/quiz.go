package entities

import "errors"

var (
	ErrQuizFinished = errors.New("quiz session is finished")
	ErrNoQuestions  = errors.New("quiz has no questions")
)

// QuizStatus is the state of a quiz session.
type QuizStatus string

const (
	QuizInProgress QuizStatus = "in_progress"
	QuizFinished   QuizStatus = "finished"
)

// QuizState is a snapshot of the quiz state machine.
type QuizState struct {
	Status       QuizStatus
	CurrentIndex int // index of the question being shown, equals total when finished
	Score        int // correct answers so far
}

// QuizSession is one playthrough over a fixed list of questions.
// It also owns the answer state of the question being shown, so the
// selection is reset in the same step the cursor moves.
type QuizSession struct {
	questions    []Question
	currentIndex int
	score        int
	display      *QuestionDisplay
}

// NewQuizSession creates a session in its initial state InProgress(0, 0).
func NewQuizSession(questions []Question) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	s := &QuizSession{
		questions: questions,
		display:   NewQuestionDisplay(),
	}
	s.display.Show(&s.questions[0])

	return s, nil
}

// State returns the current state of the session.
func (s *QuizSession) State() QuizState {
	status := QuizInProgress
	if s.IsFinished() {
		status = QuizFinished
	}

	return QuizState{
		Status:       status,
		CurrentIndex: s.currentIndex,
		Score:        s.score,
	}
}

// IsFinished reports whether every question was answered.
func (s *QuizSession) IsFinished() bool {
	return s.currentIndex >= len(s.questions)
}

// Score returns the number of correct answers so far.
func (s *QuizSession) Score() int {
	return s.score
}

// CurrentIndex returns the index of the question being shown.
func (s *QuizSession) CurrentIndex() int {
	return s.currentIndex
}

// TotalQuestions returns the number of questions in the session.
func (s *QuizSession) TotalQuestions() int {
	return len(s.questions)
}

// CurrentQuestion returns the question being shown, or false once finished.
func (s *QuizSession) CurrentQuestion() (*Question, bool) {
	if s.IsFinished() {
		return nil, false
	}
	return &s.questions[s.currentIndex], true
}

// Display returns the answer state of the current question.
func (s *QuizSession) Display() *QuestionDisplay {
	return s.display
}

// Answer applies the answer transition with the selected option index.
// It returns true only on the step that moves the session into Finished.
func (s *QuizSession) Answer(selected int) (bool, error) {
	if s.IsFinished() {
		return false, ErrQuizFinished
	}

	if s.questions[s.currentIndex].IsCorrect(selected) {
		s.score++
	}
	s.currentIndex++

	if q, ok := s.CurrentQuestion(); ok {
		s.display.Show(q)
	} else {
		s.display.Show(nil)
	}

	return s.IsFinished(), nil
}
