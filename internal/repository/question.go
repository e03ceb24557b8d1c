package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

// OptionsPerQuestion is the number of answer options every question has.
const OptionsPerQuestion = 4

var ErrInvalidQuestion = errors.New("invalid question")

// QuestionRepository provides access to the quiz questions.
// Questions come from a JSON file or, without one, the built-in set.
type QuestionRepository struct {
	questions []entities.Question
}

// NewQuestionRepository loads questions from path. An empty path selects
// the built-in questions.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	if path == "" {
		return &QuestionRepository{questions: entities.DefaultQuestions()}, nil
	}

	questions, err := loadQuestions(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{questions: questions}, nil
}

// GetAll returns a copy of the questions in quiz order.
func (r *QuestionRepository) GetAll(_ context.Context) ([]entities.Question, error) {
	out := make([]entities.Question, len(r.questions))
	for i, q := range r.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out, nil
}

func loadQuestions(path string) ([]entities.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var wrapper struct {
		Questions []entities.Question `json:"questions"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if len(wrapper.Questions) == 0 {
		return nil, entities.ErrNoQuestions
	}

	for i := range wrapper.Questions {
		if err := validateQuestion(&wrapper.Questions[i]); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return wrapper.Questions, nil
}

func validateQuestion(q *entities.Question) error {
	switch {
	case q.Text == "":
		return fmt.Errorf("%w: empty text", ErrInvalidQuestion)
	case len(q.Options) != OptionsPerQuestion:
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuestion, OptionsPerQuestion, len(q.Options))
	case !q.HasOption(q.CorrectIndex):
		return fmt.Errorf("%w: correct index %d out of range", ErrInvalidQuestion, q.CorrectIndex)
	}
	return nil
}
