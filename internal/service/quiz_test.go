package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
	"github.com/aliskhannn/trivial-bot/internal/storage"
)

type questionRepoStub struct {
	questions []entities.Question
	err       error
}

func (r questionRepoStub) GetAll(context.Context) ([]entities.Question, error) {
	return r.questions, r.err
}

func newTestQuizService(t *testing.T, questions []entities.Question) *QuizService {
	t.Helper()

	svc, err := NewQuizService(
		context.Background(),
		questionRepoStub{questions: questions},
		storage.NewSessionStorage(),
		zap.NewNop(),
	)
	require.NoError(t, err)

	return svc
}

func twoQuestions() []entities.Question {
	return []entities.Question{
		{Text: "¿2+2?", Options: []string{"4", "3", "2", "1"}, CorrectIndex: 0},
		{Text: "¿1+1?", Options: []string{"4", "3", "2", "1"}, CorrectIndex: 2},
	}
}

// play answers every question with the given options and returns the final screen.
func play(t *testing.T, svc *QuizService, chatID int64, answers []int) entities.Screen {
	t.Helper()

	_, err := svc.Play(chatID)
	require.NoError(t, err)

	var screen entities.Screen
	for i, a := range answers {
		_, err = svc.Select(chatID, i, a)
		require.NoError(t, err)
		screen, err = svc.Next(chatID, i)
		require.NoError(t, err)
	}

	return screen
}

func TestNewQuizServiceErrors(t *testing.T) {
	repoErr := errors.New("boom")

	_, err := NewQuizService(context.Background(), questionRepoStub{err: repoErr}, storage.NewSessionStorage(), zap.NewNop())
	require.ErrorIs(t, err, repoErr)

	_, err = NewQuizService(context.Background(), questionRepoStub{}, storage.NewSessionStorage(), zap.NewNop())
	require.ErrorIs(t, err, entities.ErrNoQuestions)
}

func TestQuizServiceScenario(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		score   int
	}{
		{name: "all correct", answers: []int{0, 2}, score: 2},
		{name: "all wrong", answers: []int{1, 0}, score: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestQuizService(t, twoQuestions())

			screen := play(t, svc, 1, tt.answers)
			assert.Equal(t, entities.ResultsScreen{Score: tt.score}, screen)
			assert.Equal(t, entities.ResultsScreen{Score: tt.score}, svc.Current(1))
		})
	}
}

func TestQuizServiceNewChatStartsOnStartScreen(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())
	assert.Equal(t, entities.StartScreen{}, svc.Current(42))
}

func TestQuizServiceFewerAnswersNeverShowResults(t *testing.T) {
	svc := newTestQuizService(t, entities.DefaultQuestions())

	screen := play(t, svc, 1, []int{0, 2, 3})

	qs, ok := screen.(entities.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, entities.QuizState{Status: entities.QuizInProgress, CurrentIndex: 3, Score: 3}, qs.Session.State())
}

func TestQuizServiceFirstSelectionWins(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())

	_, err := svc.Play(1)
	require.NoError(t, err)

	_, err = svc.Select(1, 0, 1)
	require.NoError(t, err)
	screen, err := svc.Select(1, 0, 0)
	require.NoError(t, err)

	display := screen.(entities.QuizScreen).Session.Display()
	assert.Equal(t, 1, display.Selected())
	assert.Equal(t, entities.MarkWrong, display.Mark(1))
	assert.Equal(t, entities.MarkNone, display.Mark(0))

	screen, err = svc.Next(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, screen.(entities.QuizScreen).Session.Score())
}

func TestQuizServiceNextWithoutSelection(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())

	_, err := svc.Play(1)
	require.NoError(t, err)

	_, err = svc.Next(1, 0)
	require.ErrorIs(t, err, ErrStaleAction)
}

func TestQuizServiceStaleActions(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())

	_, err := svc.Select(1, 0, 0)
	require.ErrorIs(t, err, ErrStaleAction, "not in quiz")

	_, err = svc.Play(1)
	require.NoError(t, err)

	_, err = svc.Select(1, 1, 0)
	require.ErrorIs(t, err, ErrStaleAction, "future question")

	_, err = svc.Select(1, 0, 0)
	require.NoError(t, err)
	_, err = svc.Next(1, 0)
	require.NoError(t, err)

	_, err = svc.Next(1, 0)
	require.ErrorIs(t, err, ErrStaleAction, "already answered question")
}

func TestQuizServiceResultsShownOnce(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())
	sessions := svc.sessions.(*storage.SessionStorage)

	var results int
	play(t, svc, 1, []int{0})
	nav, ok := sessions.Get(1)
	require.True(t, ok)
	nav.Subscribe(func(_, to entities.Screen) {
		if _, ok := to.(entities.ResultsScreen); ok {
			results++
		}
	})

	_, err := svc.Select(1, 1, 2)
	require.NoError(t, err)
	_, err = svc.Next(1, 1)
	require.NoError(t, err)

	// A repeated tap on the last confirmation must not navigate again.
	_, err = svc.Next(1, 1)
	require.ErrorIs(t, err, ErrStaleAction)

	assert.Equal(t, 1, results)
}

func TestQuizServiceRestartResetsState(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())

	play(t, svc, 1, []int{0, 2})

	screen, err := svc.Start(1)
	require.NoError(t, err)
	assert.Equal(t, entities.StartScreen{}, screen)

	screen, err = svc.Play(1)
	require.NoError(t, err)
	session := screen.(entities.QuizScreen).Session
	assert.Equal(t, entities.QuizState{Status: entities.QuizInProgress}, session.State())
	assert.False(t, session.Display().HasSelection())
}

func TestQuizServiceChatsAreIndependent(t *testing.T) {
	svc := newTestQuizService(t, twoQuestions())

	play(t, svc, 1, []int{0, 2})
	_, err := svc.Play(2)
	require.NoError(t, err)

	assert.Equal(t, entities.ResultsScreen{Score: 2}, svc.Current(1))
	assert.IsType(t, entities.QuizScreen{}, svc.Current(2))
}
