package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

var ErrStaleAction = errors.New("action does not belong to the current screen")

// QuizService drives the start, quiz and results screens of every chat.
type QuizService struct {
	questions []entities.Question
	sessions  SessionStorage
	logger    *zap.Logger
}

// NewQuizService loads the question set once and returns the service.
func NewQuizService(
	ctx context.Context,
	questionRepo QuestionRepository,
	sessions SessionStorage,
	logger *zap.Logger,
) (*QuizService, error) {
	questions, err := questionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, entities.ErrNoQuestions
	}

	return &QuizService{
		questions: questions,
		sessions:  sessions,
		logger:    logger,
	}, nil
}

// Current returns the screen a chat is on.
func (s *QuizService) Current(chatID int64) entities.Screen {
	return s.navigator(chatID).Current()
}

// Start shows the start screen. Any running quiz is discarded.
func (s *QuizService) Start(chatID int64) (entities.Screen, error) {
	return s.navigator(chatID).Navigate(entities.RouteStart)
}

// Play enters the quiz with a fresh session.
func (s *QuizService) Play(chatID int64) (entities.Screen, error) {
	return s.navigator(chatID).Navigate(entities.RouteQuiz)
}

// Select records option as the answer of the question at questionIndex.
// Taps after the first selection leave the screen unchanged.
func (s *QuizService) Select(chatID int64, questionIndex, option int) (entities.Screen, error) {
	nav := s.navigator(chatID)

	session, err := currentSession(nav, questionIndex)
	if err != nil {
		return nil, err
	}

	if !session.Display().Select(option) {
		s.logger.Debug("selection ignored",
			zap.Int64("chat_id", chatID),
			zap.Int("question", questionIndex),
			zap.Int("option", option),
		)
	}

	return nav.Current(), nil
}

// Next confirms the selection of the question at questionIndex and moves
// to the next question, or to the results after the last one.
func (s *QuizService) Next(chatID int64, questionIndex int) (entities.Screen, error) {
	nav := s.navigator(chatID)

	session, err := currentSession(nav, questionIndex)
	if err != nil {
		return nil, err
	}

	display := session.Display()
	selected := display.Selected()

	var answerErr error
	err = display.Confirm(func(wasCorrect bool) {
		s.logger.Debug("question answered",
			zap.Int64("chat_id", chatID),
			zap.Int("question", questionIndex),
			zap.Bool("correct", wasCorrect),
		)
		_, answerErr = session.Answer(selected)
	})
	if errors.Is(err, entities.ErrNoSelection) {
		return nil, ErrStaleAction
	}
	if err != nil {
		return nil, err
	}
	if answerErr != nil {
		return nil, fmt.Errorf("answer question %d: %w", questionIndex, answerErr)
	}

	if _, err := nav.Complete(session); err != nil {
		return nil, fmt.Errorf("show results: %w", err)
	}

	return nav.Current(), nil
}

func (s *QuizService) navigator(chatID int64) *entities.Navigator {
	if nav, ok := s.sessions.Get(chatID); ok {
		return nav
	}

	nav := entities.NewNavigator(s.questions)
	nav.Subscribe(func(from, to entities.Screen) {
		s.logger.Debug("screen changed",
			zap.Int64("chat_id", chatID),
			zap.String("from", from.Route()),
			zap.String("to", to.Route()),
		)
		if r, ok := to.(entities.ResultsScreen); ok {
			s.logger.Info("quiz finished",
				zap.Int64("chat_id", chatID),
				zap.Int("score", r.Score),
				zap.Int("total", len(s.questions)),
			)
		}
	})
	s.sessions.Store(chatID, nav)

	return nav
}

func currentSession(nav *entities.Navigator, questionIndex int) (*entities.QuizSession, error) {
	screen, ok := nav.Current().(entities.QuizScreen)
	if !ok || screen.Session.IsFinished() || screen.Session.CurrentIndex() != questionIndex {
		return nil, ErrStaleAction
	}
	return screen.Session, nil
}
