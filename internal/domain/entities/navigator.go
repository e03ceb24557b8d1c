package entities

import (
	"errors"
	"fmt"
)

var ErrUnknownRoute = errors.New("unknown route")

// NavigationListener is notified after every screen change.
type NavigationListener func(from, to Screen)

// Navigator moves one chat between the start, quiz and results screens.
type Navigator struct {
	questions []Question
	current   Screen
	finished  *QuizSession // last session that already led to results
	listeners []NavigationListener
}

// NewNavigator creates a navigator showing the start screen.
func NewNavigator(questions []Question) *Navigator {
	return &Navigator{
		questions: questions,
		current:   StartScreen{},
	}
}

// Subscribe registers l for screen changes.
func (n *Navigator) Subscribe(l NavigationListener) {
	n.listeners = append(n.listeners, l)
}

// Current returns the screen being shown.
func (n *Navigator) Current() Screen {
	return n.current
}

// Navigate shows the screen for path. Entering the quiz always starts a
// fresh session; leaving it drops the previous one.
func (n *Navigator) Navigate(path string) (Screen, error) {
	name, param := ParseRoute(path)

	var next Screen
	switch name {
	case RouteStart:
		next = StartScreen{}
	case RouteQuiz:
		session, err := NewQuizSession(n.questions)
		if err != nil {
			return nil, fmt.Errorf("new quiz session: %w", err)
		}
		next = QuizScreen{Session: session}
	case RouteResults:
		next = ResultsScreen{Score: ParseScore(param)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	prev := n.current
	n.current = next
	for _, l := range n.listeners {
		l(prev, next)
	}

	return next, nil
}

// Complete navigates to the results of session. It fires once per
// finished session; further calls return false and change nothing.
func (n *Navigator) Complete(session *QuizSession) (bool, error) {
	if session == nil || !session.IsFinished() || n.finished == session {
		return false, nil
	}

	if _, err := n.Navigate(ResultsRoute(session.Score())); err != nil {
		return false, err
	}
	n.finished = session

	return true, nil
}
