package entities

import (
	"strconv"
	"strings"
)

// Route names.
const (
	RouteStart   = "start"
	RouteQuiz    = "quiz"
	RouteResults = "results"
)

// Screen is one of StartScreen, QuizScreen or ResultsScreen.
type Screen interface {
	// Route returns the path that leads to the screen.
	Route() string
	screen()
}

// StartScreen is the welcome screen.
type StartScreen struct{}

func (StartScreen) Route() string { return RouteStart }
func (StartScreen) screen()       {}

// QuizScreen shows the question flow of a session.
type QuizScreen struct {
	Session *QuizSession
}

func (QuizScreen) Route() string { return RouteQuiz }
func (QuizScreen) screen()       {}

// ResultsScreen shows the final score.
type ResultsScreen struct {
	Score int
}

func (s ResultsScreen) Route() string { return ResultsRoute(s.Score) }
func (ResultsScreen) screen()         {}

// ResultsRoute builds the results path carrying score.
func ResultsRoute(score int) string {
	return RouteResults + "/" + strconv.Itoa(score)
}

// ParseRoute splits path into the route name and its parameter.
func ParseRoute(path string) (name, param string) {
	name, param, _ = strings.Cut(strings.Trim(path, "/"), "/")
	return name, param
}

// ParseScore reads a score route parameter. Missing, malformed or
// negative values yield 0.
func ParseScore(param string) int {
	score, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil || score < 0 {
		return 0
	}
	return score
}
