package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/trivial-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionNav    = "nav"
	actionOption = "opt"
	actionNext   = "next"
	actionNoop   = "noop"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// intParam parses the i-th parameter as a non-negative integer.
func (cd callbackData) intParam(i int) (int, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildNavCallback builds callback data for moving to a route.
func buildNavCallback(route string) string {
	return callbackData{
		Action: actionNav,
		Params: []string{route},
	}.encode()
}

// buildOptionCallback builds callback data for selecting an option of a question.
func buildOptionCallback(questionIndex, option int) string {
	return callbackData{
		Action: actionOption,
		Params: []string{
			strconv.Itoa(questionIndex),
			strconv.Itoa(option),
		},
	}.encode()
}

// buildNextCallback builds callback data for confirming a question.
func buildNextCallback(questionIndex int) string {
	return callbackData{
		Action: actionNext,
		Params: []string{strconv.Itoa(questionIndex)},
	}.encode()
}

func buildNoopCallback() string {
	return actionNoop
}

func buildPlayCallback() string {
	return buildNavCallback(entities.RouteQuiz)
}

func buildRestartCallback() string {
	return buildNavCallback(entities.RouteStart)
}
