package entities

// Question is a single multiple-choice question.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`       // answer options shown in order
	CorrectIndex int      `json:"correct_index"` // index into Options
}

// IsCorrect reports whether the option at index is the right answer.
func (q *Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// HasOption reports whether index points to one of the options.
func (q *Question) HasOption(index int) bool {
	return index >= 0 && index < len(q.Options)
}

// DefaultQuestions returns the built-in question set.
func DefaultQuestions() []Question {
	options := func() []string { return []string{"4", "3", "2", "1"} }

	return []Question{
		{Text: "¿2+2?", Options: options(), CorrectIndex: 0},
		{Text: "¿1+1?", Options: options(), CorrectIndex: 2},
		{Text: "¿2-1?", Options: options(), CorrectIndex: 3},
		{Text: "¿2+1?", Options: options(), CorrectIndex: 1},
	}
}
