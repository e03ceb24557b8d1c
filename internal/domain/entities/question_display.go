package entities

import "errors"

var ErrNoSelection = errors.New("no option selected")

// NoSelection marks the absence of a selected option.
const NoSelection = -1

// OptionMark is how an option is highlighted after a selection.
type OptionMark int

const (
	MarkNone OptionMark = iota
	MarkCorrect
	MarkWrong
)

// QuestionDisplay tracks the selection for the question being shown.
// The first selection wins; later selections are ignored until the
// question changes.
type QuestionDisplay struct {
	question *Question
	selected int
}

// NewQuestionDisplay creates a display with nothing shown.
func NewQuestionDisplay() *QuestionDisplay {
	return &QuestionDisplay{selected: NoSelection}
}

// Show switches the display to q. A different question resets the selection.
func (d *QuestionDisplay) Show(q *Question) {
	if d.question == q {
		return
	}
	d.question = q
	d.selected = NoSelection
}

// Question returns the question being shown.
func (d *QuestionDisplay) Question() *Question {
	return d.question
}

// Select records option as the answer. It returns false when a selection
// already exists or option is not valid for the question.
func (d *QuestionDisplay) Select(option int) bool {
	if d.question == nil || d.HasSelection() || !d.question.HasOption(option) {
		return false
	}
	d.selected = option
	return true
}

// Selected returns the selected option index or NoSelection.
func (d *QuestionDisplay) Selected() int {
	return d.selected
}

// HasSelection reports whether an option was selected.
func (d *QuestionDisplay) HasSelection() bool {
	return d.selected != NoSelection
}

// CanConfirm reports whether the confirmation control is visible.
func (d *QuestionDisplay) CanConfirm() bool {
	return d.HasSelection()
}

// Mark returns the highlight of the option at index. Only the selected
// option is ever marked.
func (d *QuestionDisplay) Mark(index int) OptionMark {
	if d.question == nil || index != d.selected {
		return MarkNone
	}
	if d.question.IsCorrect(index) {
		return MarkCorrect
	}
	return MarkWrong
}

// Confirm invokes onAnswered with the correctness of the selection.
func (d *QuestionDisplay) Confirm(onAnswered func(wasCorrect bool)) error {
	if !d.HasSelection() {
		return ErrNoSelection
	}
	onAnswered(d.question.IsCorrect(d.selected))
	return nil
}
