package order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"autoservice/internal/pkg/errs"
)

// MaxTaskLength bounds a task label in characters.
const MaxTaskLength = 255

// Task is a normalized checklist label such as "replace brake pads".
type Task string

// NewTask trims the label and checks that it is non-empty and not longer than MaxTaskLength.
func NewTask(label string) (Task, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", errs.NewValueIsRequiredError("task")
	}
	if n := utf8.RuneCountInString(label); n > MaxTaskLength {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"task is invalid",
			fmt.Errorf("length %d exceeds %d", n, MaxTaskLength),
		)
	}
	return Task(label), nil
}

// String returns the task label.
func (t Task) String() string {
	return string(t)
}
