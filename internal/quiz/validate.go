package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyBank is returned when a bank has no questions.
	ErrEmptyBank = errors.New("question bank has no questions")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported question bank format")
)

// ValidationError describes why a bank failed validation.
type ValidationError struct {
	Field   string // Path of the offending field, e.g. "questions[2].options"
	Message string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the structural invariants the quiz relies on: four distinct
// options per question, a correct answer drawn from them, and one worked
// example per question.
func (b *Bank) Validate() error {
	if len(b.Questions) == 0 {
		return ErrEmptyBank
	}

	for i, q := range b.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			return &ValidationError{Field: field + ".question", Message: "must not be empty"}
		}
		if len(q.Options) != OptionsPerQuestion {
			return &ValidationError{
				Field:   field + ".options",
				Message: fmt.Sprintf("want %d options, got %d", OptionsPerQuestion, len(q.Options)),
			}
		}
		seen := make(map[string]bool, len(q.Options))
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return &ValidationError{Field: fmt.Sprintf("%s.options[%d]", field, j), Message: "must not be empty"}
			}
			if seen[opt] {
				return &ValidationError{Field: fmt.Sprintf("%s.options[%d]", field, j), Message: fmt.Sprintf("duplicate option %q", opt)}
			}
			seen[opt] = true
		}
		if !q.HasOption(q.CorrectAnswer) {
			return &ValidationError{
				Field:   field + ".correct_answer",
				Message: fmt.Sprintf("%q is not one of the options", q.CorrectAnswer),
			}
		}
	}

	if len(b.Examples) != len(b.Questions) {
		return &ValidationError{
			Field:   "examples",
			Message: fmt.Sprintf("want one example per question (%d), got %d", len(b.Questions), len(b.Examples)),
		}
	}
	for i, ex := range b.Examples {
		if strings.TrimSpace(ex.Question) == "" {
			return &ValidationError{Field: fmt.Sprintf("examples[%d].question", i), Message: "must not be empty"}
		}
		if strings.TrimSpace(ex.Solution) == "" {
			return &ValidationError{Field: fmt.Sprintf("examples[%d].solution", i), Message: "must not be empty"}
		}
	}

	return nil
}
