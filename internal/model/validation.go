package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrQuestionKeyMissing   = errors.New("model: question key is required")
	ErrDuplicateQuestionKey = errors.New("model: duplicate question key")
	ErrQuestionNotFound     = errors.New("model: question not found")
	ErrUnknownQuestionType  = errors.New("model: unknown question type")
)

// ValidateForm checks the structural invariants of a form. Conditions that
// reference missing, later, or the same question are accepted; they are
// resolved against raw answers at evaluation time.
func ValidateForm(form Form) error {
	var errs []error
	seen := make(map[string]struct{}, len(form.Questions))
	for i, q := range form.Questions {
		key := strings.TrimSpace(q.QuestionKey)
		if key == "" {
			errs = append(errs, fmt.Errorf("question %d: %w", i, ErrQuestionKeyMissing))
			continue
		}
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("question %q: %w", key, ErrDuplicateQuestionKey))
		}
		seen[key] = struct{}{}
		if !q.Type.Valid() {
			errs = append(errs, fmt.Errorf("question %q: %w %q", key, ErrUnknownQuestionType, q.Type))
		}
	}
	return errors.Join(errs...)
}
