package prompt

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/form"
	"github.com/goliatone/go-tableform/pkg/model"
)

// Option configures a Session.
type Option func(*Session)

// WithDriver overrides the prompt driver (defaults to survey on stdio).
func WithDriver(driver Driver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithValidator swaps the validator used for visibility and submission.
func WithValidator(v *form.Validator) Option {
	return func(s *Session) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithPrefill seeds the session with existing answers. Prefilled values are
// offered as prompt defaults and drive visibility from the start.
func WithPrefill(answers model.AnswerSet) Option {
	return func(s *Session) {
		s.prefill = answers.Clone()
	}
}

// WithLogger attaches a logger for session tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSkipLabel overrides the entry offered to leave an optional select
// unanswered.
func WithSkipLabel(label string) Option {
	return func(s *Session) {
		if label != "" {
			s.skipLabel = label
		}
	}
}
