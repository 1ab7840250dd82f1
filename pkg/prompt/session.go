package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-tableform/pkg/form"
	"github.com/goliatone/go-tableform/pkg/model"
	"github.com/goliatone/go-tableform/pkg/visibility/rules"
)

const defaultSkipLabel = "(skip)"

// Session walks a respondent through a form in the terminal. Visibility is
// recomputed after every answer, so questions revealed by a later answer are
// picked up on the next pass.
type Session struct {
	driver    Driver
	validator *form.Validator
	prefill   model.AnswerSet
	logger    *zap.Logger
	skipLabel string
}

// New constructs a session with defaults (survey driver, rule evaluator).
func New(options ...Option) *Session {
	s := &Session{
		driver:    NewSurveyDriver(nil),
		validator: form.NewValidator(),
		logger:    zap.NewNop(),
		skipLabel: defaultSkipLabel,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run prompts every visible question and returns the validated submission.
// Answers to questions that become hidden after being asked are kept.
func (s *Session) Run(ctx context.Context, f model.Form) (form.Submission, error) {
	if ctx == nil {
		return form.Submission{}, errors.New("prompt: context is required")
	}
	if s.driver == nil {
		return form.Submission{}, ErrNoDriver
	}

	answers := s.prefill.Clone()
	if answers == nil {
		answers = model.AnswerSet{}
	}
	asked := make(map[string]struct{}, len(f.Questions))

	for pass := 1; ; pass++ {
		progressed := false
		for _, q := range f.Questions {
			if _, done := asked[q.QuestionKey]; done {
				continue
			}
			if !s.validator.IsVisible(q, answers) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return form.Submission{}, err
			}

			value, err := s.ask(ctx, q, answers)
			if err != nil {
				return form.Submission{}, fmt.Errorf("prompt %s: %w", q.QuestionKey, err)
			}
			if form.Answered(value) {
				answers[q.QuestionKey] = value
			} else {
				delete(answers, q.QuestionKey)
			}
			asked[q.QuestionKey] = struct{}{}
			progressed = true
		}
		s.logger.Debug("prompt pass complete",
			zap.Int("pass", pass),
			zap.Int("asked", len(asked)),
			zap.Int("questions", len(f.Questions)),
		)
		if !progressed {
			break
		}
	}

	submission, err := s.validator.Submit(f, answers)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			if infoErr := s.driver.Info(ctx, verr.Result.Message()); infoErr != nil {
				return form.Submission{}, errors.Join(err, infoErr)
			}
		}
		return form.Submission{}, err
	}
	return submission, nil
}

func (s *Session) ask(ctx context.Context, q model.Question, answers model.AnswerSet) (any, error) {
	current, _ := answers.Lookup(q.QuestionKey)
	for {
		value, err := s.askOnce(ctx, q, current)
		if err != nil {
			return nil, err
		}
		if q.Required && !form.Answered(value) {
			if err := s.driver.Info(ctx, fmt.Sprintf("%s is required", q.Label)); err != nil {
				return nil, err
			}
			continue
		}
		return value, nil
	}
}

func (s *Session) askOnce(ctx context.Context, q model.Question, current any) (any, error) {
	message := q.Label
	if q.Required {
		message += " *"
	}

	switch q.Type {
	case model.QuestionTypeLongText:
		return s.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: stringValue(current)})
	case model.QuestionTypeSingleSelect:
		if len(q.Options) == 0 {
			return s.driver.Input(ctx, InputConfig{Message: message, Default: stringValue(current)})
		}
		return s.askSelect(ctx, q, message, current)
	case model.QuestionTypeMultiSelect:
		if len(q.Options) == 0 {
			raw, err := s.driver.Input(ctx, InputConfig{
				Message: message,
				Default: strings.Join(listValue(current), ", "),
				Help:    "Separate values with commas",
			})
			return splitList(raw), err
		}
		indices, err := s.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  q.Options,
			Defaults: indicesOf(q.Options, listValue(current)),
		})
		if err != nil {
			return nil, err
		}
		return valuesAt(q.Options, indices), nil
	case model.QuestionTypeAttachment:
		raw, err := s.driver.Input(ctx, InputConfig{
			Message: message,
			Default: strings.Join(listValue(current), ", "),
			Help:    "Comma separated file names",
		})
		return splitList(raw), err
	default:
		return s.driver.Input(ctx, InputConfig{Message: message, Default: stringValue(current)})
	}
}

func (s *Session) askSelect(ctx context.Context, q model.Question, message string, current any) (any, error) {
	options := append([]string(nil), q.Options...)
	if !q.Required {
		options = append(options, s.skipLabel)
	}
	defaultIdx := -1
	if cur := stringValue(current); cur != "" {
		defaultIdx = indexOf(q.Options, cur)
	}

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return nil, err
		}
		switch {
		case idx >= 0 && idx < len(q.Options):
			return q.Options[idx], nil
		case !q.Required && idx == len(q.Options):
			return nil, nil
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", q.Label)); err != nil {
			return nil, err
		}
	}
}

func stringValue(v any) string {
	return rules.CoerceString(v)
}

func listValue(v any) []string {
	if items, ok := rules.Sequence(v); ok {
		return items
	}
	if raw, ok := v.(string); ok {
		return splitList(raw)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
