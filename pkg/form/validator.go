package form

import (
	"strings"

	"github.com/goliatone/go-tableform/pkg/model"
	"github.com/goliatone/go-tableform/pkg/visibility"
	"github.com/goliatone/go-tableform/pkg/visibility/rules"
)

// MissingAnswer identifies a visible required question without an answer.
type MissingAnswer struct {
	QuestionKey string `json:"questionKey"`
	Label       string `json:"label"`
}

// Result captures the outcome of validating an answer set. Missing lists
// every offending question in form order.
type Result struct {
	Valid   bool            `json:"valid"`
	Missing []MissingAnswer `json:"missing,omitempty"`
}

// Labels returns the labels of the missing questions.
func (r Result) Labels() []string {
	out := make([]string, 0, len(r.Missing))
	for _, m := range r.Missing {
		out = append(out, m.Label)
	}
	return out
}

// Message renders the result for respondents. It is empty for valid results.
func (r Result) Message() string {
	if r.Valid {
		return ""
	}
	return "Please fill in required fields: " + strings.Join(r.Labels(), ", ")
}

// Validator computes visibility and validates answers for a form.
type Validator struct {
	eval visibility.Evaluator
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithEvaluator swaps the visibility evaluator (defaults to rules.Evaluator).
func WithEvaluator(eval visibility.Evaluator) ValidatorOption {
	return func(v *Validator) {
		if eval != nil {
			v.eval = eval
		}
	}
}

// NewValidator returns a Validator backed by the rule evaluator unless
// overridden.
func NewValidator(options ...ValidatorOption) *Validator {
	v := &Validator{eval: rules.New()}
	for _, opt := range options {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

var defaultValidator = NewValidator()

// IsVisible reports whether q is visible for answers.
func (v *Validator) IsVisible(q model.Question, answers model.AnswerSet) bool {
	return v.eval.Visible(q.ConditionalRules, answers)
}

// Visible returns the currently visible questions in form order.
func (v *Validator) Visible(form model.Form, answers model.AnswerSet) []model.Question {
	out := make([]model.Question, 0, len(form.Questions))
	for _, q := range form.Questions {
		if v.IsVisible(q, answers) {
			out = append(out, q)
		}
	}
	return out
}

// Validate checks that every visible required question has an answer. All
// missing questions are collected before returning.
func (v *Validator) Validate(form model.Form, answers model.AnswerSet) Result {
	result := Result{Valid: true}
	for _, q := range form.Questions {
		if !q.Required || !v.IsVisible(q, answers) {
			continue
		}
		value, _ := answers.Lookup(q.QuestionKey)
		if Answered(value) {
			continue
		}
		result.Missing = append(result.Missing, MissingAnswer{
			QuestionKey: q.QuestionKey,
			Label:       q.Label,
		})
	}
	result.Valid = len(result.Missing) == 0
	return result
}

// Validate checks answers with the default validator.
func Validate(form model.Form, answers model.AnswerSet) Result {
	return defaultValidator.Validate(form, answers)
}

// Visible returns the visible questions using the default validator.
func Visible(form model.Form, answers model.AnswerSet) []model.Question {
	return defaultValidator.Visible(form, answers)
}

// Answered reports whether value counts as an answer. Nil, the empty string,
// and empty sequences are treated as missing.
func Answered(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}
