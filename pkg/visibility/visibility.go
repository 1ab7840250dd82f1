package visibility

import "github.com/goliatone/go-tableform/pkg/model"

// Evaluator decides whether a question with the given rule is visible for the
// answers collected so far. Implementations must be pure: no mutation of the
// rule or the answers.
type Evaluator interface {
	Visible(rule *model.Rule, answers model.AnswerSet) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(rule *model.Rule, answers model.AnswerSet) bool

// Visible delegates to the underlying function.
func (fn EvaluatorFunc) Visible(rule *model.Rule, answers model.AnswerSet) bool {
	return fn(rule, answers)
}
