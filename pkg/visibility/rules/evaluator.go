package rules

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-tableform/pkg/model"
	"github.com/goliatone/go-tableform/pkg/visibility"
)

// Evaluator resolves question visibility from a rule and raw answers.
//
// Supported operators:
// - `equals`: exact, case-sensitive match; for sequence answers, membership
// - `notEquals`: negation of `equals` on an answered question
// - `contains`: case-insensitive substring; sequences are joined with a space
//
// A condition whose referenced answer is missing, nil, or the empty string is
// false under every operator. Unknown operators are false, and unknown logic
// combines like AND. Conditions look at raw answers only; the visibility of
// the referenced question is not considered.
type Evaluator struct{}

var _ visibility.Evaluator = Evaluator{}

func New() Evaluator { return Evaluator{} }

// Visible reports whether a question governed by rule should be shown.
func (Evaluator) Visible(rule *model.Rule, answers model.AnswerSet) bool {
	return Visible(rule, answers)
}

// Visible is the function form of Evaluator.Visible.
func Visible(rule *model.Rule, answers model.AnswerSet) bool {
	if rule.Empty() {
		return true
	}

	if rule.Logic == model.LogicOr {
		for _, cond := range rule.Conditions {
			if Match(cond, answers) {
				return true
			}
		}
		return false
	}

	for _, cond := range rule.Conditions {
		if !Match(cond, answers) {
			return false
		}
	}
	return true
}

// Match evaluates a single condition against answers.
func Match(cond model.Condition, answers model.AnswerSet) bool {
	answer, ok := answers.Lookup(cond.QuestionKey)
	if !ok || unanswered(answer) {
		return false
	}

	switch cond.Operator {
	case model.OperatorEquals:
		return equals(answer, cond.Value)
	case model.OperatorNotEquals:
		return !equals(answer, cond.Value)
	case model.OperatorContains:
		return contains(answer, cond.Value)
	default:
		return false
	}
}

func unanswered(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

func equals(answer any, want string) bool {
	if items, ok := Sequence(answer); ok {
		for _, item := range items {
			if item == want {
				return true
			}
		}
		return false
	}
	return CoerceString(answer) == want
}

func contains(answer any, want string) bool {
	haystack := ""
	if items, ok := Sequence(answer); ok {
		haystack = strings.Join(items, " ")
	} else {
		haystack = CoerceString(answer)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(want))
}

// Sequence reports whether value is a multi-valued answer and returns its
// items in string form.
func Sequence(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = CoerceString(item)
		}
		return out, true
	default:
		return nil, false
	}
}

// CoerceString returns the string form conditions compare a scalar answer by.
func CoerceString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
