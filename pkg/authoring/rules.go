package authoring

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-tableform/pkg/model"
)

var (
	// ErrNoRule is returned by transitions that require conditional logic to be
	// enabled first.
	ErrNoRule = errors.New("authoring: conditional logic is not enabled")
	// ErrConditionIndex is returned for an index outside the condition list.
	ErrConditionIndex = errors.New("authoring: condition index out of range")
)

// ConditionPatch carries the fields to merge into an existing condition. Nil
// fields are left unchanged.
type ConditionPatch struct {
	QuestionKey *string
	Operator    *model.Operator
	Value       *string
}

// States: a nil rule is NoRule, any non-nil rule is HasRule. Every transition
// returns a fresh rule and never mutates its input.

// EnableConditionalLogic moves NoRule to HasRule{AND, []}. A rule that is
// already enabled is returned unchanged.
func EnableConditionalLogic(rule *model.Rule) *model.Rule {
	if rule != nil {
		return rule.Clone()
	}
	return &model.Rule{Logic: model.LogicAnd, Conditions: []model.Condition{}}
}

// DisableConditionalLogic discards the rule and all of its conditions.
func DisableConditionalLogic(*model.Rule) *model.Rule {
	return nil
}

// SetLogic replaces the logic operator of an enabled rule.
func SetLogic(rule *model.Rule, logic model.Logic) (*model.Rule, error) {
	if rule == nil {
		return nil, ErrNoRule
	}
	out := rule.Clone()
	out.Logic = logic
	return out, nil
}

// AddCondition appends an unconfigured `equals` condition.
func AddCondition(rule *model.Rule) (*model.Rule, error) {
	if rule == nil {
		return nil, ErrNoRule
	}
	out := rule.Clone()
	out.Conditions = append(out.Conditions, model.Condition{Operator: model.OperatorEquals})
	return out, nil
}

// UpdateCondition merges patch into the condition at index. The referenced
// question key is not checked.
func UpdateCondition(rule *model.Rule, index int, patch ConditionPatch) (*model.Rule, error) {
	if rule == nil {
		return nil, ErrNoRule
	}
	if index < 0 || index >= len(rule.Conditions) {
		return rule, fmt.Errorf("%w: %d", ErrConditionIndex, index)
	}
	out := rule.Clone()
	cond := out.Conditions[index]
	if patch.QuestionKey != nil {
		cond.QuestionKey = *patch.QuestionKey
	}
	if patch.Operator != nil {
		cond.Operator = *patch.Operator
	}
	if patch.Value != nil {
		cond.Value = *patch.Value
	}
	out.Conditions[index] = cond
	return out, nil
}

// RemoveCondition drops the condition at index. Removing the last condition
// collapses the rule back to NoRule.
func RemoveCondition(rule *model.Rule, index int) (*model.Rule, error) {
	if rule == nil {
		return nil, ErrNoRule
	}
	if index < 0 || index >= len(rule.Conditions) {
		return rule, fmt.Errorf("%w: %d", ErrConditionIndex, index)
	}
	if len(rule.Conditions) == 1 {
		return nil, nil
	}
	out := rule.Clone()
	out.Conditions = append(out.Conditions[:index], out.Conditions[index+1:]...)
	return out, nil
}
