package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tableform/pkg/form"
	"github.com/goliatone/go-tableform/pkg/model"
)

func TestAssembleNormalisesQuestions(t *testing.T) {
	t.Parallel()

	a := form.NewAssembler(form.WithIDGenerator(func() string { return "fixed" }))
	got, err := a.Assemble(" app1 ", "tbl1", []model.Question{
		{
			QuestionKey:      "field_a",
			SourceFieldID:    "a",
			Label:            "A",
			Type:             model.QuestionTypeShortText,
			ConditionalRules: &model.Rule{Logic: model.LogicOr},
		},
		{
			QuestionKey:   "field_b",
			SourceFieldID: "b",
			Label:         "B",
			Type:          model.QuestionTypeSingleSelect,
			Options:       []string{"x"},
			ConditionalRules: &model.Rule{
				Conditions: []model.Condition{{QuestionKey: "field_a", Operator: model.OperatorEquals, Value: "1"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := model.Form{
		ID:            "fixed",
		SourceBaseID:  "app1",
		SourceTableID: "tbl1",
		Questions: []model.Question{
			{
				QuestionKey:   "field_a",
				SourceFieldID: "a",
				Label:         "A",
				Type:          model.QuestionTypeShortText,
				Options:       []string{},
			},
			{
				QuestionKey:   "field_b",
				SourceFieldID: "b",
				Label:         "B",
				Type:          model.QuestionTypeSingleSelect,
				Options:       []string{"x"},
				ConditionalRules: &model.Rule{
					Logic:      model.LogicAnd,
					Conditions: []model.Condition{{QuestionKey: "field_a", Operator: model.OperatorEquals, Value: "1"}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleGeneratesIDs(t *testing.T) {
	t.Parallel()

	questions := []model.Question{{QuestionKey: "q1", Label: "Q1", Type: model.QuestionTypeShortText}}
	a := form.NewAssembler()
	first, err := a.Assemble("app1", "tbl1", questions)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	second, err := a.Assemble("app1", "tbl1", questions)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct generated ids, got %q and %q", first.ID, second.ID)
	}
}

func TestAssembleRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	valid := []model.Question{{QuestionKey: "q1", Label: "Q1", Type: model.QuestionTypeShortText}}
	a := form.NewAssembler()

	tests := []struct {
		name      string
		base      string
		table     string
		questions []model.Question
		want      error
	}{
		{"missing base", "", "tbl1", valid, form.ErrSourceBaseMissing},
		{"missing table", "app1", " ", valid, form.ErrSourceTableMissing},
		{"no questions", "app1", "tbl1", nil, form.ErrNoQuestions},
		{"duplicate key", "app1", "tbl1", append(valid, valid[0]), model.ErrDuplicateQuestionKey},
		{"empty key", "app1", "tbl1", []model.Question{{Type: model.QuestionTypeShortText}}, model.ErrQuestionKeyMissing},
		{"unknown type", "app1", "tbl1", []model.Question{{QuestionKey: "q", Type: "rating"}}, model.ErrUnknownQuestionType},
	}

	for _, tc := range tests {
		_, err := a.Assemble(tc.base, tc.table, tc.questions)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestAssembleKeepsDanglingReferences(t *testing.T) {
	t.Parallel()

	questions := []model.Question{{
		QuestionKey: "q1",
		Label:       "Q1",
		Type:        model.QuestionTypeShortText,
		ConditionalRules: &model.Rule{
			Logic: model.LogicAnd,
			Conditions: []model.Condition{
				{QuestionKey: "q1", Operator: model.OperatorEquals, Value: "self"},
				{QuestionKey: "gone", Operator: model.OperatorEquals, Value: "x"},
			},
		},
	}}
	got, err := form.NewAssembler().Assemble("app1", "tbl1", questions)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if n := len(got.Questions[0].ConditionalRules.Conditions); n != 2 {
		t.Fatalf("expected conditions to be kept, got %d", n)
	}
}
