package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tableform/pkg/form"
	"github.com/goliatone/go-tableform/pkg/model"
	"github.com/goliatone/go-tableform/pkg/visibility"
)

func conditionalForm() model.Form {
	return model.Form{
		ID:            "form-1",
		SourceBaseID:  "app1",
		SourceTableID: "tbl1",
		Questions: []model.Question{
			{
				QuestionKey: "q1",
				Label:       "Q1",
				Type:        model.QuestionTypeSingleSelect,
				Required:    true,
				Options:     []string{"yes", "no"},
			},
			{
				QuestionKey: "q2",
				Label:       "Q2",
				Type:        model.QuestionTypeShortText,
				Required:    true,
				Options:     []string{},
				ConditionalRules: &model.Rule{
					Logic: model.LogicAnd,
					Conditions: []model.Condition{
						{QuestionKey: "q1", Operator: model.OperatorEquals, Value: "yes"},
					},
				},
			},
		},
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	t.Parallel()

	f := conditionalForm()

	sub, err := form.Submit(f, model.AnswerSet{"q1": "no"})
	if err != nil {
		t.Fatalf("expected hidden q2 to be skipped, got %v", err)
	}
	if diff := cmp.Diff(model.AnswerSet{"q1": "no"}, sub.Answers); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if sub.FormID != "form-1" {
		t.Fatalf("form id = %q", sub.FormID)
	}

	_, err = form.Submit(f, model.AnswerSet{"q1": "yes"})
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if diff := cmp.Diff([]string{"Q2"}, verr.Result.Labels()); diff != "" {
		t.Fatalf("missing labels mismatch (-want +got):\n%s", diff)
	}

	if _, err := form.Submit(f, model.AnswerSet{"q1": "yes", "q2": "x"}); err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}
}

func TestValidateCollectsEveryMissingAnswer(t *testing.T) {
	t.Parallel()

	f := model.Form{
		Questions: []model.Question{
			{QuestionKey: "name", Label: "Name", Type: model.QuestionTypeShortText, Required: true},
			{QuestionKey: "bio", Label: "Bio", Type: model.QuestionTypeLongText},
			{QuestionKey: "tags", Label: "Tags", Type: model.QuestionTypeMultiSelect, Required: true},
			{QuestionKey: "files", Label: "Files", Type: model.QuestionTypeAttachment, Required: true},
			{QuestionKey: "color", Label: "Color", Type: model.QuestionTypeSingleSelect, Required: true},
		},
	}

	got := form.Validate(f, model.AnswerSet{
		"tags":  []string{},
		"files": []any{},
		"color": nil,
	})

	want := form.Result{
		Valid: false,
		Missing: []form.MissingAnswer{
			{QuestionKey: "name", Label: "Name"},
			{QuestionKey: "tags", Label: "Tags"},
			{QuestionKey: "files", Label: "Files"},
			{QuestionKey: "color", Label: "Color"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if msg := got.Message(); msg != "Please fill in required fields: Name, Tags, Files, Color" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestSubmitKeepsHiddenAnswers(t *testing.T) {
	t.Parallel()

	f := conditionalForm()
	answers := model.AnswerSet{"q1": "no", "q2": "stale"}

	sub, err := form.Submit(f, answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if diff := cmp.Diff(answers, sub.Answers); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}

	sub.Answers["q1"] = "changed"
	if answers["q1"] != "no" {
		t.Fatalf("submission must not alias the answer set")
	}
}

func TestVisibleIgnoresReferencedVisibility(t *testing.T) {
	t.Parallel()

	f := conditionalForm()
	f.Questions = append(f.Questions, model.Question{
		QuestionKey: "q3",
		Label:       "Q3",
		Type:        model.QuestionTypeShortText,
		ConditionalRules: &model.Rule{
			Logic: model.LogicAnd,
			Conditions: []model.Condition{
				{QuestionKey: "q2", Operator: model.OperatorEquals, Value: "x"},
			},
		},
	})

	// q2 is hidden but its stale answer still drives q3.
	visible := form.Visible(f, model.AnswerSet{"q1": "no", "q2": "x"})
	var keys []string
	for _, q := range visible {
		keys = append(keys, q.QuestionKey)
	}
	if diff := cmp.Diff([]string{"q1", "q3"}, keys); diff != "" {
		t.Fatalf("visible keys mismatch (-want +got):\n%s", diff)
	}
}

func TestValidatorWithCustomEvaluator(t *testing.T) {
	t.Parallel()

	hideAll := visibility.EvaluatorFunc(func(*model.Rule, model.AnswerSet) bool { return false })
	v := form.NewValidator(form.WithEvaluator(hideAll))

	result := v.Validate(conditionalForm(), model.AnswerSet{})
	if !result.Valid {
		t.Fatalf("expected hidden required questions to pass, got %+v", result)
	}
	if result.Message() != "" {
		t.Fatalf("expected empty message for valid result")
	}
}

func TestAnswered(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		value any
		want  bool
	}{
		"nil":           {nil, false},
		"empty string":  {"", false},
		"text":          {"x", true},
		"whitespace":    {" ", true},
		"empty strings": {[]string{}, false},
		"strings":       {[]string{"a"}, true},
		"empty decoded": {[]any{}, false},
		"decoded":       {[]any{"a"}, true},
		"number":        {float64(0), true},
	}
	for name, tc := range cases {
		if got := form.Answered(tc.value); got != tc.want {
			t.Fatalf("%s: Answered() = %v, want %v", name, got, tc.want)
		}
	}
}
