package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleForm() Form {
	return Form{
		SourceBaseID:  "app1",
		SourceTableID: "tbl1",
		Questions: []Question{
			{QuestionKey: "a", Label: "A", Type: QuestionTypeShortText, Options: []string{}},
			{
				QuestionKey: "b",
				Label:       "B",
				Type:        QuestionTypeSingleSelect,
				Options:     []string{"x"},
				ConditionalRules: &Rule{
					Logic:      LogicAnd,
					Conditions: []Condition{{QuestionKey: "a", Operator: OperatorEquals, Value: "1"}},
				},
			},
		},
	}
}

func TestFormMutationsReturnNewValue(t *testing.T) {
	t.Parallel()

	original := sampleForm()

	updated, err := original.SetLabel("a", "Alpha")
	if err != nil {
		t.Fatalf("set label: %v", err)
	}
	updated, err = updated.SetRequired("b", true)
	if err != nil {
		t.Fatalf("set required: %v", err)
	}
	updated, err = updated.SetOptions("b", []string{"y", "z"})
	if err != nil {
		t.Fatalf("set options: %v", err)
	}

	if diff := cmp.Diff(sampleForm(), original); diff != "" {
		t.Fatalf("original form mutated (-want +got):\n%s", diff)
	}

	want := sampleForm()
	want.Questions[0].Label = "Alpha"
	want.Questions[1].Required = true
	want.Questions[1].Options = []string{"y", "z"}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("updated form mismatch (-want +got):\n%s", diff)
	}
}

func TestSetQuestionKey(t *testing.T) {
	t.Parallel()

	f := sampleForm()
	if _, err := f.SetQuestionKey("a", "b"); !errors.Is(err, ErrDuplicateQuestionKey) {
		t.Fatalf("expected ErrDuplicateQuestionKey, got %v", err)
	}
	if _, err := f.SetQuestionKey("a", ""); !errors.Is(err, ErrQuestionKeyMissing) {
		t.Fatalf("expected ErrQuestionKeyMissing, got %v", err)
	}
	if _, err := f.SetQuestionKey("missing", "c"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}

	renamed, err := f.SetQuestionKey("a", "alpha")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if _, ok := renamed.Question("alpha"); !ok {
		t.Fatalf("expected renamed question")
	}
	// Conditions keep pointing at the old key.
	b, _ := renamed.Question("b")
	if b.ConditionalRules.Conditions[0].QuestionKey != "a" {
		t.Fatalf("conditions must not be rewritten")
	}

	same, err := f.SetQuestionKey("a", "a")
	if err != nil {
		t.Fatalf("renaming to the same key should succeed: %v", err)
	}
	if diff := cmp.Diff(f, same); diff != "" {
		t.Fatalf("unexpected change (-want +got):\n%s", diff)
	}
}

func TestAppendAndRemoveQuestion(t *testing.T) {
	t.Parallel()

	f := sampleForm()
	if _, err := f.AppendQuestion(Question{QuestionKey: "a"}); !errors.Is(err, ErrDuplicateQuestionKey) {
		t.Fatalf("expected ErrDuplicateQuestionKey, got %v", err)
	}
	if _, err := f.AppendQuestion(Question{}); !errors.Is(err, ErrQuestionKeyMissing) {
		t.Fatalf("expected ErrQuestionKeyMissing, got %v", err)
	}

	removed, err := f.RemoveQuestion("a")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(removed.Questions) != 1 || len(f.Questions) != 2 {
		t.Fatalf("unexpected lengths: removed=%d original=%d", len(removed.Questions), len(f.Questions))
	}
	b, _ := removed.Question("b")
	if b.ConditionalRules == nil || b.ConditionalRules.Conditions[0].QuestionKey != "a" {
		t.Fatalf("dangling condition must be kept")
	}
	if _, err := removed.RemoveQuestion("a"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	q := Question{QuestionKey: "a", ConditionalRules: &Rule{Logic: LogicOr, Conditions: []Condition{}}}
	got := q.Normalize()
	if got.ConditionalRules != nil {
		t.Fatalf("expected empty rule to collapse")
	}
	if got.Options == nil {
		t.Fatalf("expected non-nil options")
	}

	q.ConditionalRules = &Rule{Conditions: []Condition{{QuestionKey: "b"}}}
	got = q.Normalize()
	if got.ConditionalRules.Logic != LogicAnd {
		t.Fatalf("expected default logic AND, got %q", got.ConditionalRules.Logic)
	}
	if q.ConditionalRules.Logic != "" {
		t.Fatalf("normalize must not mutate the input rule")
	}
}

func TestDefaultLabeler(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"  Full   Name ":         "Full Name",
		"<script>x</script>Name": "Name",
		"<i>Tom</i> &amp; Jerry": "Tom & Jerry",
		"":                       "",
	}
	for in, want := range cases {
		if got := DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
	if got := Humanize("first_name"); got != "First Name" {
		t.Fatalf("Humanize = %q", got)
	}
}
