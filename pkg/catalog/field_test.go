package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestChoicesUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Choices
	}{
		{"strings", `["a","b"]`, Choices{"a", "b"}},
		{"objects", `[{"id":"x","name":"a"},{"name":"b"}]`, Choices{"a", "b"}},
		{"envelope", `{"choices":[{"name":"a"},"b"]}`, Choices{"a", "b"}},
		{"empty envelope", `{}`, Choices{}},
		{"null", `null`, nil},
	}
	for _, tc := range tests {
		var got Choices
		if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: mismatch (-want +got):\n%s", tc.name, diff)
		}
	}

	var bad Choices
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Fatalf("expected scalar options to be rejected")
	}
	if err := json.Unmarshal([]byte(`[1]`), &bad); err == nil {
		t.Fatalf("expected numeric option to be rejected")
	}
}

func TestChoicesUnmarshalYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Choices
	}{
		{"strings", "[a, b]", Choices{"a", "b"}},
		{"objects", "- name: a\n- id: x\n  name: b\n", Choices{"a", "b"}},
		{"envelope", "choices:\n  - a\n  - name: b\n", Choices{"a", "b"}},
	}
	for _, tc := range tests {
		var got Choices
		if err := yaml.Unmarshal([]byte(tc.input), &got); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	fields := []Field{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	if f, ok := Lookup(fields, "b"); !ok || f.Name != "B" {
		t.Fatalf("expected to find b, got %+v ok=%v", f, ok)
	}
	if _, ok := Lookup(fields, "c"); ok {
		t.Fatalf("unexpected match for c")
	}
}
