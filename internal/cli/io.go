package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tableform/pkg/model"
)

// loadForm reads a form document in JSON or YAML.
func loadForm(path string) (model.Form, error) {
	var f model.Form
	if err := decodeDocument(path, &f); err != nil {
		return model.Form{}, fmt.Errorf("load form: %w", err)
	}
	if err := model.ValidateForm(f); err != nil {
		return model.Form{}, fmt.Errorf("load form %s: %w", path, err)
	}
	return f, nil
}

// loadAnswers reads an answer set in JSON or YAML. A file holding a
// submission object ({"answers": {...}}) is accepted as well.
func loadAnswers(path string) (model.AnswerSet, error) {
	var raw map[string]any
	if err := decodeDocument(path, &raw); err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	if nested, ok := submissionAnswers(raw); ok {
		raw = nested
	}
	return normalizeAnswers(raw), nil
}

func submissionAnswers(raw map[string]any) (map[string]any, bool) {
	nested, ok := raw["answers"].(map[string]any)
	if !ok {
		return nil, false
	}
	for key := range raw {
		if key != "answers" && key != "formId" {
			return nil, false
		}
	}
	return nested, true
}

// decodeDocument decodes JSON directly and routes YAML through a generic
// value so the json tags of the model types apply to both formats.
func decodeDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return fmt.Errorf("%s is empty", path)
	}
	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("parse %s: invalid JSON or YAML: %w", path, err)
	}
	payload, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// normalizeAnswers turns decoded sequences into []string so multi-valued
// answers compare the same way regardless of the input format.
func normalizeAnswers(raw map[string]any) model.AnswerSet {
	out := make(model.AnswerSet, len(raw))
	for k, v := range raw {
		items, ok := v.([]any)
		if !ok {
			out[k] = v
			continue
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			values = append(values, fmt.Sprint(item))
		}
		out[k] = values
	}
	return out
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
