package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source field types as reported by the table API. The question builder maps
// them onto the closed question type set; anything not listed here is treated
// as free text.
const (
	TypeSingleLineText      = "singleLineText"
	TypeMultilineText       = "multilineText"
	TypeRichText            = "richText"
	TypeSingleSelect        = "singleSelect"
	TypeMultipleSelects     = "multipleSelects"
	TypeMultipleAttachments = "multipleAttachments"
)

// Field is a column definition read from the external table catalogue. It is
// read-only from the engine's point of view.
type Field struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Options Choices `json:"options,omitempty" yaml:"options,omitempty"`
}

// Choices is the ordered list of enumerated values for select-like fields.
//
// Catalogue payloads are inconsistent about the shape: a plain list of
// strings, a list of `{name: ...}` objects, or an object wrapping the list in
// `choices`. All three decode into the same ordered slice.
type Choices []string

type choiceObject struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

type choiceEnvelope struct {
	Choices []json.RawMessage `json:"choices"`
}

var errChoiceShape = errors.New("catalog: options must be a list of strings, a list of {name} objects, or {choices: [...]}")

// UnmarshalJSON accepts every supported options shape.
func (c *Choices) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*c = nil
		return nil
	}

	var items []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("catalog: decode options: %w", err)
		}
	case '{':
		var env choiceEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("catalog: decode options: %w", err)
		}
		items = env.Choices
	default:
		return errChoiceShape
	}

	out := make(Choices, 0, len(items))
	for _, raw := range items {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			out = append(out, name)
			continue
		}
		var obj choiceObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			return errChoiceShape
		}
		out = append(out, obj.Name)
	}
	*c = out
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML catalogues.
func (c *Choices) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return c.fromSequence(node.Content)
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "choices" {
				return c.fromSequence(node.Content[i+1].Content)
			}
		}
		*c = Choices{}
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*c = nil
			return nil
		}
	}
	return errChoiceShape
}

func (c *Choices) fromSequence(items []*yaml.Node) error {
	out := make(Choices, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case yaml.ScalarNode:
			out = append(out, item.Value)
		case yaml.MappingNode:
			var obj choiceObject
			if err := item.Decode(&obj); err != nil {
				return fmt.Errorf("catalog: decode option: %w", err)
			}
			out = append(out, obj.Name)
		default:
			return errChoiceShape
		}
	}
	*c = out
	return nil
}

// Lookup returns the field with the given id.
func Lookup(fields []Field, id string) (Field, bool) {
	for _, field := range fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
