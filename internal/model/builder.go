package model

import (
	"errors"
	"strings"

	"github.com/goliatone/go-tableform/pkg/catalog"
)

// ErrFieldIDMissing is returned when a catalogue field has no id to derive a
// question key from.
var ErrFieldIDMissing = errors.New("model builder: field id is required")

// Builder converts catalogue fields into questions.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.KeyPrefix != "" {
		opts.KeyPrefix = options.KeyPrefix
	}
	return &Builder{opts: opts}
}

// Build produces the default question for field: not required, no
// conditional rules, and options copied only for select-like types.
func (b *Builder) Build(field catalog.Field) (Question, error) {
	id := strings.TrimSpace(field.ID)
	if id == "" {
		return Question{}, ErrFieldIDMissing
	}

	qt := QuestionTypeFor(field.Type)
	label := b.opts.Labeler(field.Name)
	if label == "" {
		label = Humanize(id)
	}

	question := Question{
		QuestionKey:   b.Key(id),
		SourceFieldID: id,
		Label:         label,
		Type:          qt,
		Options:       []string{},
	}
	if traits, _ := qt.Traits(); traits.HasOptions && len(field.Options) > 0 {
		question.Options = append([]string(nil), field.Options...)
	}
	return question, nil
}

// BuildAll builds one question per field, preserving order.
func (b *Builder) BuildAll(fields []catalog.Field) ([]Question, error) {
	out := make([]Question, 0, len(fields))
	for _, field := range fields {
		q, err := b.Build(field)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Key derives the question key for a field id.
func (b *Builder) Key(fieldID string) string {
	return b.opts.KeyPrefix + strings.TrimSpace(fieldID)
}
