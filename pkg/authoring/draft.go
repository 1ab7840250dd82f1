package authoring

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-tableform/pkg/catalog"
	"github.com/goliatone/go-tableform/pkg/form"
	"github.com/goliatone/go-tableform/pkg/model"
)

var (
	ErrFieldNotFound      = errors.New("authoring: field not found in catalogue")
	ErrFieldSelected      = errors.New("authoring: field already selected")
	ErrFieldNotSelected   = errors.New("authoring: field is not selected")
	ErrQuestionNotFound   = model.ErrQuestionNotFound
	ErrDuplicateQuestion  = model.ErrDuplicateQuestionKey
	ErrQuestionKeyMissing = model.ErrQuestionKeyMissing
)

// Draft owns the questions of a form under construction. It is the single
// authoritative owner of authoring state and is not safe for concurrent use;
// callers serialise operator actions.
type Draft struct {
	builder   model.Builder
	assembler *form.Assembler
	fields    []catalog.Field
	form      model.Form
}

// Option configures a Draft.
type Option func(*Draft)

// WithBuilder overrides the builder used to create default questions.
func WithBuilder(builder model.Builder) Option {
	return func(d *Draft) {
		if builder != nil {
			d.builder = builder
		}
	}
}

// WithAssembler overrides the assembler used by Build.
func WithAssembler(assembler *form.Assembler) Option {
	return func(d *Draft) {
		if assembler != nil {
			d.assembler = assembler
		}
	}
}

// NewDraft returns an empty draft.
func NewDraft(options ...Option) *Draft {
	d := &Draft{
		builder:   model.NewBuilder(),
		assembler: form.NewAssembler(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// SelectSource binds the draft to a table and its field catalogue. The
// current selection is cleared, since questions from another table no longer
// apply.
func (d *Draft) SelectSource(baseID, tableID string, fields []catalog.Field) {
	d.fields = append([]catalog.Field(nil), fields...)
	d.form = model.Form{
		SourceBaseID:  baseID,
		SourceTableID: tableID,
	}
}

// Fields returns the catalogue bound by SelectSource.
func (d *Draft) Fields() []catalog.Field {
	return append([]catalog.Field(nil), d.fields...)
}

// Questions returns a copy of the selected questions in order.
func (d *Draft) Questions() []model.Question {
	return append([]model.Question(nil), d.form.Questions...)
}

// Question returns the selected question with the given key.
func (d *Draft) Question(key string) (model.Question, bool) {
	return d.form.Question(key)
}

// Selected reports whether a question exists for fieldID.
func (d *Draft) Selected(fieldID string) bool {
	_, ok := d.questionForField(fieldID)
	return ok
}

// SelectField appends the default question for fieldID.
func (d *Draft) SelectField(fieldID string) (model.Question, error) {
	if d.Selected(fieldID) {
		return model.Question{}, fmt.Errorf("%w: %q", ErrFieldSelected, fieldID)
	}
	field, ok := catalog.Lookup(d.fields, fieldID)
	if !ok {
		return model.Question{}, fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}
	q, err := d.builder.Build(field)
	if err != nil {
		return model.Question{}, err
	}
	next, err := d.form.AppendQuestion(q)
	if err != nil {
		return model.Question{}, err
	}
	d.form = next
	return q, nil
}

// DeselectField removes the question for fieldID. Conditions in other
// questions that reference it are left in place.
func (d *Draft) DeselectField(fieldID string) error {
	q, ok := d.questionForField(fieldID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotSelected, fieldID)
	}
	next, err := d.form.RemoveQuestion(q.QuestionKey)
	if err != nil {
		return err
	}
	d.form = next
	return nil
}

// ToggleField selects an unselected field or deselects a selected one. It
// reports whether the field is selected afterwards.
func (d *Draft) ToggleField(fieldID string) (bool, error) {
	if d.Selected(fieldID) {
		return false, d.DeselectField(fieldID)
	}
	if _, err := d.SelectField(fieldID); err != nil {
		return false, err
	}
	return true, nil
}

// SetLabel replaces a question's label.
func (d *Draft) SetLabel(key, label string) error {
	return d.apply(func(f model.Form) (model.Form, error) { return f.SetLabel(key, label) })
}

// SetRequired toggles whether a visible question must be answered.
func (d *Draft) SetRequired(key string, required bool) error {
	return d.apply(func(f model.Form) (model.Form, error) { return f.SetRequired(key, required) })
}

// SetQuestionKey renames a question. Conditions elsewhere keep the old key.
func (d *Draft) SetQuestionKey(key, newKey string) error {
	return d.apply(func(f model.Form) (model.Form, error) { return f.SetQuestionKey(key, newKey) })
}

// SetOptions replaces a question's option list.
func (d *Draft) SetOptions(key string, options []string) error {
	return d.apply(func(f model.Form) (model.Form, error) { return f.SetOptions(key, options) })
}

// EnableConditionalLogic attaches an empty AND rule to the question.
func (d *Draft) EnableConditionalLogic(key string) error {
	return d.applyRule(key, func(r *model.Rule) (*model.Rule, error) {
		return EnableConditionalLogic(r), nil
	})
}

// DisableConditionalLogic drops the question's rule.
func (d *Draft) DisableConditionalLogic(key string) error {
	return d.applyRule(key, func(r *model.Rule) (*model.Rule, error) {
		return DisableConditionalLogic(r), nil
	})
}

// SetLogic replaces the logic operator of the question's rule.
func (d *Draft) SetLogic(key string, logic model.Logic) error {
	return d.applyRule(key, func(r *model.Rule) (*model.Rule, error) {
		return SetLogic(r, logic)
	})
}

// AddCondition appends an unconfigured condition and returns its index.
func (d *Draft) AddCondition(key string) (int, error) {
	index := -1
	err := d.applyRule(key, func(r *model.Rule) (*model.Rule, error) {
		next, err := AddCondition(r)
		if err != nil {
			return nil, err
		}
		index = len(next.Conditions) - 1
		return next, nil
	})
	return index, err
}

// UpdateCondition merges patch into the question's condition at index.
func (d *Draft) UpdateCondition(key string, index int, patch ConditionPatch) error {
	return d.applyRule(key, func(r *model.Rule) (*model.Rule, error) {
		return UpdateCondition(r, index, patch)
	})
}

// RemoveCondition removes the question's condition at index, dropping the
// rule entirely when it was the last one.
func (d *Draft) RemoveCondition(key string, index int) error {
	return d.applyRule(key, func(r *model.Rule) (*model.Rule, error) {
		return RemoveCondition(r, index)
	})
}

// Build assembles the selected questions into a form.
func (d *Draft) Build() (model.Form, error) {
	return d.assembler.Assemble(d.form.SourceBaseID, d.form.SourceTableID, d.form.Questions)
}

func (d *Draft) apply(fn func(model.Form) (model.Form, error)) error {
	next, err := fn(d.form)
	if err != nil {
		return err
	}
	d.form = next
	return nil
}

func (d *Draft) applyRule(key string, fn func(*model.Rule) (*model.Rule, error)) error {
	q, ok := d.form.Question(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrQuestionNotFound, key)
	}
	rule, err := fn(q.ConditionalRules)
	if err != nil {
		return err
	}
	return d.apply(func(f model.Form) (model.Form, error) {
		return f.UpdateQuestion(key, func(q *model.Question) { q.ConditionalRules = rule })
	})
}

func (d *Draft) questionForField(fieldID string) (model.Question, bool) {
	for _, q := range d.form.Questions {
		if q.SourceFieldID == fieldID {
			return q, true
		}
	}
	return model.Question{}, false
}
