package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-tableform/pkg/model"
)

var (
	ErrSourceBaseMissing  = errors.New("form assembler: source base id is required")
	ErrSourceTableMissing = errors.New("form assembler: source table id is required")
	ErrNoQuestions        = errors.New("form assembler: at least one question is required")
)

// Assembler packages an ordered list of questions into a Form.
type Assembler struct {
	newID func() string
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithIDGenerator overrides how form ids are generated. Returning an empty
// string leaves the id for the persistence layer to assign.
func WithIDGenerator(fn func() string) AssemblerOption {
	return func(a *Assembler) {
		if fn != nil {
			a.newID = fn
		}
	}
}

// NewAssembler returns an Assembler that assigns random UUIDs as form ids.
func NewAssembler(options ...AssemblerOption) *Assembler {
	a := &Assembler{newID: uuid.NewString}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Assemble normalises the questions (empty rules collapse to nil, options are
// never nil) and validates the structural invariants of the resulting form.
func (a *Assembler) Assemble(baseID, tableID string, questions []model.Question) (model.Form, error) {
	base := strings.TrimSpace(baseID)
	if base == "" {
		return model.Form{}, ErrSourceBaseMissing
	}
	table := strings.TrimSpace(tableID)
	if table == "" {
		return model.Form{}, ErrSourceTableMissing
	}
	if len(questions) == 0 {
		return model.Form{}, ErrNoQuestions
	}

	form := model.Form{
		ID:            a.newID(),
		SourceBaseID:  base,
		SourceTableID: table,
		Questions:     make([]model.Question, 0, len(questions)),
	}
	for _, q := range questions {
		form.Questions = append(form.Questions, q.Normalize())
	}

	if err := model.ValidateForm(form); err != nil {
		return model.Form{}, fmt.Errorf("form assembler: %w", err)
	}
	return form, nil
}
