package model

import internalmodel "github.com/goliatone/go-tableform/internal/model"

// QuestionType re-exports the internal QuestionType enumeration.
type QuestionType = internalmodel.QuestionType

const (
	QuestionTypeShortText    = internalmodel.QuestionTypeShortText
	QuestionTypeLongText     = internalmodel.QuestionTypeLongText
	QuestionTypeSingleSelect = internalmodel.QuestionTypeSingleSelect
	QuestionTypeMultiSelect  = internalmodel.QuestionTypeMultiSelect
	QuestionTypeAttachment   = internalmodel.QuestionTypeAttachment
)

type Logic = internalmodel.Logic

const (
	LogicAnd = internalmodel.LogicAnd
	LogicOr  = internalmodel.LogicOr
)

type Operator = internalmodel.Operator

const (
	OperatorEquals    = internalmodel.OperatorEquals
	OperatorNotEquals = internalmodel.OperatorNotEquals
	OperatorContains  = internalmodel.OperatorContains
)

type TypeTraits = internalmodel.TypeTraits
type Condition = internalmodel.Condition
type Rule = internalmodel.Rule
type Question = internalmodel.Question
type Form = internalmodel.Form
type AnswerSet = internalmodel.AnswerSet

var (
	ErrFieldIDMissing       = internalmodel.ErrFieldIDMissing
	ErrQuestionKeyMissing   = internalmodel.ErrQuestionKeyMissing
	ErrDuplicateQuestionKey = internalmodel.ErrDuplicateQuestionKey
	ErrQuestionNotFound     = internalmodel.ErrQuestionNotFound
	ErrUnknownQuestionType  = internalmodel.ErrUnknownQuestionType
)

// QuestionTypeFor maps a catalogue field type onto a question type.
func QuestionTypeFor(sourceType string) QuestionType {
	return internalmodel.QuestionTypeFor(sourceType)
}

// ValidateForm checks question key uniqueness and question types.
func ValidateForm(form Form) error {
	return internalmodel.ValidateForm(form)
}
