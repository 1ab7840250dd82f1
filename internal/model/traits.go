package model

import "github.com/goliatone/go-tableform/pkg/catalog"

// TypeTraits describes how a question type collects answers.
type TypeTraits struct {
	HasOptions  bool
	MultiValued bool
}

var questionTraits = map[QuestionType]TypeTraits{
	QuestionTypeShortText:    {},
	QuestionTypeLongText:     {},
	QuestionTypeSingleSelect: {HasOptions: true},
	QuestionTypeMultiSelect:  {HasOptions: true, MultiValued: true},
	QuestionTypeAttachment:   {MultiValued: true},
}

var sourceTypes = map[string]QuestionType{
	catalog.TypeSingleLineText:      QuestionTypeShortText,
	catalog.TypeMultilineText:       QuestionTypeLongText,
	catalog.TypeRichText:            QuestionTypeLongText,
	catalog.TypeSingleSelect:        QuestionTypeSingleSelect,
	catalog.TypeMultipleSelects:     QuestionTypeMultiSelect,
	catalog.TypeMultipleAttachments: QuestionTypeAttachment,

	string(QuestionTypeShortText):   QuestionTypeShortText,
	string(QuestionTypeLongText):    QuestionTypeLongText,
	string(QuestionTypeMultiSelect): QuestionTypeMultiSelect,
	string(QuestionTypeAttachment):  QuestionTypeAttachment,
}

// Traits reports the traits of t. Unknown types report ok=false.
func (t QuestionType) Traits() (TypeTraits, bool) {
	traits, ok := questionTraits[t]
	return traits, ok
}

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	_, ok := questionTraits[t]
	return ok
}

// QuestionTypeFor maps a catalogue field type onto a question type. Source
// types without a dedicated question type are collected as short text.
func QuestionTypeFor(sourceType string) QuestionType {
	if qt, ok := sourceTypes[sourceType]; ok {
		return qt
	}
	return QuestionTypeShortText
}
