package model

// QuestionType is the closed set of question kinds a form can carry.
type QuestionType string

const (
	QuestionTypeShortText    QuestionType = "shortText"
	QuestionTypeLongText     QuestionType = "longText"
	QuestionTypeSingleSelect QuestionType = "singleSelect"
	QuestionTypeMultiSelect  QuestionType = "multiSelect"
	QuestionTypeAttachment   QuestionType = "attachment"
)

// Logic combines the outcome of a rule's conditions. Unrecognised values are
// evaluated as LogicAnd.
type Logic string

const (
	LogicAnd Logic = "AND"
	LogicOr  Logic = "OR"
)

// Operator compares a referenced answer with a condition value. Unrecognised
// operators never match.
type Operator string

const (
	OperatorEquals    Operator = "equals"
	OperatorNotEquals Operator = "notEquals"
	OperatorContains  Operator = "contains"
)

// Condition is an atomic comparison against another question's answer.
// QuestionKey may reference a question that no longer exists; such conditions
// evaluate to false.
type Condition struct {
	QuestionKey string   `json:"questionKey" yaml:"questionKey"`
	Operator    Operator `json:"operator" yaml:"operator"`
	Value       string   `json:"value" yaml:"value"`
}

// Rule decides a question's visibility. A rule without conditions places no
// restriction on the question.
type Rule struct {
	Logic      Logic       `json:"logic" yaml:"logic"`
	Conditions []Condition `json:"conditions" yaml:"conditions"`
}

// Question is the questionnaire-facing wrapper around a single source field.
// QuestionKey is unique within a form and is the only key used by conditions
// and answer sets.
type Question struct {
	QuestionKey      string       `json:"questionKey" yaml:"questionKey"`
	SourceFieldID    string       `json:"sourceFieldId" yaml:"sourceFieldId"`
	Label            string       `json:"label" yaml:"label"`
	Type             QuestionType `json:"type" yaml:"type"`
	Required         bool         `json:"required" yaml:"required"`
	Options          []string     `json:"options" yaml:"options"`
	ConditionalRules *Rule        `json:"conditionalRules" yaml:"conditionalRules"`
}

// Form is an ordered collection of questions bound to one source table. The
// order of Questions is the presentation order.
type Form struct {
	ID            string     `json:"id,omitempty" yaml:"id,omitempty"`
	SourceBaseID  string     `json:"sourceBaseId" yaml:"sourceBaseId"`
	SourceTableID string     `json:"sourceTableId" yaml:"sourceTableId"`
	Questions     []Question `json:"questions" yaml:"questions"`
}

// AnswerSet maps question keys to answer values. Values are strings for text
// and single-select questions and string sequences for multi-select and
// attachment questions; decoded payloads may also carry []any or nil.
type AnswerSet map[string]any

// Lookup returns the raw answer for key.
func (a AnswerSet) Lookup(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a[key]
	return v, ok
}

// Clone returns a shallow copy with fresh sequence values.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return AnswerSet{}
	}
	out := make(AnswerSet, len(a))
	for k, v := range a {
		switch typed := v.(type) {
		case []string:
			out[k] = append([]string(nil), typed...)
		case []any:
			out[k] = append([]any(nil), typed...)
		default:
			out[k] = v
		}
	}
	return out
}

// Question returns the question with the given key.
func (f Form) Question(key string) (Question, bool) {
	idx := f.indexOf(key)
	if idx < 0 {
		return Question{}, false
	}
	return f.Questions[idx], true
}

func (f Form) indexOf(key string) int {
	for i, q := range f.Questions {
		if q.QuestionKey == key {
			return i
		}
	}
	return -1
}
