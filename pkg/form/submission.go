package form

import "github.com/goliatone/go-tableform/pkg/model"

// Submission is the payload handed to the persistence collaborator.
type Submission struct {
	FormID  string          `json:"formId,omitempty"`
	Answers model.AnswerSet `json:"answers"`
}

// ValidationError reports a rejected submission. Result lists every missing
// question.
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	return "form validation: " + e.Result.Message()
}

// Submit validates answers and, on success, returns a submission carrying a
// copy of every answer, including answers of currently hidden questions.
func (v *Validator) Submit(form model.Form, answers model.AnswerSet) (Submission, error) {
	result := v.Validate(form, answers)
	if !result.Valid {
		return Submission{}, &ValidationError{Result: result}
	}
	return Submission{
		FormID:  form.ID,
		Answers: answers.Clone(),
	}, nil
}

// Submit validates and packages answers with the default validator.
func Submit(form model.Form, answers model.AnswerSet) (Submission, error) {
	return defaultValidator.Submit(form, answers)
}
