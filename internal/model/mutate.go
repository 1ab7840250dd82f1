package model

import (
	"fmt"
	"strings"
)

// UpdateQuestion returns a copy of the form with fn applied to the question
// identified by key. Other questions are left untouched.
func (f Form) UpdateQuestion(key string, fn func(*Question)) (Form, error) {
	idx := f.indexOf(key)
	if idx < 0 {
		return f, fmt.Errorf("%w: %q", ErrQuestionNotFound, key)
	}
	out := f
	out.Questions = append([]Question(nil), f.Questions...)
	q := out.Questions[idx]
	fn(&q)
	out.Questions[idx] = q
	return out, nil
}

// SetLabel replaces the label of the question identified by key.
func (f Form) SetLabel(key, label string) (Form, error) {
	return f.UpdateQuestion(key, func(q *Question) { q.Label = label })
}

// SetRequired toggles whether the question must be answered when visible.
func (f Form) SetRequired(key string, required bool) (Form, error) {
	return f.UpdateQuestion(key, func(q *Question) { q.Required = required })
}

// SetOptions replaces the option list of the question identified by key.
func (f Form) SetOptions(key string, options []string) (Form, error) {
	return f.UpdateQuestion(key, func(q *Question) {
		q.Options = append([]string{}, options...)
	})
}

// SetQuestionKey renames a question. The new key must be non-empty and not
// used by another question. Conditions referring to the old key are not
// rewritten.
func (f Form) SetQuestionKey(key, newKey string) (Form, error) {
	next := strings.TrimSpace(newKey)
	if next == "" {
		return f, ErrQuestionKeyMissing
	}
	if next != key && f.indexOf(next) >= 0 {
		return f, fmt.Errorf("%w: %q", ErrDuplicateQuestionKey, next)
	}
	return f.UpdateQuestion(key, func(q *Question) { q.QuestionKey = next })
}

// AppendQuestion adds q at the end of the form.
func (f Form) AppendQuestion(q Question) (Form, error) {
	if strings.TrimSpace(q.QuestionKey) == "" {
		return f, ErrQuestionKeyMissing
	}
	if f.indexOf(q.QuestionKey) >= 0 {
		return f, fmt.Errorf("%w: %q", ErrDuplicateQuestionKey, q.QuestionKey)
	}
	out := f
	out.Questions = append(append([]Question(nil), f.Questions...), q)
	return out, nil
}

// RemoveQuestion drops the question identified by key. Conditions in other
// questions that reference it are kept and will no longer match.
func (f Form) RemoveQuestion(key string) (Form, error) {
	idx := f.indexOf(key)
	if idx < 0 {
		return f, fmt.Errorf("%w: %q", ErrQuestionNotFound, key)
	}
	out := f
	out.Questions = make([]Question, 0, len(f.Questions)-1)
	out.Questions = append(out.Questions, f.Questions[:idx]...)
	out.Questions = append(out.Questions, f.Questions[idx+1:]...)
	return out, nil
}
