// Package form assembles authored questions into a form definition and checks
// respondent answers against it at submit time.
//
// Only visible questions take part in validation: a required question hidden
// by its rule may stay unanswered. Visibility is computed per question from raw
// answers, so a condition that references a hidden question still sees that
// question's last answer. Submissions carry every answer verbatim, including
// stale answers of hidden questions.
package form
