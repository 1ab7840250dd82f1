// Package model defines the question model a questionnaire is assembled from.
// A Question wraps one catalogue field and optionally carries a Rule, a single
// AND/OR operator over a list of Conditions that compare other questions'
// answers with literal values. Question keys, never source field ids, link
// conditions to answers, and the closed QuestionType set decides once, at
// build time, whether a question offers options and whether it collects a
// sequence of values. Builders reside in internal/model but return the types
// defined here.
package model
