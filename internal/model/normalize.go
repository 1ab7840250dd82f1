package model

// Empty reports whether the rule places no restriction on visibility.
func (r *Rule) Empty() bool {
	return r == nil || len(r.Conditions) == 0
}

// Clone returns a deep copy of r.
func (r *Rule) Clone() *Rule {
	if r == nil {
		return nil
	}
	return &Rule{
		Logic:      r.Logic,
		Conditions: append([]Condition{}, r.Conditions...),
	}
}

// Normalize collapses a rule without conditions to nil and fills in the
// default logic.
func (r *Rule) Normalize() *Rule {
	if r.Empty() {
		return nil
	}
	out := r.Clone()
	if out.Logic == "" {
		out.Logic = LogicAnd
	}
	return out
}

// Normalize returns the persisted shape of q: options never nil and the rule
// normalised.
func (q Question) Normalize() Question {
	out := q
	out.Options = append([]string{}, q.Options...)
	out.ConditionalRules = q.ConditionalRules.Normalize()
	return out
}
