package schema

import (
	"fmt"
	"regexp"
	"strconv"
)

// Constraint kinds accepted by ParseConstraint.
const (
	ConstraintMinLength = "minLength"
	ConstraintMaxLength = "maxLength"
	ConstraintPattern   = "pattern"
)

// ConstraintSpec is the raw constraint shape found in definition sources.
// Length kinds carry their threshold in Value; pattern kinds carry the
// expression in Value.
type ConstraintSpec struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Constraint is a compiled, independently evaluated predicate over a trimmed
// submission value. Constraints never subsume the required check: an empty
// optional value skips constraint evaluation entirely.
type Constraint struct {
	kind    string
	length  int
	pattern *regexp.Regexp
}

// Kind returns the constraint kind token.
func (c Constraint) Kind() string {
	return c.kind
}

// Check evaluates the predicate against a trimmed value. A nil return means
// the value satisfies the constraint.
func (c Constraint) Check(value string) error {
	switch c.kind {
	case ConstraintMinLength:
		if len([]rune(value)) < c.length {
			return fmt.Errorf("must be at least %d characters", c.length)
		}
	case ConstraintMaxLength:
		if len([]rune(value)) > c.length {
			return fmt.Errorf("must be at most %d characters", c.length)
		}
	case ConstraintPattern:
		if c.pattern != nil && !c.pattern.MatchString(value) {
			return fmt.Errorf("must match pattern %s", c.pattern.String())
		}
	}
	return nil
}

// ParseConstraint compiles a raw spec. Invalid thresholds and expressions are
// definition errors; they surface at parse time, never during validation.
func ParseConstraint(spec ConstraintSpec) (Constraint, error) {
	switch spec.Kind {
	case ConstraintMinLength, ConstraintMaxLength:
		length, err := strconv.Atoi(spec.Value)
		if err != nil || length < 0 {
			return Constraint{}, fmt.Errorf("%s wants a non-negative integer, got %q", spec.Kind, spec.Value)
		}
		return Constraint{kind: spec.Kind, length: length}, nil
	case ConstraintPattern:
		re, err := regexp.Compile(spec.Value)
		if err != nil {
			return Constraint{}, fmt.Errorf("pattern %q does not compile: %v", spec.Value, err)
		}
		return Constraint{kind: spec.Kind, pattern: re}, nil
	default:
		return Constraint{}, fmt.Errorf("unknown constraint kind %q", spec.Kind)
	}
}
