package submission

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-intake/pkg/schema"
)

// ErrorKind classifies a single field failure.
type ErrorKind string

const (
	// ErrorRequired marks a required field the submitter left absent or blank.
	ErrorRequired ErrorKind = "required"
	// ErrorNotAnOption marks a dropdown value outside the declared options.
	ErrorNotAnOption ErrorKind = "not_an_option"
	// ErrorConstraint marks a declared constraint the value failed; Detail
	// carries the predicate's message.
	ErrorConstraint ErrorKind = "constraint"
)

// FieldError pinpoints one failed field in a submission.
type FieldError struct {
	Key    string
	Kind   ErrorKind
	Detail string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	switch e.Kind {
	case ErrorRequired:
		return fmt.Sprintf("field %q is required", e.Key)
	case ErrorNotAnOption:
		return fmt.Sprintf("field %q: %s", e.Key, e.Detail)
	default:
		return fmt.Sprintf("field %q: %s", e.Key, e.Detail)
	}
}

// Errors aggregates field failures in schema order. Submission errors are
// recoverable: callers re-solicit the offending fields and validate again.
type Errors []FieldError

// Error joins the individual messages.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "submission: no errors"
	}
	parts := make([]string, len(e))
	for i, fieldErr := range e {
		parts[i] = fieldErr.Error()
	}
	return "submission: " + strings.Join(parts, "; ")
}

// Keys returns the failing field keys in error order.
func (e Errors) Keys() []string {
	if len(e) == 0 {
		return nil
	}
	keys := make([]string, len(e))
	for i, fieldErr := range e {
		keys[i] = fieldErr.Key
	}
	return keys
}

// ByKey groups the failures for per-field display.
func (e Errors) ByKey() map[string][]FieldError {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string][]FieldError)
	for _, fieldErr := range e {
		out[fieldErr.Key] = append(out[fieldErr.Key], fieldErr)
	}
	return out
}

// Validate checks a raw submission against the schema and returns every
// failure at once; it never stops at the first problem, so a submitter sees
// the complete picture in one pass. The returned slice follows schema order,
// making error output reproducible. A nil result means the submission is
// valid. Keys absent from the schema are ignored.
func Validate(sch *schema.Schema, raw RawSubmission) Errors {
	if sch == nil {
		return nil
	}

	var errs Errors
	for _, field := range sch.Fields() {
		if !field.CollectsInput() {
			continue
		}

		trimmed := strings.TrimSpace(raw[field.Key])

		if trimmed == "" {
			if field.Required {
				errs = append(errs, FieldError{Key: field.Key, Kind: ErrorRequired})
			}
			// optional and blank: nothing else to check
			continue
		}

		if field.Kind == schema.KindDropdown && !field.HasOption(trimmed) {
			errs = append(errs, FieldError{
				Key:    field.Key,
				Kind:   ErrorNotAnOption,
				Detail: fmt.Sprintf("%q is not one of the declared options", trimmed),
			})
		}

		for _, constraint := range field.Constraints {
			if err := constraint.Check(trimmed); err != nil {
				errs = append(errs, FieldError{
					Key:    field.Key,
					Kind:   ErrorConstraint,
					Detail: err.Error(),
				})
			}
		}
	}
	return errs
}
