package submission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-intake/pkg/schema"
)

var (
	// ErrNotValidated is returned when Normalize is handed a submission that
	// does not pass validation. It wraps the underlying Errors so callers can
	// still inspect the individual field failures, but its presence signals a
	// caller bug: Validate must succeed before Normalize runs.
	ErrNotValidated = errors.New("submission: normalize called on an invalid submission")
	// ErrInternalInconsistency signals that validation and normalization
	// disagreed about the same (schema, submission) pair. Unreachable under
	// correct usage.
	ErrInternalInconsistency = errors.New("submission: validator/normalizer desynchronization")
)

// Normalize converts a validated submission into its canonical Record:
// values trimmed, absent optional keys omitted, key set exactly the populated
// or required input keys of the schema. Validation is re-run defensively; a
// failure yields ErrNotValidated rather than a partial record. Normalize is
// idempotent: feeding a Record back through produces an equal Record.
func Normalize(sch *schema.Schema, raw RawSubmission) (Record, error) {
	if sch == nil {
		return nil, fmt.Errorf("submission: schema is required")
	}

	if errs := Validate(sch, raw); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrNotValidated, errs)
	}

	record := make(Record)
	for _, field := range sch.Fields() {
		if !field.CollectsInput() {
			continue
		}

		trimmed := strings.TrimSpace(raw[field.Key])
		if trimmed == "" {
			if field.Required {
				// Validate just accepted this submission; a blank required
				// value here means the inputs were mutated mid-flight.
				return nil, fmt.Errorf("%w: required key %q is blank", ErrInternalInconsistency, field.Key)
			}
			continue
		}
		record[field.Key] = trimmed
	}
	return record, nil
}

// NormalizeRecord re-normalizes an existing record, for resubmission flows
// where a stored Record is used as the raw input of a new attempt.
func NormalizeRecord(sch *schema.Schema, record Record) (Record, error) {
	return Normalize(sch, RawSubmission(record))
}
