package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/submission"
)

// SessionOptions tunes one submission attempt.
type SessionOptions struct {
	// MaxAttempts bounds how many solicitation rounds the session runs before
	// returning the outstanding validation errors. The first full pass counts
	// as one attempt. Zero means DefaultMaxAttempts.
	MaxAttempts int
	// Seed pre-fills raw values, e.g. a previously drafted submission. Seeded
	// fields are still presented and collected; an unpopulated collect clears
	// the seeded value, mirroring an explicit clear by the submitter.
	Seed submission.RawSubmission
}

// DefaultMaxAttempts is the solicitation-round bound applied when
// SessionOptions leaves MaxAttempts unset.
const DefaultMaxAttempts = 3

// Session drives one submission attempt through an adapter: present every
// field, collect the input fields, validate the batch, re-solicit only the
// offending fields while attempts remain, then normalize. The schema is read
// only; concurrent sessions over the same schema are safe.
type Session struct {
	schema  *schema.Schema
	adapter Adapter
	opts    SessionOptions
}

// NewSession pairs a schema with an adapter.
func NewSession(sch *schema.Schema, adapter Adapter, opts SessionOptions) (*Session, error) {
	if sch == nil {
		return nil, fmt.Errorf("render: schema is required")
	}
	if adapter == nil {
		return nil, fmt.Errorf("render: adapter is required")
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	return &Session{schema: sch, adapter: adapter, opts: opts}, nil
}

// Run executes the solicitation/validation loop and returns the normalized
// record. On persistent validation failure the submission.Errors batch is
// returned; on abandonment the raw submission is discarded and ErrAborted
// propagates. Run never persists anything.
func (s *Session) Run(ctx context.Context) (submission.Record, error) {
	raw := s.opts.Seed.Clone()
	if raw == nil {
		raw = make(submission.RawSubmission)
	}

	// First round offers every field for input.
	if err := s.solicit(ctx, s.schema.Fields(), raw); err != nil {
		return nil, err
	}

	errs := submission.Validate(s.schema, raw)
	for attempt := 1; len(errs) > 0 && attempt < s.opts.MaxAttempts; attempt++ {
		retry, err := s.offendingFields(ctx, errs)
		if err != nil {
			return nil, err
		}
		if err := s.solicit(ctx, retry, raw); err != nil {
			return nil, err
		}
		errs = submission.Validate(s.schema, raw)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return submission.Normalize(s.schema, raw)
}

func (s *Session) solicit(ctx context.Context, fields []schema.FieldDefinition, raw submission.RawSubmission) error {
	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.adapter.Present(ctx, field); err != nil {
			return err
		}
		if !field.CollectsInput() {
			continue
		}
		value, populated, err := s.adapter.Collect(ctx, field)
		if err != nil {
			return err
		}
		if populated {
			raw[field.Key] = value
		} else {
			delete(raw, field.Key)
		}
	}
	return nil
}

// offendingFields resolves the failing keys back to their definitions in
// schema order, reporting messages through the adapter when it can.
func (s *Session) offendingFields(ctx context.Context, errs submission.Errors) ([]schema.FieldDefinition, error) {
	reporter, _ := s.adapter.(ErrorReporter)
	grouped := errs.ByKey()

	var fields []schema.FieldDefinition
	for _, field := range s.schema.Fields() {
		fieldErrs, failing := grouped[field.Key]
		if !failing {
			continue
		}
		if reporter != nil {
			messages := make([]string, len(fieldErrs))
			for i, fieldErr := range fieldErrs {
				messages[i] = fieldErr.Error()
			}
			if err := reporter.ReportError(ctx, field, messages); err != nil {
				return nil, err
			}
		}
		fields = append(fields, field)
	}
	return fields, nil
}
