// Package render defines the boundary between the intake engine and whatever
// surface actually talks to a submitter. Adapters present fields and collect
// raw values; the engine owns validation and normalization. No default
// adapter ships here; deployments register their own (see pkg/renderers).
package render

import (
	"context"
	"errors"

	"github.com/goliatone/go-intake/pkg/schema"
)

// ErrAborted signals that the submitter abandoned the form. The engine
// discards the in-flight submission without side effects.
var ErrAborted = errors.New("render: aborted by submitter")

// Adapter is the capability set the engine needs from a UI: show a field,
// and obtain a raw value for a field. Present is side-effecting and its
// output is never consumed by the engine; Collect returns the raw string and
// whether the submitter populated it at all. Implementations may block in
// Collect (human typing, network fetch) and should honor ctx cancellation.
type Adapter interface {
	Name() string
	Present(ctx context.Context, field schema.FieldDefinition) error
	Collect(ctx context.Context, field schema.FieldDefinition) (value string, populated bool, err error)
}

// ErrorReporter is an optional adapter capability: surfaces field errors
// between solicitation rounds so the submitter knows what to fix. Adapters
// that do not implement it still work; the session silently skips reporting.
type ErrorReporter interface {
	ReportError(ctx context.Context, field schema.FieldDefinition, messages []string) error
}
