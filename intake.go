// Package intake is a schema-driven form engine: it parses declarative form
// definitions, validates raw submissions against them, and normalizes the
// survivors into canonical records. Presentation is delegated to adapters
// (see pkg/render and pkg/renderers); the engine itself performs no I/O.
package intake

import (
	"context"

	"github.com/goliatone/go-intake/pkg/render"
	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/submission"
)

// Convenience aliases so simple callers only import the root package.
type (
	Schema          = schema.Schema
	FieldDefinition = schema.FieldDefinition
	Descriptor      = schema.Descriptor
	RawSubmission   = submission.RawSubmission
	Record          = submission.Record
	Adapter         = render.Adapter
	SessionOptions  = render.SessionOptions
)

// LoadSchemaFile reads and parses an on-disk definition document.
func LoadSchemaFile(ctx context.Context, path string) (*Schema, error) {
	loader := schema.NewLoader()
	doc, err := loader.Load(ctx, schema.SourceFromFile(path))
	if err != nil {
		return nil, err
	}
	return schema.ParseDocument(doc)
}

// LoadSchema reads and parses a definition document from any source; loader
// options supply the fs.FS or HTTP client some source kinds need.
func LoadSchema(ctx context.Context, src schema.Source, options ...schema.LoaderOption) (*Schema, error) {
	loader := schema.NewLoader(options...)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return schema.ParseDocument(doc)
}

// Collect runs one full submission attempt through the adapter and returns
// the normalized record. Validation failures that survive the session's
// re-solicitation rounds come back as submission.Errors.
func Collect(ctx context.Context, sch *Schema, adapter Adapter, opts SessionOptions) (Record, error) {
	sess, err := render.NewSession(sch, adapter, opts)
	if err != nil {
		return nil, err
	}
	return sess.Run(ctx)
}

// Validate checks a raw submission against a schema. See submission.Validate.
func Validate(sch *Schema, raw RawSubmission) submission.Errors {
	return submission.Validate(sch, raw)
}

// Normalize converts a validated submission into its canonical record. See
// submission.Normalize.
func Normalize(sch *Schema, raw RawSubmission) (Record, error) {
	return submission.Normalize(sch, raw)
}
