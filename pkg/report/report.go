// Package report renders a normalized submission into a markdown document,
// the shape downstream issue trackers ingest as an issue body. Templates are
// pongo2; a default layout ships and deployments may override it.
package report

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/submission"
)

// DefaultTemplate lays out field labels as headings with the submitted value
// underneath, in schema order.
const DefaultTemplate = `{% if name %}# {{ name }}

{% endif %}{% for entry in entries %}### {{ entry.label }}

{{ entry.value }}

{% endfor %}`

// Renderer holds a compiled report template. Construct once, render many;
// the compiled template is safe for concurrent use.
type Renderer struct {
	template *pongo2.Template
}

// Option configures the renderer.
type Option func(*config)

type config struct {
	source string
}

// WithTemplate overrides the default template source.
func WithTemplate(source string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(source) != "" {
			cfg.source = source
		}
	}
}

// New compiles the report template.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{source: DefaultTemplate}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	template, err := pongo2.FromString(cfg.source)
	if err != nil {
		return nil, fmt.Errorf("report: compile template: %w", err)
	}
	return &Renderer{template: template}, nil
}

// Render produces the markdown report for one record. Only populated fields
// appear; display-only fields never do.
func (r *Renderer) Render(sch *schema.Schema, record submission.Record) ([]byte, error) {
	if r == nil || r.template == nil {
		return nil, fmt.Errorf("report: renderer is not initialized")
	}
	if sch == nil {
		return nil, fmt.Errorf("report: schema is required")
	}

	entries := make([]map[string]string, 0, len(record))
	for _, field := range sch.Fields() {
		if !field.CollectsInput() {
			continue
		}
		value, ok := record[field.Key]
		if !ok {
			continue
		}
		entries = append(entries, map[string]string{
			"key":   field.Key,
			"label": field.Label,
			"value": value,
		})
	}

	out, err := r.template.Execute(pongo2.Context{
		"name":    sch.Name(),
		"entries": entries,
	})
	if err != nil {
		return nil, fmt.Errorf("report: execute template: %w", err)
	}
	return []byte(strings.TrimRight(out, "\n") + "\n"), nil
}
