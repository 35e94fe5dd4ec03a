package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads definition documents from the supported source modalities.
// The zero value handles file sources; fs.FS and HTTP sources opt in through
// the With* options.
type Loader struct {
	fsys   fs.FS
	client *http.Client
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS supplies the filesystem used for SourceKindFS documents.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithHTTPClient supplies the client used for SourceKindURL documents. When
// omitted, URL sources fall back to http.DefaultClient.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// NewLoader constructs a Loader.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load reads the document the source points at.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, fmt.Errorf("schema loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	switch src.Kind() {
	case SourceKindFile:
		raw, err := os.ReadFile(src.Location())
		if err != nil {
			return Document{}, fmt.Errorf("schema loader: read %s: %w", src.Location(), err)
		}
		return NewDocument(src, raw)
	case SourceKindFS:
		if l.fsys == nil {
			return Document{}, fmt.Errorf("schema loader: fs source %q without a configured fs.FS", src.Location())
		}
		raw, err := fs.ReadFile(l.fsys, src.Location())
		if err != nil {
			return Document{}, fmt.Errorf("schema loader: read %s: %w", src.Location(), err)
		}
		return NewDocument(src, raw)
	case SourceKindURL:
		return l.fetch(ctx, src)
	default:
		return Document{}, fmt.Errorf("schema loader: unsupported source kind %q", src.Kind())
	}
}

func (l *Loader) fetch(ctx context.Context, src Source) (Document, error) {
	client := l.client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Location(), nil)
	if err != nil {
		return Document{}, fmt.Errorf("schema loader: request %s: %w", src.Location(), err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("schema loader: fetch %s: %w", src.Location(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Document{}, fmt.Errorf("schema loader: fetch %s: unexpected status %d", src.Location(), resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("schema loader: read body %s: %w", src.Location(), err)
	}
	return NewDocument(src, raw)
}

// documentFile mirrors the issue-form wire shape: form metadata plus an
// ordered body of typed items with nested attributes and validations.
type documentFile struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Body        []itemFile `json:"body" yaml:"body"`
}

type itemFile struct {
	Type        string          `json:"type" yaml:"type"`
	ID          string          `json:"id,omitempty" yaml:"id,omitempty"`
	Attributes  attributesFile  `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Validations validationsFile `json:"validations,omitempty" yaml:"validations,omitempty"`
}

type attributesFile struct {
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value       string   `json:"value,omitempty" yaml:"value,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
}

type validationsFile struct {
	Required  bool   `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength int    `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// DecodeDocument converts a raw document into the descriptor sequence and
// form metadata the parser consumes. Decoding is strict: JSON is attempted
// before YAML so JSON payloads are never misread by the laxer YAML decoder,
// and unknown keys fail instead of quietly yielding a zero-field form.
func DecodeDocument(doc Document) ([]Descriptor, ParseOptions, error) {
	raw := doc.Raw()
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, ParseOptions{}, definitionErr(CodeEmptyDocument, 0, "",
			"document %s is empty", doc.Location())
	}

	file, err := decodeDocumentFile(raw)
	if err != nil {
		return nil, ParseOptions{}, definitionErr(CodeMalformedDocument, 0, "",
			"document %s is not a valid form definition: %v", doc.Location(), err)
	}
	if len(file.Body) == 0 {
		return nil, ParseOptions{}, definitionErr(CodeEmptyDocument, 0, "",
			"document %s declares no fields", doc.Location())
	}

	descriptors := make([]Descriptor, 0, len(file.Body))
	for _, item := range file.Body {
		descriptors = append(descriptors, Descriptor{
			Kind:        item.Type,
			Key:         item.ID,
			Label:       item.Attributes.Label,
			Description: item.Attributes.Description,
			Placeholder: item.Attributes.Placeholder,
			Value:       item.Attributes.Value,
			Options:     item.Attributes.Options,
			Required:    item.Validations.Required,
			Constraints: decodeConstraints(item.Validations),
		})
	}

	opts := ParseOptions{Name: file.Name, Description: file.Description}
	return descriptors, opts, nil
}

func decodeDocumentFile(raw []byte) (documentFile, error) {
	var file documentFile
	jsonDec := json.NewDecoder(bytes.NewReader(raw))
	jsonDec.DisallowUnknownFields()
	if err := jsonDec.Decode(&file); err == nil {
		return file, nil
	}

	file = documentFile{}
	yamlDec := yaml.NewDecoder(bytes.NewReader(raw))
	yamlDec.KnownFields(true)
	if err := yamlDec.Decode(&file); err != nil {
		return documentFile{}, err
	}
	return file, nil
}

func decodeConstraints(v validationsFile) []ConstraintSpec {
	var specs []ConstraintSpec
	if v.MinLength > 0 {
		specs = append(specs, ConstraintSpec{Kind: ConstraintMinLength, Value: fmt.Sprint(v.MinLength)})
	}
	if v.MaxLength > 0 {
		specs = append(specs, ConstraintSpec{Kind: ConstraintMaxLength, Value: fmt.Sprint(v.MaxLength)})
	}
	if v.Pattern != "" {
		specs = append(specs, ConstraintSpec{Kind: ConstraintPattern, Value: v.Pattern})
	}
	return specs
}

// ParseDocument decodes and parses a document in one step.
func ParseDocument(doc Document) (*Schema, error) {
	descriptors, opts, err := DecodeDocument(doc)
	if err != nil {
		return nil, err
	}
	return Parse(descriptors, opts)
}
