// Package openapi derives intake form descriptors from OpenAPI 3 documents,
// so an existing API contract can double as a form definition source. Only
// string-typed request body properties are convertible; the intake engine
// collects strings exclusively.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-intake/pkg/schema"
)

// MultilineExtension marks a string property as multi-line input.
const MultilineExtension = "x-intake-multiline"

// ErrOperationNotFound is returned when the document defines no operation
// with the requested id.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// FromDocument extracts the request body of the named operation and converts
// its string properties into an ordered descriptor sequence: properties
// listed in the schema's required array come first in that order, the rest
// follow alphabetically, keeping the output deterministic across loads.
func FromDocument(ctx context.Context, raw []byte, operationID string) ([]schema.Descriptor, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestBodySchema(operation.RequestBody)
	if body == nil {
		return nil, fmt.Errorf("openapi: operation %q has no convertible request body", operationID)
	}

	return convertProperties(body), nil
}

// ParseDocument converts and parses in one step.
func ParseDocument(ctx context.Context, raw []byte, operationID string) (*schema.Schema, error) {
	descriptors, err := FromDocument(ctx, raw, operationID)
	if err != nil {
		return nil, err
	}
	return schema.Parse(descriptors)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func convertProperties(body *openapi3.Schema) []schema.Descriptor {
	requiredSet := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		requiredSet[name] = struct{}{}
	}

	ordered := make([]string, 0, len(body.Properties))
	for _, name := range body.Required {
		if _, ok := body.Properties[name]; ok {
			ordered = append(ordered, name)
		}
	}
	var optional []string
	for name := range body.Properties {
		if _, ok := requiredSet[name]; !ok {
			optional = append(optional, name)
		}
	}
	sort.Strings(optional)
	ordered = append(ordered, optional...)

	var descriptors []schema.Descriptor
	for _, name := range ordered {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value
		if !isStringSchema(property) {
			continue
		}

		_, required := requiredSet[name]
		descriptors = append(descriptors, convertProperty(name, property, required))
	}
	return descriptors
}

func convertProperty(name string, property *openapi3.Schema, required bool) schema.Descriptor {
	desc := schema.Descriptor{
		Kind:        propertyKind(property),
		Key:         name,
		Label:       propertyLabel(name, property),
		Description: property.Description,
		Required:    required,
	}

	if len(property.Enum) > 0 {
		for _, value := range property.Enum {
			if text, ok := value.(string); ok {
				desc.Options = append(desc.Options, text)
			}
		}
	}

	if property.MinLength != 0 {
		desc.Constraints = append(desc.Constraints, schema.ConstraintSpec{
			Kind:  schema.ConstraintMinLength,
			Value: fmt.Sprint(property.MinLength),
		})
	}
	if property.MaxLength != nil {
		desc.Constraints = append(desc.Constraints, schema.ConstraintSpec{
			Kind:  schema.ConstraintMaxLength,
			Value: fmt.Sprint(*property.MaxLength),
		})
	}
	if property.Pattern != "" {
		desc.Constraints = append(desc.Constraints, schema.ConstraintSpec{
			Kind:  schema.ConstraintPattern,
			Value: property.Pattern,
		})
	}
	return desc
}

func propertyKind(property *openapi3.Schema) string {
	if len(property.Enum) > 0 {
		return string(schema.KindDropdown)
	}
	if property.Format == "textarea" || extensionTrue(property.Extensions, MultilineExtension) {
		return string(schema.KindTextArea)
	}
	return string(schema.KindShortText)
}

func propertyLabel(name string, property *openapi3.Schema) string {
	if title := strings.TrimSpace(property.Title); title != "" {
		return title
	}
	// snake_case and kebab-case property names read fine with spaces
	label := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	first, size := utf8.DecodeRuneInString(label)
	if size == 0 || first == utf8.RuneError {
		return label
	}
	return string(unicode.ToUpper(first)) + label[size:]
}

func isStringSchema(property *openapi3.Schema) bool {
	if property.Type == nil {
		return false
	}
	for _, t := range property.Type.Slice() {
		if t == openapi3.TypeString {
			return true
		}
	}
	return false
}

func extensionTrue(extensions map[string]any, key string) bool {
	if len(extensions) == 0 {
		return false
	}
	value, ok := extensions[key]
	if !ok {
		return false
	}
	flag, ok := value.(bool)
	return ok && flag
}
