package schema

import "strings"

// ParseOptions carries optional form-level metadata alongside the descriptor
// sequence.
type ParseOptions struct {
	Name        string
	Description string
}

// Parse converts an ordered descriptor sequence into an immutable Schema.
// It is a pure transformation: the input slice is never mutated and no
// partial Schema is returned on failure. Every structural invariant is
// enforced here so later components can trust any Schema they receive.
func Parse(descriptors []Descriptor, opts ...ParseOptions) (*Schema, error) {
	var meta ParseOptions
	if len(opts) > 0 {
		meta = opts[0]
	}

	out := &Schema{
		name:        strings.TrimSpace(meta.Name),
		description: sanitizeMarkdown(meta.Description),
		fields:      make([]FieldDefinition, 0, len(descriptors)),
		byKey:       make(map[string]int),
	}

	for position, desc := range descriptors {
		field, err := parseField(position, desc)
		if err != nil {
			return nil, err
		}

		if field.CollectsInput() {
			if _, exists := out.byKey[field.Key]; exists {
				return nil, definitionErr(CodeDuplicateKey, position, field.Key,
					"key %q already used by an earlier field", field.Key)
			}
			out.byKey[field.Key] = len(out.fields)
		}
		out.fields = append(out.fields, field)
	}

	return out, nil
}

func parseField(position int, desc Descriptor) (FieldDefinition, error) {
	kind, err := ClassifyKind(desc.Kind)
	if err != nil {
		defErr, ok := err.(*DefinitionError)
		if !ok {
			return FieldDefinition{}, err
		}
		defErr.Position = position
		defErr.Key = strings.TrimSpace(desc.Key)
		return FieldDefinition{}, defErr
	}

	key := strings.TrimSpace(desc.Key)
	label := strings.TrimSpace(desc.Label)

	if kind == KindMarkdown {
		if key != "" {
			return FieldDefinition{}, definitionErr(CodeUnexpectedKey, position, key,
				"markdown fields must not declare a key")
		}
		if desc.Required {
			return FieldDefinition{}, definitionErr(CodeInvalidRequired, position, "",
				"markdown fields cannot be required")
		}
		return FieldDefinition{
			Kind:        kind,
			Label:       label,
			Description: sanitizeMarkdown(desc.Description),
			Value:       sanitizeMarkdown(desc.Value),
		}, nil
	}

	if key == "" {
		return FieldDefinition{}, definitionErr(CodeMissingKey, position, "",
			"%s fields must declare a key", kind)
	}
	if label == "" {
		return FieldDefinition{}, definitionErr(CodeMissingLabel, position, key,
			"input fields must declare a label")
	}

	field := FieldDefinition{
		Kind:        kind,
		Key:         key,
		Label:       label,
		Description: sanitizeMarkdown(desc.Description),
		Placeholder: strings.TrimSpace(desc.Placeholder),
		Required:    desc.Required,
	}

	if kind == KindDropdown {
		options, err := parseOptions(position, key, desc.Options)
		if err != nil {
			return FieldDefinition{}, err
		}
		field.Options = options
	}

	for _, spec := range desc.Constraints {
		constraint, err := ParseConstraint(spec)
		if err != nil {
			return FieldDefinition{}, definitionErr(CodeInvalidConstraint, position, key, "%v", err)
		}
		field.Constraints = append(field.Constraints, constraint)
	}

	return field, nil
}

func parseOptions(position int, key string, raw []string) ([]string, error) {
	options := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, option := range raw {
		trimmed := strings.TrimSpace(option)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			return nil, definitionErr(CodeDuplicateOption, position, key,
				"option %q declared twice", trimmed)
		}
		seen[trimmed] = struct{}{}
		options = append(options, trimmed)
	}
	if len(options) == 0 {
		return nil, definitionErr(CodeMissingOptions, position, key,
			"dropdown fields need at least one option")
	}
	return options, nil
}
