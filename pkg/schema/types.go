package schema

// Descriptor is the raw, pre-classification shape for a single field as it
// appears in a definition source. The parser resolves Kind and enforces the
// structural invariants before any Descriptor becomes a FieldDefinition.
type Descriptor struct {
	Kind        string           `json:"type" yaml:"type"`
	Key         string           `json:"id,omitempty" yaml:"id,omitempty"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value       string           `json:"value,omitempty" yaml:"value,omitempty"`
	Options     []string         `json:"options,omitempty" yaml:"options,omitempty"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Constraints []ConstraintSpec `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// FieldDefinition is one parsed field. The Kind discriminator decides which
// of the remaining fields are meaningful: Value is the markdown body for
// display-only fields, Options the dropdown choice list, Constraints the
// extra predicates applied by the validator. Invariants (key presence,
// required flag, option shape) are established by Parse and hold for every
// FieldDefinition reachable through a Schema.
type FieldDefinition struct {
	Kind        FieldKind
	Key         string
	Label       string
	Description string
	Placeholder string
	Value       string
	Options     []string
	Required    bool
	Constraints []Constraint
}

// CollectsInput reports whether the field solicits a value.
func (f FieldDefinition) CollectsInput() bool {
	return f.Kind.CollectsInput()
}

// HasOption reports whether value is one of the declared dropdown options.
func (f FieldDefinition) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Schema is the immutable, ordered definition of all fields for one form.
// It is constructed once by Parse and may be shared read-only across any
// number of concurrent validation sessions.
type Schema struct {
	name        string
	description string
	fields      []FieldDefinition
	byKey       map[string]int
}

// Name returns the form title, when the source declared one.
func (s *Schema) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Description returns the form-level description, when declared.
func (s *Schema) Description() string {
	if s == nil {
		return ""
	}
	return s.description
}

// Len reports the total number of fields, display-only included.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Fields returns the field definitions in author order. The returned slice is
// a copy; mutating it does not affect the schema.
func (s *Schema) Fields() []FieldDefinition {
	if s == nil {
		return nil
	}
	return append([]FieldDefinition(nil), s.fields...)
}

// Field looks up an input field by key.
func (s *Schema) Field(key string) (FieldDefinition, bool) {
	if s == nil || s.byKey == nil {
		return FieldDefinition{}, false
	}
	idx, ok := s.byKey[key]
	if !ok {
		return FieldDefinition{}, false
	}
	return s.fields[idx], true
}

// InputKeys returns the keys of all input-collecting fields in schema order.
func (s *Schema) InputKeys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.byKey))
	for _, field := range s.fields {
		if field.CollectsInput() {
			keys = append(keys, field.Key)
		}
	}
	return keys
}
