package schema

import "fmt"

// DefinitionCode identifies the class of a schema-definition failure. All
// definition errors are fatal: no partial Schema is ever produced.
type DefinitionCode string

const (
	CodeUnknownFieldKind  DefinitionCode = "unknown_field_kind"
	CodeMissingKey        DefinitionCode = "missing_key"
	CodeUnexpectedKey     DefinitionCode = "unexpected_key"
	CodeDuplicateKey      DefinitionCode = "duplicate_key"
	CodeInvalidRequired   DefinitionCode = "invalid_required_flag"
	CodeMissingLabel      DefinitionCode = "missing_label"
	CodeMissingOptions    DefinitionCode = "missing_options"
	CodeDuplicateOption   DefinitionCode = "duplicate_option"
	CodeInvalidConstraint DefinitionCode = "invalid_constraint"
	CodeEmptyDocument     DefinitionCode = "empty_document"
	CodeMalformedDocument DefinitionCode = "malformed_document"
)

// DefinitionError describes a malformed field definition. Position is the
// zero-based index of the offending descriptor in the source sequence; Key is
// populated when the failure concerns a specific field key.
type DefinitionError struct {
	Code     DefinitionCode
	Position int
	Key      string
	Message  string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e == nil {
		return "schema: <nil>"
	}
	if e.Key != "" {
		return fmt.Sprintf("schema: descriptor %d (key %q): %s", e.Position, e.Key, e.Message)
	}
	return fmt.Sprintf("schema: descriptor %d: %s", e.Position, e.Message)
}

// Is allows errors.Is matching on the definition code alone.
func (e *DefinitionError) Is(target error) bool {
	other, ok := target.(*DefinitionError)
	if !ok {
		return false
	}
	return other.Code == e.Code
}

func definitionErr(code DefinitionCode, position int, key, format string, args ...any) *DefinitionError {
	return &DefinitionError{
		Code:     code,
		Position: position,
		Key:      key,
		Message:  fmt.Sprintf(format, args...),
	}
}
