package schema

import (
	"fmt"
	"strings"
)

// FieldKind is the closed enumeration of supported field kinds. The set is
// intentionally small; adding a kind means extending ClassifyKind together
// with the parser invariants and the validator rules that interpret it.
type FieldKind string

const (
	// KindMarkdown is a display-only block. It never collects input and is
	// excluded from validation and from the output record.
	KindMarkdown FieldKind = "markdown"
	// KindTextArea collects multi-line text.
	KindTextArea FieldKind = "textarea"
	// KindShortText collects a single line of text.
	KindShortText FieldKind = "input"
	// KindDropdown collects one value out of a declared option list.
	KindDropdown FieldKind = "dropdown"
)

// kindAliases maps accepted source tokens onto canonical kinds. Tokens match
// the issue-form document vocabulary.
var kindAliases = map[string]FieldKind{
	"markdown":  KindMarkdown,
	"textarea":  KindTextArea,
	"input":     KindShortText,
	"shorttext": KindShortText,
	"dropdown":  KindDropdown,
	"select":    KindDropdown,
}

// ClassifyKind resolves a raw kind token into a FieldKind. It is the single
// point of truth for which kinds exist; unknown tokens yield a
// DefinitionError with CodeUnknownFieldKind.
func ClassifyKind(token string) (FieldKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if kind, ok := kindAliases[normalized]; ok {
		return kind, nil
	}
	return "", &DefinitionError{
		Code:    CodeUnknownFieldKind,
		Message: fmt.Sprintf("unknown field kind %q", token),
	}
}

// CollectsInput reports whether the kind solicits a value from the submitter.
func (k FieldKind) CollectsInput() bool {
	switch k {
	case KindTextArea, KindShortText, KindDropdown:
		return true
	default:
		return false
	}
}

// String returns the canonical token for the kind.
func (k FieldKind) String() string {
	return string(k)
}
