// Package tui is a terminal adapter for the intake engine: survey prompts
// behind a swappable PromptDriver, markdown notices styled through glamour.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-intake/pkg/render"
	"github.com/goliatone/go-intake/pkg/schema"
)

const skipOption = "(skip)"

// Adapter implements render.Adapter for terminal-driven sessions.
type Adapter struct {
	driver   PromptDriver
	markdown *markdownRenderer
	pageSize int
}

// Option configures the adapter.
type Option func(*Adapter)

// WithPromptDriver overrides the survey-backed default driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(a *Adapter) {
		if driver != nil {
			a.driver = driver
		}
	}
}

// WithWordWrap sets the wrap column for markdown notices.
func WithWordWrap(width int) Option {
	return func(a *Adapter) {
		a.markdown = newMarkdownRenderer(width)
	}
}

// WithPageSize bounds how many dropdown options show per page.
func WithPageSize(size int) Option {
	return func(a *Adapter) {
		if size > 0 {
			a.pageSize = size
		}
	}
}

// New constructs a terminal adapter with defaults (survey driver, auto-styled
// markdown, 80 column wrap).
func New(options ...Option) *Adapter {
	a := &Adapter{
		driver: newSurveyDriver(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}
	if a.markdown == nil {
		a.markdown = newMarkdownRenderer(defaultWordWrap)
	}
	return a
}

// Name reports the adapter identifier.
func (a *Adapter) Name() string {
	return "tui"
}

// Present shows display-only content. Markdown bodies render through glamour;
// input fields are silent here because their prompt carries the label.
func (a *Adapter) Present(ctx context.Context, field schema.FieldDefinition) error {
	if field.Kind != schema.KindMarkdown {
		return nil
	}
	body := field.Value
	if body == "" {
		body = field.Description
	}
	if body == "" {
		return nil
	}
	return a.driver.Info(ctx, a.markdown.render(body))
}

// Collect prompts for one input field and reports whether the submitter
// actually provided a value. Blank answers count as absence so optional
// fields stay out of the submission.
func (a *Adapter) Collect(ctx context.Context, field schema.FieldDefinition) (string, bool, error) {
	switch field.Kind {
	case schema.KindShortText:
		value, err := a.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Help:    helpText(field),
		})
		if err != nil {
			return "", false, err
		}
		return answered(value)
	case schema.KindTextArea:
		value, err := a.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label,
			Help:    helpText(field),
		})
		if err != nil {
			return "", false, err
		}
		return answered(value)
	case schema.KindDropdown:
		return a.collectDropdown(ctx, field)
	default:
		return "", false, fmt.Errorf("tui: field %q does not collect input", field.Key)
	}
}

func (a *Adapter) collectDropdown(ctx context.Context, field schema.FieldDefinition) (string, bool, error) {
	options := field.Options
	if !field.Required {
		options = append([]string{skipOption}, options...)
	}

	idx, err := a.driver.Select(ctx, SelectConfig{
		Message:      field.Label,
		Options:      options,
		DefaultIndex: -1,
		Help:         helpText(field),
		PageSize:     a.pageSize,
	})
	if err != nil {
		return "", false, err
	}
	if idx < 0 || idx >= len(options) {
		return "", false, fmt.Errorf("tui: selection out of range for %q", field.Key)
	}
	selected := options[idx]
	if selected == skipOption && !field.Required {
		return "", false, nil
	}
	return selected, true, nil
}

// ReportError surfaces validation failures between solicitation rounds.
func (a *Adapter) ReportError(ctx context.Context, field schema.FieldDefinition, messages []string) error {
	for _, message := range messages {
		if err := a.driver.Info(ctx, fmt.Sprintf("! %s: %s", field.Label, message)); err != nil {
			return err
		}
	}
	return nil
}

func helpText(field schema.FieldDefinition) string {
	parts := make([]string, 0, 2)
	if field.Description != "" {
		parts = append(parts, field.Description)
	}
	if field.Placeholder != "" {
		parts = append(parts, "e.g. "+field.Placeholder)
	}
	return strings.Join(parts, ". ")
}

func answered(value string) (string, bool, error) {
	if strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	return value, true, nil
}

var _ render.Adapter = (*Adapter)(nil)
var _ render.ErrorReporter = (*Adapter)(nil)
