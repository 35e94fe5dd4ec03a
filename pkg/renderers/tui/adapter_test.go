package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/render"
	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/submission"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	textAreas []string
	infoLines []string
	inputPos  int
	selectPos int
	textPos   int
	failWith  error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	if val >= len(cfg.Options) {
		return -1, errors.New("scripted index out of range")
	}
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoLines = append(s.infoLines, msg)
	return nil
}

func bugSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse([]schema.Descriptor{
		{Kind: "markdown", Value: "## Before you file\nSearch existing reports."},
		{Kind: "input", Key: "title", Label: "Title", Required: true, Placeholder: "crash on boot"},
		{Kind: "textarea", Key: "body", Label: "What happened?"},
		{Kind: "dropdown", Key: "severity", Label: "Severity", Options: []string{"low", "high"}},
	})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return sch
}

func TestAdapter_SessionFlow(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"  crash on boot  "},
		textAreas: []string{"reboots in a loop"},
		selectIdx: []int{2}, // optional dropdown gains a leading skip entry
	}
	adapter := New(WithPromptDriver(driver))

	sess, err := render.NewSession(bugSchema(t), adapter, render.SessionOptions{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	record, err := sess.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := submission.Record{
		"title":    "crash on boot",
		"body":     "reboots in a loop",
		"severity": "high",
	}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	if len(driver.infoLines) == 0 || !strings.Contains(driver.infoLines[0], "Before you file") {
		t.Errorf("markdown notice not presented: %v", driver.infoLines)
	}
}

func TestAdapter_DropdownSkip(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{0}}
	adapter := New(WithPromptDriver(driver))

	field, _ := bugSchema(t).Field("severity")
	value, populated, err := adapter.Collect(context.Background(), field)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if populated || value != "" {
		t.Errorf("skip entry should report absence, got %q %v", value, populated)
	}
}

func TestAdapter_RequiredDropdownHasNoSkip(t *testing.T) {
	sch, err := schema.Parse([]schema.Descriptor{
		{Kind: "dropdown", Key: "severity", Label: "Severity", Required: true, Options: []string{"low", "high"}},
	})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	driver := &stubDriver{selectIdx: []int{0}}
	adapter := New(WithPromptDriver(driver))

	field, _ := sch.Field("severity")
	value, populated, err := adapter.Collect(context.Background(), field)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !populated || value != "low" {
		t.Errorf("required dropdown index 0 should be the first real option, got %q", value)
	}
}

func TestAdapter_BlankInputIsAbsence(t *testing.T) {
	driver := &stubDriver{inputs: []string{"   "}}
	adapter := New(WithPromptDriver(driver))

	field, _ := bugSchema(t).Field("title")
	_, populated, err := adapter.Collect(context.Background(), field)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if populated {
		t.Errorf("whitespace-only answer should count as absent")
	}
}

func TestAdapter_AbortPropagates(t *testing.T) {
	driver := &stubDriver{failWith: render.ErrAborted}
	adapter := New(WithPromptDriver(driver))

	sess, err := render.NewSession(bugSchema(t), adapter, render.SessionOptions{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := sess.Run(context.Background()); !errors.Is(err, render.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAdapter_PresentSkipsInputFields(t *testing.T) {
	driver := &stubDriver{}
	adapter := New(WithPromptDriver(driver))

	field, _ := bugSchema(t).Field("title")
	if err := adapter.Present(context.Background(), field); err != nil {
		t.Fatalf("present: %v", err)
	}
	if len(driver.infoLines) != 0 {
		t.Errorf("input fields should present silently, got %v", driver.infoLines)
	}
}

func TestAdapter_ReportError(t *testing.T) {
	driver := &stubDriver{}
	adapter := New(WithPromptDriver(driver))

	field, _ := bugSchema(t).Field("title")
	err := adapter.ReportError(context.Background(), field, []string{`field "title" is required`})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(driver.infoLines) != 1 || !strings.Contains(driver.infoLines[0], "Title") {
		t.Errorf("reported lines = %v", driver.infoLines)
	}
}

func TestHelpText(t *testing.T) {
	field := schema.FieldDefinition{
		Description: "Steps to reproduce.",
		Placeholder: "1. boot the machine",
	}
	got := helpText(field)
	if !strings.Contains(got, "Steps to reproduce.") || !strings.Contains(got, "e.g. 1. boot the machine") {
		t.Errorf("help = %q", got)
	}
}
