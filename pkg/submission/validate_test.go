package submission

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, err := schema.Parse([]schema.Descriptor{
		{Kind: "markdown", Value: "Please search existing reports first."},
		{Kind: "input", Key: "title", Label: "Title", Required: true},
		{Kind: "textarea", Key: "body", Label: "What happened?"},
		{Kind: "dropdown", Key: "severity", Label: "Severity", Options: []string{"low", "medium", "high"}},
	})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return sch
}

func TestValidate_Success(t *testing.T) {
	sch := testSchema(t)
	raw := RawSubmission{
		"title":    "  crash on boot  ",
		"severity": "high",
	}
	if errs := Validate(sch, raw); len(errs) != 0 {
		t.Fatalf("expected success, got %v", errs)
	}
}

func TestValidate_RequiredMissing(t *testing.T) {
	sch := testSchema(t)

	errs := Validate(sch, RawSubmission{})
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	want := FieldError{Key: "title", Kind: ErrorRequired}
	if diff := cmp.Diff(want, errs[0]); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_BlankCountsAsMissing(t *testing.T) {
	sch := testSchema(t)
	errs := Validate(sch, RawSubmission{"title": "   \n\t "})
	if len(errs) != 1 || errs[0].Kind != ErrorRequired {
		t.Fatalf("whitespace-only required value should fail, got %v", errs)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	sch, err := schema.Parse([]schema.Descriptor{
		{Kind: "input", Key: "title", Label: "Title", Required: true},
		{Kind: "input", Key: "version", Label: "Version", Required: true,
			Constraints: []schema.ConstraintSpec{{Kind: schema.ConstraintPattern, Value: `^v\d+`}}},
		{Kind: "dropdown", Key: "severity", Label: "Severity", Required: true, Options: []string{"low", "high"}},
	})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	errs := Validate(sch, RawSubmission{
		"version":  "latest",
		"severity": "catastrophic",
	})

	wantKeys := []string{"title", "version", "severity"}
	if diff := cmp.Diff(wantKeys, errs.Keys()); diff != "" {
		t.Errorf("error order mismatch (-want +got):\n%s", diff)
	}
	if errs[1].Kind != ErrorConstraint || errs[2].Kind != ErrorNotAnOption {
		t.Errorf("kinds = %v", errs)
	}
}

func TestValidate_Pure(t *testing.T) {
	sch := testSchema(t)
	raw := RawSubmission{"severity": "medium"}

	first := Validate(sch, raw)
	second := Validate(sch, raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated validation differs (-first +second):\n%s", diff)
	}
}

func TestValidate_IgnoresUnknownKeys(t *testing.T) {
	sch := testSchema(t)
	raw := RawSubmission{
		"title":      "crash on boot",
		"stale_key":  "left over from an old client",
		"extra_junk": "",
	}
	if errs := Validate(sch, raw); len(errs) != 0 {
		t.Fatalf("unknown keys should be ignored, got %v", errs)
	}
}

func TestValidate_DropdownTrimsBeforeMatching(t *testing.T) {
	sch := testSchema(t)
	raw := RawSubmission{
		"title":    "crash",
		"severity": "  medium  ",
	}
	if errs := Validate(sch, raw); len(errs) != 0 {
		t.Fatalf("trimmed dropdown value should match, got %v", errs)
	}
}

func TestErrors_Accessors(t *testing.T) {
	errs := Errors{
		{Key: "title", Kind: ErrorRequired},
		{Key: "title", Kind: ErrorConstraint, Detail: "must be at least 3 characters"},
		{Key: "severity", Kind: ErrorNotAnOption, Detail: `"nope" is not one of the declared options`},
	}

	grouped := errs.ByKey()
	if len(grouped["title"]) != 2 || len(grouped["severity"]) != 1 {
		t.Errorf("grouping wrong: %v", grouped)
	}
	if errs.Error() == "" {
		t.Errorf("joined message should not be empty")
	}
}
