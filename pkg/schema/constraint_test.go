package schema

import "testing"

func TestParseConstraint(t *testing.T) {
	cases := []struct {
		name    string
		spec    ConstraintSpec
		value   string
		wantErr bool
	}{
		{name: "min length pass", spec: ConstraintSpec{Kind: ConstraintMinLength, Value: "3"}, value: "abcd"},
		{name: "min length fail", spec: ConstraintSpec{Kind: ConstraintMinLength, Value: "3"}, value: "ab", wantErr: true},
		{name: "max length pass", spec: ConstraintSpec{Kind: ConstraintMaxLength, Value: "4"}, value: "abcd"},
		{name: "max length fail", spec: ConstraintSpec{Kind: ConstraintMaxLength, Value: "4"}, value: "abcde", wantErr: true},
		{name: "pattern pass", spec: ConstraintSpec{Kind: ConstraintPattern, Value: `^v\d+\.\d+`}, value: "v1.2.3"},
		{name: "pattern fail", spec: ConstraintSpec{Kind: ConstraintPattern, Value: `^v\d+\.\d+`}, value: "latest", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			constraint, err := ParseConstraint(tc.spec)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			err = constraint.Check(tc.value)
			if tc.wantErr && err == nil {
				t.Errorf("expected failure for %q", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected failure for %q: %v", tc.value, err)
			}
		})
	}
}

func TestParseConstraint_Invalid(t *testing.T) {
	invalid := []ConstraintSpec{
		{Kind: ConstraintMinLength, Value: "three"},
		{Kind: ConstraintMaxLength, Value: "-1"},
		{Kind: ConstraintPattern, Value: "("},
		{Kind: "maxBytes", Value: "10"},
	}
	for _, spec := range invalid {
		if _, err := ParseConstraint(spec); err == nil {
			t.Errorf("expected error for %+v", spec)
		}
	}
}

func TestConstraint_CountsRunes(t *testing.T) {
	constraint, err := ParseConstraint(ConstraintSpec{Kind: ConstraintMaxLength, Value: "4"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// "héll" is 5 bytes but 4 runes; limits count runes, not bytes.
	if err := constraint.Check("héll"); err != nil {
		t.Errorf("rune count should be 4: %v", err)
	}
	if err := constraint.Check("héllo"); err == nil {
		t.Errorf("5 runes should exceed maxLength 4")
	}
}
