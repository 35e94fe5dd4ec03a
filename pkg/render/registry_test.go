package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/schema"
)

type noopAdapter struct {
	name string
}

func (a noopAdapter) Name() string { return a.name }
func (a noopAdapter) Present(context.Context, schema.FieldDefinition) error {
	return nil
}
func (a noopAdapter) Collect(context.Context, schema.FieldDefinition) (string, bool, error) {
	return "", false, nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(noopAdapter{name: "tui"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(noopAdapter{name: "web"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := reg.Register(noopAdapter{name: "tui"}); err == nil {
		t.Errorf("duplicate registration should fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Errorf("nil adapter should fail")
	}
	if err := reg.Register(noopAdapter{}); err == nil {
		t.Errorf("empty name should fail")
	}

	if diff := cmp.Diff([]string{"tui", "web"}, reg.List()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("tui") || reg.Has("gone") {
		t.Errorf("Has answers wrong")
	}

	adapter, err := reg.Get("web")
	if err != nil || adapter.Name() != "web" {
		t.Errorf("get web = %v, %v", adapter, err)
	}
	if _, err := reg.Get("gone"); err == nil {
		t.Errorf("missing adapter should fail")
	}
}
