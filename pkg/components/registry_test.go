package components

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryRegisterNormalizesNames(t *testing.T) {
	reg := New()
	renderer := func(buf *bytes.Buffer, data ComponentData) error { return nil }

	if err := reg.Register("  Input ", Descriptor{Renderer: renderer}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("INPUT")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	if desc.Name != "input" {
		t.Fatalf("expected normalised name, got %q", desc.Name)
	}
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	reg := New()
	if err := reg.Register("", Descriptor{Renderer: func(*bytes.Buffer, ComponentData) error { return nil }}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("input", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistryCloneIsIsolated(t *testing.T) {
	reg := NewDefaultRegistry()
	cloned := reg.Clone()

	cloned.MustRegister("custom", Descriptor{
		Renderer: func(buf *bytes.Buffer, data ComponentData) error {
			buf.WriteString("custom")
			return nil
		},
	})

	if _, ok := reg.Descriptor("custom"); ok {
		t.Fatalf("clone registration leaked into original registry")
	}

	want := []string{NameError, NameGroup, NameInput, NameLabel, NameSelect, NameTextarea}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("default names mismatch (-want +got):\n%s", diff)
	}
}
