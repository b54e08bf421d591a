package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalogTranslateFallsBackToBaseLocale(t *testing.T) {
	messages := catalog{
		"es": {"forms.label.required": "(Obligatorio)"},
	}

	got, err := messages.Translate("es-MX", "forms.label.required")
	if err != nil || got != "(Obligatorio)" {
		t.Fatalf("translate: got %q, %v", got, err)
	}
	if _, err := messages.Translate("fr", "forms.label.required"); err == nil {
		t.Fatalf("expected missing translation error")
	}
}

func TestRenderCommandWritesHTML(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.yaml")
	messages := filepath.Join(dir, "messages.yaml")
	writeFile(t, doc, `
groups:
  - context:
      id: email
      required: true
    elements:
      - kind: label
        text: Correo
      - kind: input
`)
	writeFile(t, messages, `
es:
  forms.label.required: (Obligatorio)
`)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render", "-f", doc, "--messages", messages, "--locale", "es"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out.String(), `for="email">Correo <span class="ui--form-visually-hidden">(Obligatorio)</span></label>`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRenderCommandRequiresFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing flag error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
