package components_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
)

func TestDefaultInputTemplate(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(components.TemplatesFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	desc, ok := components.NewDefaultRegistry().Descriptor(components.NameInput)
	if !ok {
		t.Fatalf("input not registered")
	}

	var buf bytes.Buffer
	err = desc.Renderer(&buf, components.ComponentData{
		Template: engine,
		Class:    "ui--form-input",
		Attrs:    ` id="f1" type="text"`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<input class="ui--form-input" id="f1" type="text">`
	if buf.String() != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, buf.String())
	}
}

func TestPartialOverrideReplacesTemplate(t *testing.T) {
	overrides := fstest.MapFS{
		"themes/acme/error.tmpl": {Data: []byte(`<div class="acme {{ class }}"{{ attrs|safe }}>{{ content|safe }}</div>`)},
	}
	engine, err := gotemplate.New(
		gotemplate.WithFS(overrides),
		gotemplate.WithFS(components.TemplatesFS()),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	desc, _ := components.NewDefaultRegistry().Descriptor(components.NameError)

	var buf bytes.Buffer
	err = desc.Renderer(&buf, components.ComponentData{
		Template: engine,
		Partials: map[string]string{components.PartialError: "themes/acme/error.tmpl"},
		Class:    "ui--form-error",
		Attrs:    ` role="alert"`,
		Content:  "Required",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div class="acme ui--form-error" role="alert">Required</div>`
	if buf.String() != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, buf.String())
	}
}

func TestTemplateRendererRequiresEngine(t *testing.T) {
	desc, _ := components.NewDefaultRegistry().Descriptor(components.NameLabel)
	var buf bytes.Buffer
	if err := desc.Renderer(&buf, components.ComponentData{}); err == nil {
		t.Fatalf("expected error without template engine")
	}
}
