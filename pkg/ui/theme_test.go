package ui_test

import (
	"errors"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/ui"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     int
}

func (s *stubThemeSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, s.err
}

func TestThemeSelectorOverridesPartials(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Templates: map[string]string{
			components.PartialInput: "themes/acme/input.tmpl",
			"layout.page":           "themes/acme/page.tmpl",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Templates: map[string]string{
					components.PartialError: "themes/acme/dark/error.tmpl",
				},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	overrides := fstest.MapFS{
		"themes/acme/input.tmpl":      {Data: []byte(`<span class="acme"><input class="{{ class }}"{{ attrs|safe }}></span>`)},
		"themes/acme/dark/error.tmpl": {Data: []byte(`<div class="dark {{ class }}"{{ attrs|safe }}>{{ content|safe }}</div>`)},
	}

	r := newRenderer(t,
		ui.WithTemplatesFS(overrides),
		ui.WithThemeSelector(selector, "acme", "dark"),
	)
	if selector.calls != 1 {
		t.Fatalf("expected selector to be called once, got %d", selector.calls)
	}

	fc := &field.Context{ID: "f1", Error: "Required"}
	got := render(t, r, fc, ui.Input{})
	want := `<span class="acme"><input class="ui--form-input ui--form-input--invalid" aria-describedby="f1-error" aria-invalid="true" id="f1" type="text"></span>`
	if got != want {
		t.Fatalf("unexpected input markup\nwant: %s\n got: %s", want, got)
	}

	got = render(t, r, fc, ui.Error{})
	want = `<div class="dark ui--form-error" id="f1-error" role="alert">Required</div>`
	if got != want {
		t.Fatalf("unexpected error markup\nwant: %s\n got: %s", want, got)
	}

	got = render(t, r, fc, ui.Label{Children: "Email"})
	if got != `<label class="ui--form-label" for="f1">Email</label>` {
		t.Fatalf("label should use built-in template, got %s", got)
	}
}

func TestExplicitPartialsWinOverTheme(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme: "acme",
		Manifest: &theme.Manifest{
			Name:      "acme",
			Templates: map[string]string{components.PartialInput: "themes/acme/input.tmpl"},
		},
	}}
	overrides := fstest.MapFS{
		"custom/input.tmpl": {Data: []byte(`<input data-custom class="{{ class }}"{{ attrs|safe }}>`)},
	}

	r := newRenderer(t,
		ui.WithTemplatesFS(overrides),
		ui.WithThemeSelector(selector, "acme", ""),
		ui.WithPartials(map[string]string{components.PartialInput: "custom/input.tmpl"}),
	)

	got := render(t, r, nil, ui.Input{})
	if got != `<input data-custom class="ui--form-input" type="text">` {
		t.Fatalf("unexpected markup: %s", got)
	}
}

func TestThemeSelectorErrorFailsConstruction(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("unknown theme")}
	if _, err := ui.New(ui.WithThemeSelector(selector, "missing", "")); err == nil {
		t.Fatalf("expected constructor error")
	}
}
