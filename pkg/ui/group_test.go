package ui_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/ui"
)

func TestGroup_WiresSiblings(t *testing.T) {
	r := newRenderer(t)

	got, err := r.RenderGroup(
		&field.Context{Name: "email", ID: "email", Error: "Required", Required: true},
		"stack",
		ui.Label{Children: "Email"},
		ui.Input{Props: field.Props{"type": "email"}},
		ui.Markup(`<small>We never share it.</small>`),
		ui.Error{},
	)
	if err != nil {
		t.Fatalf("render group: %v", err)
	}

	want := `<div class="ui--form-group ui--form-group--invalid stack">` +
		`<label class="ui--form-label ui--form-label--required" for="email">Email <span class="ui--form-visually-hidden">(Required)</span></label>` +
		`<input class="ui--form-input ui--form-input--invalid" aria-describedby="email-error" aria-invalid="true" id="email" name="email" required type="email">` +
		`<small>We never share it.</small>` +
		`<p class="ui--form-error" id="email-error" role="alert">Required</p>` +
		`</div>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestGroup_NestedContextShadowsOuter(t *testing.T) {
	r := newRenderer(t)

	outer := &field.Context{ID: "outer", Error: "Outer error"}
	inner := &field.Context{ID: "inner"}

	got := render(t, r, nil, ui.Group{
		Context: outer,
		Children: []ui.Node{
			ui.Group{Context: inner, Children: []ui.Node{ui.Input{}, ui.Error{}}},
			ui.Input{},
		},
	})

	if !strings.Contains(got, `<input class="ui--form-input" id="inner" type="text">`) {
		t.Fatalf("inner input should only see inner context: %s", got)
	}
	if !strings.Contains(got, `aria-describedby="outer-error" aria-invalid="true" id="outer"`) {
		t.Fatalf("sibling input should still see outer context: %s", got)
	}
	if strings.Contains(got, `id="inner-error"`) {
		t.Fatalf("inner group has no error and must not render one: %s", got)
	}
}

func TestGroup_NilContextRendersStandaloneChildren(t *testing.T) {
	r := newRenderer(t)

	got := render(t, r, &field.Context{ID: "ignored", Error: "x"}, ui.Group{
		Children: []ui.Node{ui.Input{Props: field.Props{"id": "solo"}}},
	})
	want := `<div class="ui--form-group"><input class="ui--form-input" id="solo" type="text"></div>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}
