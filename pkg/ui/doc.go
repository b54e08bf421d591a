// Package ui renders accessible form-field elements (group, label, input,
// select, textarea, error) as HTML.
//
// Field metadata travels explicitly: a Group carries a *field.Context and
// hands it to every child it renders, and elements rendered outside a group
// receive nil. Elements derive their accessibility attributes through
// field.Resolve, so a label, a control and an error message rendered as
// siblings in the same group are wired together without repeating ids at
// each call site:
//
//	r, _ := ui.New()
//	html, err := r.Render(nil, ui.Group{
//		Context: &field.Context{ID: "email", Name: "email", Error: "Required", Required: true},
//		Children: []ui.Node{
//			ui.Label{Children: "Email"},
//			ui.Input{Props: field.Props{"type": "email"}},
//			ui.Error{},
//		},
//	})
//
// Class names use the fixed ui--form-* prefix, which is part of the public
// styling contract.
package ui
