package ui

import "strings"

// RequiredMarkerKey is the translation key of the visually hidden marker a
// label appends for required fields.
const RequiredMarkerKey = "forms.label.required"

// DefaultRequiredMarker is used when no translation is available.
const DefaultRequiredMarker = "(Required)"

// Translator resolves localized strings.
type Translator interface {
	Translate(locale string, key string, args ...any) (string, error)
}

func (r *Renderer) translate(key, fallback string) string {
	if r.translator == nil {
		return fallback
	}
	msg, err := r.translator.Translate(r.locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
