package ui

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

func selectThemePartials(selector theme.ThemeSelector, name, variant string) (map[string]string, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("ui: select theme %q/%q: %w", name, variant, err)
	}
	return themePartials(selection), nil
}

// themePartials collects forms.* templates from the manifest, letting the
// selected variant override the base entries.
func themePartials(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	out := make(map[string]string)
	collect := func(templates map[string]string) {
		for key, path := range templates {
			if !strings.HasPrefix(key, "forms.") || strings.TrimSpace(path) == "" {
				continue
			}
			out[key] = strings.TrimSpace(path)
		}
	}

	collect(selection.Manifest.Templates)
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		collect(variant.Templates)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
