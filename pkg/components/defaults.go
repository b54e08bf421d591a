package components

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	templatePrefix = "templates/components/"
)

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// template-backed elements.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameGroup, Descriptor{
		Renderer: templateComponentRenderer(PartialGroup, templatePrefix+"group.tmpl"),
	})
	registry.MustRegister(NameLabel, Descriptor{
		Renderer: templateComponentRenderer(PartialLabel, templatePrefix+"label.tmpl"),
	})
	registry.MustRegister(NameInput, Descriptor{
		Renderer: templateComponentRenderer(PartialInput, templatePrefix+"input.tmpl"),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: templateComponentRenderer(PartialSelect, templatePrefix+"select.tmpl"),
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer: templateComponentRenderer(PartialTextarea, templatePrefix+"textarea.tmpl"),
	})
	registry.MustRegister(NameError, Descriptor{
		Renderer: templateComponentRenderer(PartialError, templatePrefix+"error.tmpl"),
	})

	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.Partials != nil {
			if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		payload := map[string]any{
			"class":   data.Class,
			"attrs":   data.Attrs,
			"content": data.Content,
		}
		for key, value := range data.Extra {
			if _, reserved := payload[key]; reserved {
				continue
			}
			payload[key] = value
		}

		rendered, err := data.Template.RenderTemplate(resolvedTemplate, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(strings.TrimSpace(rendered))
		return nil
	}
}
