package ui

import (
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/components"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS       []fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	partials         map[string]string

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string

	translator Translator
	locale     string
}

// WithTemplatesFS layers an extra template bundle in front of the embedded
// element templates. Theme partial paths are resolved against it.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = append(cfg.templateFS, files)
		}
	}
}

// WithTemplatesDir loads override templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = append(cfg.templateFS, os.DirFS(path))
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
// Template bundles configured through WithTemplatesFS are ignored.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry replaces the default element registry.
func WithRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithPartials maps partial keys (components.Partial*) to template paths.
// Explicit partials win over theme-provided ones.
func WithPartials(partials map[string]string) Option {
	return func(cfg *config) {
		if len(partials) == 0 {
			return
		}
		if cfg.partials == nil {
			cfg.partials = make(map[string]string, len(partials))
		}
		for key, value := range partials {
			cfg.partials[key] = value
		}
	}
}

// WithThemeSelector resolves element partials from a go-theme selection.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithTranslator localizes library-owned strings such as the required marker.
func WithTranslator(translator Translator, locale string) Option {
	return func(cfg *config) {
		cfg.translator = translator
		cfg.locale = locale
	}
}
