package ui

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/field"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-formfield/pkg/render/template/gotemplate"
)

// Node is anything that can be rendered inside a field group. fc is the
// context of the nearest enclosing group, or nil outside any group.
// Implementations outside this package can combine field.Resolve with
// Renderer.RenderComponent to build their own field-like elements.
type Node interface {
	RenderField(r *Renderer, fc *field.Context) (string, error)
}

// Renderer renders field elements through the component registry.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	registry   *components.Registry
	partials   map[string]string
	translator Translator
	locale     string
}

// New constructs a Renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := make([]gotemplate.Option, 0, len(cfg.templateFS)+1)
		for _, files := range cfg.templateFS {
			engineOptions = append(engineOptions, gotemplate.WithFS(files))
		}
		engineOptions = append(engineOptions, gotemplate.WithFS(components.TemplatesFS()))

		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("ui: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}

	partials, err := selectThemePartials(cfg.themeSelector, cfg.themeName, cfg.themeVariant)
	if err != nil {
		return nil, err
	}
	if len(cfg.partials) > 0 {
		if partials == nil {
			partials = make(map[string]string, len(cfg.partials))
		}
		for key, value := range cfg.partials {
			partials[key] = value
		}
	}

	return &Renderer{
		templates:  renderer,
		registry:   registry,
		partials:   partials,
		translator: cfg.translator,
		locale:     cfg.locale,
	}, nil
}

// Render renders node with fc as the enclosing field context. Pass nil when
// the node is not nested in a group.
func (r *Renderer) Render(fc *field.Context, node Node) (string, error) {
	if r == nil {
		return "", fmt.Errorf("ui: renderer is nil")
	}
	if node == nil {
		return "", nil
	}
	return node.RenderField(r, fc)
}

// RenderGroup renders children inside a group that publishes ctx to them.
func (r *Renderer) RenderGroup(ctx *field.Context, class string, children ...Node) (string, error) {
	return r.Render(nil, Group{Context: ctx, Class: class, Children: children})
}

// RenderComponent runs the registered renderer for name with prepared data.
func (r *Renderer) RenderComponent(name string, data components.ComponentData) (string, error) {
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("ui: component %q not registered", name)
	}
	if data.Template == nil {
		data.Template = r.templates
	}
	if data.Partials == nil {
		data.Partials = r.partials
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, data); err != nil {
		return "", fmt.Errorf("ui: render %s: %w", name, err)
	}
	return buf.String(), nil
}
