package components

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"sync"

	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
)

// Renderer writes the markup for one element into buf. Attribute resolution
// and content sanitisation happen before the renderer is called; renderers
// only lay out the prepared pieces.
type Renderer func(buf *bytes.Buffer, data ComponentData) error

// ComponentData carries the prepared element pieces plus template helpers.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// Partials maps partial keys (e.g. "forms.input") to template paths that
	// replace the built-in template.
	Partials map[string]string
	// Class is the composed class attribute value.
	Class string
	// Attrs is the pre-rendered attribute string (leading space per attribute).
	Attrs string
	// Content is sanitised inner markup.
	Content string
	// Extra holds element-specific values exposed to templates.
	Extra map[string]any
}

// Descriptor bundles a renderer with its registry name.
type Descriptor struct {
	Name     string
	Renderer Renderer
}

// Registry tracks element descriptors keyed by name. Callers can register new
// elements or override defaults.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for name, descriptor := range r.components {
		cloned.components[name] = descriptor
	}
	return cloned
}

// Register associates a descriptor with the provided name. Existing entries are
// replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default registry
// setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	return descriptor, ok
}

// Names returns a sorted slice of registered component names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
