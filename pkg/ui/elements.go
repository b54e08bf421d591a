package ui

import (
	"html"
	"strings"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/field"
)

const (
	propClass     = "class"
	propClassName = "className"
	propFor       = "for"
	propHTMLFor   = "htmlFor"
	propType      = "type"
	propValue     = "value"
	propResize    = "resize"
	propRole      = "role"
)

// Group publishes Context to its children and renders them inside a wrapping
// container. A nested group shadows the outer context for its own subtree
// only; a nil Context renders the children without any context.
type Group struct {
	Context  *field.Context
	Class    string
	Props    field.Props
	Children []Node
}

// RenderField implements Node. The enclosing context is ignored: the group's
// own Context replaces it.
func (g Group) RenderField(r *Renderer, _ *field.Context) (string, error) {
	var content strings.Builder
	for _, child := range g.Children {
		if child == nil {
			continue
		}
		markup, err := child.RenderField(r, g.Context)
		if err != nil {
			return "", err
		}
		content.WriteString(markup)
	}

	attrs := g.Props.Clone()
	if g.Class != "" {
		attrs[propClass] = strings.TrimSpace(g.Class + " " + attrs.String(propClass))
	}
	class, attrs := composeClasses(ClassGroup, map[string]bool{
		ClassGroup + modifierInvalid:  g.Context.HasError(),
		ClassGroup + modifierDisabled: g.Context != nil && g.Context.Disabled,
	}, attrs)

	return r.RenderComponent(components.NameGroup, components.ComponentData{
		Class:   class,
		Attrs:   field.Attributes(attrs),
		Content: content.String(),
	})
}

// Input renders an <input>. Type defaults to "text".
type Input struct {
	Props field.Props
}

// RenderField implements Node.
func (in Input) RenderField(r *Renderer, fc *field.Context) (string, error) {
	attrs := field.Resolve(fc, in.Props).Clone()
	if value, ok := attrs[propType].(string); !ok || strings.TrimSpace(value) == "" {
		attrs[propType] = "text"
	}

	class, attrs := composeClasses(ClassInput, stateModifiers(ClassInput, fc, attrs), attrs)
	return r.RenderComponent(components.NameInput, components.ComponentData{
		Class: class,
		Attrs: field.Attributes(attrs),
	})
}

// SelectOption is one <option> of a Select.
type SelectOption struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label" yaml:"label"`
	Selected bool   `json:"selected,omitempty" yaml:"selected"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled"`
}

// Select renders a <select>. A "value" prop marks the matching option as
// selected instead of being emitted as an attribute. Children is extra
// option markup appended after Options.
type Select struct {
	Props    field.Props
	Options  []SelectOption
	Children string
}

// RenderField implements Node.
func (s Select) RenderField(r *Renderer, fc *field.Context) (string, error) {
	attrs := field.Resolve(fc, s.Props).Clone()
	selected, hasValue := attrs[propValue].(string)
	delete(attrs, propValue)

	options := make([]map[string]any, 0, len(s.Options))
	for _, option := range s.Options {
		label := option.Label
		if label == "" {
			label = option.Value
		}
		options = append(options, map[string]any{
			"value":    option.Value,
			"label":    label,
			"selected": option.Selected || (hasValue && option.Value == selected),
			"disabled": option.Disabled,
		})
	}

	class, attrs := composeClasses(ClassSelect, stateModifiers(ClassSelect, fc, attrs), attrs)
	return r.RenderComponent(components.NameSelect, components.ComponentData{
		Class:   class,
		Attrs:   field.Attributes(attrs),
		Content: sanitizeOptions(s.Children),
		Extra: map[string]any{
			"options": options,
		},
	})
}

// Resize controls the textarea resize handle.
type Resize string

const (
	ResizeX    Resize = "x"
	ResizeY    Resize = "y"
	ResizeBoth Resize = "xy"
	ResizeNone Resize = "none"
)

// DefaultResize is applied when no resize mode is given.
const DefaultResize = ResizeY

// ParseResize maps the accepted resize inputs ("x", "y", "xy"/"both"/true,
// "none"/false) to a Resize. Unknown values report false.
func ParseResize(value any) (Resize, bool) {
	switch v := value.(type) {
	case Resize:
		return ParseResize(string(v))
	case bool:
		if v {
			return ResizeBoth, true
		}
		return ResizeNone, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "x":
			return ResizeX, true
		case "y":
			return ResizeY, true
		case "xy", "both", "true":
			return ResizeBoth, true
		case "none", "false":
			return ResizeNone, true
		}
	}
	return "", false
}

// Textarea renders a <textarea>. Resize may also arrive as a "resize" prop;
// either way it only selects a class and is never forwarded as an attribute.
// A "value" prop becomes the escaped text content.
type Textarea struct {
	Props  field.Props
	Resize Resize
}

// RenderField implements Node.
func (ta Textarea) RenderField(r *Renderer, fc *field.Context) (string, error) {
	attrs := field.Resolve(fc, ta.Props).Clone()

	mode, ok := ParseResize(ta.Resize)
	if raw, present := attrs[propResize]; present {
		if parsed, valid := ParseResize(raw); valid && !ok {
			mode, ok = parsed, true
		}
		delete(attrs, propResize)
	}
	if !ok {
		mode = DefaultResize
	}

	value := ""
	if raw, present := attrs[propValue]; present {
		if str, isString := raw.(string); isString {
			value = str
		}
		delete(attrs, propValue)
	}

	modifiers := stateModifiers(ClassTextarea, fc, attrs)
	modifiers[resizeClass(mode)] = true

	class, attrs := composeClasses(ClassTextarea, modifiers, attrs)
	return r.RenderComponent(components.NameTextarea, components.ComponentData{
		Class: class,
		Attrs: field.Attributes(attrs),
		Extra: map[string]any{
			"value": value,
		},
	})
}

// Label renders a <label>. Inside a group with an id the label always
// targets that id, even when Props carries its own "for"/"htmlFor". Required
// groups get a visually hidden marker appended.
type Label struct {
	Props    field.Props
	Children string
}

// RenderField implements Node.
func (l Label) RenderField(r *Renderer, fc *field.Context) (string, error) {
	attrs := l.Props.Clone()
	target := attrs.String(propFor)
	if target == "" {
		target = attrs.String(propHTMLFor)
	}
	delete(attrs, propHTMLFor)
	if fc != nil && fc.ID != "" {
		target = fc.ID
	}
	if target != "" {
		attrs[propFor] = target
	} else {
		delete(attrs, propFor)
	}

	required := fc != nil && fc.Required
	marker := ""
	if required {
		marker = r.translate(RequiredMarkerKey, DefaultRequiredMarker)
	}

	class, attrs := composeClasses(ClassLabel, map[string]bool{
		ClassLabel + modifierRequired: required,
	}, attrs)
	return r.RenderComponent(components.NameLabel, components.ComponentData{
		Class:   class,
		Attrs:   field.Attributes(attrs),
		Content: sanitizeContent(l.Children),
		Extra: map[string]any{
			"required_marker": marker,
			"marker_class":    ClassVisuallyHidden,
		},
	})
}

// Error renders the field's error message with role="alert". Children, when
// set, replace the context error. Nothing is rendered without a message.
type Error struct {
	Props    field.Props
	Children string
}

// RenderField implements Node.
func (e Error) RenderField(r *Renderer, fc *field.Context) (string, error) {
	content := sanitizeContent(e.Children)
	if content == "" && fc.HasError() {
		content = html.EscapeString(fc.Error)
	}
	if content == "" {
		return "", nil
	}

	attrs := e.Props.Clone()
	if id := fc.ErrorID(); id != "" {
		attrs[field.AttrID] = id
	}
	attrs[propRole] = "alert"

	class, attrs := composeClasses(ClassError, nil, attrs)
	return r.RenderComponent(components.NameError, components.ComponentData{
		Class:   class,
		Attrs:   field.Attributes(attrs),
		Content: content,
	})
}

// Markup renders sanitized free-form HTML, e.g. help text between elements.
type Markup string

// RenderField implements Node.
func (m Markup) RenderField(_ *Renderer, _ *field.Context) (string, error) {
	return sanitizeContent(string(m)), nil
}

// composeClasses builds the class attribute from the fixed element class,
// its state modifiers and any caller classes, returning attrs without the
// class keys. Caller tokens using the reserved prefix are dropped.
func composeClasses(base string, modifiers map[string]bool, attrs field.Props) (string, field.Props) {
	extra := strings.TrimSpace(attrs.String(propClass) + " " + attrs.String(propClassName))
	rest := attrs.Without(propClass, propClassName)

	class := field.ClassNames(base, modifiers)
	if extra = field.SanitizeClassList(extra, ReservedClassPrefix); extra != "" {
		class = field.ClassNames(class+" "+extra, nil)
	}
	return class, rest
}

func stateModifiers(base string, fc *field.Context, attrs field.Props) map[string]bool {
	return map[string]bool{
		base + modifierInvalid:  fc.HasError(),
		base + modifierDisabled: truthy(attrs[field.AttrDisabled]),
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	default:
		return v != nil
	}
}
