package field

import "strings"

// Well-known attribute keys used by the resolver.
const (
	AttrID              = "id"
	AttrName            = "name"
	AttrDisabled        = "disabled"
	AttrRequired        = "required"
	AttrAriaDescribedBy = "aria-describedby"
	AttrAriaInvalid     = "aria-invalid"
)

// Props is the attribute set of one element. Values are strings, bools,
// numbers or nil.
type Props map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// String returns the value stored under key when it is a string.
func (p Props) String(key string) string {
	if p == nil {
		return ""
	}
	if value, ok := p[key].(string); ok {
		return value
	}
	return ""
}

// Without returns a copy of p minus the given keys.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Resolve merges the field context with explicit element props.
//
// With a nil context the props are returned unchanged. Otherwise the
// forwardable context fields (name, id, disabled, required) are overlaid by
// props, and when the context has both an error and an id the accessibility
// attributes are derived. Error and Invalid are never forwarded as raw
// attributes. Neither argument is modified.
func Resolve(ctx *Context, props Props) Props {
	if ctx == nil {
		return props
	}

	merged := make(Props, len(props)+6)
	if ctx.Name != "" {
		merged[AttrName] = ctx.Name
	}
	if ctx.ID != "" {
		merged[AttrID] = ctx.ID
	}
	if ctx.Disabled {
		merged[AttrDisabled] = true
	}
	if ctx.Required {
		merged[AttrRequired] = true
	}
	for key, value := range props {
		merged[key] = value
	}

	if !ctx.HasError() || ctx.ID == "" {
		return merged
	}

	errorID := ErrorID(ctx.ID)
	if existing := strings.TrimSpace(describedBy(props[AttrAriaDescribedBy])); existing != "" {
		merged[AttrAriaDescribedBy] = existing + " " + errorID
	} else {
		merged[AttrAriaDescribedBy] = errorID
	}

	invalid := props[AttrAriaInvalid]
	if invalid == nil {
		invalid = ctx.Invalid
	}
	merged[AttrAriaInvalid] = coerceInvalid(invalid)

	return merged
}

func coerceInvalid(value any) any {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		if v == "false" {
			return false
		}
		return v
	default:
		return v
	}
}

// describedBy renders an explicit aria-describedby value the same way
// Attributes would, so non-string values are appended to rather than lost.
func describedBy(value any) string {
	if value == nil {
		return ""
	}
	return formatValue(value)
}
