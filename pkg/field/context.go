package field

import "strings"

// ErrorSuffix is appended to a field id to build the id of its error element.
const ErrorSuffix = "-error"

// Context describes one logical form field. The value is read-only for the
// elements that receive it.
type Context struct {
	Name string `json:"name,omitempty" yaml:"name"`
	ID   string `json:"id,omitempty" yaml:"id"`
	// Invalid seeds aria-invalid when Error is present. It is nil (unset), a
	// bool, or a string; the string "false" is coerced to false.
	Invalid  any    `json:"invalid,omitempty" yaml:"invalid"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled"`
	Required bool   `json:"required,omitempty" yaml:"required"`
	Error    string `json:"error,omitempty" yaml:"error"`
}

// HasError reports whether the context carries an error message. Any
// non-empty message counts, including whitespace.
func (c *Context) HasError() bool {
	return c != nil && c.Error != ""
}

// ErrorID returns the id of the error element associated with the field, or
// "" when the context has no id.
func (c *Context) ErrorID() string {
	if c == nil {
		return ""
	}
	return ErrorID(c.ID)
}

// ErrorID derives the error element id for a field id.
func ErrorID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return id + ErrorSuffix
}

// With returns a copy of the context with fn applied. It is the only way to
// derive a new context from an existing one.
func (c *Context) With(fn func(*Context)) *Context {
	var next Context
	if c != nil {
		next = *c
	}
	if fn != nil {
		fn(&next)
	}
	return &next
}
