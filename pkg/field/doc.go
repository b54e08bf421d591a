// Package field holds the metadata shared by the elements of one form field
// and the pure helpers that turn it into element attributes.
//
// A Context describes a single logical field. Elements never read it from a
// global or ambient store: callers pass a *Context explicitly, and a nil
// pointer means the element is rendered standalone. Resolve merges the
// context with element-local Props and derives aria-describedby and
// aria-invalid when the field carries an error.
package field
