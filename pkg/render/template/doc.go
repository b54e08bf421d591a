// Package template defines the template engine contract used by the field
// element renderers. The gotemplate subpackage provides the pongo2-backed
// implementation.
package template
