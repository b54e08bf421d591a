// Package components maps field element names to the renderers that lay out
// their markup. The default registry executes embedded templates and honours
// theme partial overrides.
package components
