package components

// Canonical element names used by the default registry.
const (
	NameGroup    = "group"
	NameLabel    = "label"
	NameInput    = "input"
	NameSelect   = "select"
	NameTextarea = "textarea"
	NameError    = "error"
)

// Partial keys a theme can use to replace the built-in element templates.
const (
	PartialGroup    = "forms.group"
	PartialLabel    = "forms.label"
	PartialInput    = "forms.input"
	PartialSelect   = "forms.select"
	PartialTextarea = "forms.textarea"
	PartialError    = "forms.error"
)
