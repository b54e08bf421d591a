package ui

// Class names emitted by the elements. Stylesheets may target them directly.
const (
	ReservedClassPrefix = "ui--form-"

	ClassGroup          = "ui--form-group"
	ClassLabel          = "ui--form-label"
	ClassInput          = "ui--form-input"
	ClassSelect         = "ui--form-select"
	ClassTextarea       = "ui--form-textarea"
	ClassError          = "ui--form-error"
	ClassVisuallyHidden = "ui--form-visually-hidden"

	modifierInvalid  = "--invalid"
	modifierDisabled = "--disabled"
	modifierRequired = "--required"
)

func resizeClass(mode Resize) string {
	return ClassTextarea + "-resize-" + string(mode)
}
