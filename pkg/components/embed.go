package components

import (
	"embed"
	"io/fs"
)

//go:embed templates/components/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded element templates. Paths are rooted at
// "templates/components/".
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
