package formsite

import (
	"embed"
	"io/fs"
)

//go:embed all:template
var templateFS embed.FS

// DefaultTemplates exposes the built-in Jekyll template set so callers can
// reuse or extend it. Paths are relative to the template root (_config.yml,
// lang/index.html, form/form_radio.html, ...).
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(templateFS, "template")
	if err != nil {
		panic(err)
	}
	return sub
}
