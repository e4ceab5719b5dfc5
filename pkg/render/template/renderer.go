package template

import (
	"errors"
	"io"
)

// ErrMissingTemplate reports that a template confirmed to exist could not be
// read back from storage. Absent templates are never an error; they resolve to
// Empty.
var ErrMissingTemplate = errors.New("template: missing template")

// Template is a compiled template ready to execute.
type Template interface {
	Name() string
	Execute(data any, out ...io.Writer) (string, error)
}

// Resolver picks the first existing template from a ranked candidate list,
// most specific first. When no candidate exists it returns Empty.
type Resolver interface {
	Resolve(candidates ...string) (Template, error)
}

// TemplateRenderer is the seam the scaffolder renders through.
type TemplateRenderer interface {
	Resolver
	Exists(name string) bool
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// Empty renders to an empty string and writes nothing.
var Empty Template = emptyTemplate{}

type emptyTemplate struct{}

func (emptyTemplate) Name() string { return "" }

func (emptyTemplate) Execute(any, ...io.Writer) (string, error) { return "", nil }

// IsEmpty reports whether tpl is the Empty fallback.
func IsEmpty(tpl Template) bool {
	_, ok := tpl.(emptyTemplate)
	return tpl == nil || ok
}
