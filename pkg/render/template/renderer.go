package template

import (
	"io"
)

// TemplateRenderer is the engine contract HTML renderers depend on. It
// matches the github.com/goliatone/go-template engine surface so either
// engine can be swapped in.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
