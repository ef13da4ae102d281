package render

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// Renderer converts a built form into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, result form.Result, options RenderOptions) ([]byte, error)
}
