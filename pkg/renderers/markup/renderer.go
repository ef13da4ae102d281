// Package markup renders a built form by concatenating each element's own
// markup with no extra chrome.
package markup

import (
	"context"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Name is the registry name of the markup renderer.
const Name = "markup"

type Option func(*Renderer)

// WithSeparator sets the text written between fragments (default "\n").
func WithSeparator(sep string) Option {
	return func(r *Renderer) {
		r.separator = sep
	}
}

// WithLabels renders each field's label before the field.
func WithLabels(enabled bool) Option {
	return func(r *Renderer) {
		r.labels = enabled
	}
}

type Renderer struct {
	separator string
	labels    bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(opts ...Option) *Renderer {
	r := &Renderer{separator: "\n"}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the open tag, fields, actions and close tag in order.
// Form-level errors and themes are ignored.
func (r *Renderer) Render(_ context.Context, result form.Result, _ render.RenderOptions) ([]byte, error) {
	fragments := make([]string, 0, len(result.Fields)+len(result.Actions)+2)
	if result.Open != nil {
		fragments = append(fragments, result.Open.Render())
	}
	for _, field := range result.Fields {
		fragments = r.appendField(fragments, field)
	}
	for _, action := range result.Actions {
		fragments = r.appendField(fragments, action)
	}
	if result.Close != "" {
		fragments = append(fragments, result.Close)
	}
	return []byte(strings.Join(fragments, r.separator)), nil
}

func (r *Renderer) appendField(fragments []string, field element.Field) []string {
	if field == nil {
		return fragments
	}
	if r.labels {
		if label := field.GetLabel(); label != nil {
			fragments = append(fragments, label.Render())
		}
	}
	return append(fragments, field.Render())
}
