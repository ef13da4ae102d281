package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers use to customise output
// without touching the built form.
type RenderOptions struct {
	// Theme selects the theme name, variant, CSS variables and asset
	// resolver exposed to templates. Nil renders unthemed markup.
	Theme *theme.RendererConfig
	// FormErrors are form-level messages that belong to no single field,
	// typically the Form half of input.MapErrorPayload.
	FormErrors []string
}
