package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

// Name is the registry name of the vanilla renderer.
const Name = "vanilla"

// StylesheetAsset is the theme asset key resolved for the stylesheet link.
const StylesheetAsset = "vanilla.stylesheet"

// Option configures the vanilla renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	engine           string
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithEngine selects the built-in template engine by name
// (gotemplate.EnginePongo2 or gotemplate.EngineGoTemplate). It is ignored
// when WithTemplateRenderer supplies a renderer.
func WithEngine(name string) Option {
	return func(cfg *config) {
		cfg.engine = strings.TrimSpace(name)
	}
}

// WithTheme sets the theme used when RenderOptions carry none.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// Renderer wraps every built field in a group with its label and error
// message and renders the result through a template engine.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.NewNamed(cfg.engine,
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, theme: cfg.theme}, nil
}

// Name returns the registry name.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports HTML output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render composes result into a full form document. The theme in options
// takes precedence over the one configured with WithTheme.
func (r *Renderer) Render(_ context.Context, result form.Result, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}

	themeCfg := options.Theme
	if themeCfg == nil {
		themeCfg = r.theme
	}

	out, err := r.templates.RenderTemplate("templates/form.tmpl", templateData(result, options.FormErrors, themeCfg))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(out), nil
}

func templateData(result form.Result, formErrors []string, themeCfg *theme.RendererConfig) map[string]any {
	open := ""
	if result.Open != nil {
		open = result.Open.Render()
	}

	fields := make([]map[string]any, 0, len(result.Fields))
	for _, field := range result.Fields {
		if field == nil {
			continue
		}
		fields = append(fields, fieldData(field))
	}

	actions := make([]string, 0, len(result.Actions))
	for _, action := range result.Actions {
		if action != nil {
			actions = append(actions, action.Render())
		}
	}

	data := map[string]any{
		"open":    open,
		"close":   result.Close,
		"fields":  fields,
		"actions": actions,
		"errors":  nonBlank(formErrors),
		"classes": classMap(),
	}
	if ctx := themeData(themeCfg); ctx != nil {
		data["theme"] = ctx
	}
	return data
}

func fieldData(field element.Field) map[string]any {
	kind := field.GetType()
	data := map[string]any{
		"key":     fieldKey(field),
		"kind":    kind,
		"control": field.Render(),
		"bare":    kind == element.KindHidden || kind == element.KindHTML,
		"check":   kind == element.KindCheckbox || kind == element.KindRadio,
		"label":   "",
		"error":   "",
		"invalid": false,
	}
	if label := field.GetLabel(); label != nil {
		data["label"] = label.Render()
	}
	if invalid, err := field.HasError(); err == nil && invalid {
		message, _ := field.GetError()
		data["invalid"] = true
		data["error"] = message
	}
	return data
}

func fieldKey(field element.Field) string {
	if field.GetType() == element.KindRadio {
		if id := field.GetID(); id != "" {
			return id
		}
	}
	if name := field.GetName(); name != "" {
		return name
	}
	return field.GetID()
}

func themeData(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return nil
	}
	data := map[string]any{
		"name":       cfg.Theme,
		"variant":    cfg.Variant,
		"style":      cssVarsStyle(cfg.CSSVars),
		"stylesheet": "",
	}
	if cfg.AssetURL != nil {
		data["stylesheet"] = cfg.AssetURL(StylesheetAsset)
	}
	return data
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key]+";")
	}
	return strings.Join(parts, " ")
}

func nonBlank(messages []string) []string {
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
