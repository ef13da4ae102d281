package gotemplate

import (
	"fmt"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/render/template"
)

// Engine names accepted by NewNamed.
const (
	EnginePongo2     = "pongo2"
	EngineGoTemplate = "go-template"
)

var _ template.TemplateRenderer = (*gotemplatepkg.Engine)(nil)

// NewStandard builds a github.com/goliatone/go-template engine from the same
// options New accepts. Options given through WithGoTemplateOptions are applied
// last. The engine shares the pongo2 filter registry, so the form filters
// ("attr", "trim") are available to its templates too.
func NewStandard(options ...Option) (*gotemplatepkg.Engine, error) {
	cfg, err := newConfig(options)
	if err != nil {
		return nil, err
	}
	defaultFilters.Do(registerDefaultFilters)

	opts := []gotemplatepkg.Option{gotemplatepkg.WithExtension(cfg.extension)}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	if len(cfg.templateFn) > 0 {
		opts = append(opts, gotemplatepkg.WithTemplateFunc(cfg.templateFn))
	}
	if len(cfg.globalData) > 0 {
		opts = append(opts, gotemplatepkg.WithGlobalData(cfg.globalData))
	}
	opts = append(opts, cfg.goTemplate...)

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: configure go-template engine: %w", err)
	}
	return engine, nil
}

// NewNamed builds the engine registered under name. An empty name selects
// the pongo2 engine.
func NewNamed(name string, options ...Option) (template.TemplateRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EnginePongo2:
		return New(options...)
	case EngineGoTemplate:
		return NewStandard(options...)
	default:
		return nil, fmt.Errorf("gotemplate: unknown engine %q", name)
	}
}
