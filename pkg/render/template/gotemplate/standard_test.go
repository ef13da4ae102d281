package gotemplate_test

import (
	"errors"
	"testing"
	"testing/fstest"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

func standardFiles() fstest.MapFS {
	return fstest.MapFS{
		"hello.tmpl":  {Data: []byte(`Hello {{ name }}!`)},
		"hello.html":  {Data: []byte(`<h1>{{ name }}</h1>`)},
		"global.tmpl": {Data: []byte(`{{ site }}/{{ who }}`)},
		"attr.tmpl":   {Data: []byte(`<p title="{{ title|attr }}">{{ body|safe }}</p>`)},
	}
}

func TestNewStandard_RendersWithGoTemplate(t *testing.T) {
	engine, err := gotemplate.NewStandard(
		gotemplate.WithFS(standardFiles()),
		gotemplate.WithGlobalData(map[string]any{"site": "forms"}),
		gotemplate.WithGoTemplateOptions(gotemplatepkg.WithGlobalData(map[string]any{"who": "admin"})),
	)
	if err != nil {
		t.Fatalf("new standard engine: %v", err)
	}

	data := struct {
		Name string `json:"name"`
	}{Name: "Ada"}
	got, err := engine.RenderTemplate("hello", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("unexpected result %q", got)
	}

	got, err = engine.RenderTemplate("global", nil)
	if err != nil {
		t.Fatalf("render globals: %v", err)
	}
	if got != "forms/admin" {
		t.Fatalf("unexpected globals %q", got)
	}
}

func TestNewStandard_GoTemplateOptionsApplyLast(t *testing.T) {
	engine, err := gotemplate.NewStandard(
		gotemplate.WithFS(standardFiles()),
		gotemplate.WithGoTemplateOptions(gotemplatepkg.WithExtension(".html")),
	)
	if err != nil {
		t.Fatalf("new standard engine: %v", err)
	}
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<h1>Grace</h1>" {
		t.Fatalf("expected the .html template, got %q", got)
	}
}

func TestNewStandard_SharesFormFilters(t *testing.T) {
	engine, err := gotemplate.NewStandard(gotemplate.WithFS(standardFiles()))
	if err != nil {
		t.Fatalf("new standard engine: %v", err)
	}
	got, err := engine.RenderTemplate("attr", map[string]any{
		"title": `a "b" & c`,
		"body":  `<i>x</i>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p title="a &#34;b&#34; &amp; c"><i>x</i></p>`
	if got != want {
		t.Fatalf("unexpected result\nwant: %q\n got: %q", want, got)
	}
}

func TestNewNamed(t *testing.T) {
	files := standardFiles()
	for _, name := range []string{"", gotemplate.EnginePongo2, gotemplate.EngineGoTemplate} {
		engine, err := gotemplate.NewNamed(name, gotemplate.WithFS(files))
		if err != nil {
			t.Fatalf("engine %q: %v", name, err)
		}
		got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
		if err != nil {
			t.Fatalf("engine %q render: %v", name, err)
		}
		if got != "Hello Ada!" {
			t.Fatalf("engine %q: unexpected result %q", name, got)
		}
	}

	if _, err := gotemplate.NewNamed("jinja", gotemplate.WithFS(files)); err == nil {
		t.Fatalf("expected unknown engine error")
	}
	if _, err := gotemplate.NewStandard(); !errors.Is(err, gotemplate.ErrNoTemplates) {
		t.Fatalf("expected ErrNoTemplates, got %v", err)
	}
}
