package vanilla_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/input"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

func buildContact(t *testing.T, opts ...form.Option) form.Result {
	t.Helper()

	def := form.DefinitionFuncs{
		OpenFunc: func(b *builder.Builder) *element.FormOpen {
			return b.Open().Action("/contact").Put()
		},
		FieldsFunc: func(b *builder.Builder) []element.Field {
			return []element.Field{
				b.Text("name").Label("Name"),
				b.Email("email").Label("E-mail"),
				b.Checkbox("subscribe").Label("Subscribe"),
				b.Hidden("ref"),
			}
		},
		ActionsFunc: func(b *builder.Builder) []element.Field {
			return []element.Field{b.Submit("Send")}
		},
	}
	result, err := form.New("contact", def, opts...).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return result
}

func TestRenderer_RendersFormChrome(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "vanilla" || renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected renderer identity %q %q", renderer.Name(), renderer.ContentType())
	}

	result := buildContact(t,
		form.WithOldInput(input.OldInput{"email": "bad"}),
		form.WithErrorLookup(input.NewErrors(map[string]string{"email": "Invalid <email>."})),
	)
	out, err := renderer.Render(context.Background(), result, render.RenderOptions{
		FormErrors: []string{"Please fix the errors below.", " "},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, fragment := range []string{
		`<form method="POST" action="/contact"><input type="hidden" name="_method" value="PUT">`,
		`<div class="formbuilder-errors" role="alert"><ul><li>Please fix the errors below.</li></ul></div>`,
		`<div class="formbuilder-group" data-field="name">`,
		`<label for="name">Name</label>`,
		`<div class="formbuilder-group formbuilder-group--invalid" data-field="email">`,
		`<input type="email" name="email" value="bad" class="is-invalid">`,
		`<span class="formbuilder-error">Invalid &lt;email&gt;.</span>`,
		`<div class="formbuilder-group formbuilder-group--check" data-field="subscribe">`,
		`<input type="hidden" name="ref">`,
		`<div class="formbuilder-actions"><button type="submit">Send</button></div>`,
		`</form>`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
	if strings.Contains(html, `data-field="ref"`) {
		t.Fatalf("hidden inputs must not be wrapped:\n%s", html)
	}
	if strings.Contains(html, "formbuilder-theme") {
		t.Fatalf("unthemed render must not emit a theme wrapper:\n%s", html)
	}
	if strings.Index(html, `data-field="name"`) > strings.Index(html, `data-field="email"`) {
		t.Fatalf("fields rendered out of order:\n%s", html)
	}
}

func TestRenderer_Theme(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{
			"--formbuilder-danger": "#ff0000",
			"--brand":              "#123456",
		},
		AssetURL: func(key string) string {
			return "/assets/" + key + ".css"
		},
	}
	renderer, err := vanilla.New(vanilla.WithTheme(cfg))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), buildContact(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, fragment := range []string{
		`<div class="formbuilder-theme" data-theme="acme" data-theme-variant="dark" style="--brand: #123456; --formbuilder-danger: #ff0000;">`,
		`<link rel="stylesheet" href="/assets/vanilla.stylesheet.css">`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(html), "</form>\n</div>") {
		t.Fatalf("expected theme wrapper to close after the form:\n%s", html)
	}

	override := &theme.RendererConfig{Theme: "plain"}
	out, err = renderer.Render(context.Background(), buildContact(t), render.RenderOptions{Theme: override})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `data-theme="plain">`) {
		t.Fatalf("render options theme must win:\n%s", out)
	}
}

func TestRenderer_GoTemplateEngineMatchesPongo2(t *testing.T) {
	opts := []form.Option{
		form.WithOldInput(input.OldInput{"email": "bad", "subscribe": "1"}),
		form.WithErrorLookup(input.NewErrors(map[string]string{"email": "Invalid email."})),
	}
	renderOpts := render.RenderOptions{
		Theme:      &theme.RendererConfig{Theme: "acme", Variant: "light"},
		FormErrors: []string{"Please fix the errors below."},
	}

	pongo, err := vanilla.New(vanilla.WithEngine(gotemplate.EnginePongo2))
	if err != nil {
		t.Fatalf("new pongo2 renderer: %v", err)
	}
	standard, err := vanilla.New(vanilla.WithEngine(gotemplate.EngineGoTemplate))
	if err != nil {
		t.Fatalf("new go-template renderer: %v", err)
	}

	want, err := pongo.Render(context.Background(), buildContact(t, opts...), renderOpts)
	if err != nil {
		t.Fatalf("pongo2 render: %v", err)
	}
	got, err := standard.Render(context.Background(), buildContact(t, opts...), renderOpts)
	if err != nil {
		t.Fatalf("go-template render: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("engines disagree\npongo2:\n%s\ngo-template:\n%s", want, got)
	}
	if !strings.Contains(string(got), `<input type="email" name="email" value="bad" class="is-invalid">`) {
		t.Fatalf("unexpected go-template output:\n%s", got)
	}

	if _, err := vanilla.New(vanilla.WithEngine("mustache")); err == nil {
		t.Fatalf("expected unknown engine error")
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/form.tmpl": {Data: []byte(`{{ open|safe }}{% for field in fields %}[{{ field.key }}]{% endfor %}{{ close|safe }}`)},
	}
	renderer, err := vanilla.New(vanilla.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), buildContact(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<form method="POST" action="/contact"><input type="hidden" name="_method" value="PUT">[name][email][subscribe][ref]</form>`
	if string(out) != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, out)
	}
}

func TestAssetsFS(t *testing.T) {
	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".formbuilder-group") {
		t.Fatalf("stylesheet missing group rules")
	}
}
