package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

const contactForms = `
forms:
  contact:
    open:
      action: /contact
    fields:
      - {kind: text, name: name, label: Name, rules: [required]}
      - {kind: email, name: email, rules: [required, email]}
    actions:
      - {kind: submit, label: Send}
  newsletter:
    fields:
      - {kind: email, name: email}
`

const petsAPI = `
openapi: 3.0.3
info: {title: Pets, version: "1.0"}
paths:
  /pets:
    post:
      operationId: createPet
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name: {type: string}
      responses:
        "201": {description: created}
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	forms := filepath.Join(dir, "forms")
	if err := os.MkdirAll(forms, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(forms, "contact.yaml"), []byte(contactForms), 0o644); err != nil {
		t.Fatalf("write forms: %v", err)
	}
	api := filepath.Join(dir, "pets.yaml")
	if err := os.WriteFile(api, []byte(petsAPI), 0o644); err != nil {
		t.Fatalf("write api: %v", err)
	}
	return forms, api
}

func run(t *testing.T, driver prompt.Driver, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&app{stdout: &stdout, stderr: &stderr, driver: driver})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	forms, api := writeFixtures(t)

	out, _, err := run(t, nil, "list", "-d", forms)
	if err != nil {
		t.Fatalf("list forms: %v", err)
	}
	if out != "contact\nnewsletter\n" {
		t.Fatalf("unexpected form list %q", out)
	}

	out, _, err = run(t, nil, "list", "--openapi", api)
	if err != nil {
		t.Fatalf("list operations: %v", err)
	}
	if out != "createPet\tPOST /pets\n" {
		t.Fatalf("unexpected operation list %q", out)
	}

	if _, _, err := run(t, nil, "list"); err == nil {
		t.Fatalf("expected missing source error")
	}
}

func TestRender_ReplaysSubmission(t *testing.T) {
	forms, _ := writeFixtures(t)

	out, stderr, err := run(t, nil, "render", "-d", forms, "-f", "contact",
		"--old", "email=bad",
		"--error", "/body/email=Invalid email.",
		"--error", "__all__=Please fix the errors below.",
		"--verbose",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`<form method="POST" action="/contact">`,
		`<input type="email" name="email" value="bad" class="is-invalid">`,
		`<span class="formbuilder-error">Invalid email.</span>`,
		`<li>Please fix the errors below.</li>`,
		`<button type="submit">Send</button>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
	if !strings.Contains(stderr, "form built") {
		t.Fatalf("expected debug logs with --verbose, got %q", stderr)
	}
}

func TestRender_GoTemplateEngine(t *testing.T) {
	forms, _ := writeFixtures(t)
	args := []string{"render", "-d", forms, "-f", "contact", "--old", "name=Ada", "--theme", "acme"}

	want, _, err := run(t, nil, args...)
	if err != nil {
		t.Fatalf("render with pongo2: %v", err)
	}
	got, _, err := run(t, nil, append(args, "--engine", "go-template")...)
	if err != nil {
		t.Fatalf("render with go-template: %v", err)
	}
	if got != want {
		t.Fatalf("engines disagree\npongo2:\n%s\ngo-template:\n%s", want, got)
	}
	if !strings.Contains(got, `value="Ada"`) || !strings.Contains(got, `data-theme="acme"`) {
		t.Fatalf("unexpected output:\n%s", got)
	}

	if _, _, err := run(t, nil, append(args, "--engine", "mustache")...); err == nil {
		t.Fatalf("expected unknown engine error")
	}
}

func TestRender_MarkupToFile(t *testing.T) {
	forms, _ := writeFixtures(t)
	target := filepath.Join(t.TempDir(), "form.html")

	_, stderr, err := run(t, nil, "render", "-d", forms, "-f", "newsletter", "-r", "markup", "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "<form method=\"POST\" action=\"\">\n<input type=\"email\" name=\"email\">\n</form>"
	if string(data) != want {
		t.Fatalf("unexpected markup\nwant: %q\n got: %q", want, data)
	}
	if !strings.Contains(stderr, "Form written to") {
		t.Fatalf("expected confirmation on stderr, got %q", stderr)
	}
}

func TestRender_UnknownRendererAndForm(t *testing.T) {
	forms, _ := writeFixtures(t)

	if _, _, err := run(t, nil, "render", "-d", forms, "-f", "contact", "-r", "preact"); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
	if _, _, err := run(t, nil, "render", "-d", forms, "-f", "missing"); err == nil {
		t.Fatalf("expected unknown form error")
	}
}

func TestRender_OpenAPI(t *testing.T) {
	_, api := writeFixtures(t)

	out, _, err := run(t, nil, "render", "--openapi", api, "--operation", "createPet", "-r", "markup")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<form method="POST" action="/pets">`) || !strings.Contains(out, `name="name"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

type scriptedDriver struct {
	answers map[string]string
}

func (d scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.answers[cfg.Message], nil
}

func (d scriptedDriver) Password(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, nil
}

func (scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func (scriptedDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return nil, nil
}

func (scriptedDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	return cfg.Default, nil
}

func TestRender_Interactive(t *testing.T) {
	forms, _ := writeFixtures(t)
	driver := scriptedDriver{answers: map[string]string{"Name": "Ada", "email": "ada@example.com"}}

	out, _, err := run(t, driver, "render", "-d", forms, "-f", "contact", "-r", "markup", "-i")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`value="Ada"`,
		`value="ada@example.com"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
}

func TestRules(t *testing.T) {
	forms, _ := writeFixtures(t)

	out, _, err := run(t, nil, "rules", "-d", forms, "-f", "contact")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	want := "{\n  \"email\": [\n    \"required\",\n    \"email\"\n  ],\n  \"name\": [\n    \"required\"\n  ]\n}\n"
	if out != want {
		t.Fatalf("unexpected json rules\nwant: %q\n got: %q", want, out)
	}

	out, _, err = run(t, nil, "rules", "-d", forms, "-f", "contact", "--format", "yaml")
	if err != nil {
		t.Fatalf("rules yaml: %v", err)
	}
	for _, fragment := range []string{"email:", "name:", "- required", "- email"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in yaml output:\n%s", fragment, out)
		}
	}

	if _, _, err := run(t, nil, "rules", "-d", forms, "-f", "contact", "--format", "toml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}
