package definition_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/input"
)

const contactYAML = `
forms:
  contact:
    open:
      action: /contact
      method: PUT
      attributes: {class: form}
      hidden: {version: "3"}
    settings:
      layout: stacked
    fields:
      - kind: text
        name: name
        label: Name
        rules: [required]
        required: true
        placeholder: Your name
      - kind: email
        name: email
        label: E-mail
        rules: [required, email]
        class: wide
        attributes: {autocomplete: email}
        data: {track: contact}
      - kind: select
        name: topic
        value: support
        options:
          - {value: sales, label: Sales}
          - {value: support, label: Support}
      - kind: radio
        name: channel
        value: mail
      - kind: radio
        name: channel
        value: phone
      - kind: checkbox
        name: subscribe
        checked: true
      - kind: textarea
        name: message
        rows: 4
        value: Hello
      - kind: html
        content: "<hr>"
    actions:
      - kind: submit
        label: Send
`

const signupJSON = `{
  "forms": {
    "signup": {
      "open": {"action": "/signup", "multipart": true},
      "fields": [
        {"kind": "password", "name": "password", "rules": "required|min:8"},
        {"kind": "file", "name": "avatar", "accept": "image/*"}
      ]
    }
  }
}`

func loadStore(t *testing.T) *definition.Store {
	t.Helper()
	store, err := definition.LoadFS(fstest.MapFS{
		"forms/contact.yaml": {Data: []byte(contactYAML)},
		"forms/signup.json":  {Data: []byte(signupJSON)},
		"forms/README.md":    {Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestLoadFS(t *testing.T) {
	store := loadStore(t)
	if diff := cmp.Diff([]string{"contact", "signup"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	def, err := store.Definition("contact")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if def.Source != "forms/contact.yaml" {
		t.Fatalf("unexpected source %q", def.Source)
	}
	if diff := cmp.Diff([]string{"required", "email"}, def.Spec.Fields[1].Rules); diff != "" {
		t.Fatalf("rules were not normalised (-want +got):\n%s", diff)
	}
	if def.Settings()["layout"] != "stacked" {
		t.Fatalf("settings not loaded: %v", def.Settings())
	}

	if _, err := store.Definition("missing"); !errors.Is(err, definition.ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"duplicate form": {
			"a.yaml": {Data: []byte("forms:\n  contact: {}\n")},
			"b.yaml": {Data: []byte("forms:\n  contact: {}\n")},
		},
		"unknown kind": {
			"a.yaml": {Data: []byte("forms:\n  contact:\n    fields:\n      - {kind: slider, name: volume}\n")},
		},
		"missing name": {
			"a.yaml": {Data: []byte("forms:\n  contact:\n    fields:\n      - {kind: email}\n")},
		},
		"empty file": {
			"a.json": {Data: []byte("  ")},
		},
		"invalid document": {
			"a.yaml": {Data: []byte("forms: [unterminated")},
		},
	}
	for name, fsys := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := definition.LoadFS(fsys); err == nil {
				t.Fatalf("expected load error")
			}
		})
	}

	store, err := definition.LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("nil filesystem should yield an empty store (err=%v)", err)
	}
}

func TestDefinitionBuildsForm(t *testing.T) {
	def, err := loadStore(t).Definition("contact")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}

	f := form.New("contact", def, form.WithOldInput(input.OldInput{"channel": "phone", "name": "Ada"}))
	result, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantKeys := []string{"name", "email", "topic", "channel_mail", "channel_phone", "subscribe", "message", "html_1"}
	if diff := cmp.Diff(wantKeys, f.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	want := `<form method="POST" action="/contact" class="form">` +
		`<input type="hidden" name="_method" value="PUT"><input type="hidden" name="version" value="3">`
	if got := result.Open.Render(); got != want {
		t.Fatalf("unexpected open tag\nwant: %s\ngot:  %s", want, got)
	}

	rendered := map[string]string{}
	for _, key := range f.Keys() {
		field, _ := f.Field(key)
		rendered[key] = field.Render()
	}

	wantRendered := map[string]string{
		"name":          `<input type="text" name="name" value="Ada" placeholder="Your name" required>`,
		"email":         `<input type="email" name="email" class="wide" autocomplete="email" data-track="contact">`,
		"topic":         `<select name="topic"><option value="sales">Sales</option><option value="support" selected>Support</option></select>`,
		"channel_mail":  `<input type="radio" name="channel" value="mail" id="channel_mail">`,
		"channel_phone": `<input type="radio" name="channel" value="phone" id="channel_phone" checked>`,
		"subscribe":     `<input type="checkbox" name="subscribe" value="1">`,
		"message":       `<textarea name="message" rows="4" cols="50">Hello</textarea>`,
		"html_1":        `<hr>`,
	}
	if diff := cmp.Diff(wantRendered, rendered); diff != "" {
		t.Fatalf("rendered fields mismatch (-want +got):\n%s", diff)
	}

	name, _ := f.Field("name")
	if got := name.GetLabel().Render(); got != `<label for="name">Name</label>` {
		t.Fatalf("unexpected label %s", got)
	}

	if len(result.Actions) != 1 || result.Actions[0].Render() != `<button type="submit">Send</button>` {
		t.Fatalf("unexpected actions %v", result.Actions)
	}
}

func TestDefinitionDefaultsWithoutSubmission(t *testing.T) {
	def, err := loadStore(t).Definition("contact")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	f := form.New("contact", def)
	if _, err := f.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	subscribe, _ := f.Field("subscribe")
	if !strings.Contains(subscribe.Render(), "checked") {
		t.Fatalf("checked default should apply without a submission: %s", subscribe.Render())
	}

	rules, err := f.Rules()
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	want := map[string]any{
		"name":  []string{"required"},
		"email": []string{"required", "email"},
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionJSON(t *testing.T) {
	def, err := loadStore(t).Definition("signup")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}

	f := form.New("signup", def, form.WithOldInput(input.OldInput{"password": "secret"}))
	result, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := result.Open.Render(); got != `<form method="POST" action="/signup" enctype="multipart/form-data">` {
		t.Fatalf("unexpected open tag %s", got)
	}

	password, _ := f.Field("password")
	if got := password.Render(); got != `<input type="password" name="password">` {
		t.Fatalf("password must not be populated: %s", got)
	}
	if password.GetRules() != "required|min:8" {
		t.Fatalf("unexpected rules %v", password.GetRules())
	}

	avatar, _ := f.Field("avatar")
	if avatar.GetType() != element.KindFile {
		t.Fatalf("unexpected kind %q", avatar.GetType())
	}
	if got := avatar.Render(); got != `<input type="file" name="avatar" accept="image/*">` {
		t.Fatalf("unexpected file markup %s", got)
	}
}

func TestDefinitionOptionSources(t *testing.T) {
	fsys := fstest.MapFS{
		"schedule.yaml": {Data: []byte(`
forms:
  schedule:
    fields:
      - kind: select
        name: month
        options_from: months
        value: "2"
      - kind: select
        name: tz
        options_from: Timezones
        options:
          - {value: Local, label: Local time}
`)},
	}
	store, err := definition.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def, err := store.Definition("schedule")
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	f := form.New("schedule", def)
	if _, err := f.Build(); err != nil {
		t.Fatalf("build: %v", err)
	}

	month, _ := f.Field("month")
	sel := month.(*element.Select)
	if len(sel.GetOptions()) != 12 {
		t.Fatalf("expected 12 months, got %d", len(sel.GetOptions()))
	}
	if diff := cmp.Diff([]string{"2"}, sel.Selected()); diff != "" {
		t.Fatalf("default selection mismatch (-want +got):\n%s", diff)
	}

	tz, _ := f.Field("tz")
	zones := tz.(*element.Select).GetOptions()
	if len(zones) < 100 {
		t.Fatalf("expected timezone options, got %d", len(zones))
	}
	if last := zones[len(zones)-1]; last.Value != "Local" {
		t.Fatalf("inline options must follow the source, got %+v", last)
	}

	_, err = definition.LoadFS(fstest.MapFS{
		"bad.yaml": {Data: []byte(`
forms:
  bad:
    fields:
      - {kind: select, name: x, options_from: planets}
`)},
	})
	if err == nil || !strings.Contains(err.Error(), `unknown options source "planets"`) {
		t.Fatalf("expected unknown source error, got %v", err)
	}
}
