package definition

import (
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/timezones"
)

// Definition is a loaded form. It builds fresh fields on every call.
type Definition struct {
	Name   string
	Source string
	Spec   FormSpec
}

var _ form.Definition = (*Definition)(nil)

func (d *Definition) Open(b *builder.Builder) *element.FormOpen {
	spec := d.Spec.Open
	open := b.Open().Action(spec.Action).Method(spec.Method)
	if spec.Multipart {
		open.Multipart()
	} else if spec.Encoding != "" {
		open.Encoding(spec.Encoding)
	}
	for _, key := range sortedKeys(spec.Attributes) {
		open.Attribute(key, spec.Attributes[key])
	}
	for _, key := range sortedKeys(spec.Hidden) {
		open.Hidden(element.NewHiddenField(key, spec.Hidden[key]))
	}
	return open
}

func (d *Definition) Fields(b *builder.Builder) []element.Field {
	return buildAll(b, d.Spec.Fields)
}

func (d *Definition) Actions(b *builder.Builder) []element.Field {
	return buildAll(b, d.Spec.Actions)
}

// Settings returns the declared form settings.
func (d *Definition) Settings() map[string]any {
	return d.Spec.Settings
}

func buildAll(b *builder.Builder, specs []FieldSpec) []element.Field {
	out := make([]element.Field, 0, len(specs))
	for _, spec := range specs {
		out = append(out, BuildField(b, spec))
	}
	return out
}

type labelSetter interface{ SetLabel(text string) }
type rulesSetter interface{ SetRules(rules any) }
type valueSetter interface{ SetValue(value any) }

// BuildField constructs the field described by spec. Kinds are validated
// when loading; an unknown kind here falls back to a text input.
func BuildField(b *builder.Builder, spec FieldSpec) element.Field {
	var field element.Field
	labelled := true

	switch spec.Kind {
	case element.KindCheckbox:
		checkbox := b.Checkbox(spec.Name, spec.Value)
		checkbox.DefaultCheckedState(spec.Checked)
		field = checkbox
	case element.KindRadio:
		radio := b.Radio(spec.Name, spec.Value)
		radio.DefaultCheckedState(spec.Checked)
		field = radio
	case element.KindSelect:
		sel := b.Select(spec.Name, append(optionSource(spec.OptionsFrom), options(spec.Options)...)...)
		for _, group := range spec.Groups {
			sel.AddGroup(group.Label, options(group.Options)...)
		}
		if spec.Multiple {
			sel.Multiple()
		}
		if spec.Value != nil {
			sel.DefaultValue(spec.Value)
		}
		field = sel
	case element.KindTextArea:
		area := b.TextArea(spec.Name)
		sizeTextArea(spec, area.Rows, area.Cols)
		if spec.Placeholder != "" {
			area.Placeholder(spec.Placeholder)
		}
		if spec.Value != nil {
			area.DefaultValue(spec.Value)
		}
		field = area
	case element.KindMarkDown:
		md := b.MarkDown(spec.Name).Preview(spec.Preview)
		sizeTextArea(spec, md.Rows, md.Cols)
		if spec.Placeholder != "" {
			md.Placeholder(spec.Placeholder)
		}
		if spec.Value != nil {
			md.DefaultValue(spec.Value)
		}
		field = md
	case element.KindHTML:
		html := b.HTML(spec.Content, spec.Name)
		if spec.Sanitize {
			html.Sanitize()
		}
		field = html
		labelled = false
	case element.KindButton, element.KindSubmit, element.KindReset:
		text := spec.Label
		if text == "" {
			text = element.Stringify(spec.Value)
		}
		if text == "" {
			text = spec.Name
		}
		made, err := b.Make(spec.Kind, spec.Name)
		if err != nil {
			made = b.Button(text, spec.Name)
		}
		if button, ok := made.(*element.Button); ok {
			button.Value(text)
		}
		field = made
		labelled = false
	default:
		made, err := b.Make(spec.Kind, spec.Name)
		if err != nil {
			made = b.Text(spec.Name)
		}
		if spec.Value != nil && !made.Attributes().Has("value") && spec.Kind != element.KindPassword {
			if setter, ok := made.(valueSetter); ok {
				setter.SetValue(spec.Value)
			}
		}
		if spec.Placeholder != "" {
			made.Attributes().Set("placeholder", spec.Placeholder)
		}
		if file, ok := made.(*element.File); ok && spec.Accept != "" {
			file.Accept(spec.Accept)
		}
		field = made
	}

	applyCommon(field, spec, labelled)
	return field
}

func applyCommon(field element.Field, spec FieldSpec, labelled bool) {
	attrs := field.Attributes()
	if spec.ID != "" {
		attrs.Set("id", spec.ID)
	}
	if labelled && spec.Label != "" {
		if setter, ok := field.(labelSetter); ok {
			setter.SetLabel(spec.Label)
		}
	}
	if spec.Rules != nil {
		if setter, ok := field.(rulesSetter); ok {
			setter.SetRules(spec.Rules)
		}
	}
	if spec.Required {
		attrs.SetBare("required")
	}
	if spec.Disabled {
		attrs.SetBare("disabled")
	}
	if spec.Readonly {
		attrs.SetBare("readonly")
	}
	if spec.Autofocus {
		attrs.SetBare("autofocus")
	}
	if spec.Class != "" {
		attrs.AddClass(spec.Class)
	}
	for _, key := range sortedKeys(spec.Attributes) {
		attrs.Set(key, spec.Attributes[key])
	}
	for _, key := range sortedKeys(spec.Data) {
		attrs.Set("data-"+key, spec.Data[key])
	}
}

func sizeTextArea[T any](spec FieldSpec, rows, cols func(int) T) {
	if spec.Rows > 0 {
		rows(spec.Rows)
	}
	if spec.Cols > 0 {
		cols(spec.Cols)
	}
}

func optionSource(source string) []element.Option {
	switch source {
	case OptionsMonths:
		return element.MonthOptions()
	case OptionsTimezones:
		return timezones.DefaultSelectOptions()
	default:
		return nil
	}
}

func options(specs []OptionSpec) []element.Option {
	out := make([]element.Option, 0, len(specs))
	for _, spec := range specs {
		label := spec.Label
		if label == "" {
			label = spec.Value
		}
		out = append(out, element.Option{Value: spec.Value, Label: label})
	}
	return out
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
