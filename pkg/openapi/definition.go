package openapi

import (
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/form"
)

type attr struct {
	name  string
	value string
}

type fieldPlan struct {
	name     string
	kind     string
	label    string
	required bool
	multiple bool
	rules    []string
	options  []element.Option
	attrs    []attr
	fallback any
}

// Definition is a form derived from an OpenAPI operation.
type Definition struct {
	op    Operation
	plans []fieldPlan
}

var _ form.Definition = (*Definition)(nil)

func newDefinition(op Operation, resolver *Resolver) *Definition {
	required := make(map[string]bool, len(op.Schema.Required))
	for _, name := range op.Schema.Required {
		required[name] = true
	}

	def := &Definition{op: op}
	for _, name := range propertyOrder(op.Schema) {
		ref := op.Schema.Properties[name]
		if ref == nil || ref.Value == nil || ref.Value.ReadOnly {
			continue
		}
		prop := Property{Name: name, Schema: ref.Value, Required: required[name]}
		def.plans = append(def.plans, planField(prop, resolver.Resolve(prop)))
	}
	return def
}

// Operation returns the source operation.
func (d *Definition) Operation() Operation {
	return d.op
}

// Kinds returns the resolved field kind per property name.
func (d *Definition) Kinds() map[string]string {
	out := make(map[string]string, len(d.plans))
	for _, plan := range d.plans {
		out[plan.name] = plan.kind
	}
	return out
}

func (d *Definition) Open(b *builder.Builder) *element.FormOpen {
	open := b.Open().Action(d.op.Path).Method(d.op.Method)
	multipart := d.op.MediaType == "multipart/form-data"
	for _, plan := range d.plans {
		if plan.kind == element.KindFile {
			multipart = true
		}
	}
	if multipart {
		open.Multipart()
	}
	return open
}

func (d *Definition) Fields(b *builder.Builder) []element.Field {
	fields := make([]element.Field, 0, len(d.plans))
	for _, plan := range d.plans {
		fields = append(fields, plan.build(b))
	}
	return fields
}

func (d *Definition) Actions(b *builder.Builder) []element.Field {
	text := "Submit"
	if summary := strings.TrimSpace(d.op.Summary); summary != "" {
		text = summary
	}
	return []element.Field{b.Submit(text)}
}

func (p fieldPlan) build(b *builder.Builder) element.Field {
	var field element.Field
	switch p.kind {
	case element.KindSelect:
		sel := b.Select(p.name, p.options...)
		if p.multiple {
			sel.Multiple()
		}
		if p.fallback != nil {
			sel.DefaultValue(p.fallback)
		}
		field = sel
	case element.KindCheckbox:
		checkbox := b.Checkbox(p.name)
		if checked, ok := p.fallback.(bool); ok {
			checkbox.DefaultCheckedState(checked)
		}
		field = checkbox
	case element.KindTextArea:
		area := b.TextArea(p.name)
		if p.fallback != nil {
			area.DefaultValue(p.fallback)
		}
		field = area
	case element.KindMarkDown:
		md := b.MarkDown(p.name)
		if p.fallback != nil {
			md.DefaultValue(p.fallback)
		}
		field = md
	default:
		made, err := b.Make(p.kind, p.name)
		if err != nil {
			made = b.Text(p.name)
		}
		if p.fallback != nil && !made.Attributes().Has("value") {
			if setter, ok := made.(interface{ SetValue(any) }); ok && p.kind != element.KindPassword {
				setter.SetValue(p.fallback)
			}
		}
		field = made
	}

	attrs := field.Attributes()
	for _, a := range p.attrs {
		attrs.Set(a.name, a.value)
	}
	if p.required {
		attrs.SetBare("required")
	}
	if setter, ok := field.(interface{ SetLabel(string) }); ok {
		setter.SetLabel(p.label)
	}
	if len(p.rules) > 0 {
		if setter, ok := field.(interface{ SetRules(any) }); ok {
			setter.SetRules(append([]string(nil), p.rules...))
		}
	}
	return field
}

func planField(prop Property, kind string) fieldPlan {
	schema := prop.Schema
	plan := fieldPlan{
		name:     prop.Name,
		kind:     kind,
		label:    schema.Title,
		required: prop.Required,
		fallback: schema.Default,
	}
	if plan.label == "" {
		plan.label = Humanize(prop.Name)
	}

	enum := schema.Enum
	if isType(schema, "array") && schema.Items != nil && schema.Items.Value != nil {
		plan.multiple = true
		if len(enum) == 0 {
			enum = schema.Items.Value.Enum
		}
	}
	for _, value := range enum {
		text := element.Stringify(value)
		plan.options = append(plan.options, element.Option{Value: text, Label: Humanize(text)})
	}

	plan.rules = deriveRules(prop, enum)

	numeric := isType(schema, "integer") || isType(schema, "number")
	if numeric && kind == element.KindText {
		plan.attrs = append(plan.attrs, attr{"type", "number"})
		if isType(schema, "number") {
			plan.attrs = append(plan.attrs, attr{"step", "any"})
		}
	}
	if numeric {
		if schema.Min != nil {
			plan.attrs = append(plan.attrs, attr{"min", formatNumber(*schema.Min)})
		}
		if schema.Max != nil {
			plan.attrs = append(plan.attrs, attr{"max", formatNumber(*schema.Max)})
		}
	}
	if isType(schema, "string") && !plan.multiple {
		if schema.MinLength > 0 {
			plan.attrs = append(plan.attrs, attr{"minlength", strconv.FormatUint(schema.MinLength, 10)})
		}
		if schema.MaxLength != nil {
			plan.attrs = append(plan.attrs, attr{"maxlength", strconv.FormatUint(*schema.MaxLength, 10)})
		}
		if schema.Pattern != "" && kind != element.KindSelect {
			plan.attrs = append(plan.attrs, attr{"pattern", schema.Pattern})
		}
	}
	if schema.Description != "" {
		plan.attrs = append(plan.attrs, attr{"title", element.Escape(schema.Description)})
	}
	return plan
}

func deriveRules(prop Property, enum []any) []string {
	schema := prop.Schema
	var rules []string
	if prop.Required {
		rules = append(rules, "required")
	}
	if strings.EqualFold(schema.Format, "email") {
		rules = append(rules, "email")
	}
	switch {
	case isType(schema, "integer"), isType(schema, "number"):
		if schema.Min != nil {
			rules = append(rules, "min:"+formatNumber(*schema.Min))
		}
		if schema.Max != nil {
			rules = append(rules, "max:"+formatNumber(*schema.Max))
		}
	case isType(schema, "string"):
		if schema.MinLength > 0 {
			rules = append(rules, "min:"+strconv.FormatUint(schema.MinLength, 10))
		}
		if schema.MaxLength != nil {
			rules = append(rules, "max:"+strconv.FormatUint(*schema.MaxLength, 10))
		}
	}
	if schema.Pattern != "" {
		rules = append(rules, "regex:"+schema.Pattern)
	}
	if len(enum) > 0 {
		values := make([]string, 0, len(enum))
		for _, value := range enum {
			values = append(values, element.Stringify(value))
		}
		rules = append(rules, "in:"+strings.Join(values, ","))
	}
	return rules
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// propertyOrder lists names from x-formbuilder-order first, then the rest
// sorted by name.
func propertyOrder(schema *openapi3.Schema) []string {
	seen := make(map[string]bool, len(schema.Properties))
	var order []string
	if raw, ok := schema.Extensions[OrderExtension].([]any); ok {
		for _, entry := range raw {
			name, ok := entry.(string)
			if !ok || seen[name] {
				continue
			}
			if _, exists := schema.Properties[name]; !exists {
				continue
			}
			seen[name] = true
			order = append(order, name)
		}
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
