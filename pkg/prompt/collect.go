package prompt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goliatone/go-formbuilder/pkg/element"
)

// Collect asks for a value for every promptable field and returns the answers
// keyed by field name, ready to be used as old input through
// input.OldInputFromValues. Hidden fields keep their current value. Files,
// buttons, raw HTML and disabled fields are skipped. Radios sharing a name
// are asked once as a single choice.
func Collect(ctx context.Context, driver Driver, fields []element.Field) (url.Values, error) {
	values := url.Values{}
	asked := make(map[string]struct{})

	for _, field := range fields {
		if field == nil || field.Attributes().Has("disabled") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := field.GetName()
		var err error
		switch f := field.(type) {
		case *element.Hidden:
			if value, ok := f.Attributes().Get("value"); ok {
				values.Add(name, value)
			}
		case *element.Password:
			err = collectInput(ctx, values, f, driver.Password)
		case *element.Text, *element.Email, *element.Date, *element.DateTimeLocal:
			err = collectInput(ctx, values, field, driver.Input)
		case *element.TextArea:
			err = collectText(ctx, driver, values, f, f.GetValue())
		case *element.MarkDown:
			err = collectText(ctx, driver, values, f, f.GetValue())
		case *element.Checkbox:
			err = collectCheckbox(ctx, driver, values, f)
		case *element.RadioButton:
			if _, done := asked[name]; done {
				continue
			}
			asked[name] = struct{}{}
			err = collectRadios(ctx, driver, values, radioGroup(fields, name))
		case *element.Select:
			err = collectSelect(ctx, driver, values, f)
		}
		if err != nil {
			return nil, fmt.Errorf("prompt: collect %q: %w", name, err)
		}
	}
	return values, nil
}

type promptFunc func(context.Context, InputConfig) (string, error)

func collectInput(ctx context.Context, values url.Values, field element.Field, ask promptFunc) error {
	cfg := InputConfig{Message: message(field)}
	if current, ok := field.Attributes().Get("value"); ok && field.GetType() != element.KindPassword {
		cfg.Default = current
	}
	if placeholder, ok := field.Attributes().Get("placeholder"); ok {
		cfg.Help = placeholder
	}
	if isRequired(field) {
		cfg.Validator = Required
	}
	answer, err := ask(ctx, cfg)
	if err != nil {
		return err
	}
	values.Set(field.GetName(), answer)
	return nil
}

func collectText(ctx context.Context, driver Driver, values url.Values, field element.Field, current string) error {
	cfg := TextAreaConfig{Message: message(field), Default: current}
	if placeholder, ok := field.Attributes().Get("placeholder"); ok {
		cfg.Help = placeholder
	}
	answer, err := driver.TextArea(ctx, cfg)
	if err != nil {
		return err
	}
	values.Set(field.GetName(), answer)
	return nil
}

func collectCheckbox(ctx context.Context, driver Driver, values url.Values, field *element.Checkbox) error {
	checked, err := driver.Confirm(ctx, ConfirmConfig{
		Message: message(field),
		Default: field.IsChecked(),
	})
	if err != nil {
		return err
	}
	if checked {
		values.Add(field.GetName(), field.GetValue())
	}
	return nil
}

func collectRadios(ctx context.Context, driver Driver, values url.Values, group []*element.RadioButton) error {
	if len(group) == 0 {
		return nil
	}
	options := make([]string, len(group))
	cfg := SelectConfig{Message: group[0].GetName(), DefaultIndex: -1}
	for i, radio := range group {
		options[i] = radio.GetValue()
		if label := radio.GetLabel(); label != nil && label.GetText() != "" {
			options[i] = label.GetText()
		}
		if radio.IsChecked() && cfg.DefaultIndex < 0 {
			cfg.DefaultIndex = i
		}
	}
	cfg.Options = options

	idx, err := driver.Select(ctx, cfg)
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(group) {
		values.Set(group[idx].GetName(), group[idx].GetValue())
	}
	return nil
}

func collectSelect(ctx context.Context, driver Driver, values url.Values, field *element.Select) error {
	choices := field.GetOptions()
	if len(choices) == 0 {
		return nil
	}
	selected := make(map[string]struct{})
	for _, value := range field.Selected() {
		selected[value] = struct{}{}
	}

	cfg := SelectConfig{Message: message(field), DefaultIndex: -1}
	for i, choice := range choices {
		cfg.Options = append(cfg.Options, choice.Label)
		if _, ok := selected[choice.Value]; ok {
			cfg.Defaults = append(cfg.Defaults, i)
			if cfg.DefaultIndex < 0 {
				cfg.DefaultIndex = i
			}
		}
	}

	name := field.GetName()
	if field.IsMultiple() {
		indices, err := driver.MultiSelect(ctx, cfg)
		if err != nil {
			return err
		}
		for _, idx := range indices {
			if idx >= 0 && idx < len(choices) {
				values.Add(name, choices[idx].Value)
			}
		}
		return nil
	}

	idx, err := driver.Select(ctx, cfg)
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(choices) {
		values.Set(name, choices[idx].Value)
	}
	return nil
}

func radioGroup(fields []element.Field, name string) []*element.RadioButton {
	var group []*element.RadioButton
	for _, field := range fields {
		radio, ok := field.(*element.RadioButton)
		if !ok || radio.GetName() != name || radio.Attributes().Has("disabled") {
			continue
		}
		group = append(group, radio)
	}
	return group
}

func message(field element.Field) string {
	if label := field.GetLabel(); label != nil && label.GetText() != "" {
		return label.GetText()
	}
	return field.GetName()
}

func isRequired(field element.Field) bool {
	return field.Attributes().Has("required")
}
