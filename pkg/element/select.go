package element

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Option is a single <option> entry.
type Option struct {
	Value string
	Label string
}

// OptionGroup is an <optgroup> holding options.
type OptionGroup struct {
	Label   string
	Options []Option
}

type selectEntry struct {
	option Option
	group  *OptionGroup
}

// Select renders a <select> with ordered options and optional groups.
type Select struct {
	Control[*Select]

	entries  []selectEntry
	selected map[string]struct{}
	hasValue bool
}

// NewSelect creates a select with the given options.
func NewSelect(name string, options ...Option) *Select {
	field := &Select{}
	field.init(field, KindSelect, "", name)
	field.Options(options...)
	return field
}

// Options appends options in order.
func (s *Select) Options(options ...Option) *Select {
	for _, option := range options {
		s.entries = append(s.entries, selectEntry{option: option})
	}
	return s
}

// AddOption appends a single option.
func (s *Select) AddOption(value, label string) *Select {
	return s.Options(Option{Value: value, Label: label})
}

// AddGroup appends an option group.
func (s *Select) AddGroup(label string, options ...Option) *Select {
	group := &OptionGroup{Label: label, Options: append([]Option(nil), options...)}
	s.entries = append(s.entries, selectEntry{group: group})
	return s
}

// GetOptions returns every option in render order, groups flattened.
func (s *Select) GetOptions() []Option {
	var out []Option
	for _, entry := range s.entries {
		if entry.group != nil {
			out = append(out, entry.group.Options...)
			continue
		}
		out = append(out, entry.option)
	}
	return out
}

// Select marks the given value, or every element of a slice, as selected.
// nil clears the selection.
func (s *Select) Select(value any) *Select {
	s.SetValue(value)
	return s
}

// SetValue is the non-chainable form of Select.
func (s *Select) SetValue(value any) {
	s.selected = make(map[string]struct{})
	s.hasValue = value != nil
	for _, candidate := range stringSlice(value) {
		s.selected[candidate] = struct{}{}
	}
}

// DefaultValue selects value only when nothing has been selected yet.
func (s *Select) DefaultValue(value any) *Select {
	if !s.hasValue {
		s.SetValue(value)
	}
	return s
}

// Selected returns the selected values in option order.
func (s *Select) Selected() []string {
	var out []string
	for _, option := range s.GetOptions() {
		if _, ok := s.selected[option.Value]; ok {
			out = append(out, option.Value)
		}
	}
	return out
}

// Multiple allows several selections and suffixes the name with [].
func (s *Select) Multiple() *Select {
	s.attrs.SetBare("multiple")
	if name := s.GetName(); name != "" && !strings.HasSuffix(name, "[]") {
		s.attrs.Set("name", name+"[]")
	}
	return s
}

// IsMultiple reports whether the multiple attribute is set.
func (s *Select) IsMultiple() bool {
	return s.attrs.Has("multiple")
}

// Populate selects the submitted value or values.
func (s *Select) Populate(value any) {
	s.SetValue(value)
}

// Render renders the <select> with escaped options.
func (s *Select) Render() string {
	var b strings.Builder
	b.WriteString("<select")
	b.WriteString(s.attrs.Render())
	b.WriteString(">")
	for _, entry := range s.entries {
		if entry.group == nil {
			s.renderOption(&b, entry.option)
			continue
		}
		b.WriteString(`<optgroup label="`)
		b.WriteString(Escape(entry.group.Label))
		b.WriteString(`">`)
		for _, option := range entry.group.Options {
			s.renderOption(&b, option)
		}
		b.WriteString("</optgroup>")
	}
	b.WriteString("</select>")
	return s.wrap(b.String())
}

func (s *Select) renderOption(b *strings.Builder, option Option) {
	b.WriteString(`<option value="`)
	b.WriteString(Escape(option.Value))
	b.WriteString(`"`)
	if _, ok := s.selected[option.Value]; ok {
		b.WriteString(" selected")
	}
	b.WriteString(">")
	b.WriteString(Escape(option.Label))
	b.WriteString("</option>")
}

// MonthOptions lists the months as options valued 1 through 12.
func MonthOptions() []Option {
	out := make([]Option, 0, 12)
	for month := time.January; month <= time.December; month++ {
		out = append(out, Option{Value: strconv.Itoa(int(month)), Label: month.String()})
	}
	return out
}

// OptionsFromMap builds options sorted by value.
func OptionsFromMap(values map[string]string) []Option {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]Option, 0, len(keys))
	for _, key := range keys {
		out = append(out, Option{Value: key, Label: values[key]})
	}
	return out
}
