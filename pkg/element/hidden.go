package element

import (
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted right after the form open tag.
type HiddenField struct {
	Name  string
	Value string
}

// NewHiddenField returns a HiddenField for an arbitrary name/value pair.
func NewHiddenField(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: Stringify(value),
	}
}

// CSRFToken constructs a hidden field carrying a CSRF token. Callers pick the
// input name their backend expects, for example "_csrf" or "csrf_token".
func CSRFToken(name, token string) HiddenField {
	return NewHiddenField(name, token)
}

// VersionField constructs a hidden field used for optimistic locking.
func VersionField(name string, version any) HiddenField {
	return NewHiddenField(name, version)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields sorts hidden fields by name for deterministic rendering.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: name, Value: fields[name]})
	}
	return result
}

// Render renders the hidden input with an escaped value.
func (h HiddenField) Render() string {
	return `<input type="hidden" name="` + Escape(h.Name) + `" value="` + Escape(h.Value) + `">`
}
