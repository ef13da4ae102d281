package input

import "net/url"

// OldInput is a map-backed OldInputLookup. Values are stored as submitted:
// a string for single values and a []string for repeated ones.
type OldInput map[string]any

var _ OldInputLookup = OldInput(nil)

// OldInputFromValues converts decoded form values (for example
// http.Request.PostForm) into an OldInput.
func OldInputFromValues(values url.Values) OldInput {
	if len(values) == 0 {
		return nil
	}
	out := make(OldInput, len(values))
	for name, submitted := range values {
		switch len(submitted) {
		case 0:
			continue
		case 1:
			out[name] = submitted[0]
		default:
			out[name] = append([]string(nil), submitted...)
		}
	}
	return out
}

// HasOldInput reports whether a previous submission is available.
func (o OldInput) HasOldInput() bool {
	return len(o) > 0
}

// GetOldInput returns the submitted value for name. Names are matched as
// given first, then in their normalised dotted form, then by walking nested
// maps.
func (o OldInput) GetOldInput(name string) (any, bool) {
	if len(o) == 0 {
		return nil, false
	}
	if value, ok := o[name]; ok {
		return value, true
	}
	if value, ok := o[name+"[]"]; ok {
		return value, true
	}
	key := Key(name)
	if value, ok := o[key]; ok {
		return value, true
	}
	return lookupPath(map[string]any(o), Segments(name))
}
