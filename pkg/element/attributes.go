package element

import "strings"

type attribute struct {
	value string
	bare  bool
}

// Attributes is an ordered attribute bag. Rendering follows insertion order
// and overwriting an existing name keeps its original position. The zero
// value is ready to use.
type Attributes struct {
	names  []string
	values map[string]attribute
}

// Set stores name="value".
func (a *Attributes) Set(name, value string) {
	a.put(name, attribute{value: value})
}

// SetBare stores name as a bare attribute, rendered without a value.
func (a *Attributes) SetBare(name string) {
	a.put(name, attribute{bare: true})
}

func (a *Attributes) put(name string, attr attribute) {
	if name == "" {
		return
	}
	if a.values == nil {
		a.values = make(map[string]attribute)
	}
	if _, exists := a.values[name]; !exists {
		a.names = append(a.names, name)
	}
	a.values[name] = attr
}

// Remove deletes name. Missing names are ignored.
func (a *Attributes) Remove(name string) {
	if _, exists := a.values[name]; !exists {
		return
	}
	delete(a.values, name)
	for idx, existing := range a.names {
		if existing == name {
			a.names = append(a.names[:idx], a.names[idx+1:]...)
			break
		}
	}
}

// Get returns the value stored for name. Bare attributes report "", true.
func (a *Attributes) Get(name string) (string, bool) {
	attr, ok := a.values[name]
	if !ok {
		return "", false
	}
	return attr.value, true
}

// Has reports whether name is present.
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// IsBare reports whether name is present as a bare attribute.
func (a *Attributes) IsBare(name string) bool {
	attr, ok := a.values[name]
	return ok && attr.bare
}

// Names returns attribute names in render order.
func (a *Attributes) Names() []string {
	return append([]string(nil), a.names...)
}

// Len reports how many attributes are set.
func (a *Attributes) Len() int {
	return len(a.names)
}

// AddClass appends class to the class attribute.
func (a *Attributes) AddClass(class string) {
	if class == "" {
		return
	}
	if current, ok := a.Get("class"); ok && current != "" {
		class = current + " " + class
	}
	a.Set("class", class)
}

// RemoveClass strips every occurrence of class from the class attribute and
// drops the attribute when nothing is left.
func (a *Attributes) RemoveClass(class string) {
	current, ok := a.Get("class")
	if !ok {
		return
	}
	if class != "" {
		current = strings.ReplaceAll(current, class, "")
	}
	current = strings.Join(strings.Fields(current), " ")
	if current == "" {
		a.Remove("class")
		return
	}
	a.Set("class", current)
}

// Render serialises the bag as ` name` / ` name="value"` pairs. Values are
// written as stored, without escaping.
func (a *Attributes) Render() string {
	if len(a.names) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range a.names {
		attr := a.values[name]
		b.WriteByte(' ')
		b.WriteString(name)
		if attr.bare {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(attr.value)
		b.WriteByte('"')
	}
	return b.String()
}

// Map returns a copy of the bag. Bare attributes map to an empty string.
func (a *Attributes) Map() map[string]string {
	out := make(map[string]string, len(a.names))
	for _, name := range a.names {
		out[name] = a.values[name].value
	}
	return out
}

func (a *Attributes) clone() Attributes {
	out := Attributes{
		names:  append([]string(nil), a.names...),
		values: make(map[string]attribute, len(a.values)),
	}
	for name, attr := range a.values {
		out.values[name] = attr
	}
	return out
}
