package element

import (
	"sort"
	"strings"
)

// Renderer is implemented by everything that renders to markup.
type Renderer interface {
	Render() string
}

// Element is the attribute-carrying base embedded by every variant. T is the
// concrete variant pointer returned from chainable methods.
type Element[T any] struct {
	attrs Attributes
	self  T
}

func (e *Element[T]) bindSelf(self T) {
	e.self = self
}

// Attributes exposes the underlying attribute bag.
func (e *Element[T]) Attributes() *Attributes {
	return &e.attrs
}

// SetAttribute stores name="value".
func (e *Element[T]) SetAttribute(name, value string) {
	e.attrs.Set(name, value)
}

// SetBareAttribute stores name without a value.
func (e *Element[T]) SetBareAttribute(name string) {
	e.attrs.SetBare(name)
}

// RemoveAttribute deletes name when present.
func (e *Element[T]) RemoveAttribute(name string) {
	e.attrs.Remove(name)
}

// GetAttribute returns the value for name and whether it is set.
func (e *Element[T]) GetAttribute(name string) (string, bool) {
	return e.attrs.Get(name)
}

// Attribute sets name to value, or as a bare attribute when value is omitted.
func (e *Element[T]) Attribute(name string, value ...string) T {
	if len(value) == 0 {
		e.attrs.SetBare(name)
	} else {
		e.attrs.Set(name, value[0])
	}
	return e.self
}

// Set is the dynamic attribute setter. Without a value the attribute is set
// to its own name, so Set("multiple") renders multiple="multiple".
func (e *Element[T]) Set(name string, value ...string) T {
	if len(value) == 0 {
		e.attrs.Set(name, name)
	} else {
		e.attrs.Set(name, value[0])
	}
	return e.self
}

// Data sets a data-* attribute.
func (e *Element[T]) Data(name, value string) T {
	e.attrs.Set("data-"+name, value)
	return e.self
}

// DataMap sets several data-* attributes in key order.
func (e *Element[T]) DataMap(values map[string]string) T {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		e.attrs.Set("data-"+key, values[key])
	}
	return e.self
}

// Clear removes name if present.
func (e *Element[T]) Clear(name string) T {
	e.attrs.Remove(name)
	return e.self
}

// AddClass appends one or more classes.
func (e *Element[T]) AddClass(class string) T {
	e.attrs.AddClass(strings.TrimSpace(class))
	return e.self
}

// RemoveClass removes class from the class attribute.
func (e *Element[T]) RemoveClass(class string) T {
	e.attrs.RemoveClass(class)
	return e.self
}

// GetClass returns the class attribute.
func (e *Element[T]) GetClass() string {
	class, _ := e.attrs.Get("class")
	return class
}

// ID sets the id attribute.
func (e *Element[T]) ID(id string) T {
	e.attrs.Set("id", id)
	return e.self
}

// GetID returns the id attribute.
func (e *Element[T]) GetID() string {
	id, _ := e.attrs.Get("id")
	return id
}

// RenderAttributes serialises the attribute bag with a leading space.
func (e *Element[T]) RenderAttributes() string {
	return e.attrs.Render()
}

// String renders the concrete variant.
func (e *Element[T]) String() string {
	if r, ok := any(e.self).(Renderer); ok {
		return r.Render()
	}
	return e.attrs.Render()
}
