package element

import "strconv"

// TextAreaControl is the base for <textarea> variants. The value is rendered
// escaped as inner content.
type TextAreaControl[T any] struct {
	Control[T]

	value *string
}

func (t *TextAreaControl[T]) initTextArea(self T, kind, name string) {
	t.init(self, kind, "", name)
	if name == "" {
		t.attrs.Set("name", "")
	}
	t.attrs.Set("rows", "10")
	t.attrs.Set("cols", "50")
}

// Value sets the inner content.
func (t *TextAreaControl[T]) Value(value any) T {
	t.SetValue(value)
	return t.self
}

// SetValue is the non-chainable form of Value.
func (t *TextAreaControl[T]) SetValue(value any) {
	text := Stringify(value)
	t.value = &text
}

// GetValue returns the unescaped inner content.
func (t *TextAreaControl[T]) GetValue() string {
	if t.value == nil {
		return ""
	}
	return *t.value
}

// HasValue reports whether a value was set, including the empty string.
func (t *TextAreaControl[T]) HasValue() bool {
	return t.value != nil
}

// DefaultValue sets the value only when none has been set yet.
func (t *TextAreaControl[T]) DefaultValue(value any) T {
	if t.value == nil {
		t.SetValue(value)
	}
	return t.self
}

// Rows sets the rows attribute.
func (t *TextAreaControl[T]) Rows(rows int) T {
	t.attrs.Set("rows", strconv.Itoa(rows))
	return t.self
}

// Cols sets the cols attribute.
func (t *TextAreaControl[T]) Cols(cols int) T {
	t.attrs.Set("cols", strconv.Itoa(cols))
	return t.self
}

// Placeholder sets the placeholder attribute.
func (t *TextAreaControl[T]) Placeholder(text string) T {
	t.attrs.Set("placeholder", text)
	return t.self
}

// Populate overlays a submitted value.
func (t *TextAreaControl[T]) Populate(value any) {
	t.SetValue(value)
}

// Render renders the <textarea> with escaped content.
func (t *TextAreaControl[T]) Render() string {
	return t.wrap("<textarea" + t.attrs.Render() + ">" + Escape(t.GetValue()) + "</textarea>")
}

// TextArea renders a <textarea>.
type TextArea struct{ TextAreaControl[*TextArea] }

// NewTextArea creates a textarea with the default rows and cols.
func NewTextArea(name string) *TextArea {
	field := &TextArea{}
	field.initTextArea(field, KindTextArea, name)
	return field
}
