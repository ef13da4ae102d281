package element

// Button renders a <button>. Its value is the body text, not an attribute.
type Button struct {
	Control[*Button]

	text string
}

func newButton(kind, name, text string) *Button {
	field := &Button{text: text}
	field.init(field, kind, kind, name)
	return field
}

// NewButton returns a type="button" button.
func NewButton(text string, name ...string) *Button {
	return newButton(KindButton, first(name), text)
}

// NewSubmit returns a type="submit" button.
func NewSubmit(text string, name ...string) *Button {
	return newButton(KindSubmit, first(name), text)
}

// NewReset returns a type="reset" button.
func NewReset(text string, name ...string) *Button {
	return newButton(KindReset, first(name), text)
}

// Value replaces the body text.
func (b *Button) Value(text string) *Button {
	b.text = text
	return b
}

// GetValue returns the button body text.
func (b *Button) GetValue() string {
	return b.text
}

// Render renders the <button> around its body text.
func (b *Button) Render() string {
	return b.wrap("<button" + b.attrs.Render() + ">" + b.text + "</button>")
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
