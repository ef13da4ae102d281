package element

import "time"

// Input is the base for single-tag <input> variants whose display value lives
// in the value attribute.
type Input[T any] struct {
	Control[T]
}

// Value sets the value attribute.
func (i *Input[T]) Value(value any) T {
	i.SetValue(value)
	return i.self
}

// SetValue is the non-chainable form of Value.
func (i *Input[T]) SetValue(value any) {
	i.attrs.Set("value", Stringify(value))
}

// GetValue returns the value attribute.
func (i *Input[T]) GetValue() string {
	value, _ := i.attrs.Get("value")
	return value
}

// Placeholder sets the placeholder attribute.
func (i *Input[T]) Placeholder(text string) T {
	i.attrs.Set("placeholder", text)
	return i.self
}

// Populate overlays a submitted value.
func (i *Input[T]) Populate(value any) {
	i.SetValue(value)
}

// Render renders the <input> tag.
func (i *Input[T]) Render() string {
	return i.wrap("<input" + i.attrs.Render() + ">")
}

// Text renders an <input type="text">.
type Text struct{ Input[*Text] }

// NewText creates a text input.
func NewText(name string) *Text {
	field := &Text{}
	field.init(field, KindText, "text", name)
	return field
}

// Email renders an <input type="email">.
type Email struct{ Input[*Email] }

// NewEmail creates an email input.
func NewEmail(name string) *Email {
	field := &Email{}
	field.init(field, KindEmail, "email", name)
	return field
}

// Hidden renders an <input type="hidden">.
type Hidden struct{ Input[*Hidden] }

// NewHidden creates a hidden input.
func NewHidden(name string) *Hidden {
	field := &Hidden{}
	field.init(field, KindHidden, "hidden", name)
	return field
}

// Date renders an <input type="date">. time.Time values are formatted as
// YYYY-MM-DD.
type Date struct{ Input[*Date] }

// NewDate creates a date input.
func NewDate(name string) *Date {
	field := &Date{}
	field.init(field, KindDate, "date", name)
	return field
}

// Value sets the value attribute, formatting times as dates.
func (d *Date) Value(value any) *Date {
	d.SetValue(value)
	return d
}

// SetValue is the non-chainable form of Value.
func (d *Date) SetValue(value any) {
	d.Input.SetValue(formatTime(value, "2006-01-02"))
}

// Populate overlays a submitted value.
func (d *Date) Populate(value any) {
	d.SetValue(value)
}

// DateTimeLocal renders an <input type="datetime-local">.
type DateTimeLocal struct{ Input[*DateTimeLocal] }

// NewDateTimeLocal creates a datetime-local input.
func NewDateTimeLocal(name string) *DateTimeLocal {
	field := &DateTimeLocal{}
	field.init(field, KindDateTimeLocal, "datetime-local", name)
	return field
}

// Value sets the value attribute, formatting times as local date-times.
func (d *DateTimeLocal) Value(value any) *DateTimeLocal {
	d.SetValue(value)
	return d
}

// SetValue is the non-chainable form of Value.
func (d *DateTimeLocal) SetValue(value any) {
	d.Input.SetValue(formatTime(value, "2006-01-02T15:04"))
}

// Populate overlays a submitted value.
func (d *DateTimeLocal) Populate(value any) {
	d.SetValue(value)
}

// Password never re-populates submitted input.
type Password struct{ Input[*Password] }

// NewPassword creates a password input.
func NewPassword(name string) *Password {
	field := &Password{}
	field.init(field, KindPassword, "password", name)
	return field
}

// Populate ignores submitted values.
func (p *Password) Populate(any) {}

// File never re-populates submitted input.
type File struct{ Input[*File] }

// NewFile creates a file input.
func NewFile(name string) *File {
	field := &File{}
	field.init(field, KindFile, "file", name)
	return field
}

// Accept restricts selectable file types.
func (f *File) Accept(types string) *File {
	f.attrs.Set("accept", types)
	return f
}

// Populate ignores submitted values.
func (f *File) Populate(any) {}

func formatTime(value any, layout string) any {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(layout)
	default:
		return value
	}
}
