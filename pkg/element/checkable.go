package element

import "strings"

// Checkable holds the checked-state rules shared by checkboxes and radios.
// An explicit Check or Uncheck always wins. Otherwise a submitted old value
// decides, matching when it equals the control value (or contains it, for
// slices). Without either the default state applies.
type Checkable[T any] struct {
	Input[T]

	checked        *bool
	defaultChecked bool
	oldValue       any
	hasOld         bool
}

// Check forces the checked state.
func (c *Checkable[T]) Check() T {
	checked := true
	c.checked = &checked
	return c.self
}

// Uncheck forces the unchecked state.
func (c *Checkable[T]) Uncheck() T {
	checked := false
	c.checked = &checked
	return c.self
}

// DefaultToChecked checks the control when nothing else decides.
func (c *Checkable[T]) DefaultToChecked() T {
	c.defaultChecked = true
	return c.self
}

// DefaultToUnchecked leaves the control unchecked when nothing else decides.
func (c *Checkable[T]) DefaultToUnchecked() T {
	c.defaultChecked = false
	return c.self
}

// DefaultCheckedState sets the state used when nothing else decides.
func (c *Checkable[T]) DefaultCheckedState(checked bool) T {
	c.defaultChecked = checked
	return c.self
}

// SetOldValue records the submitted value for this control's name. A nil
// value means the form was submitted without this control.
func (c *Checkable[T]) SetOldValue(value any) T {
	c.oldValue = value
	c.hasOld = true
	return c.self
}

// UnsetOldValue forgets any recorded submitted value.
func (c *Checkable[T]) UnsetOldValue() T {
	c.oldValue = nil
	c.hasOld = false
	return c.self
}

// Populate treats value as the submitted old value.
func (c *Checkable[T]) Populate(value any) {
	c.SetOldValue(value)
}

// IsChecked resolves the effective checked state.
func (c *Checkable[T]) IsChecked() bool {
	if c.checked != nil {
		return *c.checked
	}
	if c.hasOld {
		return c.matchesOld()
	}
	return c.defaultChecked
}

func (c *Checkable[T]) matchesOld() bool {
	if c.oldValue == nil {
		return false
	}
	own := c.GetValue()
	for _, candidate := range stringSlice(c.oldValue) {
		if candidate == own {
			return true
		}
	}
	return false
}

// Render renders the input, adding checked when IsChecked reports true.
func (c *Checkable[T]) Render() string {
	attrs := c.attrs.clone()
	attrs.Remove("checked")
	if c.IsChecked() {
		attrs.SetBare("checked")
	}
	return c.wrap("<input" + attrs.Render() + ">")
}

// Checkbox renders an <input type="checkbox">. The value defaults to "1".
type Checkbox struct{ Checkable[*Checkbox] }

// NewCheckbox creates a checkbox with an optional value.
func NewCheckbox(name string, value ...any) *Checkbox {
	field := &Checkbox{}
	field.init(field, KindCheckbox, "checkbox", name)
	if len(value) > 0 && value[0] != nil {
		field.SetValue(value[0])
	} else {
		field.SetValue("1")
	}
	return field
}

// RadioButton renders an <input type="radio">. The value defaults to the
// name and the id defaults to name_value so radios sharing a name can be
// told apart.
type RadioButton struct{ Checkable[*RadioButton] }

// NewRadioButton creates a radio button with an optional value.
func NewRadioButton(name string, value ...any) *RadioButton {
	field := &RadioButton{}
	field.init(field, KindRadio, "radio", name)
	if len(value) > 0 && value[0] != nil {
		field.SetValue(value[0])
	} else {
		field.SetValue(name)
	}
	field.attrs.Set("id", RadioID(name, field.GetValue()))
	return field
}

// RadioID derives the default id for a radio button.
func RadioID(name, value string) string {
	return sanitizeID(name) + "_" + sanitizeID(value)
}

func sanitizeID(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == '[' || r == ']' || r == '.' || r == ' ':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
