package element

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/input"
)

// Field is the behaviour shared by every named form control, independent of
// its concrete variant.
type Field interface {
	Renderer
	fmt.Stringer

	GetName() string
	GetID() string
	GetType() string
	GetLabel() *Label
	GetRules() any
	GetGroup() string
	SetGroup(group string)
	SetForm(form input.ErrorLookup)
	HasError() (bool, error)
	GetError() (string, error)
	Attributes() *Attributes
	// Populate overlays a previously submitted value using the variant's
	// own value semantics.
	Populate(value any)
}

// Control adds naming, labelling, rules and state toggles to Element.
type Control[T any] struct {
	Element[T]

	kind   string
	prefix string
	suffix string
	label  *Label
	rules  any
	group  string
	form   input.ErrorLookup
}

func (c *Control[T]) init(self T, kind, typ, name string) {
	c.bindSelf(self)
	c.kind = kind
	if typ != "" {
		c.attrs.Set("type", typ)
	}
	if name != "" {
		c.attrs.Set("name", name)
	}
}

// SetName sets the name attribute.
func (c *Control[T]) SetName(name string) T {
	c.attrs.Set("name", name)
	return c.self
}

// GetName returns the name attribute.
func (c *Control[T]) GetName() string {
	name, _ := c.attrs.Get("name")
	return name
}

// GetType reports the variant kind, for example "checkbox" or "textarea".
func (c *Control[T]) GetType() string {
	return c.kind
}

// Label creates or replaces the control label, pointing it at the current
// id, or the name when no id is set.
func (c *Control[T]) Label(text string) T {
	c.SetLabel(text)
	return c.self
}

// SetLabel is the non-chainable form of Label.
func (c *Control[T]) SetLabel(text string) {
	target := c.GetID()
	if target == "" {
		target = c.GetName()
	}
	c.label = NewLabel(text).ForID(target)
}

// GetLabel returns the label or nil when none was set.
func (c *Control[T]) GetLabel() *Label {
	return c.label
}

// Rules attaches opaque validation rules.
func (c *Control[T]) Rules(rules any) T {
	c.rules = rules
	return c.self
}

// SetRules is the non-chainable form of Rules.
func (c *Control[T]) SetRules(rules any) {
	c.rules = rules
}

// GetRules returns the attached rules, nil when none.
func (c *Control[T]) GetRules() any {
	return c.rules
}

// Group sets the grouping key used by forms for radio buttons.
func (c *Control[T]) Group(group string) T {
	c.group = group
	return c.self
}

// SetGroup is the non-chainable form of Group.
func (c *Control[T]) SetGroup(group string) {
	c.group = group
}

// GetGroup returns the grouping key.
func (c *Control[T]) GetGroup() string {
	return c.group
}

// Required sets the bare required attribute.
func (c *Control[T]) Required() T {
	c.attrs.SetBare("required")
	return c.self
}

// Optional removes the required attribute.
func (c *Control[T]) Optional() T {
	c.attrs.Remove("required")
	return c.self
}

// Disable sets the bare disabled attribute.
func (c *Control[T]) Disable() T {
	c.attrs.SetBare("disabled")
	return c.self
}

// Readonly sets the bare readonly attribute.
func (c *Control[T]) Readonly() T {
	c.attrs.SetBare("readonly")
	return c.self
}

// Enable clears both disabled and readonly.
func (c *Control[T]) Enable() T {
	c.attrs.Remove("disabled")
	c.attrs.Remove("readonly")
	return c.self
}

// Autofocus sets the bare autofocus attribute.
func (c *Control[T]) Autofocus() T {
	c.attrs.SetBare("autofocus")
	return c.self
}

// Unfocus removes the autofocus attribute.
func (c *Control[T]) Unfocus() T {
	c.attrs.Remove("autofocus")
	return c.self
}

// Prepend places raw markup before the control, separated by a space.
func (c *Control[T]) Prepend(html string) T {
	if html != "" {
		c.prefix = html + " " + c.prefix
	}
	return c.self
}

// Append places raw markup after the control, separated by a space.
func (c *Control[T]) Append(html string) T {
	if html != "" {
		c.suffix = c.suffix + " " + html
	}
	return c.self
}

func (c *Control[T]) wrap(markup string) string {
	return c.prefix + markup + c.suffix
}

// SetForm attaches the error source, usually the owning form.
func (c *Control[T]) SetForm(form input.ErrorLookup) {
	c.form = form
}

// HasError reports whether the owning form has an error for this control.
func (c *Control[T]) HasError() (bool, error) {
	if c.form == nil {
		return false, fmt.Errorf("element: has error %q: %w", c.GetName(), ErrDetachedField)
	}
	return c.form.HasError(c.GetName()), nil
}

// GetError returns the owning form's error message for this control.
func (c *Control[T]) GetError() (string, error) {
	if c.form == nil {
		return "", fmt.Errorf("element: get error %q: %w", c.GetName(), ErrDetachedField)
	}
	return c.form.GetError(c.GetName()), nil
}

// Populate ignores submitted values. Variants with a value override it.
func (c *Control[T]) Populate(any) {}

var (
	_ Field = (*Text)(nil)
	_ Field = (*Email)(nil)
	_ Field = (*Date)(nil)
	_ Field = (*DateTimeLocal)(nil)
	_ Field = (*Hidden)(nil)
	_ Field = (*Password)(nil)
	_ Field = (*File)(nil)
	_ Field = (*TextArea)(nil)
	_ Field = (*MarkDown)(nil)
	_ Field = (*Checkbox)(nil)
	_ Field = (*RadioButton)(nil)
	_ Field = (*Select)(nil)
	_ Field = (*Button)(nil)
	_ Field = (*HTML)(nil)
)
