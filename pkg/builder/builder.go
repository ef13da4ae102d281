// Package builder constructs form fields with their display values resolved
// from a previous submission or bound data.
package builder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/input"
	"github.com/goliatone/go-formbuilder/pkg/timezones"
)

// ErrUnknownKind is returned by Make for field kinds it cannot construct.
var ErrUnknownKind = errors.New("builder: unknown field kind")

// MessagePlaceholder is replaced by the error message in GetError formats.
const MessagePlaceholder = ":message"

// Option configures a Builder.
type Option func(*Builder)

// WithOldInput sets the source of previously submitted values.
func WithOldInput(old input.OldInputLookup) Option {
	return func(b *Builder) {
		b.old = old
	}
}

// WithErrorStore sets the source of validation errors.
func WithErrorStore(errs input.ErrorLookup) Option {
	return func(b *Builder) {
		b.errors = errs
	}
}

// WithLogger routes debug output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type missingValue struct{}

// Builder creates fields. Display values are resolved in order: submitted old
// input for the name, then bound data, then the field default.
type Builder struct {
	old    input.OldInputLookup
	errors input.ErrorLookup
	bound  input.BoundDataSource
	logger *slog.Logger
}

// New creates a Builder with no old input, errors or bound data.
func New(opts ...Option) *Builder {
	b := &Builder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// OldInput returns the configured submission source, which may be nil.
func (b *Builder) OldInput() input.OldInputLookup {
	return b.old
}

// ErrorStore returns the configured error source, which may be nil.
func (b *Builder) ErrorStore() input.ErrorLookup {
	return b.errors
}

// Bind installs data as the bound data source. Any value accepted by
// input.Bind works, as does an input.BoundDataSource.
func (b *Builder) Bind(data any) {
	if source, ok := data.(input.BoundDataSource); ok {
		b.bound = source
		return
	}
	b.bound = input.Bind(data)
}

// Unbind clears the bound data source.
func (b *Builder) Unbind() {
	b.bound = nil
}

// Open returns a POST form open tag.
func (b *Builder) Open() *element.FormOpen {
	return element.NewFormOpen()
}

// CloseTag closes a form opened with Open.
const CloseTag = "</form>"

// Close clears bound data and returns the closing tag.
func (b *Builder) Close() string {
	b.Unbind()
	return CloseTag
}

// HasSubmission reports whether a previous submission is available.
func (b *Builder) HasSubmission() bool {
	return b.old != nil && b.old.HasOldInput()
}

// ValueFor resolves the display value for name.
func (b *Builder) ValueFor(name string) (any, bool) {
	if b.HasSubmission() {
		if value, ok := b.old.GetOldInput(name); ok {
			return value, true
		}
	}
	if b.bound != nil {
		value := b.bound.Get(name, missingValue{})
		if _, missing := value.(missingValue); !missing {
			return value, true
		}
	}
	return nil, false
}

// Text creates a text input showing the resolved value for name.
func (b *Builder) Text(name string) *element.Text {
	field := element.NewText(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// Email creates an email input showing the resolved value for name.
func (b *Builder) Email(name string) *element.Email {
	field := element.NewEmail(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// Date creates a date input showing the resolved value for name.
func (b *Builder) Date(name string) *element.Date {
	field := element.NewDate(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// DateTimeLocal creates a datetime-local input showing the resolved value for name.
func (b *Builder) DateTimeLocal(name string) *element.DateTimeLocal {
	field := element.NewDateTimeLocal(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// Hidden creates a hidden input carrying the resolved value for name.
func (b *Builder) Hidden(name string) *element.Hidden {
	field := element.NewHidden(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// Password never carries a value.
func (b *Builder) Password(name string) *element.Password {
	return element.NewPassword(name)
}

// File creates a file input.
func (b *Builder) File(name string) *element.File {
	return element.NewFile(name)
}

// TextArea creates a textarea holding the resolved value for name.
func (b *Builder) TextArea(name string) *element.TextArea {
	field := element.NewTextArea(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// MarkDown creates a markdown editor holding the resolved value for name.
func (b *Builder) MarkDown(name string) *element.MarkDown {
	field := element.NewMarkDown(name)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// Checkbox builds a checkbox whose checked state follows the submission or
// bound value. The value defaults to "1".
func (b *Builder) Checkbox(name string, value ...any) *element.Checkbox {
	field := element.NewCheckbox(name, value...)
	b.applyOld(name, func(old any) { field.SetOldValue(old) })
	return field
}

// Radio builds a radio button. The value defaults to the name.
func (b *Builder) Radio(name string, value ...any) *element.RadioButton {
	field := element.NewRadioButton(name, value...)
	b.applyOld(name, func(old any) { field.SetOldValue(old) })
	return field
}

// applyOld hands checkables the raw submitted value. When a submission exists
// but omits name they receive nil, which renders unchecked.
func (b *Builder) applyOld(name string, set func(any)) {
	if b.HasSubmission() {
		value, _ := b.old.GetOldInput(name)
		set(value)
		return
	}
	if value, ok := b.ValueFor(name); ok {
		set(value)
	}
}

// Select creates a select with the resolved value for name selected.
func (b *Builder) Select(name string, options ...element.Option) *element.Select {
	field := element.NewSelect(name, options...)
	if value, ok := b.ValueFor(name); ok {
		field.SetValue(value)
	}
	return field
}

// SelectMonth builds a select with months 1 through 12.
func (b *Builder) SelectMonth(name string) *element.Select {
	return b.Select(name, element.MonthOptions()...)
}

// SelectTimezone builds a select listing IANA timezones.
func (b *Builder) SelectTimezone(name string) *element.Select {
	return b.Select(name, timezones.DefaultSelectOptions()...)
}

// Button creates a type="button" button.
func (b *Builder) Button(text string, name ...string) *element.Button {
	return element.NewButton(text, name...)
}

// Submit creates a type="submit" button.
func (b *Builder) Submit(text string, name ...string) *element.Button {
	return element.NewSubmit(text, name...)
}

// Reset creates a type="reset" button.
func (b *Builder) Reset(text string, name ...string) *element.Button {
	return element.NewReset(text, name...)
}

// Label creates a standalone label.
func (b *Builder) Label(text string) *element.Label {
	return element.NewLabel(text)
}

// HTML creates a raw content field.
func (b *Builder) HTML(content string, name ...string) *element.HTML {
	return element.NewHTML(content, name...)
}

// Make constructs a field by kind name.
func (b *Builder) Make(kind, name string) (element.Field, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case element.KindText, "string":
		return b.Text(name), nil
	case element.KindEmail:
		return b.Email(name), nil
	case element.KindDate:
		return b.Date(name), nil
	case element.KindDateTimeLocal, "datetime":
		return b.DateTimeLocal(name), nil
	case element.KindHidden:
		return b.Hidden(name), nil
	case element.KindPassword:
		return b.Password(name), nil
	case element.KindFile:
		return b.File(name), nil
	case element.KindTextArea:
		return b.TextArea(name), nil
	case element.KindMarkDown:
		return b.MarkDown(name), nil
	case element.KindCheckbox:
		return b.Checkbox(name), nil
	case element.KindRadio:
		return b.Radio(name), nil
	case element.KindSelect:
		return b.Select(name), nil
	case element.KindButton:
		return b.Button(name, name), nil
	case element.KindSubmit:
		return b.Submit(name, name), nil
	case element.KindReset:
		return b.Reset(name, name), nil
	case element.KindHTML:
		return b.HTML("", name), nil
	default:
		b.logger.Debug("unknown field kind", "kind", kind, "name", name)
		return nil, fmt.Errorf("builder: make %q: %w", kind, ErrUnknownKind)
	}
}

// HasError reports whether name has a validation error.
func (b *Builder) HasError(name string) bool {
	return b.errors != nil && b.errors.HasError(name)
}

// GetError returns the error message for name, or "" when there is none.
// With a format, every ":message" placeholder is replaced by the message.
func (b *Builder) GetError(name string, format ...string) string {
	if !b.HasError(name) {
		return ""
	}
	message := b.errors.GetError(name)
	if len(format) == 0 || format[0] == "" {
		return message
	}
	return strings.ReplaceAll(format[0], MessagePlaceholder, message)
}
