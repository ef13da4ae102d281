package form

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/input"
)

var (
	// ErrFieldNotFound is returned when a positional insert names a missing anchor.
	ErrFieldNotFound = errors.New("form: field not found")
	// ErrNilField is returned when adding a nil field.
	ErrNilField = errors.New("form: field is nil")
)

// DefaultInvalidClass is added to fields that have a validation error.
const DefaultInvalidClass = "is-invalid"

// Result is the outcome of a build.
type Result struct {
	Open    *element.FormOpen
	Fields  []element.Field
	Actions []element.Field
	Close   string
}

type Option func(*Form)

// WithBuilder supplies the field builder handed to the definition.
func WithBuilder(b *builder.Builder) Option {
	return func(f *Form) {
		if b != nil {
			f.builder = b
		}
	}
}

// WithExtensions supplies the extension registry consulted on build.
func WithExtensions(exts *Extensions) Option {
	return func(f *Form) {
		f.extensions = exts
	}
}

// WithOldInput sets the previous submission overlaid on finalised fields.
func WithOldInput(old input.OldInputLookup) Option {
	return func(f *Form) {
		f.old = old
	}
}

// WithErrorLookup sets the validation error source.
func WithErrorLookup(errs input.ErrorLookup) Option {
	return func(f *Form) {
		f.errors = errs
	}
}

// WithInvalidClass overrides the class added to erroring fields.
func WithInvalidClass(class string) Option {
	return func(f *Form) {
		f.invalidClass = strings.TrimSpace(class)
	}
}

// WithSettings attaches free-form settings, for example layout hints read by
// renderers.
func WithSettings(settings map[string]any) Option {
	return func(f *Form) {
		f.SetSettings(settings)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Form is an ordered registry of fields keyed by name. Radio buttons are
// keyed by id and grouped by name so same-name radios coexist.
type Form struct {
	kind         string
	def          Definition
	builder      *builder.Builder
	extensions   *Extensions
	old          input.OldInputLookup
	errors       input.ErrorLookup
	invalidClass string
	settings     map[string]any
	logger       *slog.Logger

	keys   []string
	fields map[string]element.Field
	anon   int
}

var _ input.ErrorLookup = (*Form)(nil)

// New creates a form of the given kind. The kind selects the extensions
// applied on build.
func New(kind string, def Definition, opts ...Option) *Form {
	f := &Form{
		kind:         kind,
		def:          def,
		invalidClass: DefaultInvalidClass,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		fields:       make(map[string]element.Field),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if f.def == nil {
		f.def = DefinitionFuncs{}
	}
	if f.builder == nil {
		f.builder = builder.New(
			builder.WithOldInput(f.old),
			builder.WithErrorStore(f.errors),
			builder.WithLogger(f.logger),
		)
	}
	if f.old == nil {
		f.old = f.builder.OldInput()
	}
	if f.errors == nil {
		f.errors = f.builder.ErrorStore()
	}
	return f
}

func (f *Form) Kind() string {
	return f.kind
}

// Builder returns the builder handed to the definition and extensions.
func (f *Form) Builder() *builder.Builder {
	return f.builder
}

// Build repopulates the registry and returns the finalised form.
func (f *Form) Build() (Result, error) {
	if err := f.populate(); err != nil {
		return Result{}, err
	}
	f.finalize()

	open := f.def.Open(f.builder)
	if open == nil {
		open = f.builder.Open()
	}
	var actions []element.Field
	for _, action := range f.def.Actions(f.builder) {
		if action == nil {
			continue
		}
		action.SetForm(f)
		actions = append(actions, action)
	}

	f.logger.Debug("form built", "kind", f.kind, "fields", len(f.keys), "actions", len(actions))
	return Result{
		Open:    open,
		Fields:  f.Fields(),
		Actions: actions,
		Close:   builder.CloseTag,
	}, nil
}

// Rules repopulates the registry and returns the non-nil rules keyed by
// field name.
func (f *Form) Rules() (map[string]any, error) {
	if err := f.populate(); err != nil {
		return nil, err
	}
	rules := make(map[string]any)
	for _, key := range f.keys {
		field := f.fields[key]
		value := field.GetRules()
		if value == nil {
			continue
		}
		name := field.GetName()
		if name == "" {
			name = key
		}
		rules[name] = value
	}
	return rules, nil
}

func (f *Form) populate() error {
	f.reset()

	for _, field := range f.def.Fields(f.builder) {
		if err := f.Add(field); err != nil {
			return fmt.Errorf("form %q: declare fields: %w", f.kind, err)
		}
	}
	f.logger.Debug("form populated", "kind", f.kind, "fields", len(f.keys))

	if f.extensions == nil {
		return nil
	}
	for idx, ext := range f.extensions.For(f.kind) {
		if err := ext(f); err != nil {
			return fmt.Errorf("form %q: extension %d: %w", f.kind, idx, err)
		}
	}
	f.logger.Debug("form extended", "kind", f.kind, "fields", len(f.keys))
	return nil
}

func (f *Form) finalize() {
	submitted := f.old != nil && f.old.HasOldInput()
	for _, key := range f.keys {
		field := f.fields[key]
		field.SetForm(f)

		name := field.GetName()
		if f.invalidClass != "" && f.HasError(name) {
			addClassOnce(field.Attributes(), f.invalidClass)
		}
		if !submitted {
			continue
		}
		if value, ok := f.old.GetOldInput(name); ok {
			field.Populate(value)
		}
	}
}

func addClassOnce(attrs *element.Attributes, class string) {
	current, _ := attrs.Get("class")
	for _, existing := range strings.Fields(current) {
		if existing == class {
			return
		}
	}
	attrs.AddClass(class)
}

func (f *Form) reset() {
	f.keys = nil
	f.fields = make(map[string]element.Field)
	f.anon = 0
}

// keyFor derives the registry key, grouping radio buttons by name.
func (f *Form) keyFor(field element.Field) string {
	if field.GetType() == element.KindRadio {
		field.SetGroup(field.GetName())
		if id := field.GetID(); id != "" {
			return id
		}
	}
	if name := field.GetName(); name != "" {
		return name
	}
	if id := field.GetID(); id != "" {
		return id
	}
	f.anon++
	return fmt.Sprintf("%s_%d", field.GetType(), f.anon)
}

// Add appends field, replacing in place any field with the same key.
func (f *Form) Add(field element.Field) error {
	if field == nil {
		return ErrNilField
	}
	key := f.keyFor(field)
	if _, exists := f.fields[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.fields[key] = field
	return nil
}

// AddBefore inserts field immediately before anchor. A field already
// registered under the same key is moved.
func (f *Form) AddBefore(anchor string, field element.Field) error {
	return f.insert(anchor, field, 0)
}

// AddAfter inserts field immediately after anchor. A field already
// registered under the same key is moved.
func (f *Form) AddAfter(anchor string, field element.Field) error {
	return f.insert(anchor, field, 1)
}

func (f *Form) insert(anchor string, field element.Field, offset int) error {
	if field == nil {
		return ErrNilField
	}
	if f.index(anchor) < 0 {
		f.logger.Debug("insert anchor missing", "kind", f.kind, "anchor", anchor)
		return fmt.Errorf("form: insert relative to %q: %w", anchor, ErrFieldNotFound)
	}

	key := f.keyFor(field)
	if key == anchor {
		f.fields[key] = field
		return nil
	}
	if idx := f.index(key); idx >= 0 {
		f.keys = append(f.keys[:idx], f.keys[idx+1:]...)
	}

	pos := f.index(anchor) + offset
	f.keys = append(f.keys, "")
	copy(f.keys[pos+1:], f.keys[pos:])
	f.keys[pos] = key
	f.fields[key] = field
	return nil
}

func (f *Form) index(key string) int {
	for idx, existing := range f.keys {
		if existing == key {
			return idx
		}
	}
	return -1
}

// Remove deletes the field registered under key. Missing keys are ignored.
func (f *Form) Remove(key string) {
	idx := f.index(key)
	if idx < 0 {
		return
	}
	f.keys = append(f.keys[:idx], f.keys[idx+1:]...)
	delete(f.fields, key)
}

func (f *Form) Has(key string) bool {
	_, ok := f.fields[key]
	return ok
}

// Field returns the field registered under key.
func (f *Form) Field(key string) (element.Field, bool) {
	field, ok := f.fields[key]
	return field, ok
}

// Fields returns the registered fields in order.
func (f *Form) Fields() []element.Field {
	out := make([]element.Field, 0, len(f.keys))
	for _, key := range f.keys {
		out = append(out, f.fields[key])
	}
	return out
}

// Keys returns the registry keys in order.
func (f *Form) Keys() []string {
	return append([]string(nil), f.keys...)
}

func (f *Form) Len() int {
	return len(f.keys)
}

// Settings returns a copy of the form settings.
func (f *Form) Settings() map[string]any {
	out := make(map[string]any, len(f.settings))
	for key, value := range f.settings {
		out[key] = value
	}
	return out
}

// SetSettings replaces the form settings.
func (f *Form) SetSettings(settings map[string]any) {
	f.settings = make(map[string]any, len(settings))
	for key, value := range settings {
		f.settings[key] = value
	}
}

// SetErrorLookup replaces the validation error source.
func (f *Form) SetErrorLookup(errs input.ErrorLookup) {
	f.errors = errs
}

func (f *Form) HasError(name string) bool {
	return f.errors != nil && f.errors.HasError(name)
}

func (f *Form) GetError(name string) string {
	if !f.HasError(name) {
		return ""
	}
	return f.errors.GetError(name)
}

// ErrorsFromPayload maps a server error payload onto the registered field
// names. Build or Rules must run first so the registry is populated.
func (f *Form) ErrorsFromPayload(payload map[string][]string) input.ErrorMapping {
	names := make([]string, 0, len(f.keys))
	for _, key := range f.keys {
		if name := f.fields[key].GetName(); name != "" {
			names = append(names, name)
		}
	}
	return input.MapErrorPayload(names, payload)
}
