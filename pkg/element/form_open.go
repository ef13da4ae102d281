package element

import (
	"net/http"
	"strings"
)

// Names of the hidden inputs FormOpen manages.
const (
	MethodField = "_method"
	TokenField  = "_token"
)

// FormOpen renders the opening <form> tag followed by its hidden inputs.
// Browsers only submit GET and POST, so PUT, PATCH and DELETE are sent as
// POST with a _method hidden input.
type FormOpen struct {
	Element[*FormOpen]

	hidden map[string]string
}

// NewFormOpen creates a POST form open tag with an empty action.
func NewFormOpen() *FormOpen {
	open := &FormOpen{}
	open.bindSelf(open)
	open.attrs.Set("method", http.MethodPost)
	open.attrs.Set("action", "")
	return open
}

// Action sets the action attribute.
func (f *FormOpen) Action(action string) *FormOpen {
	f.attrs.Set("action", action)
	return f
}

// Get, Post, Put, Patch and Delete set the method.
func (f *FormOpen) Get() *FormOpen    { return f.Method(http.MethodGet) }
func (f *FormOpen) Post() *FormOpen   { return f.Method(http.MethodPost) }
func (f *FormOpen) Put() *FormOpen    { return f.Method(http.MethodPut) }
func (f *FormOpen) Patch() *FormOpen  { return f.Method(http.MethodPatch) }
func (f *FormOpen) Delete() *FormOpen { return f.Method(http.MethodDelete) }

// Method sets the HTTP method, spoofing verbs other than GET and POST.
func (f *FormOpen) Method(method string) *FormOpen {
	method = strings.ToUpper(strings.TrimSpace(method))
	switch method {
	case "", http.MethodPost:
		f.attrs.Set("method", http.MethodPost)
		f.removeHidden(MethodField)
	case http.MethodGet:
		f.attrs.Set("method", http.MethodGet)
		f.removeHidden(MethodField)
	default:
		f.attrs.Set("method", http.MethodPost)
		f.setHidden(MethodField, method)
	}
	return f
}

// GetMethod returns the effective method, including a spoofed one.
func (f *FormOpen) GetMethod() string {
	if spoofed, ok := f.hidden[MethodField]; ok {
		return spoofed
	}
	method, _ := f.attrs.Get("method")
	return method
}

// GetAction returns the action attribute.
func (f *FormOpen) GetAction() string {
	action, _ := f.attrs.Get("action")
	return action
}

// Multipart sets enctype="multipart/form-data".
func (f *FormOpen) Multipart() *FormOpen {
	return f.Encoding("multipart/form-data")
}

// Encoding sets the enctype attribute.
func (f *FormOpen) Encoding(encoding string) *FormOpen {
	f.attrs.Set("enctype", encoding)
	return f
}

// Token adds the _token hidden input.
func (f *FormOpen) Token(token string) *FormOpen {
	f.setHidden(TokenField, token)
	return f
}

// Hidden adds hidden inputs. Later fields replace earlier ones by name.
func (f *FormOpen) Hidden(fields ...HiddenField) *FormOpen {
	f.hidden = MergeHiddenFields(f.hidden, fields...)
	return f
}

// HiddenFields returns the hidden inputs sorted by name.
func (f *FormOpen) HiddenFields() []HiddenField {
	return SortedHiddenFields(f.hidden)
}

func (f *FormOpen) setHidden(name, value string) {
	f.hidden = MergeHiddenFields(f.hidden, HiddenField{Name: name, Value: value})
}

func (f *FormOpen) removeHidden(name string) {
	delete(f.hidden, name)
}

// Render renders the <form> tag followed by its hidden inputs.
func (f *FormOpen) Render() string {
	var b strings.Builder
	b.WriteString("<form")
	b.WriteString(f.attrs.Render())
	b.WriteString(">")
	for _, field := range f.HiddenFields() {
		b.WriteString(field.Render())
	}
	return b.String()
}
