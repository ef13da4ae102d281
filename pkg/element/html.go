package element

// HTML passes raw content through unescaped.
type HTML struct {
	Control[*HTML]

	content string
}

// NewHTML creates a raw content field with an optional name.
func NewHTML(content string, name ...string) *HTML {
	field := &HTML{content: content}
	field.init(field, KindHTML, "", first(name))
	return field
}

// Content replaces the raw content.
func (h *HTML) Content(content string) *HTML {
	h.content = content
	return h
}

// GetContent returns the raw content.
func (h *HTML) GetContent() string {
	return h.content
}

// Sanitize strips unsafe markup from the current content.
func (h *HTML) Sanitize() *HTML {
	h.content = SanitizeHTML(h.content)
	return h
}

// Render returns the content unescaped.
func (h *HTML) Render() string {
	return h.wrap(h.content)
}
