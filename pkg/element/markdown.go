package element

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
)

var (
	markdownOnce sync.Once
	markdownConv goldmark.Markdown
)

func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownConv = goldmark.New()
	})
	return markdownConv
}

// MarkDown is a textarea flagged for a markdown editor. With Preview enabled
// it also renders the sanitised HTML of its content.
type MarkDown struct {
	TextAreaControl[*MarkDown]

	preview bool
}

// NewMarkDown creates a markdown editor textarea.
func NewMarkDown(name string) *MarkDown {
	field := &MarkDown{}
	field.initTextArea(field, KindMarkDown, name)
	field.attrs.Set("data-editor", "markdown")
	return field
}

// Preview toggles the rendered HTML preview after the textarea.
func (m *MarkDown) Preview(enabled ...bool) *MarkDown {
	m.preview = len(enabled) == 0 || enabled[0]
	return m
}

// HTML converts the content to sanitised HTML.
func (m *MarkDown) HTML() (string, error) {
	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(m.GetValue()), &buf); err != nil {
		return "", err
	}
	return SanitizeHTML(buf.String()), nil
}

// Render renders the textarea, followed by the preview when enabled.
func (m *MarkDown) Render() string {
	markup := "<textarea" + m.attrs.Render() + ">" + Escape(m.GetValue()) + "</textarea>"
	if m.preview && m.HasValue() {
		if preview, err := m.HTML(); err == nil {
			markup += `<div class="markdown-preview">` + preview + `</div>`
		}
	}
	return m.wrap(markup)
}
