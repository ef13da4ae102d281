package element

// Label renders a <label>. A nil *Label renders as the empty string.
type Label struct {
	Element[*Label]

	text string
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	label := &Label{text: text}
	label.bindSelf(label)
	return label
}

// ForID points the label at a control id.
func (l *Label) ForID(id string) *Label {
	l.attrs.Set("for", id)
	return l
}

// GetText returns the label text.
func (l *Label) GetText() string {
	if l == nil {
		return ""
	}
	return l.text
}

// GetFor returns the id the label points at.
func (l *Label) GetFor() string {
	if l == nil {
		return ""
	}
	target, _ := l.attrs.Get("for")
	return target
}

// Render renders the <label>; a nil label renders nothing.
func (l *Label) Render() string {
	if l == nil {
		return ""
	}
	return "<label" + l.attrs.Render() + ">" + l.text + "</label>"
}

// String implements fmt.Stringer.
func (l *Label) String() string {
	return l.Render()
}
