package input

import "strings"

// Errors is a map-backed ErrorLookup keyed by field name. Only the first
// non-blank message of a field is surfaced.
type Errors map[string][]string

var _ ErrorLookup = Errors(nil)

// NewErrors builds an Errors value from single messages per field.
func NewErrors(messages map[string]string) Errors {
	if len(messages) == 0 {
		return nil
	}
	out := make(Errors, len(messages))
	for name, message := range messages {
		out.Add(name, message)
	}
	return out
}

// Add appends a message for name. Blank messages are ignored.
func (e Errors) Add(name, message string) {
	if e == nil {
		return
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	key := Key(name)
	e[key] = append(e[key], message)
}

// HasError reports whether name has at least one message.
func (e Errors) HasError(name string) bool {
	return len(e.messages(name)) > 0
}

// GetError returns the first message recorded for name.
func (e Errors) GetError(name string) string {
	messages := e.messages(name)
	if len(messages) == 0 {
		return ""
	}
	return messages[0]
}

// All returns every message recorded for name.
func (e Errors) All(name string) []string {
	return append([]string(nil), e.messages(name)...)
}

func (e Errors) messages(name string) []string {
	if len(e) == 0 {
		return nil
	}
	if messages := nonBlank(e[name]); len(messages) > 0 {
		return messages
	}
	return nonBlank(e[Key(name)])
}

func nonBlank(messages []string) []string {
	for idx, message := range messages {
		if strings.TrimSpace(message) != "" {
			return messages[idx:]
		}
	}
	return nil
}
