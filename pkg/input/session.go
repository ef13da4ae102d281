package input

import (
	"fmt"
	"net/url"
)

// Default session keys used by the session-backed lookups.
const (
	SessionErrorsKey   = "errors"
	SessionOldInputKey = "_old_input"
)

// SessionValues is the read side of a session store. It matches stores that
// expose GetValue(key string) (any, bool), such as flash-capable sessions.
type SessionValues interface {
	GetValue(key string) (any, bool)
}

// SessionErrors reads validation errors flashed into a session. The stored
// value may be Errors, map[string][]string, map[string]string or
// map[string]any with string or []string messages.
type SessionErrors struct {
	Session SessionValues
	Key     string
}

var _ ErrorLookup = SessionErrors{}

// HasError reports whether the flashed errors contain name.
func (s SessionErrors) HasError(name string) bool {
	return s.errors().HasError(name)
}

// GetError returns the first flashed message for name.
func (s SessionErrors) GetError(name string) string {
	return s.errors().GetError(name)
}

func (s SessionErrors) errors() Errors {
	if s.Session == nil {
		return nil
	}
	key := s.Key
	if key == "" {
		key = SessionErrorsKey
	}
	raw, ok := s.Session.GetValue(key)
	if !ok {
		return nil
	}
	return toErrors(raw)
}

// SessionOldInput reads a flashed submission from a session.
type SessionOldInput struct {
	Session SessionValues
	Key     string
}

var _ OldInputLookup = SessionOldInput{}

// HasOldInput reports whether a submission was flashed.
func (s SessionOldInput) HasOldInput() bool {
	return s.values().HasOldInput()
}

// GetOldInput returns the flashed value for name.
func (s SessionOldInput) GetOldInput(name string) (any, bool) {
	return s.values().GetOldInput(name)
}

func (s SessionOldInput) values() OldInput {
	if s.Session == nil {
		return nil
	}
	key := s.Key
	if key == "" {
		key = SessionOldInputKey
	}
	raw, ok := s.Session.GetValue(key)
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case OldInput:
		return v
	case map[string]any:
		return OldInput(v)
	case url.Values:
		return OldInputFromValues(v)
	case map[string][]string:
		return OldInputFromValues(url.Values(v))
	case map[string]string:
		out := make(OldInput, len(v))
		for name, value := range v {
			out[name] = value
		}
		return out
	default:
		return nil
	}
}

func toErrors(raw any) Errors {
	switch v := raw.(type) {
	case Errors:
		return v
	case map[string][]string:
		return Errors(v)
	case map[string]string:
		return NewErrors(v)
	case map[string]any:
		out := make(Errors, len(v))
		for name, value := range v {
			switch messages := value.(type) {
			case string:
				out.Add(name, messages)
			case []string:
				for _, message := range messages {
					out.Add(name, message)
				}
			case []any:
				for _, message := range messages {
					out.Add(name, fmt.Sprint(message))
				}
			}
		}
		return out
	default:
		return nil
	}
}
