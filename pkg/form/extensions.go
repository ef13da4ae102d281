package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrExtensionsFrozen is returned when registering after the registry has
// been read by a build.
var ErrExtensionsFrozen = errors.New("form: extension registry is frozen")

// Extension mutates a form after its fields have been declared. Extensions
// run on every Build and Rules call and must not depend on earlier runs.
type Extension func(f *Form) error

// Extensions maps form kinds to ordered extension callbacks. Register at
// startup; the registry freezes the first time a build reads it.
type Extensions struct {
	mu     sync.RWMutex
	byKind map[string][]Extension
	frozen bool
}

func NewExtensions() *Extensions {
	return &Extensions{byKind: make(map[string][]Extension)}
}

// Register appends ext for kind.
func (e *Extensions) Register(kind string, ext Extension) error {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return fmt.Errorf("form: register extension: kind is required")
	}
	if ext == nil {
		return fmt.Errorf("form: register extension %q: extension is nil", kind)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.frozen {
		return fmt.Errorf("form: register extension %q: %w", kind, ErrExtensionsFrozen)
	}
	if e.byKind == nil {
		e.byKind = make(map[string][]Extension)
	}
	e.byKind[kind] = append(e.byKind[kind], ext)
	return nil
}

// MustRegister panics when Register fails.
func (e *Extensions) MustRegister(kind string, ext Extension) {
	if err := e.Register(kind, ext); err != nil {
		panic(err)
	}
}

// Freeze rejects further registrations.
func (e *Extensions) Freeze() {
	e.mu.Lock()
	e.frozen = true
	e.mu.Unlock()
}

func (e *Extensions) Frozen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frozen
}

// For freezes the registry and returns the extensions for kind in
// registration order.
func (e *Extensions) For(kind string) []Extension {
	e.mu.RLock()
	frozen := e.frozen
	exts := append([]Extension(nil), e.byKind[kind]...)
	e.mu.RUnlock()

	if !frozen {
		e.Freeze()
	}
	return exts
}
