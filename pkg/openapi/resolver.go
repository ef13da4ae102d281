package openapi

import (
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/element"
)

// KindExtension overrides the resolved field kind for a property.
const KindExtension = "x-formbuilder-kind"

// textAreaThreshold is the maxLength above which strings render as textareas.
const textAreaThreshold = 255

// Property is a request body property considered for a field.
type Property struct {
	Name     string
	Schema   *openapi3.Schema
	Required bool
}

// Matcher decides whether a field kind should handle the property.
type Matcher func(prop Property) bool

type rule struct {
	kind     string
	priority int
	match    Matcher
	order    int
}

// Resolver picks a field kind for each property. An explicit
// x-formbuilder-kind extension wins, then matchers by descending priority,
// ties falling back to registration order. Properties nothing matches become
// text inputs.
type Resolver struct {
	mu    sync.RWMutex
	rules []rule
}

// NewResolver returns a resolver with the built-in matchers registered.
func NewResolver() *Resolver {
	r := &Resolver{}
	r.registerBuiltins()
	return r
}

// Register adds a matcher for kind with the given priority.
func (r *Resolver) Register(kind string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{kind: kind, priority: priority, match: matcher, order: len(r.rules)})
}

// Resolve returns the field kind for prop.
func (r *Resolver) Resolve(prop Property) string {
	if explicit := explicitKind(prop.Schema); explicit != "" {
		return explicit
	}
	if r == nil || prop.Schema == nil {
		return element.KindText
	}

	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(prop) {
			return entry.kind
		}
	}
	return element.KindText
}

func (r *Resolver) registerBuiltins() {
	r.Register(element.KindSelect, 100, func(prop Property) bool {
		if len(prop.Schema.Enum) > 0 {
			return true
		}
		return isType(prop.Schema, "array") && prop.Schema.Items != nil &&
			prop.Schema.Items.Value != nil && len(prop.Schema.Items.Value.Enum) > 0
	})
	r.Register(element.KindCheckbox, 90, func(prop Property) bool {
		return isType(prop.Schema, "boolean")
	})
	r.Register(element.KindFile, 85, func(prop Property) bool {
		return prop.Schema.Format == "binary"
	})
	r.Register(element.KindEmail, 80, formatIs("email"))
	r.Register(element.KindDate, 80, formatIs("date"))
	r.Register(element.KindDateTimeLocal, 80, formatIs("date-time"))
	r.Register(element.KindPassword, 80, formatIs("password"))
	r.Register(element.KindMarkDown, 75, formatIs("markdown"))
	r.Register(element.KindTextArea, 70, func(prop Property) bool {
		if prop.Schema.Format == "textarea" {
			return true
		}
		return isType(prop.Schema, "string") && prop.Schema.MaxLength != nil && *prop.Schema.MaxLength > textAreaThreshold
	})
}

func formatIs(format string) Matcher {
	return func(prop Property) bool {
		return strings.EqualFold(prop.Schema.Format, format)
	}
}

func isType(schema *openapi3.Schema, typ string) bool {
	if schema == nil || schema.Type == nil {
		return false
	}
	for _, candidate := range schema.Type.Slice() {
		if candidate == typ {
			return true
		}
	}
	return false
}

func explicitKind(schema *openapi3.Schema) string {
	if schema == nil || schema.Extensions == nil {
		return ""
	}
	if kind, ok := schema.Extensions[KindExtension].(string); ok {
		return strings.ToLower(strings.TrimSpace(kind))
	}
	return ""
}
