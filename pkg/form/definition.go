package form

import (
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/element"
)

// Definition declares a form. Each method may be called on every build, so
// implementations must return fresh fields each time.
type Definition interface {
	Open(b *builder.Builder) *element.FormOpen
	Fields(b *builder.Builder) []element.Field
	Actions(b *builder.Builder) []element.Field
}

// DefinitionFuncs adapts plain functions to Definition. Nil funcs fall back
// to a POST form with no fields or actions.
type DefinitionFuncs struct {
	OpenFunc    func(b *builder.Builder) *element.FormOpen
	FieldsFunc  func(b *builder.Builder) []element.Field
	ActionsFunc func(b *builder.Builder) []element.Field
}

var _ Definition = DefinitionFuncs{}

func (d DefinitionFuncs) Open(b *builder.Builder) *element.FormOpen {
	if d.OpenFunc == nil {
		return b.Open()
	}
	return d.OpenFunc(b)
}

func (d DefinitionFuncs) Fields(b *builder.Builder) []element.Field {
	if d.FieldsFunc == nil {
		return nil
	}
	return d.FieldsFunc(b)
}

func (d DefinitionFuncs) Actions(b *builder.Builder) []element.Field {
	if d.ActionsFunc == nil {
		return nil
	}
	return d.ActionsFunc(b)
}
