// Package openapi derives form definitions from OpenAPI 3 operations. Each
// request body property becomes a field whose kind, label, attributes and
// rules follow from the property schema.
package openapi
