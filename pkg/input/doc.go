// Package input defines the collaborators the form builder consults while
// rendering: an error lookup for validation feedback, an old-input lookup for
// re-displaying a failed submission, and a bound data source for pre-filling
// edit forms from a model.
//
// The package also ships adapters for the common cases: plain maps and
// url.Values, session stores exposing GetValue(key) (any, bool), structs and
// maps bound by field name, and go-errors style payloads keyed by JSON
// pointer or dotted paths. Field names such as "address[city]" and
// "address.city" resolve to the same key, and a trailing "[]" is ignored.
package input
