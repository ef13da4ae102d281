package input

import "strings"

// ErrorLookup reports validation errors by field name. Implementations must
// answer false/"" when no error source is configured.
type ErrorLookup interface {
	HasError(name string) bool
	GetError(name string) string
}

// OldInputLookup exposes the raw values of a previous, failed submission.
type OldInputLookup interface {
	HasOldInput() bool
	GetOldInput(name string) (any, bool)
}

// BoundDataSource resolves values from a bound model by field name, returning
// fallback when the model has no value for name.
type BoundDataSource interface {
	Get(name string, fallback any) any
}

// Key normalises a field name into the dotted form used for lookups:
// "address[city]" becomes "address.city" and "tags[]" becomes "tags".
func Key(name string) string {
	key := strings.TrimSpace(name)
	key = strings.TrimSuffix(key, "[]")
	if !strings.ContainsAny(key, "[]") {
		return key
	}
	replacer := strings.NewReplacer("[]", "", "[", ".", "]", "")
	key = replacer.Replace(key)
	return strings.Trim(key, ".")
}

// Segments splits a field name into its path segments.
func Segments(name string) []string {
	key := Key(name)
	if key == "" {
		return nil
	}
	return strings.Split(key, ".")
}
