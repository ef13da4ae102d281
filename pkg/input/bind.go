package input

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Getter lets bound models expose values without going through reflection.
type Getter interface {
	FormValue(name string) (any, bool)
}

// BoundData resolves field values from a bound model. Supported models are
// Getter implementations, maps keyed by string (including url.Values),
// structs and pointers to structs. Struct fields match on their `form` tag,
// then their `json` tag, then case-insensitively on the Go field name.
// Nested values are reached through dotted or bracketed names and numeric
// segments index into slices.
type BoundData struct {
	data any
}

var _ BoundDataSource = (*BoundData)(nil)

// Bind wraps data as a BoundDataSource.
func Bind(data any) *BoundData {
	return &BoundData{data: data}
}

// Get returns the value bound to name or fallback when none is found.
func (b *BoundData) Get(name string, fallback any) any {
	if b == nil || b.data == nil {
		return fallback
	}
	if getter, ok := b.data.(Getter); ok {
		if value, found := getter.FormValue(name); found {
			return value
		}
		return fallback
	}
	if value, ok := lookupPath(b.data, Segments(name)); ok {
		return value
	}
	return fallback
}

func lookupPath(data any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	current := data
	for _, segment := range segments {
		next, ok := lookupSegment(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return indirect(current), true
}

func lookupSegment(data any, segment string) (any, bool) {
	switch v := data.(type) {
	case nil:
		return nil, false
	case map[string]any:
		value, ok := v[segment]
		return value, ok
	case OldInput:
		value, ok := v[segment]
		return value, ok
	case map[string]string:
		value, ok := v[segment]
		return value, ok
	case url.Values:
		return firstOrAll(v[segment])
	case map[string][]string:
		return firstOrAll(v[segment])
	case Getter:
		return v.FormValue(segment)
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		value := rv.MapIndex(reflect.ValueOf(segment).Convert(keyType))
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Struct:
		return structField(rv, segment)
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	default:
		return nil, false
	}
}

func structField(rv reflect.Value, name string) (any, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous {
			embedded := rv.Field(i)
			if embedded.Kind() == reflect.Pointer {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				if value, ok := structField(embedded, name); ok {
					return value, true
				}
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		if fieldMatches(field, name) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func fieldMatches(field reflect.StructField, name string) bool {
	for _, tag := range []string{"form", "json"} {
		raw, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		tagName, _, _ := strings.Cut(raw, ",")
		if tagName == "-" {
			return false
		}
		if tagName != "" {
			return tagName == name
		}
	}
	return strings.EqualFold(field.Name, name)
}

func firstOrAll(values []string) (any, bool) {
	switch len(values) {
	case 0:
		return nil, false
	case 1:
		return values[0], true
	default:
		return append([]string(nil), values...), true
	}
}

func indirect(value any) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
