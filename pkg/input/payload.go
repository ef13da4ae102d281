package input

import (
	"sort"
	"strconv"
	"strings"
)

// ErrorMapping splits an error payload into per-field messages and
// form-level messages that do not belong to any known field.
type ErrorMapping struct {
	Fields Errors
	Form   []string
}

// MapErrorPayload maps server error payloads (go-errors style JSON pointers
// such as "/body/email", dotted paths such as "items.0.name", or plain field
// names) onto the supplied field names. Paths that match no field are kept as
// form-level messages so nothing is lost.
func MapErrorPayload(fieldNames []string, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(fieldNames))
	for _, name := range fieldNames {
		if key := Key(name); key != "" {
			known[key] = struct{}{}
		}
	}

	paths := make([]string, 0, len(payload))
	for path := range payload {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fields := make(Errors)
	var form []string
	for _, rawPath := range paths {
		messages := uniqueMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}
		target, formLevel := resolveErrorPath(rawPath, known)
		if formLevel {
			form = append(form, messages...)
			continue
		}
		for _, message := range messages {
			fields.Add(target, message)
		}
	}

	if len(fields) > 0 {
		mapping.Fields = fields
	}
	mapping.Form = uniqueMessages(form)
	return mapping
}

// MergeFormErrors appends extra form-level messages, trimming blanks and
// dropping duplicates while keeping the first occurrence order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return uniqueMessages(combined)
}

func uniqueMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func resolveErrorPath(raw string, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelPath(trimmed) {
		return "", true
	}
	segments := pathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	best := ""
	bestDepth := 0
	for _, candidate := range segmentVariants(segments) {
		match := longestKnownPrefix(candidate, known)
		if match == "" {
			continue
		}
		if depth := strings.Count(match, ".") + 1; depth > bestDepth {
			best, bestDepth = match, depth
		}
	}
	if best == "" {
		return "", true
	}
	return best, false
}

func pathSegments(path string) []string {
	clean := strings.TrimLeft(strings.TrimSpace(path), "#/$.")
	clean = strings.NewReplacer("[", ".", "]", "", "//", "/").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func segmentVariants(segments []string) [][]string {
	var variants [][]string
	seen := make(map[string]struct{}, 4)
	add := func(candidate []string) {
		if len(candidate) == 0 {
			return
		}
		key := strings.Join(candidate, ".")
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		variants = append(variants, append([]string(nil), candidate...))
	}

	unwrapped := dropEnvelope(segments)
	add(segments)
	add(unwrapped)
	add(dropIndexes(segments))
	add(dropIndexes(unwrapped))
	return variants
}

func dropEnvelope(segments []string) []string {
	out := segments
	for len(out) > 0 {
		switch strings.ToLower(out[0]) {
		case "body", "request", "payload", "data", "attributes":
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func dropIndexes(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestKnownPrefix(segments []string, known map[string]struct{}) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormLevelPath(path string) bool {
	switch strings.ToLower(path) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
