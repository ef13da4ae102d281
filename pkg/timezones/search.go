package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/element"
)

// Search returns zones containing query, case-insensitively, with prefix
// matches first. An empty query returns nothing unless the options ask for
// the top of the list.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return nil
		}
		if len(zones) <= limit {
			return append([]string{}, zones...)
		}
		return append([]string{}, zones[:limit]...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, matchedZone{name: zone, isPrefix: strings.HasPrefix(lower, q)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// SearchOptions is Search mapped to select options.
func SearchOptions(zones []string, query string, limit int, opts Options) []element.Option {
	return SelectOptions(Search(zones, query, limit, opts))
}

type matchedZone struct {
	name     string
	isPrefix bool
}
