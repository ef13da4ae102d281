package timezones

import (
	"bufio"
	"embed"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/element"
)

//go:embed data/zones.txt
var dataFS embed.FS

const defaultListPath = "data/zones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// DefaultZones returns a sorted copy of the embedded zone list.
func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultZones, defaultErr = LoadZones(f)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

// LoadZones reads one zone per line, skipping blanks, comments and
// duplicates, and returns them sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, errors.New("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 128)
	seen := map[string]struct{}{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(zones)
	return zones, nil
}

// SelectOptions maps zones to select options using the zone as both value
// and label.
func SelectOptions(zones []string) []element.Option {
	if len(zones) == 0 {
		return nil
	}
	out := make([]element.Option, 0, len(zones))
	for _, zone := range zones {
		out = append(out, element.Option{Value: zone, Label: zone})
	}
	return out
}

// DefaultSelectOptions returns the embedded zones as select options. It
// returns nil when the list cannot be read.
func DefaultSelectOptions() []element.Option {
	zones, err := DefaultZones()
	if err != nil {
		return nil
	}
	return SelectOptions(zones)
}
