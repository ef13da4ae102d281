package timezones_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/element"
	"github.com/goliatone/go-formbuilder/pkg/timezones"
)

func TestLoadZones_DedupesSortsAndIgnoresComments(t *testing.T) {
	zones, err := timezones.LoadZones(strings.NewReader(`
# Comment
America/New_York
Europe/Paris
America/New_York

UTC
`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if diff := cmp.Diff([]string{"America/New_York", "Europe/Paris", "UTC"}, zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultZones_ContainsCommonEntries(t *testing.T) {
	zones, err := timezones.DefaultZones()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(zones) < 100 {
		t.Fatalf("expected a reasonably sized list, got %d", len(zones))
	}
	for _, expected := range []string{"America/New_York", "Europe/Paris", "UTC"} {
		found := false
		for _, zone := range zones {
			if zone == expected {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected zone %q to be present", expected)
		}
	}
	if opts := timezones.DefaultSelectOptions(); len(opts) != len(zones) {
		t.Fatalf("expected one option per zone, got %d", len(opts))
	}
}

func TestSearch(t *testing.T) {
	cases := []struct {
		name  string
		zones []string
		query string
		limit int
		opts  timezones.Options
		want  []string
	}{
		{
			name:  "case insensitive contains",
			zones: []string{"Europe/Paris", "America/New_York", "UTC"},
			query: "eUrOpE/p",
			limit: 10,
			opts:  timezones.NewOptions(),
			want:  []string{"Europe/Paris"},
		},
		{
			name:  "prefix before contains",
			zones: []string{"x/a/b", "a/b", "a/b/c", "c/d"},
			query: "a/b",
			limit: 10,
			opts:  timezones.NewOptions(),
			want:  []string{"a/b", "a/b/c", "x/a/b"},
		},
		{
			name:  "empty query top with default limit",
			zones: []string{"a", "b", "c", "d"},
			opts:  timezones.NewOptions(timezones.WithDefaultLimit(2), timezones.WithEmptySearchMode(timezones.EmptySearchTop)),
			want:  []string{"a", "b"},
		},
		{
			name:  "empty query none",
			zones: []string{"a"},
			limit: 5,
			opts:  timezones.NewOptions(),
		},
		{
			name:  "negative limit",
			zones: []string{"a"},
			query: "a",
			limit: -1,
			opts:  timezones.NewOptions(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := timezones.Search(tc.zones, tc.query, tc.limit, tc.opts)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("search mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchOptions_MapsValueAndLabel(t *testing.T) {
	got := timezones.SearchOptions([]string{"UTC"}, "utc", 10, timezones.NewOptions())
	if diff := cmp.Diff([]element.Option{{Value: "UTC", Label: "UTC"}}, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

type handlerResponse struct {
	Data []struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"data"`
}

func TestHandler_SearchAndLimitClamped(t *testing.T) {
	mux := http.NewServeMux()
	if err := timezones.RegisterRoutes(mux, "",
		timezones.WithZones([]string{"America/Chicago", "America/New_York", "Europe/Paris", "UTC"}),
		timezones.WithMaxLimit(2),
	); err != nil {
		t.Fatalf("register: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones?q=America&limit=10", nil))

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data) != 2 || payload.Data[0].Value != "America/Chicago" || payload.Data[1].Label != "America/New_York" {
		t.Fatalf("unexpected payload %#v", payload.Data)
	}
}

func TestHandler_EmptyQueryReturnsEmptyArray(t *testing.T) {
	h := timezones.NewHandler(timezones.WithZones([]string{"UTC"}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones", nil))

	if got := strings.TrimSpace(rec.Body.String()); got != `{"data":[]}` {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestHandler_MethodAndGuard(t *testing.T) {
	h := timezones.NewHandler(timezones.WithGuard(func(r *http.Request) error {
		if r.Header.Get("X-Token") == "" {
			return timezones.StatusError{Code: http.StatusUnauthorized, Err: errors.New("missing token")}
		}
		return nil
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != "GET, HEAD" {
		t.Fatalf("expected 405 with Allow header, got %d %q", rec.Code, rec.Header().Get("Allow"))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?q=utc", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected guard status 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/?q=utc", nil)
	req.Header.Set("X-Token", "t")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"value":"UTC"`) {
		t.Fatalf("expected UTC match, got %d %s", rec.Code, rec.Body.String())
	}
}
