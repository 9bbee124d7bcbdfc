package resolver

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/contentops/migratekit/pkg/migrate/pathtable"
)

// fakeFinder resolves from a fixed url -> id map and records the urls it was
// asked for.
type fakeFinder struct {
	ids    map[string]string
	errs   map[string]error
	called []string
}

func (f *fakeFinder) FindNodeID(ctx context.Context, url string) (string, bool, error) {
	f.called = append(f.called, url)
	if err, ok := f.errs[url]; ok {
		return "", false, err
	}
	id, ok := f.ids[url]
	return id, ok, nil
}

type fakeCache struct {
	entries map[string]string
	puts    map[string]string
}

func (c *fakeCache) Get(ctx context.Context, url string) (string, bool, error) {
	id, ok := c.entries[url]
	return id, ok, nil
}

func (c *fakeCache) Put(ctx context.Context, url, nodeID string) error {
	if c.puts == nil {
		c.puts = map[string]string{}
	}
	c.puts[url] = nodeID
	return nil
}

func newTable(rows ...[]string) *pathtable.Table {
	t := &pathtable.Table{Header: []string{"drupal-path", "sanity-path"}}
	t.Rows = append(t.Rows, rows...)
	return t
}

func TestRunResolvesRow(t *testing.T) {
	finder := &fakeFinder{ids: map[string]string{
		"https://example.com/team/rebecca": "482",
	}}
	table := newTable([]string{"team/rebecca", "people/rebecca"})

	res := New(finder, nil, Options{BaseURL: "https://example.com"})
	stats, err := res.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	row := table.Rows[0]
	if row[2] != "482" {
		t.Errorf("node-id = %q, want 482", row[2])
	}
	if row[3] != "https://example.com/node/482/edit" {
		t.Errorf("edit-link = %q", row[3])
	}
	if stats.Resolved != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunNotFoundClearsColumns(t *testing.T) {
	finder := &fakeFinder{}
	table := newTable([]string{"gone", "", "old-id", "old-link"})
	table.Header = []string{"drupal-path", "sanity-path", "node-id", "edit-link"}

	res := New(finder, nil, Options{BaseURL: "https://example.com"})
	stats, err := res.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	row := table.Rows[0]
	if row[2] != "" || row[3] != "" {
		t.Errorf("stale values not cleared: %v", row)
	}
	if stats.NotFound != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunErrorClearsColumnsAndContinues(t *testing.T) {
	finder := &fakeFinder{
		ids:  map[string]string{"https://example.com/b": "2"},
		errs: map[string]error{"https://example.com/a": errors.New("timeout")},
	}
	table := newTable(
		[]string{"a", ""},
		[]string{"b", ""},
	)

	res := New(finder, nil, Options{BaseURL: "https://example.com"})
	stats, err := res.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if table.Rows[0][2] != "" || table.Rows[0][3] != "" {
		t.Errorf("failed row should be empty: %v", table.Rows[0])
	}
	if table.Rows[1][2] != "2" {
		t.Errorf("batch aborted after row error: %v", table.Rows[1])
	}
	if stats.Errors != 1 || stats.Resolved != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunSkipExisting(t *testing.T) {
	finder := &fakeFinder{}
	table := newTable([]string{"team/rebecca", "", "482", "https://example.com/node/482/edit"})
	table.Header = []string{"drupal-path", "sanity-path", "node-id", "edit-link"}
	before := append([]string(nil), table.Rows[0]...)

	res := New(finder, nil, Options{BaseURL: "https://example.com", SkipExisting: true})
	stats, err := res.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !reflect.DeepEqual(table.Rows[0], before) {
		t.Errorf("skipped row changed: %v", table.Rows[0])
	}
	if len(finder.called) != 0 {
		t.Errorf("skip-existing still fetched: %v", finder.called)
	}
	if stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunEmptyPathUntouched(t *testing.T) {
	finder := &fakeFinder{}
	table := newTable([]string{"", "orphan"})

	res := New(finder, nil, Options{BaseURL: "https://example.com"})
	stats, err := res.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(finder.called) != 0 {
		t.Errorf("empty path fetched: %v", finder.called)
	}
	if stats.Blank != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunAbsoluteURLUsedVerbatim(t *testing.T) {
	finder := &fakeFinder{ids: map[string]string{
		"https://other.example.org/page": "9",
	}}
	table := newTable([]string{"https://other.example.org/page", ""})

	res := New(finder, nil, Options{BaseURL: "https://example.com"})
	if _, err := res.Run(context.Background(), table); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(finder.called) != 1 || finder.called[0] != "https://other.example.org/page" {
		t.Errorf("fetched urls = %v", finder.called)
	}
	if table.Rows[0][2] != "9" {
		t.Errorf("node-id = %q", table.Rows[0][2])
	}
}

func TestRunIdempotent(t *testing.T) {
	ids := map[string]string{"https://example.com/a": "1"}
	table := newTable([]string{"a", ""}, []string{"missing", ""})

	res := New(&fakeFinder{ids: ids}, nil, Options{BaseURL: "https://example.com"})
	if _, err := res.Run(context.Background(), table); err != nil {
		t.Fatal(err)
	}
	first := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		first[i] = append([]string(nil), row...)
	}

	if _, err := res.Run(context.Background(), table); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Rows, first) {
		t.Errorf("second run changed the table: %v vs %v", table.Rows, first)
	}
}

func TestRunCacheHitSkipsFetch(t *testing.T) {
	finder := &fakeFinder{}
	cache := &fakeCache{entries: map[string]string{
		"https://example.com/cached": "55",
	}}
	table := newTable([]string{"cached", ""})

	res := New(finder, cache, Options{BaseURL: "https://example.com"})
	stats, err := res.Run(context.Background(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(finder.called) != 0 {
		t.Errorf("cache hit still fetched: %v", finder.called)
	}
	if table.Rows[0][2] != "55" || table.Rows[0][3] != "https://example.com/node/55/edit" {
		t.Errorf("row = %v", table.Rows[0])
	}
	if stats.FromCache != 1 || stats.Resolved != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunCacheStoresResolution(t *testing.T) {
	finder := &fakeFinder{ids: map[string]string{"https://example.com/a": "7"}}
	cache := &fakeCache{}
	table := newTable([]string{"a", ""})

	res := New(finder, cache, Options{BaseURL: "https://example.com"})
	if _, err := res.Run(context.Background(), table); err != nil {
		t.Fatal(err)
	}

	if cache.puts["https://example.com/a"] != "7" {
		t.Errorf("cache puts = %v", cache.puts)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table := newTable([]string{"a", ""})
	res := New(&fakeFinder{}, nil, Options{BaseURL: "https://example.com"})
	if _, err := res.Run(ctx, table); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://example.com", "team/rebecca", "https://example.com/team/rebecca"},
		{"https://example.com/", "/team/rebecca", "https://example.com/team/rebecca"},
		{"https://example.com", "https://elsewhere.org/x", "https://elsewhere.org/x"},
		{"https://example.com", "http://elsewhere.org/x", "http://elsewhere.org/x"},
	}
	for _, tt := range tests {
		if got := PageURL(tt.base, tt.path); got != tt.want {
			t.Errorf("PageURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestEditLink(t *testing.T) {
	if got := EditLink("https://example.com/", "482"); got != "https://example.com/node/482/edit" {
		t.Errorf("EditLink = %q", got)
	}
}
