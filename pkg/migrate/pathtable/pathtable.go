// Package pathtable manages the path-mapping CSV shared by both migration
// pipelines. The table correlates source-system paths to target-system paths
// and, once resolved, node ids and edit links.
package pathtable

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/contentops/migratekit/pkg/migrate/internalerr"
)

// Well-known column names.
const (
	ColDrupalPath = "drupal-path"
	ColSanityPath = "sanity-path"
	ColNodeID     = "node-id"
	ColEditLink   = "edit-link"
)

// Table is the in-memory form of the path-mapping file. The first header
// column is the Drupal path; rows keep their file order.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads the table from disk. A missing file or a file with no rows at
// all is an error; a header-only file loads with zero data rows.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open path table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read path table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, internalerr.ErrTableEmpty)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// EnsureColumns returns the header index for each name, appending missing
// columns in the order given. Every data row is padded with empty strings up
// to the highest index so later per-row writes never go out of range.
func (t *Table) EnsureColumns(names ...string) []int {
	idx := make([]int, len(names))
	for i, name := range names {
		col := indexOf(t.Header, name)
		if col < 0 {
			t.Header = append(t.Header, name)
			col = len(t.Header) - 1
		}
		idx[i] = col
	}

	max := 0
	for _, col := range idx {
		if col > max {
			max = col
		}
	}
	for i, row := range t.Rows {
		for len(row) <= max {
			row = append(row, "")
		}
		t.Rows[i] = row
	}

	return idx
}

// Save writes the full table to a sibling temp file and atomically renames it
// over path. A crash mid-write never leaves a partially written table.
func (t *Table) Save(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp table: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("write table header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		return fmt.Errorf("write table rows: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp table: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// RelativePathMap returns a trimmed keyCol -> valCol lookup over the data
// rows. Rows whose key is empty, missing, or an absolute URL (http prefix)
// do not participate; only relative-path entries are usable for matching.
func (t *Table) RelativePathMap(keyCol, valCol string) map[string]string {
	m := make(map[string]string)
	ki := indexOf(t.Header, keyCol)
	vi := indexOf(t.Header, valCol)
	if ki < 0 || vi < 0 {
		return m
	}

	for _, row := range t.Rows {
		if len(row) <= ki || len(row) <= vi {
			continue
		}
		key := strings.TrimSpace(row[ki])
		if key == "" || strings.HasPrefix(key, "http") {
			continue
		}
		m[key] = strings.TrimSpace(row[vi])
	}
	return m
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
