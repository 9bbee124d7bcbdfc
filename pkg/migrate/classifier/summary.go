package classifier

import (
	"crypto/rand"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"
)

// Summary aggregates run accounting: totals, unmatched paths, and how many
// pages populate each field.
type Summary struct {
	RunID         string
	Total         int
	Matched       int
	WithFields    int
	Unmatched     []string
	FieldCoverage map[string]int
}

func newSummary(total int) *Summary {
	return &Summary{
		RunID:         ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String(),
		Total:         total,
		FieldCoverage: make(map[string]int),
	}
}

// FieldCount pairs a field with the number of pages populating it.
type FieldCount struct {
	Field string
	Count int
}

// CoverageByCount returns field coverage sorted by count descending, field
// name ascending on ties.
func (s *Summary) CoverageByCount() []FieldCount {
	out := make([]FieldCount, 0, len(s.FieldCoverage))
	for field, count := range s.FieldCoverage {
		out = append(out, FieldCount{Field: field, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Print writes the run summary to stdout.
func (s *Summary) Print() {
	fmt.Printf("\n--- Summary (run %s) ---\n", s.RunID)
	fmt.Printf("  Articles in export: %d\n", s.Total)
	fmt.Printf("  Matched to Drupal paths: %d\n", s.Matched)
	fmt.Printf("  With populatable fields: %d\n", s.WithFields)
	fmt.Printf("  Unmatched (no Drupal path): %d\n", len(s.Unmatched))

	if len(s.Unmatched) > 0 {
		fmt.Printf("\n  Unmatched Sanity paths:\n")
		for _, p := range s.Unmatched {
			fmt.Printf("    - %s\n", p)
		}
	}

	if len(s.FieldCoverage) > 0 {
		fmt.Printf("\n  Field coverage (how many pages have each field):\n")
		for _, fc := range s.CoverageByCount() {
			fmt.Printf("    %s: %d pages\n", fc.Field, fc.Count)
		}
	}
}
