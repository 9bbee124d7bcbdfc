// Package resolver enriches the path-mapping table with node ids scraped
// from the target CMS, one row at a time.
package resolver

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/contentops/migratekit/pkg/migrate/pathtable"
)

// NodeIDFinder fetches one page and extracts its node id. found is false
// when the page rendered but carried no id; that is an expected outcome,
// not an error.
type NodeIDFinder interface {
	FindNodeID(ctx context.Context, url string) (id string, found bool, err error)
}

// Cache persists successful resolutions between runs. Optional.
type Cache interface {
	Get(ctx context.Context, url string) (string, bool, error)
	Put(ctx context.Context, url, nodeID string) error
}

// Options controls a resolver run.
type Options struct {
	BaseURL      string
	Delay        time.Duration // courtesy pause after each network fetch
	SkipExisting bool          // leave rows that already carry a node id untouched
}

// Stats counts per-row outcomes for one run.
type Stats struct {
	Total     int
	Resolved  int
	NotFound  int
	Skipped   int
	Blank     int
	Errors    int
	FromCache int
}

// Resolver walks the table and rewrites the node-id and edit-link columns.
type Resolver struct {
	finder NodeIDFinder
	cache  Cache
	opts   Options
}

// New creates a resolver. cache may be nil to resolve every row over the
// network.
func New(finder NodeIDFinder, cache Cache, opts Options) *Resolver {
	return &Resolver{finder: finder, cache: cache, opts: opts}
}

// PageURL joins base and path with exactly one separating slash. Paths that
// already carry a scheme pass through verbatim.
func PageURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// EditLink derives the CMS edit URL for a node id.
func EditLink(base, nodeID string) string {
	return strings.TrimRight(base, "/") + "/node/" + nodeID + "/edit"
}

// Run processes every data row in order. Row-level failures degrade to empty
// node-id/edit-link columns and never abort the batch; the only early return
// is context cancellation between rows. The caller saves the table after the
// run completes.
func (r *Resolver) Run(ctx context.Context, t *pathtable.Table) (*Stats, error) {
	cols := t.EnsureColumns(pathtable.ColNodeID, pathtable.ColEditLink)
	nodeCol, editCol := cols[0], cols[1]

	stats := &Stats{Total: len(t.Rows)}
	total := len(t.Rows)

	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		srcPath := strings.TrimSpace(row[0])

		if r.opts.SkipExisting && strings.TrimSpace(row[nodeCol]) != "" {
			fmt.Printf("[%d/%d] skip (already has node-id): %s\n", i+1, total, srcPath)
			stats.Skipped++
			continue
		}

		if srcPath == "" {
			fmt.Printf("[%d/%d] empty drupal path, leaving blank\n", i+1, total)
			stats.Blank++
			continue
		}

		url := PageURL(r.opts.BaseURL, srcPath)

		if r.cache != nil {
			id, ok, err := r.cache.Get(ctx, url)
			if err != nil {
				log.Printf("Warning: node-id cache lookup failed for %s: %v", url, err)
			} else if ok {
				row[nodeCol] = id
				row[editCol] = EditLink(r.opts.BaseURL, id)
				fmt.Printf("[%d/%d] %s -> %s (cached)\n", i+1, total, srcPath, id)
				stats.Resolved++
				stats.FromCache++
				continue
			}
		}

		id, found, err := r.finder.FindNodeID(ctx, url)
		switch {
		case err != nil:
			row[nodeCol], row[editCol] = "", ""
			fmt.Printf("[%d/%d] %s -> error: %v\n", i+1, total, srcPath, err)
			stats.Errors++
		case !found:
			row[nodeCol], row[editCol] = "", ""
			fmt.Printf("[%d/%d] %s -> not found\n", i+1, total, srcPath)
			stats.NotFound++
		default:
			row[nodeCol] = id
			row[editCol] = EditLink(r.opts.BaseURL, id)
			fmt.Printf("[%d/%d] %s -> %s\n", i+1, total, srcPath, id)
			stats.Resolved++
			if r.cache != nil {
				if err := r.cache.Put(ctx, url, id); err != nil {
					log.Printf("Warning: node-id cache store failed for %s: %v", url, err)
				}
			}
		}

		// Courtesy delay only after an actual network fetch.
		if r.opts.Delay > 0 {
			sleep(ctx, r.opts.Delay)
		}
	}

	return stats, nil
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
