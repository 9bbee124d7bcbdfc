// Package classifier reclassifies free-form source tags into the target
// CMS's fixed taxonomy fields and reports coverage.
package classifier

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/contentops/migratekit/pkg/migrate/taxonomy"
)

// Classifier applies a static taxonomy mapping to article exports.
type Classifier struct {
	mapping *taxonomy.Mapping
}

// New creates a classifier over an immutable mapping.
func New(mapping *taxonomy.Mapping) *Classifier {
	return &Classifier{mapping: mapping}
}

// LoadExport reads and decodes an article metadata export.
func LoadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read article export: %w", err)
	}

	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse article export %s: %w", path, err)
	}
	return &export, nil
}

// ClassifyArticle returns {field: [translated labels]} for one article's
// tags and feelings. Labels keep tag order and duplicates. Unmapped labels
// outside the ignored set are logged, one warning line per article.
func (c *Classifier) ClassifyArticle(article Article) map[string][]string {
	fields := make(map[string][]string)

	var unmapped []string
	for _, tag := range article.Tags {
		label := strings.TrimSpace(tag.Label)
		if label == "" {
			continue
		}
		if field, ok := c.mapping.FieldFor(label); ok {
			// Classification keyed on the source label; translate after.
			fields[field] = append(fields[field], c.mapping.Translate(label))
		} else if !c.mapping.Ignored(label) {
			unmapped = append(unmapped, label)
		}
	}

	if len(unmapped) > 0 {
		title := article.Title
		if title == "" {
			title = "?"
		}
		log.Printf("Warning: unmapped tags for %q: %v", title, unmapped)
	}

	for _, feeling := range article.Feelings {
		label := strings.TrimSpace(feeling.Label)
		if label == "" {
			continue
		}
		fields[taxonomy.FeelingsField] = append(fields[taxonomy.FeelingsField], label)
	}

	return fields
}

// Run classifies every article whose path resolves through pathMap
// (sanity path without leading slash -> drupal path). Articles with no
// resolvable fields still count as matched but produce no result; articles
// with no path entry are recorded as unmatched. Result order follows the
// export.
func (c *Classifier) Run(export *Export, pathMap map[string]string) ([]Result, *Summary) {
	results := make([]Result, 0, len(export.Articles))
	summary := newSummary(len(export.Articles))

	for _, article := range export.Articles {
		sanityPath := strings.TrimLeft(article.Path, "/")

		drupalPath := pathMap[sanityPath]
		if drupalPath == "" {
			summary.Unmatched = append(summary.Unmatched, sanityPath)
			continue
		}
		summary.Matched++

		fields := c.ClassifyArticle(article)
		if len(fields) == 0 {
			continue
		}

		title := article.Title
		if title == "" {
			title = article.Name
		}

		results = append(results, Result{
			DrupalPath: drupalPath,
			SanityPath: sanityPath,
			Title:      title,
			Fields:     fields,
		})
		summary.WithFields++
		for field := range fields {
			summary.FieldCoverage[field]++
		}
	}

	sort.Strings(summary.Unmatched)
	return results, summary
}

// WriteResults serializes the full result sequence as a single document,
// written once at the end of the run.
func WriteResults(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results %s: %w", path, err)
	}
	return nil
}
