// Package taxonomy holds the static mapping from source-CMS tag labels to
// target-CMS taxonomy fields, plus the label translations for terms whose
// names differ between the two systems.
package taxonomy

import (
	"log"
	"sort"
)

// FeelingsField receives feeling labels verbatim; feelings never go through
// field classification or translation.
const FeelingsField = "field_feelings"

// Mapping is an immutable lookup built once at startup.
type Mapping struct {
	labelToField map[string]string
	translations map[string]string
	ignored      map[string]struct{}
}

// Build flattens grouped field -> label lists into a flat label lookup.
// A label appearing under two fields keeps its first assignment; the
// conflict is logged, never fatal. Fields are visited in sorted order so
// "first" is reproducible across runs.
func Build(groups map[string][]string, translations map[string]string, ignored []string) *Mapping {
	m := &Mapping{
		labelToField: make(map[string]string),
		translations: make(map[string]string, len(translations)),
		ignored:      make(map[string]struct{}, len(ignored)),
	}

	fields := make([]string, 0, len(groups))
	for field := range groups {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, label := range groups[field] {
			if prev, ok := m.labelToField[label]; ok {
				log.Printf("Warning: duplicate tag label %q - already mapped to %q, skipping mapping to %q",
					label, prev, field)
				continue
			}
			m.labelToField[label] = field
		}
	}

	for from, to := range translations {
		m.translations[from] = to
	}
	for _, label := range ignored {
		m.ignored[label] = struct{}{}
	}

	return m
}

// FieldFor returns the taxonomy field a source label classifies into.
func (m *Mapping) FieldFor(label string) (string, bool) {
	field, ok := m.labelToField[label]
	return field, ok
}

// Translate maps a source label to the exact target term name. Labels
// without a translation pass through unchanged.
func (m *Mapping) Translate(label string) string {
	if t, ok := m.translations[label]; ok {
		return t
	}
	return label
}

// Ignored reports whether a label is known to have no target equivalent and
// should be dropped without a warning.
func (m *Mapping) Ignored(label string) bool {
	_, ok := m.ignored[label]
	return ok
}

// Labels returns the number of mapped labels.
func (m *Mapping) Labels() int {
	return len(m.labelToField)
}
