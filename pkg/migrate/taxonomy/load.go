package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contentops/migratekit/pkg/migrate/internalerr"
)

// File is the YAML form of a mapping override.
type File struct {
	Fields       map[string][]string `yaml:"fields"`
	Translations map[string]string   `yaml:"translations"`
	Ignored      []string            `yaml:"ignored"`
}

// LoadFile builds a mapping from a YAML override file. An override is
// explicit configuration, so a missing or empty file is an error rather
// than a fallback to the defaults.
func LoadFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}
	if len(f.Fields) == 0 {
		return nil, fmt.Errorf("taxonomy file %s defines no fields: %w", path, internalerr.ErrInvalidConfig)
	}

	return Build(f.Fields, f.Translations, f.Ignored), nil
}
