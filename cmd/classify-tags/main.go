// Command classify-tags reads the Sanity article metadata export, classifies
// each article's tags into Drupal taxonomy fields, and writes the
// page-fields document consumed by the field-population automation.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/contentops/migratekit/pkg/migrate/classifier"
	"github.com/contentops/migratekit/pkg/migrate/pathtable"
	"github.com/contentops/migratekit/pkg/migrate/taxonomy"
)

type options struct {
	Export   string `long:"export" default:"sanity/output/articles_metadata.json" description:"Sanity article metadata export"`
	CSV      string `long:"csv" default:"paths.csv" description:"Path-mapping CSV file"`
	Out      string `long:"out" default:"page_fields.json" description:"Output file for page field values"`
	Taxonomy string `long:"taxonomy" description:"Optional YAML file overriding the built-in taxonomy mapping"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	mapping, err := buildMapping(opts.Taxonomy)
	if err != nil {
		return err
	}

	fmt.Printf("Loading Sanity export from %s ...\n", opts.Export)
	export, err := classifier.LoadExport(opts.Export)
	if err != nil {
		return err
	}
	fmt.Printf("  Found %d articles\n", len(export.Articles))

	fmt.Printf("Loading path mapping from %s ...\n", opts.CSV)
	table, err := pathtable.Load(opts.CSV)
	if err != nil {
		return err
	}
	pathMap := table.RelativePathMap(pathtable.ColSanityPath, pathtable.ColDrupalPath)
	fmt.Printf("  Found %d path mappings\n", len(pathMap))

	results, summary := classifier.New(mapping).Run(export, pathMap)

	if err := classifier.WriteResults(opts.Out, results); err != nil {
		return err
	}

	summary.Print()
	fmt.Printf("\nOutput written to %s\n", opts.Out)
	return nil
}

func buildMapping(path string) (*taxonomy.Mapping, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.LoadFile(path)
}
