// Command resolve-node-ids enriches the path-mapping CSV with node ids
// scraped from the target CMS and the edit links derived from them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/contentops/migratekit/pkg/migrate/fetch"
	"github.com/contentops/migratekit/pkg/migrate/nodecache"
	"github.com/contentops/migratekit/pkg/migrate/pathtable"
	"github.com/contentops/migratekit/pkg/migrate/resolver"
)

type options struct {
	CSV          string  `long:"csv" default:"paths.csv" description:"Path-mapping CSV file to update"`
	BaseURL      string  `long:"base-url" env:"MIGRATE_BASE_URL" default:"https://www.lifeline.org.au" description:"Base URL for Drupal paths"`
	Delay        float64 `long:"delay" default:"0.2" description:"Delay between requests (seconds)"`
	Timeout      float64 `long:"timeout" default:"20" description:"Per-request timeout (seconds)"`
	SkipExisting bool    `long:"skip-existing" description:"Skip rows that already have a node id"`
	CachePath    string  `long:"cache" description:"Optional SQLite cache of resolved node ids"`
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

	if err := run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	table, err := pathtable.Load(opts.CSV)
	if err != nil {
		return err
	}

	res, cleanup, err := buildResolver(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	// Row failures are counted, not fatal; only cancellation aborts here.
	if _, err := res.Run(ctx, table); err != nil {
		return err
	}

	if err := table.Save(opts.CSV); err != nil {
		return err
	}
	fmt.Printf("Updated: %s\n", opts.CSV)
	return nil
}

func buildResolver(ctx context.Context, opts options) (*resolver.Resolver, func(), error) {
	client := fetch.NewClient(time.Duration(opts.Timeout*float64(time.Second)), "")

	cleanup := func() {}
	var cache resolver.Cache
	if opts.CachePath != "" {
		c, err := nodecache.Open(ctx, opts.CachePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open node-id cache: %w", err)
		}
		cache = c
		cleanup = func() { c.Close() }
	}

	res := resolver.New(client, cache, resolver.Options{
		BaseURL:      opts.BaseURL,
		Delay:        time.Duration(opts.Delay * float64(time.Second)),
		SkipExisting: opts.SkipExisting,
	})
	return res, cleanup, nil
}
