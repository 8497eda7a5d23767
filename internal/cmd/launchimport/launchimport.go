// Package launchimport copies a launch records CSV into a SQLite database
// the dashboard can serve from.
package launchimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/launches/storage/sqlite"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
)

// Config holds import command configuration.
type Config struct {
	CSVPath string `env:"IMPORT_CSV"`
	DBPath  string `env:"IMPORT_DB"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.ParseConfig(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "Launch records CSV to import")
		fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database to write")
	})
	if err != nil {
		return Config{}, err
	}
	cfg.CSVPath = strings.TrimSpace(cfg.CSVPath)
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	if cfg.CSVPath == "" {
		return Config{}, errors.New("csv path is required")
	}
	if cfg.DBPath == "" {
		return Config{}, errors.New("db path is required")
	}
	return cfg, nil
}

// Run loads the CSV and replaces the database contents with its records.
func Run(ctx context.Context, cfg Config) error {
	count, err := Import(ctx, cfg.CSVPath, cfg.DBPath)
	if err != nil {
		return err
	}
	log.Printf("launch records imported csv=%s db=%s records=%d", cfg.CSVPath, cfg.DBPath, count)
	return nil
}

// Import copies every record of csvPath into the database at dbPath and
// returns the number of records written.
func Import(ctx context.Context, csvPath, dbPath string) (count int, err error) {
	ds, err := dataset.LoadFile(csvPath)
	if err != nil {
		return 0, fmt.Errorf("load csv: %w", err)
	}
	store, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close store: %w", closeErr)
		}
	}()
	if err := store.ReplaceRecords(ctx, ds.Records()); err != nil {
		return 0, fmt.Errorf("replace records: %w", err)
	}
	return ds.Len(), nil
}
