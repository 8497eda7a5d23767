// Package dashboard parses dashboard flags and launches the HTTP server.
package dashboard

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/launches/storage/sqlite"
	entrypoint "github.com/louisbranch/launchboard/internal/platform/cmd"
	"github.com/louisbranch/launchboard/internal/services/dashboard"
	"github.com/louisbranch/launchboard/internal/services/dashboard/render"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:"localhost:8050"`
	DatasetPath string `env:"DATASET" envDefault:"spacex_launch_dash.csv"`
	ChartWidth  int    `env:"CHART_WIDTH" envDefault:"900"`
	ChartHeight int    `env:"CHART_HEIGHT" envDefault:"450"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.ParseConfig(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
		fs.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "Launch records CSV or SQLite database")
		fs.IntVar(&cfg.ChartWidth, "chart-width", cfg.ChartWidth, "Rendered chart width in pixels")
		fs.IntVar(&cfg.ChartHeight, "chart-height", cfg.ChartHeight, "Rendered chart height in pixels")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the dataset and serves the dashboard until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	ds, err := loadDataset(ctx, cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	low, high := ds.PayloadBounds()
	log.Printf("dataset loaded path=%s records=%d payload_min=%g payload_max=%g", cfg.DatasetPath, ds.Len(), low, high)

	server, err := dashboard.NewServer(dashboard.Config{
		HTTPAddr:  cfg.HTTPAddr,
		ChartSize: render.Size{Width: cfg.ChartWidth, Height: cfg.ChartHeight},
	}, ds)
	if err != nil {
		return fmt.Errorf("init dashboard server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve dashboard: %w", err)
	}
	return nil
}

// loadDataset reads path as a SQLite database when its extension says so,
// otherwise as CSV.
func loadDataset(ctx context.Context, path string) (*dataset.Dataset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	if !isSQLitePath(path) {
		return dataset.LoadFile(path)
	}
	// Open would create an empty database for a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close dataset store path=%s err=%v", path, err)
		}
	}()
	return store.LoadDataset(ctx)
}

func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}
