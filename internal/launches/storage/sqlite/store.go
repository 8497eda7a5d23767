// Package sqlite stores launch records in SQLite so the dashboard can load
// its dataset from a database file instead of a CSV export.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/launchboard/internal/launches/dataset"
	"github.com/louisbranch/launchboard/internal/launches/storage/sqlite/migrations"
	"github.com/louisbranch/launchboard/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store persists launch records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite launch store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceRecords swaps the stored table for records in one transaction.
func (s *Store) ReplaceRecords(ctx context.Context, records []dataset.LaunchRecord) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM launch_records`); err != nil {
		return fmt.Errorf("clear launch records: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO launch_records (
		   flight_number,
		   launch_site,
		   class,
		   payload_mass_kg,
		   booster_version,
		   booster_version_category
		 ) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, record := range records {
		if _, err = stmt.ExecContext(ctx,
			record.FlightNumber,
			strings.TrimSpace(record.Site),
			record.Class,
			record.PayloadMassKG,
			strings.TrimSpace(record.BoosterVersion),
			strings.TrimSpace(record.BoosterCategory),
		); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// ListRecords returns every stored record in insertion order.
func (s *Store) ListRecords(ctx context.Context) ([]dataset.LaunchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, errors.New("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
		   flight_number,
		   launch_site,
		   class,
		   payload_mass_kg,
		   booster_version,
		   booster_version_category
		 FROM launch_records
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query launch records: %w", err)
	}
	defer rows.Close()

	var records []dataset.LaunchRecord
	for rows.Next() {
		var record dataset.LaunchRecord
		if err := rows.Scan(
			&record.FlightNumber,
			&record.Site,
			&record.Class,
			&record.PayloadMassKG,
			&record.BoosterVersion,
			&record.BoosterCategory,
		); err != nil {
			return nil, fmt.Errorf("scan launch record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate launch records: %w", err)
	}
	return records, nil
}

// LoadDataset reads the stored records into an immutable dataset.
func (s *Store) LoadDataset(ctx context.Context) (*dataset.Dataset, error) {
	records, err := s.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.New(records)
}
