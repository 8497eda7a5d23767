// Package dataset holds the immutable launch record table the dashboard
// queries.
//
// A Dataset is built once at startup and only read afterwards, so a single
// value can be shared by every request goroutine without locking.
package dataset

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// ErrEmpty reports a dataset without any launch records.
var ErrEmpty = errors.New("dataset has no launch records")

// LaunchRecord is one rocket launch.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"launch_site"`
	Class           int     `json:"class"`
	PayloadMassKG   float64 `json:"payload_mass_kg"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_version_category"`
}

// Successful reports whether the launch outcome indicator is set.
func (r LaunchRecord) Successful() bool {
	return r.Class == 1
}

// Validate checks the fields the dashboard relies on.
func (r LaunchRecord) Validate() error {
	if strings.TrimSpace(r.Site) == "" {
		return errors.New("launch site is required")
	}
	if r.Class != 0 && r.Class != 1 {
		return fmt.Errorf("class must be 0 or 1, got %d", r.Class)
	}
	if math.IsNaN(r.PayloadMassKG) || math.IsInf(r.PayloadMassKG, 0) {
		return fmt.Errorf("payload mass must be finite, got %v", r.PayloadMassKG)
	}
	if strings.TrimSpace(r.BoosterCategory) == "" {
		return errors.New("booster version category is required")
	}
	return nil
}

// Dataset is a read-only launch record table.
type Dataset struct {
	records    []LaunchRecord
	minPayload float64
	maxPayload float64
}

// New validates records and returns a dataset holding its own copy of them.
func New(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	owned := slices.Clone(records)
	ds := &Dataset{
		records:    owned,
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}
	for i, record := range owned {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		ds.minPayload = min(ds.minPayload, record.PayloadMassKG)
		ds.maxPayload = max(ds.maxPayload, record.PayloadMassKG)
	}
	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// All yields records in load order.
func (d *Dataset) All() iter.Seq[LaunchRecord] {
	return func(yield func(LaunchRecord) bool) {
		if d == nil {
			return
		}
		for _, record := range d.records {
			if !yield(record) {
				return
			}
		}
	}
}

// Records returns a copy of every record in load order.
func (d *Dataset) Records() []LaunchRecord {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// PayloadBounds returns the observed minimum and maximum payload mass.
func (d *Dataset) PayloadBounds() (low, high float64) {
	if d == nil {
		return 0, 0
	}
	return d.minPayload, d.maxPayload
}

// Sites returns the distinct launch sites in ascending order.
func (d *Dataset) Sites() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{}, 4)
	var sites []string
	for _, record := range d.records {
		if _, ok := seen[record.Site]; ok {
			continue
		}
		seen[record.Site] = struct{}{}
		sites = append(sites, record.Site)
	}
	slices.Sort(sites)
	return sites
}
