package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names of the launch CSV export.
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnSite            = "Launch Site"
	ColumnClass           = "class"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterVersion  = "Booster Version"
	ColumnBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{ColumnSite, ColumnClass, ColumnPayloadMass, ColumnBoosterCategory}

type columnIndex map[string]int

func (c columnIndex) value(row []string, column string) (string, bool) {
	idx, ok := c[column]
	if !ok || idx >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[idx]), true
}

// LoadFile reads a launch CSV from path.
func LoadFile(path string) (*Dataset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("dataset path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses a launch CSV. Extra columns are ignored; a missing required
// column or an unparseable value fails the whole load.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var records []LaunchRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		record, err := parseRow(columns, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return New(records)
}

func indexHeader(header []string) (columnIndex, error) {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "" {
			continue
		}
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		columns[name] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, strconv.Quote(name))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func parseRow(columns columnIndex, row []string) (LaunchRecord, error) {
	site, _ := columns.value(row, ColumnSite)
	category, _ := columns.value(row, ColumnBoosterCategory)
	booster, _ := columns.value(row, ColumnBoosterVersion)
	record := LaunchRecord{
		Site:            site,
		BoosterCategory: category,
		BoosterVersion:  booster,
	}

	rawClass, _ := columns.value(row, ColumnClass)
	class, err := parseClass(rawClass)
	if err != nil {
		return LaunchRecord{}, err
	}
	record.Class = class

	rawPayload, _ := columns.value(row, ColumnPayloadMass)
	payload, err := strconv.ParseFloat(rawPayload, 64)
	if err != nil {
		return LaunchRecord{}, fmt.Errorf("parse %s %q: %w", ColumnPayloadMass, rawPayload, err)
	}
	record.PayloadMassKG = payload

	if rawFlight, ok := columns.value(row, ColumnFlightNumber); ok && rawFlight != "" {
		flight, err := strconv.Atoi(rawFlight)
		if err != nil {
			return LaunchRecord{}, fmt.Errorf("parse %s %q: %w", ColumnFlightNumber, rawFlight, err)
		}
		record.FlightNumber = flight
	}

	if err := record.Validate(); err != nil {
		return LaunchRecord{}, err
	}
	return record, nil
}

// parseClass accepts the integer and float spellings pandas exports emit.
func parseClass(raw string) (int, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", ColumnClass, raw, err)
	}
	switch value {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	default:
		return 0, fmt.Errorf("%s must be 0 or 1, got %q", ColumnClass, raw)
	}
}
