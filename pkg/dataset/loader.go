package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a launch dataset from path. The format is chosen by extension:
// .csv files are read as comma separated text, .xlsx files from their first sheet.
// Any failure is returned as a *LoadError.
func Load(path string) (*Dataset, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", "":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	records, err := parseRows(rows)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return New(records), nil
}

// readCSV loads every line of a CSV file
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, parseErr)
		}
		return nil, err
	}

	return rows, nil
}

// columnIndex maps normalized header names to their column position
type columnIndex map[string]int

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

// parseHeaders indexes the header row and verifies the required columns are present
func parseHeaders(headers []string) (columnIndex, error) {
	index := make(columnIndex, len(headers))
	for i, header := range headers {
		name := normalizeHeader(header)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, column := range RequiredColumns {
		if _, ok := index[normalizeHeader(column)]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return index, nil
}

// cell returns the trimmed value of column in line, or "" when the line is short
func (c columnIndex) cell(line []string, column string) (string, bool) {
	i, ok := c[normalizeHeader(column)]
	if !ok || i >= len(line) {
		return "", ok
	}
	return strings.TrimSpace(line[i]), true
}

func parseRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	index, err := parseHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for n, line := range rows[1:] {
		if isBlank(line) {
			continue
		}

		record, err := parseRecord(line, index)
		if err != nil {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, n+2, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// parseRecord builds a record from one data line
func parseRecord(line []string, index columnIndex) (Record, error) {
	var record Record

	site, _ := index.cell(line, ColumnLaunchSite)
	if site == "" {
		return Record{}, fmt.Errorf("empty %s", ColumnLaunchSite)
	}
	record.LaunchSite = site

	payload, _ := index.cell(line, ColumnPayloadMass)
	mass, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%s %q: %w", ColumnPayloadMass, payload, err)
	}
	record.PayloadMassKg = mass

	record.BoosterVersionCategory, _ = index.cell(line, ColumnBoosterCategory)

	class, _ := index.cell(line, ColumnOutcome)
	if record.Outcome, err = parseOutcome(class); err != nil {
		return Record{}, err
	}

	if value, ok := index.cell(line, ColumnFlightNumber); ok && value != "" {
		if flight, err := strconv.ParseFloat(value, 64); err == nil {
			record.FlightNumber = int(flight)
		}
	}
	record.BoosterVersion, _ = index.cell(line, ColumnBoosterVersion)

	return record, nil
}

// parseOutcome accepts the 0/1 flag, its float spelling and true/false
func parseOutcome(value string) (bool, error) {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		switch f {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}

	return false, fmt.Errorf("%s %q is not a 0/1 flag", ColumnOutcome, value)
}

func isBlank(line []string) bool {
	for _, v := range line {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
