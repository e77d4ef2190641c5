// Package ingest loads player tracking CSV files into trajectories.
//
// The expected schema is a header row naming at least the columns
// time, x and y (any order, case-insensitive); additional columns are
// ignored. Every data row must parse as three floats. Malformed input
// fails fast with an *InputFormatError naming the offending row and column.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/models"
)

// Required column names
const (
	ColumnTime = "time"
	ColumnX    = "x"
	ColumnY    = "y"
)

// InputFormatError reports a CSV file that does not match the tracking
// schema. Row is 1-based and counts the header row.
type InputFormatError struct {
	Row    int    // 0 when the file-level structure is at fault
	Column string // empty when not tied to a single column
	Reason string
}

// Error implements the error interface
func (e *InputFormatError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("input format error at row %d, column %q: %s", e.Row, e.Column, e.Reason)
	case e.Row > 0:
		return fmt.Sprintf("input format error at row %d: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("input format error: %s", e.Reason)
	}
}

// LoadCSV reads one player's trajectory from a CSV file
func LoadCSV(path string) (analysis.Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tracking file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one player's trajectory from CSV data
func Parse(r io.Reader) (analysis.Trajectory, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Rows may carry extra columns beyond time/x/y
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &InputFormatError{Reason: "empty file, expected a header row"}
	}
	if err != nil {
		return nil, &InputFormatError{Row: 1, Reason: err.Error()}
	}

	// Resolve column positions from the header
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{ColumnTime, ColumnX, ColumnY} {
		if _, ok := columns[required]; !ok {
			return nil, &InputFormatError{
				Row:    1,
				Column: required,
				Reason: "required column missing from header",
			}
		}
	}

	timeIdx := columns[ColumnTime]
	xIdx := columns[ColumnX]
	yIdx := columns[ColumnY]

	var tr analysis.Trajectory
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &InputFormatError{Row: row, Reason: err.Error()}
		}

		ts, err := parseField(record, timeIdx, ColumnTime, row)
		if err != nil {
			return nil, err
		}
		x, err := parseField(record, xIdx, ColumnX, row)
		if err != nil {
			return nil, err
		}
		y, err := parseField(record, yIdx, ColumnY, row)
		if err != nil {
			return nil, err
		}

		tr = append(tr, models.Sample{Timestamp: ts, X: x, Y: y})
	}

	return tr, nil
}

// parseField extracts one float column from a record
func parseField(record []string, idx int, column string, row int) (float64, error) {
	if idx >= len(record) {
		return 0, &InputFormatError{Row: row, Column: column, Reason: "value missing"}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, &InputFormatError{
			Row:    row,
			Column: column,
			Reason: fmt.Sprintf("not a number: %q", record[idx]),
		}
	}
	// ParseFloat accepts NaN and Inf tokens; neither is a position or a time
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputFormatError{
			Row:    row,
			Column: column,
			Reason: fmt.Sprintf("non-finite value: %q", record[idx]),
		}
	}
	return v, nil
}
