/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/humaidq/vetlabs/labs"
)

// DateColumn is the header of the date column in every file backend.
const DateColumn = "date"

// BackendForPath picks a file backend from the extension of path.
func BackendForPath(path string, ref *labs.Reference) (Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return NewXLSXFile(path, ref), nil
	case ".csv":
		return NewCSVFile(path, ref), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// header returns the column layout: date first, then metrics in reference
// order.
func header(ref *labs.Reference) []string {
	metrics := ref.Metrics()

	cols := make([]string, 0, len(metrics)+1)
	cols = append(cols, DateColumn)

	for _, m := range metrics {
		cols = append(cols, string(m))
	}

	return cols
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decodeRows turns raw cell text into records. The first non-empty row is the
// header; columns are matched by name so hand-reordered files still load.
func decodeRows(ref *labs.Reference, rows [][]string) ([]labs.Record, error) {
	start := 0
	for start < len(rows) && isBlankRow(rows[start]) {
		start++
	}

	if start == len(rows) {
		return nil, nil
	}

	dateCol := -1

	var cols []column

	seen := make(map[labs.Metric]bool)

	for i, name := range rows[start] {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, DateColumn) {
			dateCol = i
			continue
		}

		if name == "" {
			continue
		}

		m, err := ref.ParseMetric(name)
		if err != nil {
			logger.Warn("Ignoring unknown column", "column", name)
			continue
		}

		if seen[m] {
			return nil, fmt.Errorf("%w: %w: %s", ErrMalformed, errDuplicateColumn, m)
		}

		seen[m] = true
		cols = append(cols, column{index: i, metric: m})
	}

	if dateCol < 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, errMissingDateColumn)
	}

	var records []labs.Record

	for n, row := range rows[start+1:] {
		if isBlankRow(row) {
			continue
		}

		line := start + n + 2

		rec, err := decodeRow(row, dateCol, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformed, line, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// column maps a header position to its metric.
type column struct {
	index  int
	metric labs.Metric
}

func decodeRow(row []string, dateCol int, cols []column) (labs.Record, error) {
	if dateCol >= len(row) || strings.TrimSpace(row[dateCol]) == "" {
		return labs.Record{}, errMissingDate
	}

	date, err := parseDateCell(row[dateCol])
	if err != nil {
		return labs.Record{}, err
	}

	rec := labs.Record{Date: date}

	for _, c := range cols {
		if c.index >= len(row) {
			continue
		}

		cell := strings.TrimSpace(row[c.index])
		if cell == "" {
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return labs.Record{}, fmt.Errorf("%w: %s=%q", errInvalidValueCell, c.metric, cell)
		}

		rec.Set(c.metric, v)
	}

	return rec, nil
}

var dateCellLayouts = []string{
	labs.DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Excel serials are only trusted when they land in a year that DateLayout
// can write back.
const (
	minSerialYear = 1900
	maxSerialYear = 9999
)

// parseDateCell accepts ISO dates, pandas-style timestamps and Excel serial
// dates.
func parseDateCell(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateCellLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return labs.DateOf(t), nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil && t.Year() >= minSerialYear && t.Year() <= maxSerialYear {
			return labs.DateOf(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", errInvalidDateCell, s)
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// writeFileAtomic writes to a temp file next to path and renames it into
// place, so an interrupted save leaves the previous file intact.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmp.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				logger.Warn("Failed to remove temp file", "path", tmp.Name(), "error", rmErr)
			}
		}
	}()

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
