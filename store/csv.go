/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/humaidq/vetlabs/labs"
)

// CSVFile stores records as comma-separated text with a header row.
type CSVFile struct {
	path string
	ref  *labs.Reference
}

// NewCSVFile returns a backend for the CSV file at path.
func NewCSVFile(path string, ref *labs.Reference) *CSVFile {
	return &CSVFile{path: path, ref: ref}
}

// Load reads every record. A missing file yields no records.
func (c *CSVFile) Load(ctx context.Context) ([]labs.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("No data file yet, starting empty", "path", c.path)
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open %s: %w", c.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return decodeRows(c.ref, rows)
}

// Save replaces the file with the given records.
func (c *CSVFile) Save(ctx context.Context, records []labs.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFileAtomic(c.path, func(w io.Writer) error {
		return c.write(w, records)
	})
}

func (c *CSVFile) write(w io.Writer, records []labs.Record) error {
	cw := csv.NewWriter(w)
	metrics := c.ref.Metrics()

	if err := cw.Write(header(c.ref)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(metrics)+1)

	for _, rec := range records {
		row[0] = rec.Date.Format(labs.DateLayout)

		for i, m := range metrics {
			row[i+1] = ""
			if v, ok := rec.Value(m); ok {
				row[i+1] = formatValue(v)
			}
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", row[0], err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
