/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/humaidq/vetlabs/labs"
)

const xlsxSheet = "Sheet1"

// XLSXFile stores records in a single-sheet Excel workbook.
type XLSXFile struct {
	path string
	ref  *labs.Reference
}

// NewXLSXFile returns a backend for the workbook at path.
func NewXLSXFile(path string, ref *labs.Reference) *XLSXFile {
	return &XLSXFile{path: path, ref: ref}
}

// Load reads every record from the first sheet. A missing workbook yields no
// records.
func (x *XLSXFile) Load(ctx context.Context) ([]labs.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exists, err := fileExists(x.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", x.path, err)
	}

	if !exists {
		logger.Info("No data file yet, starting empty", "path", x.path)
		return nil, nil
	}

	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", ErrMalformed, err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", "path", x.path, "error", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	return decodeRows(x.ref, rows)
}

// Save replaces the workbook with the given records.
func (x *XLSXFile) Save(ctx context.Context, records []labs.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFileAtomic(x.path, func(w io.Writer) error {
		return x.write(w, records)
	})
}

func (x *XLSXFile) write(w io.Writer, records []labs.Record) error {
	f := excelize.NewFile()

	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	cols := header(x.ref)
	metrics := x.ref.Metrics()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, name := range cols {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}

		if err := f.SetCellStr(xlsxSheet, cell, name); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}

		if err := f.SetCellStyle(xlsxSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, rec := range records {
		row := i + 2

		if err := setCell(f, 1, row, rec.Date.Format(labs.DateLayout)); err != nil {
			return err
		}

		for j, m := range metrics {
			v, ok := rec.Value(m)
			if !ok {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}

			if err := f.SetCellFloat(xlsxSheet, cell, v, -1, 64); err != nil {
				return fmt.Errorf("failed to set %s at row %d: %w", m, row, err)
			}
		}
	}

	if err := f.SetColWidth(xlsxSheet, "A", "A", 12); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.SetPanes(xlsxSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}

	if err := f.SetCellStr(xlsxSheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}

	return nil
}
