/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import "errors"

var (
	// ErrUnsupportedFormat is returned for data files that are neither .xlsx nor .csv.
	ErrUnsupportedFormat = errors.New("unsupported data file format, use .xlsx or .csv")
	// ErrMalformed is returned when a data file cannot be read back as records.
	ErrMalformed = errors.New("malformed data file")

	errMissingDateColumn = errors.New("missing date column")
	errMissingDate       = errors.New("missing date")
	errInvalidDateCell   = errors.New("invalid date cell")
	errInvalidValueCell  = errors.New("invalid numeric cell")
	errDuplicateColumn   = errors.New("duplicate metric column")
)
