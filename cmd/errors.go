/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDataFileRequired = errors.New("data-file is required (set via --data-file)")
	errDateRequired     = errors.New("date is required (set via --date YYYY-MM-DD)")
	errNoReadings       = errors.New("at least one --set metric=value is required")
	errInvalidLayout    = errors.New("layout must be one of: wide, transposed, key")
)
