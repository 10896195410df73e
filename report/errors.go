/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "errors"

var (
	// ErrNoData is returned by every view when there are no records to show.
	ErrNoData = errors.New("no data to display")
	// ErrNoKeyMetrics is returned when none of the key metrics has a reading.
	ErrNoKeyMetrics = errors.New("no readings for key metrics")
)
