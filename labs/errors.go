/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

import "errors"

var (
	// ErrInvalidDate is returned when a measurement date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrUnknownMetric is returned when a metric identifier is not tracked.
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrDerivedMetric is returned when a derived metric is set by hand.
	ErrDerivedMetric = errors.New("metric is derived and cannot be entered")
)
