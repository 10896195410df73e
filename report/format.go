/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"math"
	"strconv"
	"time"

	"github.com/humaidq/vetlabs/labs"
)

// Absent is printed in place of a missing reading.
const Absent = "-"

// ColumnDateLayout is the DD.MM.YYYY layout used for date column headers.
const ColumnDateLayout = "02.01.2006"

// FormatValue rounds v to three decimals for display. Trailing zeros are
// dropped.
func FormatValue(v *float64) string {
	if v == nil {
		return Absent
	}

	return strconv.FormatFloat(round(*v, 3), 'f', -1, 64)
}

// MetricLabel returns "Name (unit)", or just the name for unitless metrics.
func MetricLabel(ref *labs.Reference, m labs.Metric) string {
	name := ref.DisplayNameOf(m)

	if unit := ref.UnitOf(m); unit != "" {
		return name + " (" + unit + ")"
	}

	return name
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)

	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}

	return r
}

func formatFixed(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

func columnDate(t time.Time) string {
	return t.Format(ColumnDateLayout)
}

func withUnit(ref *labs.Reference, m labs.Metric, v string) string {
	if unit := ref.UnitOf(m); unit != "" {
		return v + " " + unit
	}

	return v
}
