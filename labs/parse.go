/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format used for measurement dates everywhere.
const DateLayout = "2006-01-02"

// ParseValue turns user input into an optional reading. Empty, non-numeric
// and non-finite input all yield nil; it never fails. A decimal comma is
// accepted.
func ParseValue(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// ParseDate parses a YYYY-MM-DD measurement date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t, nil
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseMetric resolves a metric identifier, ignoring case.
func (r *Reference) ParseMetric(s string) (Metric, error) {
	s = strings.TrimSpace(s)

	if _, ok := r.defs[Metric(s)]; ok {
		return Metric(s), nil
	}

	for _, m := range r.order {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// ParseAssignment parses "metric=value" into an enterable metric and an
// optional reading. The value goes through ParseValue, so a malformed value
// becomes nil rather than an error.
func (r *Reference) ParseAssignment(s string) (Metric, *float64, error) {
	name, value, _ := strings.Cut(s, "=")

	m, err := r.ParseMetric(name)
	if err != nil {
		return "", nil, err
	}

	if def, _ := r.Definition(m); def.Derived {
		return "", nil, fmt.Errorf("%w: %s", ErrDerivedMetric, m)
	}

	return m, ParseValue(value), nil
}
