/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

import (
	"math"
	"time"
)

// Record is one dated set of lab measurements. Every metric is optional; a
// missing metric is absent, never NaN.
type Record struct {
	Date   time.Time
	values map[Metric]float64
}

// NewRecord builds a record for date from entered readings. Nil readings are
// dropped, any supplied UPC ratio is ignored, and the UPC ratio is computed
// from the urine protein and creatinine readings.
func NewRecord(date time.Time, readings map[Metric]*float64) Record {
	rec := Record{Date: DateOf(date)}

	for m, v := range readings {
		if m == UPCRatio {
			continue
		}

		rec.SetPtr(m, v)
	}

	rec.SetPtr(UPCRatio, ComputeUPC(rec.Ptr(ProteinUrine), rec.Ptr(CreatinineUrine)))

	return rec
}

// Value returns the reading for m and whether it is present.
func (r Record) Value(m Metric) (float64, bool) {
	v, ok := r.values[m]
	return v, ok
}

// Ptr returns the reading for m as a pointer, or nil when absent.
func (r Record) Ptr(m Metric) *float64 {
	v, ok := r.values[m]
	if !ok {
		return nil
	}

	return &v
}

// Has reports whether m is present.
func (r Record) Has(m Metric) bool {
	_, ok := r.values[m]
	return ok
}

// Len returns the number of present readings.
func (r Record) Len() int {
	return len(r.values)
}

// Set stores v for m. Non-finite values clear the metric instead.
func (r *Record) Set(m Metric, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.Clear(m)
		return
	}

	if r.values == nil {
		r.values = make(map[Metric]float64)
	}

	r.values[m] = v
}

// SetPtr stores *v for m, or clears m when v is nil.
func (r *Record) SetPtr(m Metric, v *float64) {
	if v == nil {
		r.Clear(m)
		return
	}

	r.Set(m, *v)
}

// Clear removes the reading for m.
func (r *Record) Clear(m Metric) {
	delete(r.values, m)
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := Record{Date: r.Date}
	if len(r.values) == 0 {
		return out
	}

	out.values = make(map[Metric]float64, len(r.values))
	for m, v := range r.values {
		out.values[m] = v
	}

	return out
}

// Period returns the earliest and latest dates among records, in any order.
func Period(records []Record) (first, last time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}

	first, last = records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(first) {
			first = r.Date
		}

		if r.Date.After(last) {
			last = r.Date
		}
	}

	return first, last, true
}

// Equal reports whether both records share a date and the same readings.
func (r Record) Equal(o Record) bool {
	if !r.Date.Equal(o.Date) || len(r.values) != len(o.values) {
		return false
	}

	for m, v := range r.values {
		ov, ok := o.values[m]
		if !ok || ov != v {
			return false
		}
	}

	return true
}
