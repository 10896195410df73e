/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

import (
	"math"
	"sync"
)

// Range is a closed interval [Low, High].
type Range struct {
	Low  float64
	High float64
}

// Contains reports whether v lies within the range, inclusive on both ends.
func (r Range) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// StageTableID names a disease-stage table.
type StageTableID string

// Stage tables shipped with the default reference.
const (
	StageCKD3 StageTableID = "CKD stage 3"
)

// StageWindow is the expected range of a metric for one disease stage.
type StageWindow struct {
	Metric Metric
	Window Range
}

// StageTable holds the stage windows for one condition, in report order.
type StageTable struct {
	ID      StageTableID
	Windows []StageWindow
}

// UPCBand is a half-open band [Lower, Upper) of UPC values.
type UPCBand struct {
	Severity UPCSeverity
	Lower    float64
	Upper    float64
}

// Reference is the immutable set of lookup tables used by the evaluator and
// reports. Build it with DefaultReference and pass it to whoever needs it.
type Reference struct {
	order    []Metric
	defs     map[Metric]MetricDefinition
	stages   map[StageTableID]StageTable
	upcBands []UPCBand
}

var (
	defaultOnce sync.Once
	defaultRef  *Reference
)

// DefaultReference returns the canine reference tables. The same instance is
// returned on every call; it is never mutated.
func DefaultReference() *Reference {
	defaultOnce.Do(func() {
		defaultRef = NewReference(metricDefinitions(), stageTables(), upcBands())
	})

	return defaultRef
}

// NewReference builds a Reference from explicit tables. Bands must be given
// in ascending order.
func NewReference(defs []MetricDefinition, stages []StageTable, bands []UPCBand) *Reference {
	ref := &Reference{
		order:    make([]Metric, 0, len(defs)),
		defs:     make(map[Metric]MetricDefinition, len(defs)),
		stages:   make(map[StageTableID]StageTable, len(stages)),
		upcBands: append([]UPCBand(nil), bands...),
	}

	for _, def := range defs {
		if _, dup := ref.defs[def.Metric]; dup {
			continue
		}

		ref.order = append(ref.order, def.Metric)
		ref.defs[def.Metric] = def
	}

	for _, st := range stages {
		st.Windows = append([]StageWindow(nil), st.Windows...)
		ref.stages[st.ID] = st
	}

	return ref
}

// stageTables returns the disease-stage windows. CKD stage 3 values follow
// the thresholds used for this patient's monitoring plan.
func stageTables() []StageTable {
	return []StageTable{
		{
			ID: StageCKD3,
			Windows: []StageWindow{
				{Metric: CreatinineBlood, Window: Range{Low: 180, High: 440}},
				{Metric: Urea, Window: Range{Low: 10, High: 25}},
				{Metric: Phosphorus, Window: Range{Low: 1.6, High: 3.0}},
				{Metric: SDMA, Window: Range{Low: 18, High: 35}},
			},
		},
	}
}

// upcBands returns the proteinuria classification, contiguous over [0, ∞).
func upcBands() []UPCBand {
	return []UPCBand{
		{Severity: UPCNormal, Lower: 0.0, Upper: 0.5},
		{Severity: UPCBorderline, Lower: 0.5, Upper: 1.0},
		{Severity: UPCProteinuria, Lower: 1.0, Upper: 2.0},
		{Severity: UPCSevere, Lower: 2.0, Upper: math.Inf(1)},
	}
}

// Metrics returns every metric in store column order.
func (r *Reference) Metrics() []Metric {
	return append([]Metric(nil), r.order...)
}

// Definition returns the definition of m.
func (r *Reference) Definition(m Metric) (MetricDefinition, bool) {
	def, ok := r.defs[m]
	return def, ok
}

// RangeOf returns the normal range of m.
func (r *Reference) RangeOf(m Metric) (Range, bool) {
	def, ok := r.defs[m]
	if !ok {
		return Range{}, false
	}

	return def.Range, true
}

// UnitOf returns the unit of m, or "" when m is unknown or unitless.
func (r *Reference) UnitOf(m Metric) string {
	return r.defs[m].Unit
}

// DisplayNameOf returns the human name of m, falling back to the identifier.
func (r *Reference) DisplayNameOf(m Metric) string {
	if def, ok := r.defs[m]; ok && def.Name != "" {
		return def.Name
	}

	return string(m)
}

// StageTable returns the stage table with the given ID.
func (r *Reference) StageTable(id StageTableID) (StageTable, bool) {
	st, ok := r.stages[id]
	if !ok {
		return StageTable{}, false
	}

	st.Windows = append([]StageWindow(nil), st.Windows...)

	return st, true
}

// StageWindowOf returns the window of m in the given stage table.
func (r *Reference) StageWindowOf(id StageTableID, m Metric) (Range, bool) {
	st, ok := r.stages[id]
	if !ok {
		return Range{}, false
	}

	for _, w := range st.Windows {
		if w.Metric == m {
			return w.Window, true
		}
	}

	return Range{}, false
}

// UPCBands returns the proteinuria bands in ascending order.
func (r *Reference) UPCBands() []UPCBand {
	return append([]UPCBand(nil), r.upcBands...)
}

// UPCBandOf returns the first band, in ascending order, whose upper bound is
// above v. Values below zero fall in the first band.
func (r *Reference) UPCBandOf(v float64) (UPCBand, bool) {
	if len(r.upcBands) == 0 {
		return UPCBand{}, false
	}

	for _, b := range r.upcBands {
		if v < b.Upper {
			return b, true
		}
	}

	return r.upcBands[len(r.upcBands)-1], true
}
