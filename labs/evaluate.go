/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package labs

// RangeStatus is the position of a value relative to a normal range.
type RangeStatus string

// RangeStatus values.
const (
	RangeBelow  RangeStatus = "below"
	RangeWithin RangeStatus = "within"
	RangeAbove  RangeStatus = "above"
)

// UPCSeverity is the proteinuria classification of a UPC ratio.
type UPCSeverity string

// UPCSeverity values in ascending order of severity.
const (
	UPCNormal      UPCSeverity = "normal"
	UPCBorderline  UPCSeverity = "borderline"
	UPCProteinuria UPCSeverity = "proteinuria"
	UPCSevere      UPCSeverity = "severe proteinuria"
)

// StageStatus is the position of a value relative to a disease-stage window.
type StageStatus string

// StageStatus values.
const (
	BelowStage  StageStatus = "below stage"
	WithinStage StageStatus = "within stage"
	AboveStage  StageStatus = "above stage"
)

// Evaluator classifies readings against a Reference. It holds no state of its
// own and is safe to share.
type Evaluator struct {
	ref *Reference
}

// NewEvaluator returns an Evaluator backed by ref.
func NewEvaluator(ref *Reference) *Evaluator {
	return &Evaluator{ref: ref}
}

// Reference returns the tables the evaluator reads.
func (e *Evaluator) Reference() *Reference {
	return e.ref
}

// ClassifyRange places v against the normal range of m. ok is false when m
// has no range.
func (e *Evaluator) ClassifyRange(m Metric, v float64) (status RangeStatus, ok bool) {
	r, ok := e.ref.RangeOf(m)
	if !ok {
		return "", false
	}

	return classify(r, v, RangeBelow, RangeWithin, RangeAbove), true
}

// ClassifyUPC returns the proteinuria severity of a UPC ratio.
func (e *Evaluator) ClassifyUPC(v float64) UPCSeverity {
	band, ok := e.ref.UPCBandOf(v)
	if !ok {
		return UPCNormal
	}

	return band.Severity
}

// ClassifyStage places v against the window of m in a stage table. ok is
// false when the table has no window for m.
func (e *Evaluator) ClassifyStage(id StageTableID, m Metric, v float64) (status StageStatus, ok bool) {
	w, ok := e.ref.StageWindowOf(id, m)
	if !ok {
		return "", false
	}

	return classify(w, v, BelowStage, WithinStage, AboveStage), true
}

func classify[T any](r Range, v float64, below, within, above T) T {
	switch {
	case v < r.Low:
		return below
	case v <= r.High:
		return within
	default:
		return above
	}
}
