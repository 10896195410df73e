/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/humaidq/vetlabs/labs"
)

// StageLine is one metric of a stage analysis.
type StageLine struct {
	Metric labs.Metric
	Value  float64
	Window labs.Range
	Status labs.StageStatus
}

// StageReport classifies the latest record against one disease-stage table.
type StageReport struct {
	Date  time.Time
	Table labs.StageTableID
	Lines []StageLine
}

// AnalyzeStage classifies the stage metrics of latest against the CKD stage 3
// windows. Metrics missing from latest are left out.
func AnalyzeStage(eval *labs.Evaluator, latest labs.Record) StageReport {
	return AnalyzeStageTable(eval, labs.StageCKD3, latest)
}

// AnalyzeStageTable is AnalyzeStage for an arbitrary stage table.
func AnalyzeStageTable(eval *labs.Evaluator, id labs.StageTableID, latest labs.Record) StageReport {
	rep := StageReport{Date: latest.Date, Table: id}

	st, ok := eval.Reference().StageTable(id)
	if !ok {
		logger.Warn("Unknown stage table", "table", id)
		return rep
	}

	for _, w := range st.Windows {
		v, ok := latest.Value(w.Metric)
		if !ok {
			continue
		}

		status, ok := eval.ClassifyStage(id, w.Metric, v)
		if !ok {
			continue
		}

		rep.Lines = append(rep.Lines, StageLine{
			Metric: w.Metric,
			Value:  v,
			Window: w.Window,
			Status: status,
		})
	}

	return rep
}

// RenderStage formats a stage report for the console.
func RenderStage(ref *labs.Reference, rep StageReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(string(rep.Table)) + " ANALYSIS"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Latest record: %s\n", rep.Date.Format(labs.DateLayout))

	if len(rep.Lines) == 0 {
		b.WriteString("No stage markers in the latest record.\n")
		return b.String()
	}

	for _, l := range rep.Lines {
		fmt.Fprintf(&b, "%s: %s - %s\n",
			l.Metric,
			withUnit(ref, l.Metric, FormatValue(&l.Value)),
			stageStatusText(l.Status, rep.Table),
		)
	}

	return b.String()
}

func stageStatusText(s labs.StageStatus, id labs.StageTableID) string {
	switch s {
	case labs.BelowStage:
		return "below the " + string(id) + " range"
	case labs.WithinStage:
		return "within the " + string(id) + " range"
	case labs.AboveStage:
		return "above the " + string(id) + " range"
	default:
		return string(s)
	}
}

// RangeLine is one metric checked against its normal range.
type RangeLine struct {
	Metric labs.Metric
	Value  float64
	Range  labs.Range
	Status labs.RangeStatus
}

// ProteinuriaReport summarizes the latest UPC ratio and urine markers.
type ProteinuriaReport struct {
	Date           time.Time
	UPC            *float64
	Severity       labs.UPCSeverity
	Recommendation string
	Urine          []RangeLine
}

// urineMetrics are listed under the UPC verdict, in this order.
var urineMetrics = []labs.Metric{labs.ProteinUrine, labs.CreatinineUrine, labs.USG}

// AnalyzeProteinuria classifies the UPC ratio of latest and checks the urine
// markers against their normal ranges. Severity is empty when latest has no
// UPC ratio.
func AnalyzeProteinuria(eval *labs.Evaluator, latest labs.Record) ProteinuriaReport {
	rep := ProteinuriaReport{Date: latest.Date, UPC: latest.Ptr(labs.UPCRatio)}

	if rep.UPC != nil {
		rep.Severity = eval.ClassifyUPC(*rep.UPC)
		rep.Recommendation = Recommendation(rep.Severity)
	}

	for _, m := range urineMetrics {
		v, ok := latest.Value(m)
		if !ok {
			continue
		}

		r, _ := eval.Reference().RangeOf(m)
		status, ok := eval.ClassifyRange(m, v)
		if !ok {
			continue
		}

		rep.Urine = append(rep.Urine, RangeLine{Metric: m, Value: v, Range: r, Status: status})
	}

	return rep
}

// Recommendation returns the clinical advice shown for a UPC severity.
func Recommendation(s labs.UPCSeverity) string {
	switch s {
	case labs.UPCNormal:
		return "Excellent result."
	case labs.UPCBorderline:
		return "Monitor closely; an ACE inhibitor may be considered."
	case labs.UPCProteinuria:
		return "ACE inhibitor recommended; recheck every 2-4 weeks."
	case labs.UPCSevere:
		return "Urgent veterinary consultation!"
	default:
		return ""
	}
}

// RenderProteinuria formats a proteinuria report for the console.
func RenderProteinuria(ref *labs.Reference, rep ProteinuriaReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("PROTEINURIA ANALYSIS"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Latest record: %s\n", rep.Date.Format(labs.DateLayout))

	if rep.UPC != nil {
		fmt.Fprintf(&b, "Protein/creatinine ratio (UPC): %s\n", formatFixed(*rep.UPC, 2))
		fmt.Fprintf(&b, "Stage: %s\n", strings.ToUpper(string(rep.Severity)))
		fmt.Fprintf(&b, "Recommendation: %s\n", rep.Recommendation)
	} else {
		b.WriteString("UPC ratio: n/a (urine protein and creatinine are both needed)\n")
	}

	if len(rep.Urine) > 0 {
		b.WriteString("\n")
	}

	for _, l := range rep.Urine {
		fmt.Fprintf(&b, "%s: %s (normal: %s-%s) - %s\n",
			l.Metric,
			withUnit(ref, l.Metric, FormatValue(&l.Value)),
			strconv.FormatFloat(l.Range.Low, 'f', -1, 64),
			strconv.FormatFloat(l.Range.High, 'f', -1, 64),
			rangeStatusText(l.Status),
		)
	}

	return b.String()
}

func rangeStatusText(s labs.RangeStatus) string {
	switch s {
	case labs.RangeWithin:
		return "normal"
	case labs.RangeBelow:
		return "below normal"
	case labs.RangeAbove:
		return "above normal"
	default:
		return string(s)
	}
}
