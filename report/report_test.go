// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/humaidq/vetlabs/labs"
)

func fp(v float64) *float64 {
	return &v
}

func record(t *testing.T, date string, readings map[labs.Metric]float64) labs.Record {
	t.Helper()

	d, err := labs.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}

	in := make(map[labs.Metric]*float64, len(readings))
	for m, v := range readings {
		in[m] = fp(v)
	}

	return labs.NewRecord(d, in)
}

func sample(t *testing.T) []labs.Record {
	t.Helper()

	return []labs.Record{
		record(t, "2024-01-15", map[labs.Metric]float64{
			labs.CreatinineBlood: 212.5,
			labs.Urea:            8,
			labs.ProteinUrine:    45,
			labs.CreatinineUrine: 60,
		}),
		record(t, "2024-02-20", map[labs.Metric]float64{
			labs.WBC:             8.12345,
			labs.CreatinineBlood: 460,
			labs.SDMA:            22,
			labs.Phosphorus:      1.6,
			labs.ProteinUrine:    20,
			labs.CreatinineUrine: 100,
			labs.USG:             1.012,
		}),
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "-"},
		{fp(1), "1"},
		{fp(1.23456), "1.235"},
		{fp(0.1 + 0.2), "0.3"},
		{fp(-0.0001), "0"},
		{fp(1.015), "1.015"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Fatalf("FormatValue(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestMetricLabel(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()

	if got := MetricLabel(ref, labs.CreatinineBlood); got != "Creatinine (blood) (µmol/L)" {
		t.Fatalf("unexpected label %q", got)
	}

	if got := MetricLabel(ref, labs.USG); got != "Urine specific gravity" {
		t.Fatalf("expected unitless label, got %q", got)
	}
}

func TestTablesRejectEmpty(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()

	for name, fn := range map[string]func(*labs.Reference, []labs.Record) (string, error){
		"wide":       WideTable,
		"transposed": TransposedTable,
		"key":        KeyMetricsTable,
	} {
		if _, err := fn(ref, nil); !errors.Is(err, ErrNoData) {
			t.Fatalf("%s: expected ErrNoData, got %v", name, err)
		}
	}
}

func TestWideTable(t *testing.T) {
	t.Parallel()

	out, err := WideTable(labs.DefaultReference(), sample(t))
	if err != nil {
		t.Fatalf("wide table: %v", err)
	}

	for _, want := range []string{"date", "Creatinine_blood", "2024-01-15", "2024-02-20", "8.123", "0.75", "-"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in wide table:\n%s", want, out)
		}
	}
}

func TestTransposedTable(t *testing.T) {
	t.Parallel()

	out, err := TransposedTable(labs.DefaultReference(), sample(t))
	if err != nil {
		t.Fatalf("transposed table: %v", err)
	}

	for _, want := range []string{
		"15.01.2024",
		"20.02.2024",
		"White blood cells (×10⁹/L)",
		"Protein/creatinine (UPC) (UPC)",
		"Total measurements: 2",
		"Period: 15.01.2024 - 20.02.2024",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in transposed table:\n%s", want, out)
		}
	}
}

func TestKeyMetricsTable(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()

	out, err := KeyMetricsTable(ref, sample(t))
	if err != nil {
		t.Fatalf("key metrics table: %v", err)
	}

	if strings.Contains(out, "White blood cells") {
		t.Fatalf("WBC is not a key metric:\n%s", out)
	}

	for _, m := range labs.KeyMetrics() {
		if !strings.Contains(out, MetricLabel(ref, m)) {
			t.Fatalf("expected row for %s:\n%s", m, out)
		}
	}

	_, err = KeyMetricsTable(ref, []labs.Record{record(t, "2024-01-01", map[labs.Metric]float64{labs.WBC: 7})})
	if !errors.Is(err, ErrNoKeyMetrics) {
		t.Fatalf("expected ErrNoKeyMetrics, got %v", err)
	}
}

func TestAnalyzeStage(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()
	eval := labs.NewEvaluator(ref)
	latest := sample(t)[1]

	rep := AnalyzeStage(eval, latest)
	if rep.Table != labs.StageCKD3 {
		t.Fatalf("unexpected table %q", rep.Table)
	}

	want := map[labs.Metric]labs.StageStatus{
		labs.CreatinineBlood: labs.AboveStage,
		labs.Phosphorus:      labs.WithinStage,
		labs.SDMA:            labs.WithinStage,
	}

	if len(rep.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %+v", len(want), rep.Lines)
	}

	for _, l := range rep.Lines {
		if want[l.Metric] != l.Status {
			t.Fatalf("%s: expected %q, got %q", l.Metric, want[l.Metric], l.Status)
		}
	}

	out := RenderStage(ref, rep)
	for _, s := range []string{
		"Creatinine_blood: 460 µmol/L - above the CKD stage 3 range",
		"Phosphorus: 1.6 mmol/L - within the CKD stage 3 range",
	} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in:\n%s", s, out)
		}
	}

	first := AnalyzeStage(eval, sample(t)[0])
	if got := first.Lines[1]; got.Metric != labs.Urea || got.Status != labs.BelowStage {
		t.Fatalf("expected Urea below stage, got %+v", got)
	}

	if out := RenderStage(ref, AnalyzeStage(eval, record(t, "2024-01-01", nil))); !strings.Contains(out, "No stage markers") {
		t.Fatalf("expected empty stage notice, got:\n%s", out)
	}
}

func TestAnalyzeProteinuria(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()
	eval := labs.NewEvaluator(ref)

	tests := []struct {
		protein float64
		want    labs.UPCSeverity
		advice  string
	}{
		{protein: 20, want: labs.UPCNormal, advice: "Excellent result."},
		{protein: 50, want: labs.UPCBorderline, advice: "Monitor closely; an ACE inhibitor may be considered."},
		{protein: 100, want: labs.UPCProteinuria, advice: "ACE inhibitor recommended; recheck every 2-4 weeks."},
		{protein: 200, want: labs.UPCSevere, advice: "Urgent veterinary consultation!"},
	}

	for _, tt := range tests {
		rec := record(t, "2024-01-01", map[labs.Metric]float64{
			labs.ProteinUrine:    tt.protein,
			labs.CreatinineUrine: 100,
		})

		rep := AnalyzeProteinuria(eval, rec)
		if rep.Severity != tt.want || rep.Recommendation != tt.advice {
			t.Fatalf("protein %v: expected %q/%q, got %q/%q", tt.protein, tt.want, tt.advice, rep.Severity, rep.Recommendation)
		}
	}

	rep := AnalyzeProteinuria(eval, sample(t)[1])
	out := RenderProteinuria(ref, rep)

	for _, s := range []string{
		"Protein/creatinine ratio (UPC): 0.20",
		"Stage: NORMAL",
		"Protein_urine: 20 mg/dL (normal: 0-30) - normal",
		"USG: 1.012 (normal: 1.015-1.045) - below normal",
	} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in:\n%s", s, out)
		}
	}

	none := AnalyzeProteinuria(eval, record(t, "2024-01-01", map[labs.Metric]float64{labs.ProteinUrine: 10}))
	if none.UPC != nil || none.Severity != "" {
		t.Fatalf("expected no UPC verdict, got %+v", none)
	}

	if out := RenderProteinuria(ref, none); !strings.Contains(out, "UPC ratio: n/a") {
		t.Fatalf("expected n/a notice, got:\n%s", out)
	}
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()

	if _, err := Dashboard(ref, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	page, err := Dashboard(ref, sample(t))
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(page.Charts) != 4 {
		t.Fatalf("expected 4 charts, got %d", len(page.Charts))
	}

	var buf bytes.Buffer
	if err := WriteDashboard(&buf, ref, sample(t)); err != nil {
		t.Fatalf("write dashboard: %v", err)
	}

	html := buf.String()
	for _, s := range []string{
		DashboardTitle,
		"Urine protein/creatinine ratio (UPC)",
		`"yAxis":0.5`,
		`"yAxis":3`,
		"normal (50-250)",
		"markArea",
	} {
		if !strings.Contains(html, s) {
			t.Fatalf("expected %q in dashboard html", s)
		}
	}
}

func TestUPCBandsCapFollowsData(t *testing.T) {
	t.Parallel()

	ref := labs.DefaultReference()

	bands := upcBands(ref, []float64{0.4, 5})
	if len(bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(bands))
	}

	if top := bands[3].upper; top != 5*1.1 {
		t.Fatalf("expected severe band to reach %v, got %v", 5*1.1, top)
	}

	if top := upcBands(ref, nil)[3].upper; top != 3 {
		t.Fatalf("expected minimum cap 3, got %v", top)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	if _, err := Summary(nil, time.Now()); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	now := time.Date(2024, 2, 23, 15, 0, 0, 0, time.UTC)

	got, err := Summary(sample(t), now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	want := "2 records from 15.01.2024 to 20.02.2024, latest 3 days ago"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got, _ = Summary(sample(t)[1:], time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC))
	if !strings.HasSuffix(got, "latest today") {
		t.Fatalf("expected today, got %q", got)
	}
}
