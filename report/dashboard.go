/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/vetlabs/labs"
)

// DashboardTitle is the page title of the kidney monitoring dashboard.
const DashboardTitle = "Kidney function monitoring"

// band is a shaded horizontal region of a chart.
type band struct {
	name  string
	lower float64
	upper float64
	color string
}

// bandEdge is one corner of an echarts markArea. opts.MarkAreaData tags its
// YAxis field as "YAxis", which echarts ignores.
type bandEdge struct {
	Name      string          `json:"name,omitempty"`
	YAxis     float64         `json:"yAxis"`
	ItemStyle *opts.ItemStyle `json:"itemStyle,omitempty"`
}

var severityColors = map[labs.UPCSeverity]string{
	labs.UPCNormal:      "green",
	labs.UPCBorderline:  "yellow",
	labs.UPCProteinuria: "orange",
	labs.UPCSevere:      "red",
}

// chartSpec describes one dashboard panel.
type chartSpec struct {
	metric labs.Metric
	title  string
	color  string
	symbol string
	bands  func(values []float64) []band
}

// Dashboard builds the proteinuria dashboard: UPC ratio with its severity
// bands, then urine protein, urine creatinine and USG with their normal
// ranges.
func Dashboard(ref *labs.Reference, records []labs.Record) (*components.Page, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	specs := []chartSpec{
		{
			metric: labs.UPCRatio,
			title:  "Urine protein/creatinine ratio (UPC)",
			color:  "#d62728",
			symbol: "circle",
			bands:  func(values []float64) []band { return upcBands(ref, values) },
		},
		{
			metric: labs.ProteinUrine,
			title:  "Urine protein",
			color:  "purple",
			symbol: "diamond",
			bands:  func([]float64) []band { return normalBand(ref, labs.ProteinUrine) },
		},
		{
			metric: labs.CreatinineUrine,
			title:  "Urine creatinine",
			color:  "#2ca02c",
			symbol: "triangle",
			bands:  func([]float64) []band { return normalBand(ref, labs.CreatinineUrine) },
		},
		{
			metric: labs.USG,
			title:  "Urine specific gravity (USG)",
			color:  "brown",
			symbol: "rect",
			bands:  func([]float64) []band { return normalBand(ref, labs.USG) },
		},
	}

	page := components.NewPage()
	page.SetPageTitle(DashboardTitle)

	for _, spec := range specs {
		page.AddCharts(lineChart(ref, records, spec))
	}

	logger.Debug("Built dashboard", "records", len(records), "charts", len(specs))

	return page, nil
}

// WriteDashboard renders the dashboard as a standalone HTML page.
func WriteDashboard(w io.Writer, ref *labs.Reference, records []labs.Record) error {
	page, err := Dashboard(ref, records)
	if err != nil {
		return err
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}

	return nil
}

func lineChart(ref *labs.Reference, records []labs.Record, spec chartSpec) *charts.Line {
	xAxis := make([]string, 0, len(records))
	data := make([]opts.LineData, 0, len(records))

	var values []float64

	for _, rec := range records {
		xAxis = append(xAxis, rec.Date.Format(labs.DateLayout))

		v, ok := rec.Value(spec.metric)
		if !ok {
			// echarts treats "-" as a gap
			data = append(data, opts.LineData{Value: "-"})
			continue
		}

		values = append(values, v)
		data = append(data, opts.LineData{Value: v})
	}

	unit := ref.UnitOf(spec.metric)
	if unit == "" {
		unit = string(spec.metric)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: DashboardTitle,
			Width:     "700px",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: spec.title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: unit,
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol:   opts.Bool(true),
			ConnectNulls: opts.Bool(true),
			Symbol:       spec.symbol,
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color: spec.color,
			Width: 2,
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: spec.color,
		}),
	}

	if bands := spec.bands(values); len(bands) > 0 {
		areas := make([]interface{}, 0, len(bands))
		for _, b := range bands {
			areas = append(areas, []bandEdge{
				{
					Name:  b.name,
					YAxis: b.lower,
					ItemStyle: &opts.ItemStyle{
						Color:   b.color,
						Opacity: opts.Float(0.3),
					},
				},
				{YAxis: b.upper},
			})
		}

		seriesOpts = append(seriesOpts, func(s *charts.SingleSeries) {
			s.MarkAreas = &opts.MarkAreas{
				Data: areas,
				MarkAreaStyle: opts.MarkAreaStyle{
					Label: &opts.Label{
						Show:     opts.Bool(true),
						Position: "insideRight",
					},
				},
			}
		})
	}

	line.SetXAxis(xAxis).
		AddSeries(string(spec.metric), data).
		SetSeriesOptions(seriesOpts...)

	return line
}

// upcBands shades every UPC severity band. The open top band is capped at
// 110% of the highest reading, and never below 3.
func upcBands(ref *labs.Reference, values []float64) []band {
	top := 3.0
	for _, v := range values {
		top = math.Max(top, v*1.1)
	}

	ranges := ref.UPCBands()
	out := make([]band, 0, len(ranges))

	for _, r := range ranges {
		upper := r.Upper
		label := fmt.Sprintf("%s (%s-%s)", r.Severity, trim(r.Lower), trim(r.Upper))

		if math.IsInf(upper, 1) {
			upper = top
			label = fmt.Sprintf("%s (>%s)", r.Severity, trim(r.Lower))
		}

		out = append(out, band{
			name:  label,
			lower: r.Lower,
			upper: upper,
			color: severityColors[r.Severity],
		})
	}

	return out
}

func normalBand(ref *labs.Reference, m labs.Metric) []band {
	r, ok := ref.RangeOf(m)
	if !ok {
		return nil
	}

	return []band{{
		name:  fmt.Sprintf("normal (%s-%s)", trim(r.Low), trim(r.High)),
		lower: r.Low,
		upper: r.High,
		color: "green",
	}}
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
