/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/humaidq/vetlabs/labs"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	labelStyle   = cellStyle.Bold(true)
	absentStyle  = cellStyle.Faint(true)
	lowStyle     = cellStyle.Foreground(lipgloss.Color("39"))
	highStyle    = cellStyle.Foreground(lipgloss.Color("196"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footnoteText = lipgloss.NewStyle().Faint(true)
)

// grid is the rendered text of a table plus the reading behind each cell, so
// cells can be styled by range status.
type grid struct {
	headers []string
	rows    [][]string
	// status[row][col] is the range status of the reading in that cell.
	status [][]labs.RangeStatus
	// labelCol marks column 0 as a row label.
	labelCol bool
}

func (g grid) render() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(g.headers...).
		Rows(g.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			if g.labelCol && col == 0 {
				return labelStyle
			}

			if row < 0 || row >= len(g.rows) || col >= len(g.rows[row]) {
				return cellStyle
			}

			if g.rows[row][col] == Absent {
				return absentStyle
			}

			switch g.status[row][col] {
			case labs.RangeBelow:
				return lowStyle
			case labs.RangeAbove:
				return highStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}

// WideTable renders one row per record and one column per metric.
func WideTable(ref *labs.Reference, records []labs.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoData
	}

	eval := labs.NewEvaluator(ref)
	metrics := ref.Metrics()

	g := grid{headers: make([]string, 0, len(metrics)+1)}
	g.headers = append(g.headers, "date")

	for _, m := range metrics {
		g.headers = append(g.headers, string(m))
	}

	for _, rec := range records {
		row := make([]string, 0, len(metrics)+1)
		status := make([]labs.RangeStatus, 0, len(metrics)+1)

		row = append(row, rec.Date.Format(labs.DateLayout))
		status = append(status, "")

		for _, m := range metrics {
			text, st := cell(eval, rec, m)
			row = append(row, text)
			status = append(status, st)
		}

		g.rows = append(g.rows, row)
		g.status = append(g.status, status)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("All records (dates as rows)"))
	b.WriteString("\n")
	b.WriteString(g.render())
	b.WriteString("\n")

	return b.String(), nil
}

// TransposedTable renders one row per metric and one column per record,
// followed by the record count and the covered period.
func TransposedTable(ref *labs.Reference, records []labs.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Lab results by date"))
	b.WriteString("\n")
	b.WriteString(transposed(ref, records, ref.Metrics()).render())
	b.WriteString("\n")

	first, last, _ := labs.Period(records)

	b.WriteString(footnoteText.Render(fmt.Sprintf("Total measurements: %d", len(records))))
	b.WriteString("\n")
	b.WriteString(footnoteText.Render(fmt.Sprintf("Period: %s - %s", columnDate(first), columnDate(last))))
	b.WriteString("\n")

	return b.String(), nil
}

// KeyMetricsTable renders the transposed table limited to the key kidney,
// urine, pancreas and electrolyte markers.
func KeyMetricsTable(ref *labs.Reference, records []labs.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoData
	}

	var metrics []labs.Metric

	for _, m := range labs.KeyMetrics() {
		if _, ok := ref.Definition(m); ok {
			metrics = append(metrics, m)
		}
	}

	if !anyReading(records, metrics) {
		return "", ErrNoKeyMetrics
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Key CKD and pancreatitis markers"))
	b.WriteString("\n")
	b.WriteString(transposed(ref, records, metrics).render())
	b.WriteString("\n")

	return b.String(), nil
}

func transposed(ref *labs.Reference, records []labs.Record, metrics []labs.Metric) grid {
	eval := labs.NewEvaluator(ref)

	g := grid{
		headers:  make([]string, 0, len(records)+1),
		labelCol: true,
	}
	g.headers = append(g.headers, "Metric")

	for _, rec := range records {
		g.headers = append(g.headers, columnDate(rec.Date))
	}

	for _, m := range metrics {
		row := make([]string, 0, len(records)+1)
		status := make([]labs.RangeStatus, 0, len(records)+1)

		row = append(row, MetricLabel(ref, m))
		status = append(status, "")

		for _, rec := range records {
			text, st := cell(eval, rec, m)
			row = append(row, text)
			status = append(status, st)
		}

		g.rows = append(g.rows, row)
		g.status = append(g.status, status)
	}

	return g
}

func cell(eval *labs.Evaluator, rec labs.Record, m labs.Metric) (string, labs.RangeStatus) {
	v, ok := rec.Value(m)
	if !ok {
		return Absent, ""
	}

	st, _ := eval.ClassifyRange(m, v)

	return FormatValue(&v), st
}

func anyReading(records []labs.Record, metrics []labs.Metric) bool {
	for _, rec := range records {
		for _, m := range metrics {
			if rec.Has(m) {
				return true
			}
		}
	}

	return false
}
