/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/humaidq/vetlabs/labs"
	"github.com/humaidq/vetlabs/report"
	"github.com/humaidq/vetlabs/store"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rule        = strings.Repeat("=", 60)
)

// Menu is the interactive console front end over a store.
type Menu struct {
	in    *bufio.Reader
	out   io.Writer
	store *store.Store
	ref   *labs.Reference
	eval  *labs.Evaluator

	// DashboardPath is where choice 2 writes the HTML dashboard.
	DashboardPath string
}

// New returns a menu reading choices from in and printing to out.
func New(in io.Reader, out io.Writer, s *store.Store, ref *labs.Reference) *Menu {
	return &Menu{
		in:    bufio.NewReader(in),
		out:   out,
		store: s,
		ref:   ref,
		eval:  labs.NewEvaluator(ref),
	}
}

// Run shows the main menu until the user exits or input ends. Only store
// failures are returned; bad input is reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()

		choice, err := m.prompt("\nYour choice (1-6): ")
		if err != nil {
			return m.finish(err)
		}

		logger.Debug("Menu choice", "choice", choice)

		switch choice {
		case "1":
			err = m.addRecord(ctx)
		case "2":
			m.dashboard()
		case "3":
			m.stageAnalysis()
		case "4":
			m.proteinuriaAnalysis()
		case "5":
			err = m.tables()
		case "6":
			err = errQuit
		default:
			m.printErr("Invalid choice, please try again.")
		}

		if err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, errQuit) {
		m.println("Data saved. Caring for your pet matters!")
		return nil
	}

	return err
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(rule)
	m.println(bannerStyle.Render("DOG HEALTH MONITOR: CKD STAGE 3 + PANCREATITIS"))
	m.println(rule)
	m.println("1. Add new measurements")
	m.println("2. Proteinuria dashboard (charts)")
	m.println("3. CKD stage 3 analysis")
	m.println("4. Proteinuria analysis")
	m.println("5. Show all data (tables)")
	m.println("6. Exit")
}

func (m *Menu) dashboard() {
	if m.store.Len() == 0 {
		m.printErr("No data to chart.")
		return
	}

	if err := m.writeDashboard(); err != nil {
		logger.Error("Failed to write dashboard", "path", m.DashboardPath, "error", err)
		m.printErr(fmt.Sprintf("Could not write dashboard: %v", err))

		return
	}

	m.println(okStyle.Render("Dashboard written to " + m.DashboardPath))
}

func (m *Menu) writeDashboard() (err error) {
	f, err := os.Create(m.DashboardPath)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteDashboard(f, m.ref, m.store.Records())
}

func (m *Menu) stageAnalysis() {
	latest, ok := m.store.Latest()
	if !ok {
		m.printErr("No data to analyze.")
		return
	}

	m.println("")
	m.print(report.RenderStage(m.ref, report.AnalyzeStage(m.eval, latest)))
}

func (m *Menu) proteinuriaAnalysis() {
	latest, ok := m.store.Latest()
	if !ok {
		m.printErr("No data to analyze.")
		return
	}

	m.println("")
	m.print(report.RenderProteinuria(m.ref, report.AnalyzeProteinuria(m.eval, latest)))
}

func (m *Menu) tables() error {
	if m.store.Len() == 0 {
		m.println("No data.")
		return nil
	}

	m.println("\nChoose a layout:")
	m.println("1. Standard table (dates as rows)")
	m.println("2. Transposed table (metrics as rows)")
	m.println("3. Key metrics only")

	choice, err := m.prompt("\nYour choice (1-3): ")
	if err != nil {
		return err
	}

	records := m.store.Records()

	var out string

	switch choice {
	case "1":
		out, err = report.WideTable(m.ref, records)
	case "2":
		out, err = report.TransposedTable(m.ref, records)
	case "3":
		out, err = report.KeyMetricsTable(m.ref, records)
	default:
		m.printErr("Invalid choice.")
		return nil
	}

	if err != nil {
		m.printErr(noDataMessage(err))
		return nil
	}

	m.println("")
	m.print(out)

	return nil
}

func noDataMessage(err error) string {
	switch {
	case errors.Is(err, report.ErrNoKeyMetrics):
		return "No readings for the key metrics."
	case errors.Is(err, report.ErrNoData):
		return "No data to display."
	default:
		return err.Error()
	}
}

// prompt prints label and reads one trimmed line. A final line without a
// newline is still returned; only an empty read at EOF yields errQuit.
func (m *Menu) prompt(label string) (string, error) {
	m.print(label)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			m.println("")
			return "", errQuit
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (m *Menu) print(s string) {
	_, _ = io.WriteString(m.out, s)
}

func (m *Menu) println(s string) {
	_, _ = io.WriteString(m.out, s+"\n")
}

func (m *Menu) printErr(s string) {
	m.println(errorStyle.Render(s))
}
