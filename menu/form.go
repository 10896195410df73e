/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/humaidq/vetlabs/labs"
)

// addRecord prompts for a date and every enterable metric, panel by panel,
// then persists the record. Running out of input abandons the record.
func (m *Menu) addRecord(ctx context.Context) error {
	m.println("\nADD MEASUREMENTS")
	m.println(rule[:50])

	date, err := m.promptDate()
	if err != nil {
		return err
	}

	readings := make(map[labs.Metric]*float64)

	var panel labs.Panel

	for _, metric := range m.ref.Metrics() {
		def, _ := m.ref.Definition(metric)
		if def.Derived {
			continue
		}

		if def.Panel != panel {
			panel = def.Panel
			m.println("\n" + bannerStyle.Render(string(panel)+":"))
		}

		input, err := m.prompt(fieldLabel(def))
		if err != nil {
			return err
		}

		v := labs.ParseValue(input)
		if v == nil && input != "" {
			logger.Debug("Ignoring unparsable value", "metric", metric, "input", input)
		}

		readings[metric] = v

		if metric == labs.CreatinineUrine {
			upc := labs.ComputeUPC(readings[labs.ProteinUrine], v)
			m.println("Computed UPC: " + formatUPC(upc))
		}
	}

	rec := labs.NewRecord(date, readings)

	if err := m.store.Add(ctx, rec); err != nil {
		return err
	}

	m.println(okStyle.Render(fmt.Sprintf("Saved record for %s (%d readings).", rec.Date.Format(labs.DateLayout), rec.Len())))

	return nil
}

// promptDate asks until a YYYY-MM-DD date parses.
func (m *Menu) promptDate() (time.Time, error) {
	for {
		input, err := m.prompt("Measurement date (YYYY-MM-DD): ")
		if err != nil {
			return time.Time{}, err
		}

		date, err := labs.ParseDate(input)
		if err == nil {
			return date, nil
		}

		m.printErr("Invalid date, expected YYYY-MM-DD.")
	}
}

func fieldLabel(def labs.MetricDefinition) string {
	if def.Unit == "" {
		return fmt.Sprintf("%s (%s): ", def.Name, def.Metric)
	}

	return fmt.Sprintf("%s (%s, %s): ", def.Name, def.Metric, def.Unit)
}

func formatUPC(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return fmt.Sprintf("%.2f", *v)
}
