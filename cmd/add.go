/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vetlabs/labs"
)

func newAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a record without the interactive form",
		UsageText: "vetlabs add --date 2024-03-01 --set Protein_urine=45 --set Creatinine_urine=60",
		// "USG=1,015" is one reading, not two.
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "measurement date, YYYY-MM-DD",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "a reading as metric=value, may be repeated",
			},
		},
		Action: add,
	}
}

func add(ctx context.Context, cmd *cli.Command) error {
	if cmd.String("date") == "" {
		return errDateRequired
	}

	date, err := labs.ParseDate(cmd.String("date"))
	if err != nil {
		return err
	}

	sets := cmd.StringSlice("set")
	if len(sets) == 0 {
		return errNoReadings
	}

	s, ref, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	readings := make(map[labs.Metric]*float64, len(sets))

	for _, set := range sets {
		m, v, err := ref.ParseAssignment(set)
		if err != nil {
			return fmt.Errorf("invalid --set %q: %w", set, err)
		}

		if v == nil {
			appLogger.Warn("Ignoring unparsable value", "metric", m, "input", set)
		}

		readings[m] = v
	}

	rec := labs.NewRecord(date, readings)

	if err := s.Add(ctx, rec); err != nil {
		return err
	}

	w := cmd.Root().Writer
	fmt.Fprintf(w, "Saved record for %s (%d readings), %d records total.\n",
		rec.Date.Format(labs.DateLayout), rec.Len(), s.Len())

	if upc := rec.Ptr(labs.UPCRatio); upc != nil {
		fmt.Fprintf(w, "Computed UPC: %.2f\n", *upc)
	}

	return nil
}
