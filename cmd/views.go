/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vetlabs/labs"
	"github.com/humaidq/vetlabs/report"
)

func newTableCommand() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Print the records as a table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "layout",
				Value: "transposed",
				Usage: "table layout: wide, transposed or key",
			},
		},
		Action: table,
	}
}

func newStageCommand() *cli.Command {
	return &cli.Command{
		Name:   "stage",
		Usage:  "Classify the latest record against the CKD stage 3 windows",
		Action: stage,
	}
}

func newUPCCommand() *cli.Command {
	return &cli.Command{
		Name:   "upc",
		Usage:  "Classify the latest UPC ratio and urine markers",
		Action: upc,
	}
}

func newDashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Write the proteinuria dashboard as HTML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "output path (default <data-file>.dashboard.html)",
			},
		},
		Action: dashboard,
	}
}

func table(ctx context.Context, cmd *cli.Command) error {
	s, ref, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	var render func(*labs.Reference, []labs.Record) (string, error)

	switch cmd.String("layout") {
	case "wide":
		render = report.WideTable
	case "transposed":
		render = report.TransposedTable
	case "key":
		render = report.KeyMetricsTable
	default:
		return errInvalidLayout
	}

	out, err := render(ref, s.Records())
	if err != nil {
		return printNoData(cmd, err)
	}

	fmt.Fprint(cmd.Root().Writer, out)

	return nil
}

func stage(ctx context.Context, cmd *cli.Command) error {
	s, ref, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	latest, ok := s.Latest()
	if !ok {
		return printNoData(cmd, report.ErrNoData)
	}

	rep := report.AnalyzeStage(labs.NewEvaluator(ref), latest)
	fmt.Fprint(cmd.Root().Writer, report.RenderStage(ref, rep))

	return nil
}

func upc(ctx context.Context, cmd *cli.Command) error {
	s, ref, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	latest, ok := s.Latest()
	if !ok {
		return printNoData(cmd, report.ErrNoData)
	}

	rep := report.AnalyzeProteinuria(labs.NewEvaluator(ref), latest)
	fmt.Fprint(cmd.Root().Writer, report.RenderProteinuria(ref, rep))

	return nil
}

func dashboard(ctx context.Context, cmd *cli.Command) (err error) {
	s, ref, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	if s.Len() == 0 {
		return printNoData(cmd, report.ErrNoData)
	}

	path := dashboardPath(cmd)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := report.WriteDashboard(f, ref, s.Records()); err != nil {
		return err
	}

	appLogger.Info("Wrote dashboard", "path", path)
	fmt.Fprintf(cmd.Root().Writer, "Dashboard written to %s\n", path)

	return nil
}

// printNoData reports an empty view on stdout. Empty data is not a failure.
func printNoData(cmd *cli.Command, err error) error {
	switch {
	case errors.Is(err, report.ErrNoKeyMetrics):
		fmt.Fprintln(cmd.Root().Writer, "No readings for the key metrics.")
	case errors.Is(err, report.ErrNoData):
		fmt.Fprintln(cmd.Root().Writer, "No data to display.")
	default:
		return err
	}

	return nil
}
