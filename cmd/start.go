/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vetlabs/menu"
	"github.com/humaidq/vetlabs/report"
)

func newStartCommand() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Aliases: []string{"menu"},
		Usage:   "Start the interactive menu",
		Action:  start,
	}
}

func start(ctx context.Context, cmd *cli.Command) error {
	s, ref, err := openStore(ctx, cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()

	summary, err := report.Summary(s.Records(), time.Now())
	switch {
	case errors.Is(err, report.ErrNoData):
		fmt.Fprintf(root.Writer, "No records yet, %s will be created on first save.\n", cmd.String("data-file"))
	case err != nil:
		return err
	default:
		fmt.Fprintln(root.Writer, summary)
	}

	m := menu.New(root.Reader, root.Writer, s, ref)
	m.DashboardPath = dashboardPath(cmd)

	appLogger.Info("Starting menu", "records", s.Len(), "dashboard", m.DashboardPath)

	return m.Run(ctx)
}
