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
	"github.com/humaidq/vetlabs/logging"
	"github.com/humaidq/vetlabs/store"
)

// DefaultDataFile is used when --data-file is not given.
const DefaultDataFile = "dog_medical_data.xlsx"

// NewApp returns the root command. Without a subcommand it starts the
// interactive menu. Every call builds a fresh command tree.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "vetlabs",
		Usage: "Vetlabs - dog lab results tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-file",
				Aliases: []string{"f"},
				Value:   DefaultDataFile,
				Usage:   "records file, .xlsx or .csv",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
				Usage: "enables debug logging on stderr",
			},
		},
		Before:                    setup,
		DefaultCommand:            "start",
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			newStartCommand(),
			newTableCommand(),
			newStageCommand(),
			newUPCCommand(),
			newDashboardCommand(),
			newAddCommand(),
		},
	}
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetVerbose(cmd.Bool("verbose"))
	return ctx, nil
}

// openStore loads the records named by --data-file.
func openStore(ctx context.Context, cmd *cli.Command) (*store.Store, *labs.Reference, error) {
	path := cmd.String("data-file")
	if path == "" {
		return nil, nil, errDataFileRequired
	}

	ref := labs.DefaultReference()

	backend, err := store.BackendForPath(path, ref)
	if err != nil {
		return nil, nil, err
	}

	appLogger.Debug("Opening data file", "path", path)

	s, err := store.Open(ctx, backend)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if first, last, ok := s.Period(); ok {
		appLogger.Debug("Loaded records", "count", s.Len(),
			"from", first.Format(labs.DateLayout), "to", last.Format(labs.DateLayout))
	}

	return s, ref, nil
}

func dashboardPath(cmd *cli.Command) string {
	if out := cmd.String("out"); out != "" {
		return out
	}

	return cmd.String("data-file") + ".dashboard.html"
}
