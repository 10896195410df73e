/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"

	"github.com/humaidq/vetlabs/cmd"
	"github.com/humaidq/vetlabs/logging"
)

func main() {
	logging.Init()

	app := cmd.NewApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.StdLogger(logging.SourceApp).Fatal(err)
	}
}
