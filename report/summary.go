/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/humaidq/vetlabs/labs"
)

// Summary describes the collection in one line: how many records, the period
// they cover and how long ago the latest was taken, relative to now.
func Summary(records []labs.Record, now time.Time) (string, error) {
	first, last, ok := labs.Period(records)
	if !ok {
		return "", ErrNoData
	}

	latest := "today"
	if today := labs.DateOf(now); !last.Equal(today) {
		latest = humanize.RelTime(last, today, "ago", "from now")
	}

	return fmt.Sprintf("%s from %s to %s, latest %s",
		english.Plural(len(records), "record", ""),
		columnDate(first),
		columnDate(last),
		latest,
	), nil
}
