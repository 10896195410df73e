/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/humaidq/vetlabs/labs"
)

// Backend persists the full record collection. Load must return an empty
// collection, not an error, when nothing has been saved yet.
type Backend interface {
	Load(ctx context.Context) ([]labs.Record, error)
	Save(ctx context.Context, records []labs.Record) error
}

// Store owns the measurement records of one animal and keeps them sorted
// ascending by date. It is not safe for concurrent use.
type Store struct {
	backend Backend
	records []labs.Record
}

// Open loads every record from backend. Load failures are returned as is;
// nothing is repaired or skipped.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	records, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	s := &Store{backend: backend, records: records}
	s.sort()

	logger.Info("Loaded records", "count", len(s.records))

	return s, nil
}

// Append adds a record and re-sorts the collection. Records sharing a date
// are kept side by side in insertion order; nothing is merged.
func (s *Store) Append(rec labs.Record) {
	s.records = append(s.records, rec.Clone())
	s.sort()
}

// Add appends a record and saves the whole collection.
func (s *Store) Add(ctx context.Context, rec labs.Record) error {
	s.Append(rec)

	if err := s.Save(ctx); err != nil {
		return err
	}

	logger.Info("Added record", "date", rec.Date.Format(labs.DateLayout), "total", len(s.records))

	return nil
}

// Save writes the full ordered collection to the backend.
func (s *Store) Save(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.Records()); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	logger.Debug("Saved records", "count", len(s.records))

	return nil
}

// Records returns a copy of the collection, ascending by date.
func (s *Store) Records() []labs.Record {
	out := make([]labs.Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}

	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Latest returns the most recent record.
func (s *Store) Latest() (labs.Record, bool) {
	rec, ok := Latest(s.records)
	if !ok {
		return labs.Record{}, false
	}

	return rec.Clone(), true
}

// Period returns the first and last measurement dates.
func (s *Store) Period() (first, last time.Time, ok bool) {
	return labs.Period(s.records)
}

func (s *Store) sort() {
	slices.SortStableFunc(s.records, func(a, b labs.Record) int {
		return a.Date.Compare(b.Date)
	})
}

// Latest returns the record with the greatest date. When several records
// share that date, the one appearing last wins, which for a store is the
// last one inserted.
func Latest(records []labs.Record) (labs.Record, bool) {
	if len(records) == 0 {
		return labs.Record{}, false
	}

	best := records[0]
	for _, r := range records[1:] {
		if !r.Date.Before(best.Date) {
			best = r
		}
	}

	return best, true
}
