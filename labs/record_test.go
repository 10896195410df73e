// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package labs

import (
	"math"
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	t.Run("derives UPC and normalizes date", func(t *testing.T) {
		t.Parallel()

		date := time.Date(2025, time.March, 4, 15, 30, 0, 0, time.FixedZone("MSK", 3*3600))

		rec := NewRecord(date, map[Metric]*float64{
			ProteinUrine:    fp(30),
			CreatinineUrine: fp(60),
			Urea:            fp(12.5),
			Sodium:          nil,
		})

		if want := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC); !rec.Date.Equal(want) {
			t.Fatalf("expected date %v, got %v", want, rec.Date)
		}

		upc, ok := rec.Value(UPCRatio)
		if !ok || upc != 0.5 {
			t.Fatalf("expected UPC 0.5, got %v (ok=%v)", upc, ok)
		}

		if rec.Has(Sodium) {
			t.Fatal("expected nil reading to be absent")
		}

		if rec.Len() != 4 {
			t.Fatalf("expected 4 readings, got %d", rec.Len())
		}
	})

	t.Run("ignores supplied UPC", func(t *testing.T) {
		t.Parallel()

		rec := NewRecord(time.Now(), map[Metric]*float64{
			UPCRatio:     fp(9),
			ProteinUrine: fp(30),
		})

		if rec.Has(UPCRatio) {
			t.Fatal("expected UPC to be absent without urine creatinine")
		}
	})

	t.Run("zero creatinine leaves UPC absent", func(t *testing.T) {
		t.Parallel()

		rec := NewRecord(time.Now(), map[Metric]*float64{
			ProteinUrine:    fp(30),
			CreatinineUrine: fp(0),
		})

		if rec.Has(UPCRatio) {
			t.Fatal("expected UPC to be absent with zero creatinine")
		}

		if !rec.Has(CreatinineUrine) {
			t.Fatal("expected zero creatinine to be kept as a reading")
		}
	})
}

func TestRecordSetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	var rec Record

	rec.Set(Urea, 5)
	rec.Set(Urea, math.NaN())

	if rec.Has(Urea) {
		t.Fatal("expected NaN to clear the reading")
	}

	rec.Set(Sodium, math.Inf(1))

	if rec.Has(Sodium) {
		t.Fatal("expected Inf to be rejected")
	}
}

func TestRecordCloneAndEqual(t *testing.T) {
	t.Parallel()

	orig := NewRecord(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), map[Metric]*float64{
		Urea: fp(5),
	})

	clone := orig.Clone()
	if !orig.Equal(clone) {
		t.Fatal("expected clone to equal original")
	}

	clone.Set(Urea, 6)

	if v, _ := orig.Value(Urea); v != 5 {
		t.Fatalf("clone shares storage with original, got %v", v)
	}

	if orig.Equal(clone) {
		t.Fatal("expected records with different readings to differ")
	}

	if !(Record{Date: orig.Date}).Equal(Record{Date: orig.Date}.Clone()) {
		t.Fatal("expected empty records with the same date to be equal")
	}
}

func TestPeriod(t *testing.T) {
	t.Parallel()

	if _, _, ok := Period(nil); ok {
		t.Fatal("expected no period for no records")
	}

	mar := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	first, last, ok := Period([]Record{{Date: mar}, {Date: jan}, {Date: feb}})
	if !ok || !first.Equal(jan) || !last.Equal(mar) {
		t.Fatalf("expected %v - %v, got %v - %v (ok=%v)", jan, mar, first, last, ok)
	}
}
