// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package labs

import (
	"errors"
	"testing"
	"time"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *float64
	}{
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"12abc", nil},
		{"NaN", nil},
		{"inf", nil},
		{"-Inf", nil},
		{"12.5", fp(12.5)},
		{" 7 ", fp(7)},
		{"1,015", fp(1.015)},
		{"-3", fp(-3)},
		{"0", fp(0)},
	}

	for _, tt := range tests {
		got := ParseValue(tt.in)

		switch {
		case tt.want == nil && got != nil:
			t.Fatalf("ParseValue(%q) = %v, want absent", tt.in, *got)
		case tt.want != nil && got == nil:
			t.Fatalf("ParseValue(%q) = absent, want %v", tt.in, *tt.want)
		case tt.want != nil && *got != *tt.want:
			t.Fatalf("ParseValue(%q) = %v, want %v", tt.in, *got, *tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate(" 2025-02-28 ")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	if want := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for _, bad := range []string{"", "28.02.2025", "2025-02-30", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	ref := DefaultReference()

	m, v, err := ref.ParseAssignment("creatinine_BLOOD=210")
	if err != nil {
		t.Fatalf("ParseAssignment failed: %v", err)
	}

	if m != CreatinineBlood || v == nil || *v != 210 {
		t.Fatalf("unexpected result %s=%v", m, v)
	}

	m, v, err = ref.ParseAssignment("Urea=n/a")
	if err != nil {
		t.Fatalf("ParseAssignment failed: %v", err)
	}

	if m != Urea || v != nil {
		t.Fatalf("expected malformed value to be absent, got %s=%v", m, v)
	}

	if _, _, err := ref.ParseAssignment("Bilirubin=1"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}

	if _, _, err := ref.ParseAssignment("UPC_ratio=1"); !errors.Is(err, ErrDerivedMetric) {
		t.Fatalf("expected ErrDerivedMetric, got %v", err)
	}
}
