package schedule

import (
	"testing"
	"time"
)

func TestAvailableDates(t *testing.T) {
	reference := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC) // a Monday

	t.Run("returns exactly windowSize dates", func(t *testing.T) {
		dates, err := AvailableDates(reference, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dates) != 20 {
			t.Errorf("expected 20 dates, got %d", len(dates))
		}
	})

	t.Run("all dates are strictly after the reference", func(t *testing.T) {
		dates, err := AvailableDates(reference, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, d := range dates {
			if !d.After(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("date %v is not after the reference day", d)
			}
		}
	})

	t.Run("never includes the blackout weekday", func(t *testing.T) {
		dates, err := AvailableDates(reference, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, d := range dates {
			if d.Weekday() == BlackoutWeekday {
				t.Errorf("blackout weekday %v leaked into the window", d)
			}
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a, err := AvailableDates(reference, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := AvailableDates(reference, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				t.Errorf("index %d: %v != %v", i, a[i], b[i])
			}
		}
	})

	t.Run("zero window falls back to default", func(t *testing.T) {
		dates, err := AvailableDates(reference, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dates) != DefaultWindowSize {
			t.Errorf("expected %d dates, got %d", DefaultWindowSize, len(dates))
		}
	})
}

func TestAvailableTimes(t *testing.T) {
	slots := AvailableTimes()
	if len(slots) == 0 {
		t.Fatal("expected a non-empty time catalogue")
	}

	t.Run("every slot has a period bucket", func(t *testing.T) {
		for _, s := range slots {
			switch s.Period {
			case PeriodMorning, PeriodAfternoon, PeriodEvening:
			default:
				t.Errorf("slot %q has unknown period %q", s.Label, s.Period)
			}
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		slots[0].Label = "mutated"
		if AvailableTimes()[0].Label == "mutated" {
			t.Error("catalogue leaked internal state")
		}
	})

	t.Run("membership check matches catalogue", func(t *testing.T) {
		if !IsAvailableTime("10:00 AM") {
			t.Error("expected 10:00 AM to be available")
		}
		if IsAvailableTime("01:30 AM") {
			t.Error("01:30 AM should not be available")
		}
	})
}

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"09:00 AM", "09:00"},
		{"12:00 PM", "12:00"},
		{"03:00 PM", "15:00"},
		{"07:00 PM", "19:00"},
	}
	for _, tc := range cases {
		got, err := To24Hour(tc.label)
		if err != nil {
			t.Fatalf("To24Hour(%q): %v", tc.label, err)
		}
		if got != tc.want {
			t.Errorf("To24Hour(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}

	if _, err := To24Hour("not a time"); err == nil {
		t.Error("expected error for garbage label")
	}
}
