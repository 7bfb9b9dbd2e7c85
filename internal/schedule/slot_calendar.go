// Package schedule generates the bookable slot catalogue shown to clients.
// Everything here is a pure function of its inputs; lawyer-specific
// availability is intentionally not modelled.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DefaultWindowSize is the number of bookable dates offered to a client.
const DefaultWindowSize = 20

// BlackoutWeekday is the weekly blackout day; no consultations are bookable
// on it.
const BlackoutWeekday = time.Sunday

// maxLookaheadFactor bounds the calendar scan so a blackout rule that eats
// every day still terminates.
const maxLookaheadFactor = 10

// ErrInsufficientSlots is returned when the bounded scan cannot collect the
// requested number of qualifying dates.
var ErrInsufficientSlots = errors.New("not enough bookable dates within the lookahead window")

// Period buckets group times of day for display.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// TimeSlot is one entry of the fixed time-of-day catalogue.
type TimeSlot struct {
	Label  string `json:"label"`  // 12-hour display form, e.g. "10:00 AM"
	Period Period `json:"period"`
}

var timeCatalogue = []TimeSlot{
	{Label: "09:00 AM", Period: PeriodMorning},
	{Label: "10:00 AM", Period: PeriodMorning},
	{Label: "11:00 AM", Period: PeriodMorning},
	{Label: "12:00 PM", Period: PeriodAfternoon},
	{Label: "02:00 PM", Period: PeriodAfternoon},
	{Label: "03:00 PM", Period: PeriodAfternoon},
	{Label: "04:00 PM", Period: PeriodAfternoon},
	{Label: "05:00 PM", Period: PeriodEvening},
	{Label: "06:00 PM", Period: PeriodEvening},
	{Label: "07:00 PM", Period: PeriodEvening},
}

// AvailableDates returns windowSize calendar dates strictly after reference,
// skipping the blackout weekday. The scan is bounded at
// maxLookaheadFactor*windowSize calendar days.
func AvailableDates(reference time.Time, windowSize int) ([]time.Time, error) {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
	dates := make([]time.Time, 0, windowSize)

	for scanned := 0; scanned < maxLookaheadFactor*windowSize; scanned++ {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == BlackoutWeekday {
			continue
		}
		dates = append(dates, day)
		if len(dates) == windowSize {
			return dates, nil
		}
	}

	return nil, ErrInsufficientSlots
}

// AvailableTimes returns the fixed ordered time catalogue. The returned
// slice is a copy; callers may reorder it freely.
func AvailableTimes() []TimeSlot {
	out := make([]TimeSlot, len(timeCatalogue))
	copy(out, timeCatalogue)
	return out
}

// IsAvailableTime reports whether label is part of the catalogue.
func IsAvailableTime(label string) bool {
	for _, slot := range timeCatalogue {
		if slot.Label == label {
			return true
		}
	}
	return false
}

// To24Hour converts a catalogue label ("03:00 PM") to the canonical 24-hour
// form ("15:00") stored on a consultation.
func To24Hour(label string) (string, error) {
	t, err := time.Parse("03:04 PM", label)
	if err != nil {
		return "", fmt.Errorf("invalid time label %q: %w", label, err)
	}
	return t.Format("15:04"), nil
}
