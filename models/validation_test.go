package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodsOverlap(t *testing.T) {
	start := day(2026, time.June, 5)
	end := day(2026, time.June, 11)

	tests := []struct {
		name     string
		newStart time.Time
		newEnd   time.Time
		want     bool
	}{
		{"identical window", start, end, true},
		{"starts inside", day(2026, time.June, 8), day(2026, time.June, 14), true},
		{"ends inside", day(2026, time.June, 1), day(2026, time.June, 7), true},
		{"encloses", day(2026, time.June, 1), day(2026, time.June, 20), true},
		{"enclosed", day(2026, time.June, 7), day(2026, time.June, 9), true},
		{"touches end boundary", day(2026, time.June, 11), day(2026, time.June, 17), true},
		{"touches start boundary", day(2026, time.May, 30), day(2026, time.June, 5), true},
		{"single shared day", day(2026, time.June, 11), day(2026, time.June, 11), true},
		{"day after", day(2026, time.June, 12), day(2026, time.June, 18), false},
		{"day before", day(2026, time.May, 29), day(2026, time.June, 4), false},
		{"far away", day(2026, time.July, 1), day(2026, time.July, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := periodsOverlap(tt.newStart, tt.newEnd, start, end)
			assert.Equal(t, tt.want, got)

			// The relation is symmetric: swapping which window is "new" must
			// not change the verdict.
			swapped := periodsOverlap(start, end, tt.newStart, tt.newEnd)
			assert.Equal(t, tt.want, swapped)
		})
	}
}

func TestPeriodsOverlap_IgnoresTimeOfDay(t *testing.T) {
	start := day(2026, time.June, 5)
	end := day(2026, time.June, 11)

	lateOnBoundary := time.Date(2026, time.June, 11, 23, 30, 0, 0, time.UTC)
	assert.True(t, periodsOverlap(lateOnBoundary, day(2026, time.June, 17), start, end))
}

func TestToDay_KeepsLocalCalendarDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"utc late evening",
			time.Date(2026, time.June, 11, 23, 30, 0, 0, time.UTC),
			day(2026, time.June, 11),
		},
		{
			"positive offset near midnight",
			time.Date(2026, time.June, 12, 0, 30, 0, 0, time.FixedZone("WEST", 2*60*60)),
			day(2026, time.June, 12),
		},
		{
			"negative offset late evening",
			time.Date(2026, time.June, 11, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60)),
			day(2026, time.June, 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(toDay(tt.in)))
		})
	}
}

func TestPeriodsOverlap_NonUTCOffsets(t *testing.T) {
	start := day(2026, time.June, 5)
	end := day(2026, time.June, 11)

	// June 12 00:30 at +02:00 is still June 11 on the absolute timeline, but
	// the driver's calendar says June 12, the day after the window closes.
	west := time.FixedZone("WEST", 2*60*60)
	dayAfter := time.Date(2026, time.June, 12, 0, 30, 0, 0, west)
	assert.False(t, periodsOverlap(dayAfter, time.Date(2026, time.June, 18, 0, 30, 0, 0, west), start, end))

	// June 11 23:30 at -05:00 is June 12 in UTC, but locally it is still the
	// final day of the window.
	est := time.FixedZone("EST", -5*60*60)
	lastDay := time.Date(2026, time.June, 11, 23, 30, 0, 0, est)
	assert.True(t, periodsOverlap(lastDay, time.Date(2026, time.June, 17, 0, 0, 0, 0, est), start, end))
}
