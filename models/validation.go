package models

import (
	"fmt"
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

func validatePeriodDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errors.ValidationFailed(
			"Invalid period dates",
			"start and end dates are required",
		)
	}
	if end.Before(start) {
		return errors.ValidationFailed(
			"Invalid period dates",
			"end date must not be before start date",
		)
	}
	return nil
}

// toDay normalizes a timestamp to its calendar day in the timestamp's own
// location. Truncating on the absolute timeline would shift values with a
// non-UTC offset onto a neighboring day.
func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// periodsOverlap reports whether the [newStart, newEnd] window collides with
// the [start, end] window. Boundaries count: two periods that share a single
// day overlap. A window overlaps when its start falls inside the existing one,
// its end falls inside the existing one, or it encloses the existing one.
func periodsOverlap(newStart, newEnd, start, end time.Time) bool {
	ns, ne := toDay(newStart), toDay(newEnd)
	s, e := toDay(start), toDay(end)

	startInside := !ns.Before(s) && !ns.After(e)
	endInside := !ne.Before(s) && !ne.After(e)
	encloses := !ns.After(s) && !ne.Before(e)

	return startInside || endInside || encloses
}

// checkPeriodOverlap rejects the [start, end] window when it collides with any
// of the user's existing periods. excludeID skips the period being updated so
// a period never conflicts with itself.
func checkPeriodOverlap(periods []*types.WeeklyPeriod, start, end time.Time, excludeID string) error {
	for _, p := range periods {
		if p.ID == excludeID {
			continue
		}
		if periodsOverlap(start, end, p.StartDate, p.EndDate) {
			return errors.PeriodOverlap(fmt.Sprintf(
				"the requested dates collide with period %q (%s to %s)",
				p.Name,
				p.StartDate.Format("2006-01-02"),
				p.EndDate.Format("2006-01-02"),
			))
		}
	}
	return nil
}

func validateExpenseDate(period *types.WeeklyPeriod, date time.Time) error {
	if !period.Contains(date) {
		return errors.ValidationFailed(
			"Invalid expense date",
			fmt.Sprintf("date must fall between %s and %s",
				period.StartDate.Format("2006-01-02"),
				period.EndDate.Format("2006-01-02"),
			),
		)
	}
	return nil
}
