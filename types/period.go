package types

import "time"

// WeeklyPeriod is a driver's weekly accounting window. Periods owned by the
// same user may never overlap, and at most one of them is active at a time.
type WeeklyPeriod struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	WeeklyGoal float64   `json:"weeklyGoal"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Contains reports whether the given date falls inside the period's
// [StartDate, EndDate] window, endpoints included. Comparison happens at
// calendar-day granularity in each value's own location, so a late-evening
// timestamp with a non-UTC offset still counts toward its local day.
func (p *WeeklyPeriod) Contains(date time.Time) bool {
	day := calendarDay(date)
	start := calendarDay(p.StartDate)
	end := calendarDay(p.EndDate)
	return !day.Before(start) && !day.After(end)
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type PeriodCreate struct {
	Name       string    `json:"name" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	WeeklyGoal float64   `json:"weeklyGoal"`
	IsActive   bool      `json:"isActive"`
}

type PeriodUpdate struct {
	Name       *string    `json:"name,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	WeeklyGoal *float64   `json:"weeklyGoal,omitempty"`
}
