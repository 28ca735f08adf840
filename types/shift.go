package types

import "time"

// Shift is one work session: a vehicle, odometer readings, working hours and
// per-platform earnings. EndOdometer and EndTime stay nil while the shift is
// still open.
type Shift struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	VehicleID     string     `json:"vehicleId"`
	PeriodID      *string    `json:"periodId,omitempty"`
	Date          time.Time  `json:"date"`
	StartOdometer float64    `json:"startOdometer"`
	EndOdometer   *float64   `json:"endOdometer,omitempty"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	BreakMinutes  int        `json:"breakMinutes"`
	UberEarnings  float64    `json:"uberEarnings"`
	BoltEarnings  float64    `json:"boltEarnings"`
	TipEarnings   float64    `json:"tipEarnings"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Distance returns the kilometers driven during the shift. It is zero until
// the end odometer is recorded; a reading below the start contributes nothing.
func (s *Shift) Distance() float64 {
	if s.EndOdometer == nil {
		return 0
	}
	d := *s.EndOdometer - s.StartOdometer
	if d < 0 {
		return 0
	}
	return d
}

// NetDuration returns worked time minus breaks. Zero until the shift is closed.
func (s *Shift) NetDuration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	d := s.EndTime.Sub(s.StartTime) - time.Duration(s.BreakMinutes)*time.Minute
	if d < 0 {
		return 0
	}
	return d
}

// TotalEarnings sums earnings across all platforms.
func (s *Shift) TotalEarnings() float64 {
	return s.UberEarnings + s.BoltEarnings + s.TipEarnings
}

// EarningsByPlatform maps each platform to its earnings for this shift.
func (s *Shift) EarningsByPlatform() map[EarningsPlatform]float64 {
	return map[EarningsPlatform]float64{
		PlatformUber: s.UberEarnings,
		PlatformBolt: s.BoltEarnings,
		PlatformTips: s.TipEarnings,
	}
}

type ShiftCreate struct {
	VehicleID     string    `json:"vehicleId" binding:"required"`
	PeriodID      *string   `json:"periodId,omitempty"`
	Date          time.Time `json:"date" binding:"required"`
	StartOdometer float64   `json:"startOdometer"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	Notes         string    `json:"notes,omitempty"`
}

type ShiftUpdate struct {
	EndOdometer  *float64   `json:"endOdometer,omitempty"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	BreakMinutes *int       `json:"breakMinutes,omitempty"`
	UberEarnings *float64   `json:"uberEarnings,omitempty"`
	BoltEarnings *float64   `json:"boltEarnings,omitempty"`
	TipEarnings  *float64   `json:"tipEarnings,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}
