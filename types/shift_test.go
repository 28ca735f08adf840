package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShift_Distance(t *testing.T) {
	end := 250.0
	shift := &Shift{StartOdometer: 100, EndOdometer: &end}
	assert.Equal(t, 150.0, shift.Distance())

	open := &Shift{StartOdometer: 100}
	assert.Equal(t, 0.0, open.Distance())

	rolledBack := 80.0
	bad := &Shift{StartOdometer: 100, EndOdometer: &rolledBack}
	assert.Equal(t, 0.0, bad.Distance())
}

func TestShift_NetDuration(t *testing.T) {
	start := time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	shift := &Shift{StartTime: start, EndTime: &end, BreakMinutes: 45}
	assert.Equal(t, 7*time.Hour+15*time.Minute, shift.NetDuration())

	open := &Shift{StartTime: start}
	assert.Equal(t, time.Duration(0), open.NetDuration())
}

func TestShift_TotalEarnings(t *testing.T) {
	shift := &Shift{UberEarnings: 85.5, BoltEarnings: 62.3, TipEarnings: 12.2}
	assert.InDelta(t, 160.0, shift.TotalEarnings(), 0.0001)

	byPlatform := shift.EarningsByPlatform()
	assert.Equal(t, 85.5, byPlatform[PlatformUber])
	assert.Equal(t, 62.3, byPlatform[PlatformBolt])
	assert.Equal(t, 12.2, byPlatform[PlatformTips])
}

func TestWeeklyPeriod_ContainsBasic(t *testing.T) {
	period := &WeeklyPeriod{
		StartDate: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, period.Contains(time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, period.Contains(time.Date(2026, 6, 8, 15, 30, 0, 0, time.UTC)))
	assert.True(t, period.Contains(time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)))
}

func TestExpenseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.IsValid())
		assert.NotEmpty(t, c.Label())
		assert.NotEmpty(t, c.Color())
	}
	assert.False(t, ExpenseCategory("LOTTERY").IsValid())
}

func TestFuelRecord_Cost(t *testing.T) {
	total := 15.0
	withTotal := &FuelRecord{Amount: 10, PricePerUnit: 1.6, TotalPrice: &total}
	assert.Equal(t, 15.0, withTotal.Cost())

	withoutTotal := &FuelRecord{Amount: 10, PricePerUnit: 1.6}
	assert.InDelta(t, 16.0, withoutTotal.Cost(), 0.0001)
}
