// Package metrics computes derived driving and financial figures from shift,
// fuel and expense records. All functions are pure: no I/O, no stored state,
// and ratio functions never return NaN or Inf; a zero denominator yields 0.
package metrics

import (
	"sort"
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/shopspring/decimal"
)

// OdometerPoint is one odometer observation, typically taken from a fuel
// record or a shift boundary.
type OdometerPoint struct {
	Date     time.Time
	Odometer float64
}

// TotalDistance sums the kilometers covered between consecutive odometer
// observations. Records are ordered by date, ties broken by odometer, so the
// result does not depend on input order. A reading lower than its predecessor
// (rollback or entry error) contributes zero for that pair rather than a
// negative delta.
func TotalDistance(points []OdometerPoint) float64 {
	if len(points) < 2 {
		return 0
	}

	sorted := make([]OdometerPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Odometer < sorted[j].Odometer
	})

	var total float64
	for i := 1; i < len(sorted); i++ {
		delta := sorted[i].Odometer - sorted[i-1].Odometer
		if delta > 0 {
			total += delta
		}
	}
	return total
}

// TotalFuelAmount sums the fuel (or energy) quantity across records.
func TotalFuelAmount(records []*types.FuelRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// TotalFuelCost sums the money spent on fuel. Records without an entered
// total fall back to amount times unit price.
func TotalFuelCost(records []*types.FuelRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Cost()
	}
	return total
}

// AverageConsumption returns distance per fuel unit (km/l or km/kWh).
// Returns 0 unless both inputs are strictly positive.
func AverageConsumption(totalDistance, totalFuelAmount float64) float64 {
	if totalDistance <= 0 || totalFuelAmount <= 0 {
		return 0
	}
	return totalDistance / totalFuelAmount
}

// CostPerDistance returns cost per kilometer, with the same zero guard as
// AverageConsumption.
func CostPerDistance(totalCost, totalDistance float64) float64 {
	if totalCost <= 0 || totalDistance <= 0 {
		return 0
	}
	return totalCost / totalDistance
}

// NetProfit is income minus expenses. May be negative.
func NetProfit(totalIncome, totalExpenses float64) float64 {
	return totalIncome - totalExpenses
}

// ProfitPerDistance is the per-kilometer margin.
func ProfitPerDistance(earningsPerDistance, costPerDistance float64) float64 {
	return earningsPerDistance - costPerDistance
}

// RoundMoney rounds a monetary value to cents. Reports round once at the
// edge; intermediate arithmetic keeps full precision.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Summary accumulates the per-record totals for one scope (a shift, a
// vehicle, a weekly period). Totals are accumulated first and the ratio
// functions applied once at the end; averaging per-record ratios would bias
// the result toward short trips.
type Summary struct {
	TotalShifts     int
	ShiftsWithFuel  int
	TotalDistance   float64
	TotalFuelAmount float64
	TotalFuelCost   float64
	GrossEarnings   float64
	TotalExpenses   float64
}

// AddShift folds one shift and its fuel records into the summary.
func (s *Summary) AddShift(shift *types.Shift, fuel []*types.FuelRecord) {
	s.TotalShifts++
	s.TotalDistance += shift.Distance()
	s.GrossEarnings += shift.TotalEarnings()
	if len(fuel) > 0 {
		s.ShiftsWithFuel++
		s.TotalFuelAmount += TotalFuelAmount(fuel)
		s.TotalFuelCost += TotalFuelCost(fuel)
	}
}

// AddExpense folds one expense amount into the summary.
func (s *Summary) AddExpense(amount float64) {
	s.TotalExpenses += amount
}

// AverageConsumption applies the ratio over the accumulated totals.
func (s *Summary) AverageConsumption() float64 {
	return AverageConsumption(s.TotalDistance, s.TotalFuelAmount)
}

// CostPerDistance applies the ratio over the accumulated totals.
func (s *Summary) CostPerDistance() float64 {
	return CostPerDistance(s.TotalFuelCost, s.TotalDistance)
}

// EarningsPerDistance returns gross earnings per kilometer.
func (s *Summary) EarningsPerDistance() float64 {
	if s.GrossEarnings <= 0 || s.TotalDistance <= 0 {
		return 0
	}
	return s.GrossEarnings / s.TotalDistance
}

// NetProfit returns gross earnings minus all accumulated costs.
func (s *Summary) NetProfit() float64 {
	return NetProfit(s.GrossEarnings, s.TotalExpenses+s.TotalFuelCost)
}

// ProfitPerDistance returns the per-kilometer margin over the accumulated
// totals.
func (s *Summary) ProfitPerDistance() float64 {
	return ProfitPerDistance(s.EarningsPerDistance(), s.CostPerDistance())
}
