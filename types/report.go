package types

import "time"

// ShiftReport is the derived view of one shift: distance, hours, earnings and
// the fuel bought during it.
type ShiftReport struct {
	ShiftID            string                       `json:"shiftId"`
	Date               time.Time                    `json:"date"`
	Closed             bool                         `json:"closed"`
	Distance           float64                      `json:"distance"`
	WorkedHours        float64                      `json:"workedHours"`
	GrossEarnings      float64                      `json:"grossEarnings"`
	EarningsByPlatform map[EarningsPlatform]float64 `json:"earningsByPlatform"`
	FuelAmount         float64                      `json:"fuelAmount"`
	FuelCost           float64                      `json:"fuelCost"`
	NetEarnings        float64                      `json:"netEarnings"`
	EarningsPerKm      float64                      `json:"earningsPerKm"`
	EarningsPerHour    float64                      `json:"earningsPerHour"`
}

// VehicleReport aggregates fuel analytics across everything recorded for one
// vehicle.
type VehicleReport struct {
	VehicleID          string  `json:"vehicleId"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	TotalShifts        int     `json:"totalShifts"`
	TotalDistance      float64 `json:"totalDistance"`
	TotalFuelAmount    float64 `json:"totalFuelAmount"`
	TotalFuelCost      float64 `json:"totalFuelCost"`
	AverageConsumption float64 `json:"averageConsumption"`
	CostPerKm          float64 `json:"costPerKm"`
	GrossEarnings      float64 `json:"grossEarnings"`
}

// CategoryBreakdown is one expense category slice inside a period report,
// carrying the display metadata the dashboard charts use.
type CategoryBreakdown struct {
	Category ExpenseCategory `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Amount   float64         `json:"amount"`
}

// PeriodReport is the weekly dashboard: earnings, costs, distance and goal
// progress for one weekly period.
type PeriodReport struct {
	PeriodID           string                       `json:"periodId"`
	Name               string                       `json:"name"`
	StartDate          time.Time                    `json:"startDate"`
	EndDate            time.Time                    `json:"endDate"`
	TotalShifts        int                          `json:"totalShifts"`
	WorkedHours        float64                      `json:"workedHours"`
	TotalDistance      float64                      `json:"totalDistance"`
	GrossEarnings      float64                      `json:"grossEarnings"`
	EarningsByPlatform map[EarningsPlatform]float64 `json:"earningsByPlatform"`
	TotalFuelAmount    float64                      `json:"totalFuelAmount"`
	TotalFuelCost      float64                      `json:"totalFuelCost"`
	AverageConsumption float64                      `json:"averageConsumption"`
	CostPerKm          float64                      `json:"costPerKm"`
	TotalExpenses      float64                      `json:"totalExpenses"`
	ExpensesByCategory []CategoryBreakdown          `json:"expensesByCategory"`
	VehicleCost        float64                      `json:"vehicleCost"`
	NetProfit          float64                      `json:"netProfit"`
	ProfitPerKm        float64                      `json:"profitPerKm"`
	EarningsPerHour    float64                      `json:"earningsPerHour"`
	WeeklyGoal         float64                      `json:"weeklyGoal"`
	GoalProgress       float64                      `json:"goalProgress"` // percent, 0 when no goal is set
}
