package services

import (
	"context"
	"sort"

	"github.com/Claudio-Lins/amigo-tvde-backend/models"
	"github.com/Claudio-Lins/amigo-tvde-backend/pkg/metrics"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

const (
	reportKindShift   = "shift"
	reportKindVehicle = "vehicle"
	reportKindPeriod  = "period"
)

// ReportService assembles the derived analytics views. It reads through the
// model layer so every report is owner-scoped, feeds the pure metrics
// functions, and caches rendered reports in Redis.
type ReportService struct {
	shiftModel   *models.ShiftModel
	vehicleModel *models.VehicleModel
	periodModel  *models.PeriodModel
	fuelModel    *models.FuelModel
	expenseModel *models.ExpenseModel
	cache        *ReportCache
}

func NewReportService(
	shiftModel *models.ShiftModel,
	vehicleModel *models.VehicleModel,
	periodModel *models.PeriodModel,
	fuelModel *models.FuelModel,
	expenseModel *models.ExpenseModel,
	cache *ReportCache,
) *ReportService {
	return &ReportService{
		shiftModel:   shiftModel,
		vehicleModel: vehicleModel,
		periodModel:  periodModel,
		fuelModel:    fuelModel,
		expenseModel: expenseModel,
		cache:        cache,
	}
}

// InvalidateUser drops the user's cached reports. The handlers call this
// after every successful write.
func (rs *ReportService) InvalidateUser(ctx context.Context, userID string) {
	if rs.cache != nil {
		rs.cache.InvalidateUser(ctx, userID)
	}
}

// ShiftReport renders the analytics view of one shift.
func (rs *ReportService) ShiftReport(ctx context.Context, userID, shiftID string) (*types.ShiftReport, error) {
	if rs.cache != nil {
		var cached types.ShiftReport
		if hit, err := rs.cache.Get(ctx, userID, reportKindShift, shiftID, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	shift, err := rs.shiftModel.GetShift(ctx, userID, shiftID)
	if err != nil {
		return nil, err
	}
	fuel, err := rs.fuelModel.ListFuelByShift(ctx, userID, shiftID)
	if err != nil {
		return nil, err
	}

	distance := shift.Distance()
	hours := shift.NetDuration().Hours()
	gross := shift.TotalEarnings()
	fuelCost := metrics.TotalFuelCost(fuel)

	report := &types.ShiftReport{
		ShiftID:            shift.ID,
		Date:               shift.Date,
		Closed:             shift.EndTime != nil,
		Distance:           distance,
		WorkedHours:        hours,
		GrossEarnings:      metrics.RoundMoney(gross),
		EarningsByPlatform: shift.EarningsByPlatform(),
		FuelAmount:         metrics.TotalFuelAmount(fuel),
		FuelCost:           metrics.RoundMoney(fuelCost),
		NetEarnings:        metrics.RoundMoney(metrics.NetProfit(gross, fuelCost)),
	}
	if distance > 0 {
		report.EarningsPerKm = metrics.RoundMoney(gross / distance)
	}
	if hours > 0 {
		report.EarningsPerHour = metrics.RoundMoney(gross / hours)
	}

	if rs.cache != nil {
		rs.cache.Set(ctx, userID, reportKindShift, shiftID, report)
	}
	return report, nil
}

// VehicleReport renders fuel analytics across everything recorded for one
// vehicle. Distance comes from the fuel records' odometer trail, so it also
// covers driving done outside tracked shifts.
func (rs *ReportService) VehicleReport(ctx context.Context, userID, vehicleID string) (*types.VehicleReport, error) {
	if rs.cache != nil {
		var cached types.VehicleReport
		if hit, err := rs.cache.Get(ctx, userID, reportKindVehicle, vehicleID, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	vehicle, err := rs.vehicleModel.GetVehicle(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}
	fuel, err := rs.fuelModel.ListFuelByVehicle(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}
	shifts, err := rs.shiftModel.ListShiftsByVehicle(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	points := make([]metrics.OdometerPoint, 0, len(fuel))
	for _, r := range fuel {
		points = append(points, metrics.OdometerPoint{Date: r.Date, Odometer: r.Odometer})
	}

	distance := metrics.TotalDistance(points)
	fuelAmount := metrics.TotalFuelAmount(fuel)
	fuelCost := metrics.TotalFuelCost(fuel)

	var gross float64
	for _, s := range shifts {
		gross += s.TotalEarnings()
	}

	report := &types.VehicleReport{
		VehicleID:          vehicle.ID,
		Make:               vehicle.Make,
		Model:              vehicle.Model,
		TotalShifts:        len(shifts),
		TotalDistance:      distance,
		TotalFuelAmount:    fuelAmount,
		TotalFuelCost:      metrics.RoundMoney(fuelCost),
		AverageConsumption: metrics.AverageConsumption(distance, fuelAmount),
		CostPerKm:          metrics.CostPerDistance(fuelCost, distance),
		GrossEarnings:      metrics.RoundMoney(gross),
	}

	if rs.cache != nil {
		rs.cache.Set(ctx, userID, reportKindVehicle, vehicleID, report)
	}
	return report, nil
}

// PeriodReport renders the weekly dashboard for one period.
func (rs *ReportService) PeriodReport(ctx context.Context, userID, periodID string) (*types.PeriodReport, error) {
	if rs.cache != nil {
		var cached types.PeriodReport
		if hit, err := rs.cache.Get(ctx, userID, reportKindPeriod, periodID, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	period, err := rs.periodModel.GetPeriod(ctx, userID, periodID)
	if err != nil {
		return nil, err
	}
	shifts, err := rs.shiftModel.ListShiftsByPeriod(ctx, userID, periodID)
	if err != nil {
		return nil, err
	}
	fuel, err := rs.fuelModel.ListFuelByPeriod(ctx, userID, periodID)
	if err != nil {
		return nil, err
	}
	expenses, err := rs.expenseModel.ListExpensesByPeriod(ctx, userID, periodID)
	if err != nil {
		return nil, err
	}

	var summary metrics.Summary
	var hours float64
	byPlatform := map[types.EarningsPlatform]float64{
		types.PlatformUber: 0,
		types.PlatformBolt: 0,
		types.PlatformTips: 0,
	}
	for _, s := range shifts {
		summary.AddShift(s, nil)
		hours += s.NetDuration().Hours()
		for platform, amount := range s.EarningsByPlatform() {
			byPlatform[platform] += amount
		}
	}
	// The period's fuel is folded once over the whole week rather than per
	// shift, so records not linked to any shift still count.
	summary.TotalFuelAmount = metrics.TotalFuelAmount(fuel)
	summary.TotalFuelCost = metrics.TotalFuelCost(fuel)

	byCategory := map[types.ExpenseCategory]float64{}
	for _, e := range expenses {
		summary.AddExpense(e.Amount)
		byCategory[e.Category] += e.Amount
	}

	// A rented or commission vehicle costs money before any expense is
	// booked. The default vehicle's terms price the week.
	var vehicleCost float64
	vehicles, err := rs.vehicleModel.ListVehicles(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		if v.IsDefault && v.Ownership.Ownership != nil {
			vehicleCost = v.Ownership.WeeklyCost(summary.GrossEarnings)
			break
		}
	}

	netProfit := metrics.NetProfit(summary.GrossEarnings, summary.TotalExpenses+summary.TotalFuelCost+vehicleCost)

	report := &types.PeriodReport{
		PeriodID:           period.ID,
		Name:               period.Name,
		StartDate:          period.StartDate,
		EndDate:            period.EndDate,
		TotalShifts:        summary.TotalShifts,
		WorkedHours:        hours,
		TotalDistance:      summary.TotalDistance,
		GrossEarnings:      metrics.RoundMoney(summary.GrossEarnings),
		EarningsByPlatform: byPlatform,
		TotalFuelAmount:    summary.TotalFuelAmount,
		TotalFuelCost:      metrics.RoundMoney(summary.TotalFuelCost),
		AverageConsumption: summary.AverageConsumption(),
		CostPerKm:          summary.CostPerDistance(),
		TotalExpenses:      metrics.RoundMoney(summary.TotalExpenses),
		ExpensesByCategory: categoryBreakdown(byCategory),
		VehicleCost:        metrics.RoundMoney(vehicleCost),
		NetProfit:          metrics.RoundMoney(netProfit),
		ProfitPerKm:        summary.ProfitPerDistance(),
		WeeklyGoal:         period.WeeklyGoal,
	}
	if hours > 0 {
		report.EarningsPerHour = metrics.RoundMoney(summary.GrossEarnings / hours)
	}
	if period.WeeklyGoal > 0 {
		report.GoalProgress = metrics.RoundMoney(netProfit / period.WeeklyGoal * 100)
	}

	if rs.cache != nil {
		rs.cache.Set(ctx, userID, reportKindPeriod, periodID, report)
	}
	return report, nil
}

func categoryBreakdown(byCategory map[types.ExpenseCategory]float64) []types.CategoryBreakdown {
	breakdown := make([]types.CategoryBreakdown, 0, len(byCategory))
	for category, amount := range byCategory {
		breakdown = append(breakdown, types.CategoryBreakdown{
			Category: category,
			Label:    category.Label(),
			Color:    category.Color(),
			Amount:   metrics.RoundMoney(amount),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
