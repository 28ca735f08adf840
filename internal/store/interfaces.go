// Package store defines the persistence interfaces for the application's
// domain records. Every query is scoped by the owning user; callers never see
// another user's rows.
package store

import (
	"context"

	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

// Transaction represents an in-flight database transaction.
type Transaction interface {
	Commit() error
	Rollback() error
}

// PeriodStore handles weekly period persistence.
type PeriodStore interface {
	CreatePeriod(ctx context.Context, period *types.WeeklyPeriod) (string, error)
	GetPeriod(ctx context.Context, id string) (*types.WeeklyPeriod, error)
	ListPeriodsByUser(ctx context.Context, userID string) ([]*types.WeeklyPeriod, error)
	UpdatePeriod(ctx context.Context, id string, update *types.PeriodUpdate) (*types.WeeklyPeriod, error)
	// SetActivePeriod clears every other active period of the user and marks
	// the given one active inside a single transaction.
	SetActivePeriod(ctx context.Context, userID, periodID string) error
	DeletePeriod(ctx context.Context, id string) error
}

// VehicleStore handles vehicle persistence.
type VehicleStore interface {
	CreateVehicle(ctx context.Context, vehicle *types.Vehicle) (string, error)
	GetVehicle(ctx context.Context, id string) (*types.Vehicle, error)
	ListVehiclesByUser(ctx context.Context, userID string) ([]*types.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, update *types.VehicleUpdate) (*types.Vehicle, error)
	// SetDefaultVehicle clears the user's previous default and marks the given
	// vehicle inside a single transaction.
	SetDefaultVehicle(ctx context.Context, userID, vehicleID string) error
	DeleteVehicle(ctx context.Context, id string) error
}

// ShiftStore handles work shift persistence.
type ShiftStore interface {
	CreateShift(ctx context.Context, shift *types.Shift) (string, error)
	GetShift(ctx context.Context, id string) (*types.Shift, error)
	ListShiftsByUser(ctx context.Context, userID string, limit, offset int) ([]*types.Shift, error)
	ListShiftsByPeriod(ctx context.Context, periodID string) ([]*types.Shift, error)
	ListShiftsByVehicle(ctx context.Context, vehicleID string) ([]*types.Shift, error)
	UpdateShift(ctx context.Context, id string, update *types.ShiftUpdate) (*types.Shift, error)
	DeleteShift(ctx context.Context, id string) error
}

// FuelStore handles fuel record persistence.
type FuelStore interface {
	CreateFuelRecord(ctx context.Context, record *types.FuelRecord) (string, error)
	GetFuelRecord(ctx context.Context, id string) (*types.FuelRecord, error)
	ListFuelByVehicle(ctx context.Context, vehicleID string) ([]*types.FuelRecord, error)
	ListFuelByShift(ctx context.Context, shiftID string) ([]*types.FuelRecord, error)
	ListFuelByPeriod(ctx context.Context, periodID string) ([]*types.FuelRecord, error)
	UpdateFuelRecord(ctx context.Context, id string, update *types.FuelRecordUpdate) (*types.FuelRecord, error)
	DeleteFuelRecord(ctx context.Context, id string) error
}

// ExpenseStore handles expense persistence.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *types.Expense) (string, error)
	GetExpense(ctx context.Context, id string) (*types.Expense, error)
	ListExpensesByPeriod(ctx context.Context, periodID string) ([]*types.Expense, error)
	UpdateExpense(ctx context.Context, id string, update *types.ExpenseUpdate) (*types.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}
