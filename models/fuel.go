package models

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

// FuelModel enforces fuel record business rules: records belong to a vehicle
// the user owns, and a record linked to a shift must match the shift's
// vehicle.
type FuelModel struct {
	store        store.FuelStore
	vehicleModel *VehicleModel
	shiftModel   *ShiftModel
	periodModel  *PeriodModel
}

func NewFuelModel(store store.FuelStore, vehicleModel *VehicleModel, shiftModel *ShiftModel, periodModel *PeriodModel) *FuelModel {
	return &FuelModel{
		store:        store,
		vehicleModel: vehicleModel,
		shiftModel:   shiftModel,
		periodModel:  periodModel,
	}
}

func (fm *FuelModel) CreateFuelRecord(ctx context.Context, userID string, req *types.FuelRecordCreate) (*types.FuelRecord, error) {
	log := logger.GetLogger()

	if err := validateFuelCreate(req); err != nil {
		return nil, err
	}

	if _, err := fm.vehicleModel.GetVehicle(ctx, userID, req.VehicleID); err != nil {
		return nil, err
	}

	if req.ShiftID != nil {
		shift, err := fm.shiftModel.GetShift(ctx, userID, *req.ShiftID)
		if err != nil {
			return nil, err
		}
		if shift.VehicleID != req.VehicleID {
			return nil, apperrors.ValidationFailed(
				"Invalid fuel record",
				"linked shift was driven with a different vehicle",
			)
		}
	}

	if req.PeriodID != nil {
		if _, err := fm.periodModel.GetPeriod(ctx, userID, *req.PeriodID); err != nil {
			return nil, err
		}
	}

	record := &types.FuelRecord{
		UserID:       userID,
		VehicleID:    req.VehicleID,
		ShiftID:      req.ShiftID,
		PeriodID:     req.PeriodID,
		Date:         req.Date,
		Odometer:     req.Odometer,
		Amount:       req.Amount,
		PricePerUnit: req.PricePerUnit,
		TotalPrice:   req.TotalPrice,
		FullTank:     req.FullTank,
	}

	id, err := fm.store.CreateFuelRecord(ctx, record)
	if err != nil {
		log.Errorw("Failed to create fuel record", "userId", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return fm.GetFuelRecord(ctx, userID, id)
}

// GetFuelRecord fetches a fuel record the user owns. Someone else's record is
// reported as not found.
func (fm *FuelModel) GetFuelRecord(ctx context.Context, userID, id string) (*types.FuelRecord, error) {
	record, err := fm.store.GetFuelRecord(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Fuel record", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if record.UserID != userID {
		return nil, apperrors.NotFound("Fuel record", id)
	}
	return record, nil
}

func (fm *FuelModel) ListFuelByVehicle(ctx context.Context, userID, vehicleID string) ([]*types.FuelRecord, error) {
	if _, err := fm.vehicleModel.GetVehicle(ctx, userID, vehicleID); err != nil {
		return nil, err
	}

	records, err := fm.store.ListFuelByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return records, nil
}

func (fm *FuelModel) ListFuelByShift(ctx context.Context, userID, shiftID string) ([]*types.FuelRecord, error) {
	if _, err := fm.shiftModel.GetShift(ctx, userID, shiftID); err != nil {
		return nil, err
	}

	records, err := fm.store.ListFuelByShift(ctx, shiftID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return records, nil
}

func (fm *FuelModel) ListFuelByPeriod(ctx context.Context, userID, periodID string) ([]*types.FuelRecord, error) {
	if _, err := fm.periodModel.GetPeriod(ctx, userID, periodID); err != nil {
		return nil, err
	}

	records, err := fm.store.ListFuelByPeriod(ctx, periodID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return records, nil
}

func (fm *FuelModel) UpdateFuelRecord(ctx context.Context, userID, id string, update *types.FuelRecordUpdate) (*types.FuelRecord, error) {
	if _, err := fm.GetFuelRecord(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := validateFuelUpdate(update); err != nil {
		return nil, err
	}

	updated, err := fm.store.UpdateFuelRecord(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Fuel record", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return updated, nil
}

func (fm *FuelModel) DeleteFuelRecord(ctx context.Context, userID, id string) error {
	if _, err := fm.GetFuelRecord(ctx, userID, id); err != nil {
		return err
	}

	if err := fm.store.DeleteFuelRecord(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Fuel record", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

func validateFuelCreate(req *types.FuelRecordCreate) error {
	var validationErrors []string

	if req.VehicleID == "" {
		validationErrors = append(validationErrors, "vehicle ID is required")
	}
	if req.Date.IsZero() {
		validationErrors = append(validationErrors, "date is required")
	}
	if req.Amount <= 0 {
		validationErrors = append(validationErrors, "amount must be positive")
	}
	if req.PricePerUnit < 0 {
		validationErrors = append(validationErrors, "price per unit cannot be negative")
	}
	if req.Odometer < 0 {
		validationErrors = append(validationErrors, "odometer cannot be negative")
	}
	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		validationErrors = append(validationErrors, "total price cannot be negative")
	}

	if len(validationErrors) > 0 {
		return apperrors.ValidationFailed(
			"Invalid fuel record",
			strings.Join(validationErrors, "; "),
		)
	}

	return nil
}

func validateFuelUpdate(update *types.FuelRecordUpdate) error {
	var validationErrors []string

	if update.Amount != nil && *update.Amount <= 0 {
		validationErrors = append(validationErrors, "amount must be positive")
	}
	if update.PricePerUnit != nil && *update.PricePerUnit < 0 {
		validationErrors = append(validationErrors, "price per unit cannot be negative")
	}
	if update.Odometer != nil && *update.Odometer < 0 {
		validationErrors = append(validationErrors, "odometer cannot be negative")
	}
	if update.TotalPrice != nil && *update.TotalPrice < 0 {
		validationErrors = append(validationErrors, "total price cannot be negative")
	}

	if len(validationErrors) > 0 {
		return apperrors.ValidationFailed(
			"Invalid fuel update",
			strings.Join(validationErrors, "; "),
		)
	}

	return nil
}
