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

const (
	defaultShiftPageSize = 20
	maxShiftPageSize     = 100
)

// ShiftModel enforces shift business rules: shifts belong to a vehicle the
// user owns, attach to the active period unless one is given explicitly, and
// close out with consistent odometer and time readings.
type ShiftModel struct {
	store        store.ShiftStore
	vehicleModel *VehicleModel
	periodModel  *PeriodModel
}

func NewShiftModel(store store.ShiftStore, vehicleModel *VehicleModel, periodModel *PeriodModel) *ShiftModel {
	return &ShiftModel{
		store:        store,
		vehicleModel: vehicleModel,
		periodModel:  periodModel,
	}
}

// StartShift opens a new shift. When no period is given it attaches to the
// user's active period, or to none if no period is active.
func (sm *ShiftModel) StartShift(ctx context.Context, userID string, req *types.ShiftCreate) (*types.Shift, error) {
	log := logger.GetLogger()

	if err := validateShiftCreate(req); err != nil {
		return nil, err
	}

	if _, err := sm.vehicleModel.GetVehicle(ctx, userID, req.VehicleID); err != nil {
		return nil, err
	}

	periodID := req.PeriodID
	if periodID != nil {
		period, err := sm.periodModel.GetPeriod(ctx, userID, *periodID)
		if err != nil {
			return nil, err
		}
		if !period.Contains(req.Date) {
			return nil, apperrors.ValidationFailed(
				"Invalid shift date",
				"shift date falls outside the chosen period",
			)
		}
	} else {
		active, err := sm.periodModel.GetActivePeriod(ctx, userID)
		if err == nil && active.Contains(req.Date) {
			periodID = &active.ID
		}
	}

	shift := &types.Shift{
		UserID:        userID,
		VehicleID:     req.VehicleID,
		PeriodID:      periodID,
		Date:          req.Date,
		StartOdometer: req.StartOdometer,
		StartTime:     req.StartTime,
		Notes:         req.Notes,
	}

	id, err := sm.store.CreateShift(ctx, shift)
	if err != nil {
		log.Errorw("Failed to create shift", "userId", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return sm.GetShift(ctx, userID, id)
}

// GetShift fetches a shift the user owns. Someone else's shift is reported as
// not found.
func (sm *ShiftModel) GetShift(ctx context.Context, userID, id string) (*types.Shift, error) {
	shift, err := sm.store.GetShift(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Shift", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if shift.UserID != userID {
		return nil, apperrors.NotFound("Shift", id)
	}
	return shift, nil
}

func (sm *ShiftModel) ListShifts(ctx context.Context, userID string, limit, offset int) ([]*types.Shift, error) {
	if limit <= 0 {
		limit = defaultShiftPageSize
	}
	if limit > maxShiftPageSize {
		limit = maxShiftPageSize
	}
	if offset < 0 {
		offset = 0
	}

	shifts, err := sm.store.ListShiftsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return shifts, nil
}

func (sm *ShiftModel) ListShiftsByPeriod(ctx context.Context, userID, periodID string) ([]*types.Shift, error) {
	if _, err := sm.periodModel.GetPeriod(ctx, userID, periodID); err != nil {
		return nil, err
	}

	shifts, err := sm.store.ListShiftsByPeriod(ctx, periodID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return shifts, nil
}

func (sm *ShiftModel) ListShiftsByVehicle(ctx context.Context, userID, vehicleID string) ([]*types.Shift, error) {
	if _, err := sm.vehicleModel.GetVehicle(ctx, userID, vehicleID); err != nil {
		return nil, err
	}

	shifts, err := sm.store.ListShiftsByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return shifts, nil
}

// UpdateShift records close-out data: end odometer, end time, breaks and
// per-platform earnings.
func (sm *ShiftModel) UpdateShift(ctx context.Context, userID, id string, update *types.ShiftUpdate) (*types.Shift, error) {
	log := logger.GetLogger()

	current, err := sm.GetShift(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := validateShiftUpdate(current, update); err != nil {
		return nil, err
	}

	updated, err := sm.store.UpdateShift(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Shift", id)
		}
		log.Errorw("Failed to update shift", "shiftId", id, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return updated, nil
}

func (sm *ShiftModel) DeleteShift(ctx context.Context, userID, id string) error {
	if _, err := sm.GetShift(ctx, userID, id); err != nil {
		return err
	}

	if err := sm.store.DeleteShift(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Shift", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

func validateShiftCreate(req *types.ShiftCreate) error {
	var validationErrors []string

	if req.VehicleID == "" {
		validationErrors = append(validationErrors, "vehicle ID is required")
	}
	if req.Date.IsZero() {
		validationErrors = append(validationErrors, "shift date is required")
	}
	if req.StartTime.IsZero() {
		validationErrors = append(validationErrors, "start time is required")
	}
	if req.StartOdometer < 0 {
		validationErrors = append(validationErrors, "start odometer cannot be negative")
	}

	if len(validationErrors) > 0 {
		return apperrors.ValidationFailed(
			"Invalid shift data",
			strings.Join(validationErrors, "; "),
		)
	}

	return nil
}

func validateShiftUpdate(current *types.Shift, update *types.ShiftUpdate) error {
	var validationErrors []string

	if update.EndOdometer != nil && *update.EndOdometer <= current.StartOdometer {
		validationErrors = append(validationErrors, "end odometer must exceed the start reading")
	}
	if update.EndTime != nil && !update.EndTime.After(current.StartTime) {
		validationErrors = append(validationErrors, "end time must be after the start time")
	}
	if update.BreakMinutes != nil && *update.BreakMinutes < 0 {
		validationErrors = append(validationErrors, "break minutes cannot be negative")
	}
	if update.UberEarnings != nil && *update.UberEarnings < 0 {
		validationErrors = append(validationErrors, "Uber earnings cannot be negative")
	}
	if update.BoltEarnings != nil && *update.BoltEarnings < 0 {
		validationErrors = append(validationErrors, "Bolt earnings cannot be negative")
	}
	if update.TipEarnings != nil && *update.TipEarnings < 0 {
		validationErrors = append(validationErrors, "tips cannot be negative")
	}

	if len(validationErrors) > 0 {
		return apperrors.ValidationFailed(
			"Invalid shift update",
			strings.Join(validationErrors, "; "),
		)
	}

	return nil
}
