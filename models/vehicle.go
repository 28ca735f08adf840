package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

// VehicleModel enforces vehicle business rules: valid ownership terms and at
// most one default vehicle per user.
type VehicleModel struct {
	store store.VehicleStore
}

func NewVehicleModel(store store.VehicleStore) *VehicleModel {
	return &VehicleModel{store: store}
}

func (vm *VehicleModel) CreateVehicle(ctx context.Context, userID string, req *types.VehicleCreate) (*types.Vehicle, error) {
	log := logger.GetLogger()

	if err := validateVehicleCreate(req); err != nil {
		return nil, err
	}

	ownership := req.Ownership
	if ownership.Ownership == nil {
		ownership = types.OwnershipTerms{Ownership: types.Owned{}}
	}

	vehicle := &types.Vehicle{
		UserID:    userID,
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		FuelType:  req.FuelType,
		Ownership: ownership,
	}

	id, err := vm.store.CreateVehicle(ctx, vehicle)
	if err != nil {
		log.Errorw("Failed to create vehicle", "userId", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	if req.IsDefault {
		if err := vm.store.SetDefaultVehicle(ctx, userID, id); err != nil {
			log.Errorw("Failed to set new vehicle as default", "vehicleId", id, "error", err)
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	return vm.GetVehicle(ctx, userID, id)
}

// GetVehicle fetches a vehicle the user owns. Someone else's vehicle is
// reported as not found.
func (vm *VehicleModel) GetVehicle(ctx context.Context, userID, id string) (*types.Vehicle, error) {
	vehicle, err := vm.store.GetVehicle(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Vehicle", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if vehicle.UserID != userID {
		return nil, apperrors.NotFound("Vehicle", id)
	}
	return vehicle, nil
}

func (vm *VehicleModel) ListVehicles(ctx context.Context, userID string) ([]*types.Vehicle, error) {
	vehicles, err := vm.store.ListVehiclesByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return vehicles, nil
}

func (vm *VehicleModel) UpdateVehicle(ctx context.Context, userID, id string, update *types.VehicleUpdate) (*types.Vehicle, error) {
	if _, err := vm.GetVehicle(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := validateVehicleUpdate(update); err != nil {
		return nil, err
	}

	updated, err := vm.store.UpdateVehicle(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Vehicle", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return updated, nil
}

// SetDefault makes the given vehicle the user's only default one.
func (vm *VehicleModel) SetDefault(ctx context.Context, userID, id string) (*types.Vehicle, error) {
	if _, err := vm.GetVehicle(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := vm.store.SetDefaultVehicle(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Vehicle", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return vm.GetVehicle(ctx, userID, id)
}

func (vm *VehicleModel) DeleteVehicle(ctx context.Context, userID, id string) error {
	if _, err := vm.GetVehicle(ctx, userID, id); err != nil {
		return err
	}

	if err := vm.store.DeleteVehicle(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Vehicle", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

func validateVehicleCreate(req *types.VehicleCreate) error {
	var validationErrors []string

	if req.Make == "" {
		validationErrors = append(validationErrors, "make is required")
	}
	if req.Model == "" {
		validationErrors = append(validationErrors, "model is required")
	}
	if req.Year < 1990 || req.Year > time.Now().Year()+1 {
		validationErrors = append(validationErrors, fmt.Sprintf("year %d is out of range", req.Year))
	}
	if !req.FuelType.IsValid() {
		validationErrors = append(validationErrors, fmt.Sprintf("invalid fuel type: %s", req.FuelType))
	}

	if len(validationErrors) > 0 {
		return apperrors.ValidationFailed(
			"Invalid vehicle data",
			strings.Join(validationErrors, "; "),
		)
	}

	return nil
}

func validateVehicleUpdate(update *types.VehicleUpdate) error {
	if update.Make != nil && *update.Make == "" {
		return apperrors.ValidationFailed("Invalid update", "make cannot be empty")
	}
	if update.Model != nil && *update.Model == "" {
		return apperrors.ValidationFailed("Invalid update", "model cannot be empty")
	}
	if update.Year != nil && (*update.Year < 1990 || *update.Year > time.Now().Year()+1) {
		return apperrors.ValidationFailed("Invalid update", fmt.Sprintf("year %d is out of range", *update.Year))
	}
	if update.FuelType != nil && !update.FuelType.IsValid() {
		return apperrors.ValidationFailed("Invalid update", fmt.Sprintf("invalid fuel type: %s", *update.FuelType))
	}
	if update.Ownership != nil && update.Ownership.Ownership == nil {
		return apperrors.ValidationFailed("Invalid update", "ownership terms are incomplete")
	}
	return nil
}
