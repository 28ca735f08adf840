package models

import (
	"context"
	"errors"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

// PeriodModel enforces the weekly period business rules: no two periods of a
// user may overlap, and at most one is active at a time.
type PeriodModel struct {
	store store.PeriodStore
}

func NewPeriodModel(store store.PeriodStore) *PeriodModel {
	return &PeriodModel{store: store}
}

func (pm *PeriodModel) CreatePeriod(ctx context.Context, userID string, req *types.PeriodCreate) (*types.WeeklyPeriod, error) {
	log := logger.GetLogger()

	if req.Name == "" {
		return nil, apperrors.ValidationFailed("Invalid period data", "name is required")
	}
	if err := validatePeriodDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	existing, err := pm.store.ListPeriodsByUser(ctx, userID)
	if err != nil {
		log.Errorw("Failed to list periods for overlap check", "userId", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	if err := checkPeriodOverlap(existing, req.StartDate, req.EndDate, ""); err != nil {
		return nil, err
	}

	period := &types.WeeklyPeriod{
		UserID:     userID,
		Name:       req.Name,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		WeeklyGoal: req.WeeklyGoal,
	}

	id, err := pm.store.CreatePeriod(ctx, period)
	if err != nil {
		log.Errorw("Failed to create period", "userId", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	if req.IsActive {
		if err := pm.store.SetActivePeriod(ctx, userID, id); err != nil {
			log.Errorw("Failed to activate new period", "periodId", id, "error", err)
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	return pm.GetPeriod(ctx, userID, id)
}

// GetPeriod fetches a period the user owns. A period belonging to someone else
// is reported as not found rather than forbidden.
func (pm *PeriodModel) GetPeriod(ctx context.Context, userID, id string) (*types.WeeklyPeriod, error) {
	period, err := pm.store.GetPeriod(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Period", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if period.UserID != userID {
		return nil, apperrors.NotFound("Period", id)
	}
	return period, nil
}

func (pm *PeriodModel) ListPeriods(ctx context.Context, userID string) ([]*types.WeeklyPeriod, error) {
	periods, err := pm.store.ListPeriodsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return periods, nil
}

// GetActivePeriod returns the user's single active period, or a not-found
// error when no period is active.
func (pm *PeriodModel) GetActivePeriod(ctx context.Context, userID string) (*types.WeeklyPeriod, error) {
	periods, err := pm.store.ListPeriodsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	for _, p := range periods {
		if p.IsActive {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("Active period", userID)
}

func (pm *PeriodModel) UpdatePeriod(ctx context.Context, userID, id string, update *types.PeriodUpdate) (*types.WeeklyPeriod, error) {
	log := logger.GetLogger()

	current, err := pm.GetPeriod(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name == "" {
		return nil, apperrors.ValidationFailed("Invalid update", "name cannot be empty")
	}

	start := current.StartDate
	end := current.EndDate
	if update.StartDate != nil {
		start = *update.StartDate
	}
	if update.EndDate != nil {
		end = *update.EndDate
	}

	if update.StartDate != nil || update.EndDate != nil {
		if err := validatePeriodDates(start, end); err != nil {
			return nil, err
		}
		existing, err := pm.store.ListPeriodsByUser(ctx, userID)
		if err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
		if err := checkPeriodOverlap(existing, start, end, id); err != nil {
			return nil, err
		}
	}

	updated, err := pm.store.UpdatePeriod(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Period", id)
		}
		log.Errorw("Failed to update period", "periodId", id, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return updated, nil
}

// SetActive makes the given period the user's only active one.
func (pm *PeriodModel) SetActive(ctx context.Context, userID, id string) (*types.WeeklyPeriod, error) {
	if _, err := pm.GetPeriod(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := pm.store.SetActivePeriod(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Period", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return pm.GetPeriod(ctx, userID, id)
}

// DeletePeriod removes a period. The active period cannot be deleted; it has
// to be deactivated by activating another one first.
func (pm *PeriodModel) DeletePeriod(ctx context.Context, userID, id string) error {
	period, err := pm.GetPeriod(ctx, userID, id)
	if err != nil {
		return err
	}

	if period.IsActive {
		return apperrors.NewConflictError(
			"Cannot delete active period",
			"activate another period before deleting this one",
		)
	}

	if err := pm.store.DeletePeriod(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Period", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	return nil
}
