package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
)

// ExpenseModel enforces expense business rules: a valid category and a date
// inside the owning period's window.
type ExpenseModel struct {
	store       store.ExpenseStore
	periodModel *PeriodModel
}

func NewExpenseModel(store store.ExpenseStore, periodModel *PeriodModel) *ExpenseModel {
	return &ExpenseModel{
		store:       store,
		periodModel: periodModel,
	}
}

func (em *ExpenseModel) CreateExpense(ctx context.Context, userID string, req *types.ExpenseCreate) (*types.Expense, error) {
	log := logger.GetLogger()

	if err := validateExpenseCreate(req); err != nil {
		return nil, err
	}

	period, err := em.periodModel.GetPeriod(ctx, userID, req.PeriodID)
	if err != nil {
		return nil, err
	}
	if err := validateExpenseDate(period, req.Date); err != nil {
		return nil, err
	}

	expense := &types.Expense{
		UserID:   userID,
		PeriodID: req.PeriodID,
		Date:     req.Date,
		Amount:   req.Amount,
		Category: req.Category,
		Notes:    req.Notes,
	}

	id, err := em.store.CreateExpense(ctx, expense)
	if err != nil {
		log.Errorw("Failed to create expense", "userId", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return em.GetExpense(ctx, userID, id)
}

// GetExpense fetches an expense the user owns. Someone else's expense is
// reported as not found.
func (em *ExpenseModel) GetExpense(ctx context.Context, userID, id string) (*types.Expense, error) {
	expense, err := em.store.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Expense", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if expense.UserID != userID {
		return nil, apperrors.NotFound("Expense", id)
	}
	return expense, nil
}

func (em *ExpenseModel) ListExpensesByPeriod(ctx context.Context, userID, periodID string) ([]*types.Expense, error) {
	if _, err := em.periodModel.GetPeriod(ctx, userID, periodID); err != nil {
		return nil, err
	}

	expenses, err := em.store.ListExpensesByPeriod(ctx, periodID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return expenses, nil
}

func (em *ExpenseModel) UpdateExpense(ctx context.Context, userID, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
	current, err := em.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := validateExpenseUpdate(update); err != nil {
		return nil, err
	}

	// A moved expense must still land inside its period.
	if update.Date != nil {
		period, err := em.periodModel.GetPeriod(ctx, userID, current.PeriodID)
		if err != nil {
			return nil, err
		}
		if err := validateExpenseDate(period, *update.Date); err != nil {
			return nil, err
		}
	}

	updated, err := em.store.UpdateExpense(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Expense", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return updated, nil
}

func (em *ExpenseModel) DeleteExpense(ctx context.Context, userID, id string) error {
	if _, err := em.GetExpense(ctx, userID, id); err != nil {
		return err
	}

	if err := em.store.DeleteExpense(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Expense", id)
		}
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

func validateExpenseCreate(req *types.ExpenseCreate) error {
	var validationErrors []string

	if req.PeriodID == "" {
		validationErrors = append(validationErrors, "period ID is required")
	}
	if req.Date.IsZero() {
		validationErrors = append(validationErrors, "date is required")
	}
	if req.Amount <= 0 {
		validationErrors = append(validationErrors, "amount must be positive")
	}
	if !req.Category.IsValid() {
		validationErrors = append(validationErrors, fmt.Sprintf("invalid category: %s", req.Category))
	}

	if len(validationErrors) > 0 {
		return apperrors.ValidationFailed(
			"Invalid expense data",
			strings.Join(validationErrors, "; "),
		)
	}

	return nil
}

func validateExpenseUpdate(update *types.ExpenseUpdate) error {
	if update.Amount != nil && *update.Amount <= 0 {
		return apperrors.ValidationFailed("Invalid update", "amount must be positive")
	}
	if update.Category != nil && !update.Category.IsValid() {
		return apperrors.ValidationFailed("Invalid update", fmt.Sprintf("invalid category: %s", *update.Category))
	}
	return nil
}
