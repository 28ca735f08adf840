package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/jackc/pgx/v5"
)

var _ store.ExpenseStore = (*ExpenseStore)(nil)

// ExpenseStore implements store.ExpenseStore using PostgreSQL.
type ExpenseStore struct {
	db DB
}

// NewExpenseStore creates a new ExpenseStore instance.
func NewExpenseStore(db DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

const expenseColumns = `id, user_id, period_id, date, amount, category, notes, created_at, updated_at`

func scanExpense(row pgx.Row) (*types.Expense, error) {
	expense := &types.Expense{}
	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.PeriodID,
		&expense.Date,
		&expense.Amount,
		&expense.Category,
		&expense.Notes,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// CreateExpense inserts a new expense and returns its generated ID.
func (s *ExpenseStore) CreateExpense(ctx context.Context, expense *types.Expense) (string, error) {
	query := `
		INSERT INTO expenses (user_id, period_id, date, amount, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	row := s.db.QueryRow(ctx, query,
		expense.UserID,
		expense.PeriodID,
		expense.Date,
		expense.Amount,
		expense.Category,
		expense.Notes,
	)

	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("creating expense: %w", err)
	}

	return id, nil
}

// GetExpense retrieves an expense by its ID.
func (s *ExpenseStore) GetExpense(ctx context.Context, id string) (*types.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE id = $1 AND deleted_at IS NULL`

	expense, err := scanExpense(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return expense, nil
}

// ListExpensesByPeriod retrieves every expense booked against a period.
func (s *ExpenseStore) ListExpensesByPeriod(ctx context.Context, periodID string) ([]*types.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE period_id = $1 AND deleted_at IS NULL
		ORDER BY date ASC`

	rows, err := s.db.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*types.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

// UpdateExpense updates an existing expense.
func (s *ExpenseStore) UpdateExpense(ctx context.Context, id string, update *types.ExpenseUpdate) (*types.Expense, error) {
	query := `
		UPDATE expenses
		SET date = COALESCE($1, date),
			amount = COALESCE($2, amount),
			category = COALESCE($3, category),
			notes = COALESCE($4, notes),
			updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
		RETURNING ` + expenseColumns

	expense, err := scanExpense(s.db.QueryRow(ctx, query,
		update.Date,
		update.Amount,
		update.Category,
		update.Notes,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating expense: %w", err)
	}

	return expense, nil
}

// DeleteExpense soft deletes an expense.
func (s *ExpenseStore) DeleteExpense(ctx context.Context, id string) error {
	query := `
		UPDATE expenses
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
