package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/jackc/pgx/v5"
)

// Ensure PeriodStore implements store.PeriodStore.
var _ store.PeriodStore = (*PeriodStore)(nil)

// PeriodStore implements store.PeriodStore using PostgreSQL.
type PeriodStore struct {
	db DB
}

// NewPeriodStore creates a new PeriodStore instance.
func NewPeriodStore(db DB) *PeriodStore {
	return &PeriodStore{db: db}
}

// CreatePeriod inserts a new weekly period and returns its generated ID.
func (s *PeriodStore) CreatePeriod(ctx context.Context, period *types.WeeklyPeriod) (string, error) {
	query := `
		INSERT INTO weekly_periods (user_id, name, start_date, end_date, weekly_goal, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	row := s.db.QueryRow(ctx, query,
		period.UserID,
		period.Name,
		period.StartDate,
		period.EndDate,
		period.WeeklyGoal,
		period.IsActive,
	)

	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("creating weekly period: %w", err)
	}

	return id, nil
}

// GetPeriod retrieves a weekly period by its ID.
func (s *PeriodStore) GetPeriod(ctx context.Context, id string) (*types.WeeklyPeriod, error) {
	query := `
		SELECT id, user_id, name, start_date, end_date, weekly_goal, is_active, created_at, updated_at
		FROM weekly_periods
		WHERE id = $1 AND deleted_at IS NULL`

	period := &types.WeeklyPeriod{}
	row := s.db.QueryRow(ctx, query, id)

	err := row.Scan(
		&period.ID,
		&period.UserID,
		&period.Name,
		&period.StartDate,
		&period.EndDate,
		&period.WeeklyGoal,
		&period.IsActive,
		&period.CreatedAt,
		&period.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting weekly period: %w", err)
	}

	return period, nil
}

// ListPeriodsByUser retrieves every period owned by the user, most recent
// start date first.
func (s *PeriodStore) ListPeriodsByUser(ctx context.Context, userID string) ([]*types.WeeklyPeriod, error) {
	query := `
		SELECT id, user_id, name, start_date, end_date, weekly_goal, is_active, created_at, updated_at
		FROM weekly_periods
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing weekly periods: %w", err)
	}
	defer rows.Close()

	var periods []*types.WeeklyPeriod
	for rows.Next() {
		period := &types.WeeklyPeriod{}
		err := rows.Scan(
			&period.ID,
			&period.UserID,
			&period.Name,
			&period.StartDate,
			&period.EndDate,
			&period.WeeklyGoal,
			&period.IsActive,
			&period.CreatedAt,
			&period.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning weekly period: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}

// UpdatePeriod updates an existing weekly period.
func (s *PeriodStore) UpdatePeriod(ctx context.Context, id string, update *types.PeriodUpdate) (*types.WeeklyPeriod, error) {
	query := `
		UPDATE weekly_periods
		SET name = COALESCE($1, name),
			start_date = COALESCE($2, start_date),
			end_date = COALESCE($3, end_date),
			weekly_goal = COALESCE($4, weekly_goal),
			updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
		RETURNING id, user_id, name, start_date, end_date, weekly_goal, is_active, created_at, updated_at`

	period := &types.WeeklyPeriod{}
	row := s.db.QueryRow(ctx, query,
		update.Name,
		update.StartDate,
		update.EndDate,
		update.WeeklyGoal,
		id,
	)

	err := row.Scan(
		&period.ID,
		&period.UserID,
		&period.Name,
		&period.StartDate,
		&period.EndDate,
		&period.WeeklyGoal,
		&period.IsActive,
		&period.CreatedAt,
		&period.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating weekly period: %w", err)
	}

	return period, nil
}

// SetActivePeriod deactivates every other period of the user and activates
// the given one. Both writes run in one transaction so a concurrent reader
// never observes two active periods.
func (s *PeriodStore) SetActivePeriod(ctx context.Context, userID, periodID string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning set-active transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		UPDATE weekly_periods
		SET is_active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND is_active AND id <> $2 AND deleted_at IS NULL`,
		userID, periodID)
	if err != nil {
		return fmt.Errorf("deactivating sibling periods: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE weekly_periods
		SET is_active = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		periodID, userID)
	if err != nil {
		return fmt.Errorf("activating period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return tx.Commit(ctx)
}

// DeletePeriod soft deletes a weekly period.
func (s *PeriodStore) DeletePeriod(ctx context.Context, id string) error {
	query := `
		UPDATE weekly_periods
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting weekly period: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
