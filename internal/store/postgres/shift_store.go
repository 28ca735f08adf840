package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/jackc/pgx/v5"
)

var _ store.ShiftStore = (*ShiftStore)(nil)

// ShiftStore implements store.ShiftStore using PostgreSQL.
type ShiftStore struct {
	db DB
}

// NewShiftStore creates a new ShiftStore instance.
func NewShiftStore(db DB) *ShiftStore {
	return &ShiftStore{db: db}
}

const shiftColumns = `id, user_id, vehicle_id, period_id, date, start_odometer, end_odometer, start_time, end_time, break_minutes, uber_earnings, bolt_earnings, tip_earnings, notes, created_at, updated_at`

func scanShift(row pgx.Row) (*types.Shift, error) {
	shift := &types.Shift{}
	err := row.Scan(
		&shift.ID,
		&shift.UserID,
		&shift.VehicleID,
		&shift.PeriodID,
		&shift.Date,
		&shift.StartOdometer,
		&shift.EndOdometer,
		&shift.StartTime,
		&shift.EndTime,
		&shift.BreakMinutes,
		&shift.UberEarnings,
		&shift.BoltEarnings,
		&shift.TipEarnings,
		&shift.Notes,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// CreateShift inserts a new shift and returns its generated ID.
func (s *ShiftStore) CreateShift(ctx context.Context, shift *types.Shift) (string, error) {
	query := `
		INSERT INTO shifts (user_id, vehicle_id, period_id, date, start_odometer, start_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id string
	row := s.db.QueryRow(ctx, query,
		shift.UserID,
		shift.VehicleID,
		shift.PeriodID,
		shift.Date,
		shift.StartOdometer,
		shift.StartTime,
		shift.Notes,
	)

	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("creating shift: %w", err)
	}

	return id, nil
}

// GetShift retrieves a shift by its ID.
func (s *ShiftStore) GetShift(ctx context.Context, id string) (*types.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1 AND deleted_at IS NULL`

	shift, err := scanShift(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting shift: %w", err)
	}

	return shift, nil
}

// ListShiftsByUser retrieves the user's shifts, most recent first.
func (s *ShiftStore) ListShiftsByUser(ctx context.Context, userID string, limit, offset int) ([]*types.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC, start_time DESC
		LIMIT $2 OFFSET $3`

	return s.list(ctx, query, userID, limit, offset)
}

// ListShiftsByPeriod retrieves every shift linked to a weekly period.
func (s *ShiftStore) ListShiftsByPeriod(ctx context.Context, periodID string) ([]*types.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE period_id = $1 AND deleted_at IS NULL
		ORDER BY date ASC, start_time ASC`

	return s.list(ctx, query, periodID)
}

// ListShiftsByVehicle retrieves every shift driven with a vehicle.
func (s *ShiftStore) ListShiftsByVehicle(ctx context.Context, vehicleID string) ([]*types.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE vehicle_id = $1 AND deleted_at IS NULL
		ORDER BY date ASC, start_time ASC`

	return s.list(ctx, query, vehicleID)
}

func (s *ShiftStore) list(ctx context.Context, query string, args ...any) ([]*types.Shift, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*types.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// UpdateShift updates an existing shift, typically to close it out with the
// end odometer, end time and earnings.
func (s *ShiftStore) UpdateShift(ctx context.Context, id string, update *types.ShiftUpdate) (*types.Shift, error) {
	query := `
		UPDATE shifts
		SET end_odometer = COALESCE($1, end_odometer),
			end_time = COALESCE($2, end_time),
			break_minutes = COALESCE($3, break_minutes),
			uber_earnings = COALESCE($4, uber_earnings),
			bolt_earnings = COALESCE($5, bolt_earnings),
			tip_earnings = COALESCE($6, tip_earnings),
			notes = COALESCE($7, notes),
			updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING ` + shiftColumns

	shift, err := scanShift(s.db.QueryRow(ctx, query,
		update.EndOdometer,
		update.EndTime,
		update.BreakMinutes,
		update.UberEarnings,
		update.BoltEarnings,
		update.TipEarnings,
		update.Notes,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating shift: %w", err)
	}

	return shift, nil
}

// DeleteShift soft deletes a shift.
func (s *ShiftStore) DeleteShift(ctx context.Context, id string) error {
	query := `
		UPDATE shifts
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting shift: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
