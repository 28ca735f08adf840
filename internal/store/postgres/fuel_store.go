package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/jackc/pgx/v5"
)

var _ store.FuelStore = (*FuelStore)(nil)

// FuelStore implements store.FuelStore using PostgreSQL.
type FuelStore struct {
	db DB
}

// NewFuelStore creates a new FuelStore instance.
func NewFuelStore(db DB) *FuelStore {
	return &FuelStore{db: db}
}

const fuelColumns = `id, user_id, vehicle_id, shift_id, period_id, date, odometer, amount, price_per_unit, total_price, full_tank, created_at, updated_at`

func scanFuelRecord(row pgx.Row) (*types.FuelRecord, error) {
	record := &types.FuelRecord{}
	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.VehicleID,
		&record.ShiftID,
		&record.PeriodID,
		&record.Date,
		&record.Odometer,
		&record.Amount,
		&record.PricePerUnit,
		&record.TotalPrice,
		&record.FullTank,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CreateFuelRecord inserts a new fuel record and returns its generated ID.
func (s *FuelStore) CreateFuelRecord(ctx context.Context, record *types.FuelRecord) (string, error) {
	query := `
		INSERT INTO fuel_records (user_id, vehicle_id, shift_id, period_id, date, odometer, amount, price_per_unit, total_price, full_tank)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id string
	row := s.db.QueryRow(ctx, query,
		record.UserID,
		record.VehicleID,
		record.ShiftID,
		record.PeriodID,
		record.Date,
		record.Odometer,
		record.Amount,
		record.PricePerUnit,
		record.TotalPrice,
		record.FullTank,
	)

	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("creating fuel record: %w", err)
	}

	return id, nil
}

// GetFuelRecord retrieves a fuel record by its ID.
func (s *FuelStore) GetFuelRecord(ctx context.Context, id string) (*types.FuelRecord, error) {
	query := `
		SELECT ` + fuelColumns + `
		FROM fuel_records
		WHERE id = $1 AND deleted_at IS NULL`

	record, err := scanFuelRecord(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting fuel record: %w", err)
	}

	return record, nil
}

// ListFuelByVehicle retrieves a vehicle's fuel records in date order.
func (s *FuelStore) ListFuelByVehicle(ctx context.Context, vehicleID string) ([]*types.FuelRecord, error) {
	query := `
		SELECT ` + fuelColumns + `
		FROM fuel_records
		WHERE vehicle_id = $1 AND deleted_at IS NULL
		ORDER BY date ASC, odometer ASC`

	return s.list(ctx, query, vehicleID)
}

// ListFuelByShift retrieves the fuel records linked to a shift.
func (s *FuelStore) ListFuelByShift(ctx context.Context, shiftID string) ([]*types.FuelRecord, error) {
	query := `
		SELECT ` + fuelColumns + `
		FROM fuel_records
		WHERE shift_id = $1 AND deleted_at IS NULL
		ORDER BY date ASC, odometer ASC`

	return s.list(ctx, query, shiftID)
}

// ListFuelByPeriod retrieves the fuel records linked to a weekly period.
func (s *FuelStore) ListFuelByPeriod(ctx context.Context, periodID string) ([]*types.FuelRecord, error) {
	query := `
		SELECT ` + fuelColumns + `
		FROM fuel_records
		WHERE period_id = $1 AND deleted_at IS NULL
		ORDER BY date ASC, odometer ASC`

	return s.list(ctx, query, periodID)
}

func (s *FuelStore) list(ctx context.Context, query string, args ...any) ([]*types.FuelRecord, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fuel records: %w", err)
	}
	defer rows.Close()

	var records []*types.FuelRecord
	for rows.Next() {
		record, err := scanFuelRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fuel record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateFuelRecord updates an existing fuel record.
func (s *FuelStore) UpdateFuelRecord(ctx context.Context, id string, update *types.FuelRecordUpdate) (*types.FuelRecord, error) {
	query := `
		UPDATE fuel_records
		SET date = COALESCE($1, date),
			odometer = COALESCE($2, odometer),
			amount = COALESCE($3, amount),
			price_per_unit = COALESCE($4, price_per_unit),
			total_price = COALESCE($5, total_price),
			full_tank = COALESCE($6, full_tank),
			updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
		RETURNING ` + fuelColumns

	record, err := scanFuelRecord(s.db.QueryRow(ctx, query,
		update.Date,
		update.Odometer,
		update.Amount,
		update.PricePerUnit,
		update.TotalPrice,
		update.FullTank,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating fuel record: %w", err)
	}

	return record, nil
}

// DeleteFuelRecord soft deletes a fuel record.
func (s *FuelStore) DeleteFuelRecord(ctx context.Context, id string) error {
	query := `
		UPDATE fuel_records
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting fuel record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
