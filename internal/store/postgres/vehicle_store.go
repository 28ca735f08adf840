package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/jackc/pgx/v5"
)

var _ store.VehicleStore = (*VehicleStore)(nil)

// VehicleStore implements store.VehicleStore using PostgreSQL. The ownership
// tagged union is flattened into mode plus two nullable columns and rebuilt
// on scan.
type VehicleStore struct {
	db DB
}

// NewVehicleStore creates a new VehicleStore instance.
func NewVehicleStore(db DB) *VehicleStore {
	return &VehicleStore{db: db}
}

const vehicleColumns = `id, user_id, make, model, year, fuel_type, ownership_mode, weekly_rent, commission_rate, is_default, created_at, updated_at`

func scanVehicle(row pgx.Row) (*types.Vehicle, error) {
	vehicle := &types.Vehicle{}
	var mode types.OwnershipMode
	var weeklyRent, commissionRate *float64

	err := row.Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.FuelType,
		&mode,
		&weeklyRent,
		&commissionRate,
		&vehicle.IsDefault,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ownership, err := types.NewOwnership(mode, weeklyRent, commissionRate)
	if err != nil {
		return nil, fmt.Errorf("rebuilding ownership for vehicle %s: %w", vehicle.ID, err)
	}
	vehicle.Ownership = types.OwnershipTerms{Ownership: ownership}

	return vehicle, nil
}

func ownershipColumns(o types.Ownership) (types.OwnershipMode, *float64, *float64) {
	switch v := o.(type) {
	case types.Rented:
		return v.Mode(), &v.WeeklyRent, nil
	case types.Commission:
		return v.Mode(), nil, &v.Rate
	default:
		return types.OwnershipOwned, nil, nil
	}
}

// CreateVehicle inserts a new vehicle and returns its generated ID.
func (s *VehicleStore) CreateVehicle(ctx context.Context, vehicle *types.Vehicle) (string, error) {
	mode, rent, rate := ownershipColumns(vehicle.Ownership.Ownership)

	query := `
		INSERT INTO vehicles (user_id, make, model, year, fuel_type, ownership_mode, weekly_rent, commission_rate, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id string
	row := s.db.QueryRow(ctx, query,
		vehicle.UserID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.FuelType,
		mode,
		rent,
		rate,
		vehicle.IsDefault,
	)

	if err := row.Scan(&id); err != nil {
		return "", fmt.Errorf("creating vehicle: %w", err)
	}

	return id, nil
}

// GetVehicle retrieves a vehicle by its ID.
func (s *VehicleStore) GetVehicle(ctx context.Context, id string) (*types.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1 AND deleted_at IS NULL`

	vehicle, err := scanVehicle(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return vehicle, nil
}

// ListVehiclesByUser retrieves all vehicles owned by the user, default first.
func (s *VehicleStore) ListVehiclesByUser(ctx context.Context, userID string) ([]*types.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY is_default DESC, created_at ASC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*types.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

// UpdateVehicle updates an existing vehicle.
func (s *VehicleStore) UpdateVehicle(ctx context.Context, id string, update *types.VehicleUpdate) (*types.Vehicle, error) {
	var mode *types.OwnershipMode
	var rent, rate *float64
	if update.Ownership != nil {
		m, r, c := ownershipColumns(update.Ownership.Ownership)
		mode, rent, rate = &m, r, c
	}

	// Ownership columns move together: when the mode changes, the unused
	// mode-specific column must be cleared, not coalesced.
	query := `
		UPDATE vehicles
		SET make = COALESCE($1, make),
			model = COALESCE($2, model),
			year = COALESCE($3, year),
			fuel_type = COALESCE($4, fuel_type),
			ownership_mode = COALESCE($5, ownership_mode),
			weekly_rent = CASE WHEN $5::text IS NULL THEN weekly_rent ELSE $6 END,
			commission_rate = CASE WHEN $5::text IS NULL THEN commission_rate ELSE $7 END,
			updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(s.db.QueryRow(ctx, query,
		update.Make,
		update.Model,
		update.Year,
		update.FuelType,
		mode,
		rent,
		rate,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating vehicle: %w", err)
	}

	return vehicle, nil
}

// SetDefaultVehicle clears the user's previous default and marks the given
// vehicle, both inside one transaction.
func (s *VehicleStore) SetDefaultVehicle(ctx context.Context, userID, vehicleID string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning set-default transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		UPDATE vehicles
		SET is_default = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND is_default AND id <> $2 AND deleted_at IS NULL`,
		userID, vehicleID)
	if err != nil {
		return fmt.Errorf("clearing previous default vehicle: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE vehicles
		SET is_default = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		vehicleID, userID)
	if err != nil {
		return fmt.Errorf("setting default vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return tx.Commit(ctx)
}

// DeleteVehicle soft deletes a vehicle.
func (s *VehicleStore) DeleteVehicle(ctx context.Context, id string) error {
	query := `
		UPDATE vehicles
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting vehicle: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
