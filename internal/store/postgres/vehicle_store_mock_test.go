package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleRowNames() []string {
	return []string{"id", "user_id", "make", "model", "year", "fuel_type", "ownership_mode", "weekly_rent", "commission_rate", "is_default", "created_at", "updated_at"}
}

func TestVehicleStore_CreateVehicle(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	s := NewVehicleStore(mock)
	userID := uuid.NewString()
	vehicleID := uuid.NewString()

	t.Run("owned vehicle sends NULL ownership columns", func(t *testing.T) {
		vehicle := &types.Vehicle{
			UserID:    userID,
			Make:      "Toyota",
			Model:     "Corolla",
			Year:      2022,
			FuelType:  types.FuelTypeHybrid,
			Ownership: types.OwnershipTerms{Ownership: types.Owned{}},
		}

		mock.ExpectQuery(`INSERT INTO vehicles`).
			WithArgs(userID, "Toyota", "Corolla", 2022, types.FuelTypeHybrid,
				types.OwnershipOwned, (*float64)(nil), (*float64)(nil), false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(vehicleID))

		id, err := s.CreateVehicle(context.Background(), vehicle)
		require.NoError(t, err)
		assert.Equal(t, vehicleID, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rented vehicle sends rent and NULL commission", func(t *testing.T) {
		vehicle := &types.Vehicle{
			UserID:    userID,
			Make:      "Renault",
			Model:     "Clio",
			Year:      2021,
			FuelType:  types.FuelTypeDiesel,
			Ownership: types.OwnershipTerms{Ownership: types.Rented{WeeklyRent: 280}},
		}

		rent := 280.0
		mock.ExpectQuery(`INSERT INTO vehicles`).
			WithArgs(userID, "Renault", "Clio", 2021, types.FuelTypeDiesel,
				types.OwnershipRented, &rent, (*float64)(nil), false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(vehicleID))

		id, err := s.CreateVehicle(context.Background(), vehicle)
		require.NoError(t, err)
		assert.Equal(t, vehicleID, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commission vehicle sends rate and NULL rent", func(t *testing.T) {
		vehicle := &types.Vehicle{
			UserID:    userID,
			Make:      "Tesla",
			Model:     "Model 3",
			Year:      2023,
			FuelType:  types.FuelTypeElectric,
			Ownership: types.OwnershipTerms{Ownership: types.Commission{Rate: 25}},
		}

		rate := 25.0
		mock.ExpectQuery(`INSERT INTO vehicles`).
			WithArgs(userID, "Tesla", "Model 3", 2023, types.FuelTypeElectric,
				types.OwnershipCommission, (*float64)(nil), &rate, false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(vehicleID))

		id, err := s.CreateVehicle(context.Background(), vehicle)
		require.NoError(t, err)
		assert.Equal(t, vehicleID, id)
	})
}

func TestVehicleStore_GetVehicle(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	s := NewVehicleStore(mock)
	vehicleID := uuid.NewString()
	userID := uuid.NewString()
	now := time.Now()

	t.Run("NULL ownership columns rebuild an owned vehicle", func(t *testing.T) {
		rows := pgxmock.NewRows(vehicleRowNames()).AddRow(
			vehicleID, userID, "Toyota", "Corolla", 2022, types.FuelTypeHybrid,
			types.OwnershipOwned, nil, nil, true, now, now,
		)

		mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id = \$1`).
			WithArgs(vehicleID).
			WillReturnRows(rows)

		got, err := s.GetVehicle(context.Background(), vehicleID)
		require.NoError(t, err)
		assert.Equal(t, types.OwnershipOwned, got.Ownership.Mode())
		assert.True(t, got.IsDefault)
	})

	t.Run("rented row rebuilds the weekly rent", func(t *testing.T) {
		rent := 280.0
		rows := pgxmock.NewRows(vehicleRowNames()).AddRow(
			vehicleID, userID, "Renault", "Clio", 2021, types.FuelTypeDiesel,
			types.OwnershipRented, &rent, nil, false, now, now,
		)

		mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id = \$1`).
			WithArgs(vehicleID).
			WillReturnRows(rows)

		got, err := s.GetVehicle(context.Background(), vehicleID)
		require.NoError(t, err)
		assert.Equal(t, types.OwnershipRented, got.Ownership.Mode())
		assert.InDelta(t, 280.0, got.Ownership.WeeklyCost(1000), 0.0001)
	})

	t.Run("vehicle not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id = \$1`).
			WithArgs("nonexistent").
			WillReturnRows(pgxmock.NewRows(vehicleRowNames()))

		_, err := s.GetVehicle(context.Background(), "nonexistent")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
