package models

import (
	"context"
	"testing"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVehicleModel_CreateVehicle(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"

	rent := 280.0
	rate := 25.0

	testCases := []struct {
		name      string
		req       *types.VehicleCreate
		wantErr   bool
		errDetail string
	}{
		{
			name: "owned vehicle",
			req: &types.VehicleCreate{
				Make:     "Toyota",
				Model:    "Prius",
				Year:     2021,
				FuelType: types.FuelTypeHybrid,
			},
		},
		{
			name: "rented vehicle with weekly rent",
			req: &types.VehicleCreate{
				Make:     "Dacia",
				Model:    "Logan",
				Year:     2019,
				FuelType: types.FuelTypeDiesel,
				Ownership: types.OwnershipTerms{
					Ownership: types.Rented{WeeklyRent: rent},
				},
			},
		},
		{
			name: "commission vehicle",
			req: &types.VehicleCreate{
				Make:     "Tesla",
				Model:    "Model 3",
				Year:     2023,
				FuelType: types.FuelTypeElectric,
				Ownership: types.OwnershipTerms{
					Ownership: types.Commission{Rate: rate},
				},
			},
		},
		{
			name: "missing make",
			req: &types.VehicleCreate{
				Model:    "Prius",
				Year:     2021,
				FuelType: types.FuelTypeHybrid,
			},
			wantErr:   true,
			errDetail: "make is required",
		},
		{
			name: "year before 1990",
			req: &types.VehicleCreate{
				Make:     "Ford",
				Model:    "Escort",
				Year:     1987,
				FuelType: types.FuelTypeGasoline,
			},
			wantErr:   true,
			errDetail: "year 1987 is out of range",
		},
		{
			name: "unknown fuel type",
			req: &types.VehicleCreate{
				Make:     "Toyota",
				Model:    "Prius",
				Year:     2021,
				FuelType: types.FuelType("STEAM"),
			},
			wantErr:   true,
			errDetail: "invalid fuel type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := new(MockVehicleStore)
			model := NewVehicleModel(mockStore)

			if !tc.wantErr {
				created := &types.Vehicle{
					ID:       "vehicle-1",
					UserID:   userID,
					Make:     tc.req.Make,
					Model:    tc.req.Model,
					Year:     tc.req.Year,
					FuelType: tc.req.FuelType,
				}
				mockStore.On("CreateVehicle", ctx, mock.AnythingOfType("*types.Vehicle")).
					Return("vehicle-1", nil)
				mockStore.On("GetVehicle", ctx, "vehicle-1").Return(created, nil)
			}

			vehicle, err := model.CreateVehicle(ctx, userID, tc.req)

			if tc.wantErr {
				require.Error(t, err)
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, apperrors.ValidationError, appErr.Type)
				assert.Contains(t, appErr.Detail, tc.errDetail)
				mockStore.AssertNotCalled(t, "CreateVehicle", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "vehicle-1", vehicle.ID)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestVehicleModel_CreateVehicle_DefaultsToOwned(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockVehicleStore)
	model := NewVehicleModel(mockStore)

	mockStore.On("CreateVehicle", ctx, mock.MatchedBy(func(v *types.Vehicle) bool {
		return v.Ownership.Ownership != nil && v.Ownership.Mode() == types.OwnershipOwned
	})).Return("vehicle-1", nil)
	mockStore.On("GetVehicle", ctx, "vehicle-1").Return(testVehicle("user-123"), nil)

	_, err := model.CreateVehicle(ctx, "user-123", &types.VehicleCreate{
		Make:     "Toyota",
		Model:    "Prius",
		Year:     2021,
		FuelType: types.FuelTypeHybrid,
	})

	require.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestVehicleModel_CreateVehicle_SetsDefault(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"
	mockStore := new(MockVehicleStore)
	model := NewVehicleModel(mockStore)

	vehicle := testVehicle(userID)
	vehicle.IsDefault = true

	mockStore.On("CreateVehicle", ctx, mock.AnythingOfType("*types.Vehicle")).
		Return(vehicle.ID, nil)
	mockStore.On("SetDefaultVehicle", ctx, userID, vehicle.ID).Return(nil)
	mockStore.On("GetVehicle", ctx, vehicle.ID).Return(vehicle, nil)

	got, err := model.CreateVehicle(ctx, userID, &types.VehicleCreate{
		Make:      "Toyota",
		Model:     "Prius",
		Year:      2021,
		FuelType:  types.FuelTypeHybrid,
		IsDefault: true,
	})

	require.NoError(t, err)
	assert.True(t, got.IsDefault)
	mockStore.AssertExpectations(t)
}

func TestVehicleModel_GetVehicle_Ownership(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockVehicleStore)
	model := NewVehicleModel(mockStore)

	foreign := testVehicle("someone-else")
	mockStore.On("GetVehicle", ctx, foreign.ID).Return(foreign, nil)

	_, err := model.GetVehicle(ctx, "user-123", foreign.ID)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}

func TestVehicleModel_SetDefault(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"
	mockStore := new(MockVehicleStore)
	model := NewVehicleModel(mockStore)

	vehicle := testVehicle(userID)
	mockStore.On("GetVehicle", ctx, vehicle.ID).Return(vehicle, nil)
	mockStore.On("SetDefaultVehicle", ctx, userID, vehicle.ID).Return(nil)

	_, err := model.SetDefault(ctx, userID, vehicle.ID)

	require.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestVehicleModel_UpdateVehicle_IncompleteOwnership(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"
	mockStore := new(MockVehicleStore)
	model := NewVehicleModel(mockStore)

	vehicle := testVehicle(userID)
	mockStore.On("GetVehicle", ctx, vehicle.ID).Return(vehicle, nil)

	_, err := model.UpdateVehicle(ctx, userID, vehicle.ID, &types.VehicleUpdate{
		Ownership: &types.OwnershipTerms{},
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	mockStore.AssertNotCalled(t, "UpdateVehicle", mock.Anything, mock.Anything, mock.Anything)
}
