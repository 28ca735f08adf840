package models

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/internal/store"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPeriodStore struct {
	mock.Mock
}

func (m *MockPeriodStore) CreatePeriod(ctx context.Context, period *types.WeeklyPeriod) (string, error) {
	args := m.Called(ctx, period)
	return args.String(0), args.Error(1)
}

func (m *MockPeriodStore) GetPeriod(ctx context.Context, id string) (*types.WeeklyPeriod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeeklyPeriod), args.Error(1)
}

func (m *MockPeriodStore) ListPeriodsByUser(ctx context.Context, userID string) ([]*types.WeeklyPeriod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.WeeklyPeriod), args.Error(1)
}

func (m *MockPeriodStore) UpdatePeriod(ctx context.Context, id string, update *types.PeriodUpdate) (*types.WeeklyPeriod, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeeklyPeriod), args.Error(1)
}

func (m *MockPeriodStore) SetActivePeriod(ctx context.Context, userID, periodID string) error {
	args := m.Called(ctx, userID, periodID)
	return args.Error(0)
}

func (m *MockPeriodStore) DeletePeriod(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func existingJunePeriod(userID string) *types.WeeklyPeriod {
	return &types.WeeklyPeriod{
		ID:        "period-june",
		UserID:    userID,
		Name:      "Semana 23",
		StartDate: day(2026, time.June, 5),
		EndDate:   day(2026, time.June, 11),
	}
}

func TestPeriodModel_CreatePeriod_OverlapRules(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantError bool
	}{
		{
			name:      "overlapping start is rejected",
			start:     day(2026, time.June, 8),
			end:       day(2026, time.June, 14),
			wantError: true,
		},
		{
			name:      "overlapping end is rejected",
			start:     day(2026, time.June, 1),
			end:       day(2026, time.June, 7),
			wantError: true,
		},
		{
			name:      "enclosing window is rejected",
			start:     day(2026, time.June, 1),
			end:       day(2026, time.June, 20),
			wantError: true,
		},
		{
			name:      "shared boundary day is rejected",
			start:     day(2026, time.June, 11),
			end:       day(2026, time.June, 17),
			wantError: true,
		},
		{
			name:      "adjacent window starting the next day is accepted",
			start:     day(2026, time.June, 12),
			end:       day(2026, time.June, 18),
			wantError: false,
		},
		{
			name:      "window before the existing one is accepted",
			start:     day(2026, time.May, 25),
			end:       day(2026, time.May, 31),
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockPeriodStore)
			model := NewPeriodModel(mockStore)

			mockStore.On("ListPeriodsByUser", ctx, userID).
				Return([]*types.WeeklyPeriod{existingJunePeriod(userID)}, nil).Once()

			req := &types.PeriodCreate{
				Name:      "Semana nova",
				StartDate: tt.start,
				EndDate:   tt.end,
			}

			if !tt.wantError {
				created := &types.WeeklyPeriod{
					ID:        "period-new",
					UserID:    userID,
					Name:      req.Name,
					StartDate: tt.start,
					EndDate:   tt.end,
				}
				mockStore.On("CreatePeriod", ctx, mock.AnythingOfType("*types.WeeklyPeriod")).
					Return("period-new", nil).Once()
				mockStore.On("GetPeriod", ctx, "period-new").
					Return(created, nil).Once()
			}

			_, err := model.CreatePeriod(ctx, userID, req)
			if tt.wantError {
				require.Error(t, err)
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, apperrors.ConflictError, appErr.Type)
			} else {
				require.NoError(t, err)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestPeriodModel_CreatePeriod_Validation(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockPeriodStore)
	model := NewPeriodModel(mockStore)

	t.Run("end before start", func(t *testing.T) {
		_, err := model.CreatePeriod(ctx, "user-123", &types.PeriodCreate{
			Name:      "Semana invertida",
			StartDate: day(2026, time.June, 14),
			EndDate:   day(2026, time.June, 8),
		})
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := model.CreatePeriod(ctx, "user-123", &types.PeriodCreate{
			StartDate: day(2026, time.June, 8),
			EndDate:   day(2026, time.June, 14),
		})
		require.Error(t, err)
	})
}

func TestPeriodModel_UpdatePeriod_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"
	mockStore := new(MockPeriodStore)
	model := NewPeriodModel(mockStore)

	period := existingJunePeriod(userID)
	newEnd := day(2026, time.June, 10)
	update := &types.PeriodUpdate{EndDate: &newEnd}
	updated := *period
	updated.EndDate = newEnd

	mockStore.On("GetPeriod", ctx, period.ID).Return(period, nil).Once()
	// The overlap check sees the period itself in the listing and must skip it.
	mockStore.On("ListPeriodsByUser", ctx, userID).
		Return([]*types.WeeklyPeriod{period}, nil).Once()
	mockStore.On("UpdatePeriod", ctx, period.ID, update).Return(&updated, nil).Once()

	got, err := model.UpdatePeriod(ctx, userID, period.ID, update)
	require.NoError(t, err)
	assert.Equal(t, newEnd, got.EndDate)
	mockStore.AssertExpectations(t)
}

func TestPeriodModel_GetPeriod_Ownership(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockPeriodStore)
	model := NewPeriodModel(mockStore)

	t.Run("unknown period", func(t *testing.T) {
		mockStore.On("GetPeriod", ctx, "missing").Return(nil, store.ErrNotFound).Once()

		_, err := model.GetPeriod(ctx, "user-123", "missing")
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})

	t.Run("someone else's period reads as not found", func(t *testing.T) {
		other := existingJunePeriod("user-999")
		mockStore.On("GetPeriod", ctx, other.ID).Return(other, nil).Once()

		_, err := model.GetPeriod(ctx, "user-123", other.ID)
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	})
}

func TestPeriodModel_SetActive(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"
	mockStore := new(MockPeriodStore)
	model := NewPeriodModel(mockStore)

	period := existingJunePeriod(userID)
	activated := *period
	activated.IsActive = true

	mockStore.On("GetPeriod", ctx, period.ID).Return(period, nil).Once()
	mockStore.On("SetActivePeriod", ctx, userID, period.ID).Return(nil).Once()
	mockStore.On("GetPeriod", ctx, period.ID).Return(&activated, nil).Once()

	got, err := model.SetActive(ctx, userID, period.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	mockStore.AssertExpectations(t)
}

func TestPeriodModel_DeletePeriod(t *testing.T) {
	ctx := context.Background()
	userID := "user-123"

	t.Run("active period cannot be deleted", func(t *testing.T) {
		mockStore := new(MockPeriodStore)
		model := NewPeriodModel(mockStore)

		active := existingJunePeriod(userID)
		active.IsActive = true
		mockStore.On("GetPeriod", ctx, active.ID).Return(active, nil).Once()

		err := model.DeletePeriod(ctx, userID, active.ID)
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ConflictError, appErr.Type)
		mockStore.AssertNotCalled(t, "DeletePeriod", mock.Anything, mock.Anything)
	})

	t.Run("inactive period is deleted", func(t *testing.T) {
		mockStore := new(MockPeriodStore)
		model := NewPeriodModel(mockStore)

		period := existingJunePeriod(userID)
		mockStore.On("GetPeriod", ctx, period.ID).Return(period, nil).Once()
		mockStore.On("DeletePeriod", ctx, period.ID).Return(nil).Once()

		require.NoError(t, model.DeletePeriod(ctx, userID, period.ID))
		mockStore.AssertExpectations(t)
	})
}
