package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Claudio-Lins/amigo-tvde-backend/models"
	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPeriodHandlerTest(t *testing.T) (*mockPeriodStore, *PeriodHandler) {
	t.Helper()
	mockStore := new(mockPeriodStore)
	periodModel := models.NewPeriodModel(mockStore)
	reportService := services.NewReportService(nil, nil, periodModel, nil, nil, nil)
	return mockStore, NewPeriodHandler(periodModel, reportService)
}

func TestCreatePeriodHandler(t *testing.T) {
	mockStore, handler := newPeriodHandlerTest(t)

	created := &types.WeeklyPeriod{
		ID:        "period-1",
		UserID:    testUserID,
		Name:      "Semana 23",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC),
	}

	mockStore.On("ListPeriodsByUser", mock.Anything, testUserID).
		Return([]*types.WeeklyPeriod{}, nil)
	mockStore.On("CreatePeriod", mock.Anything, mock.AnythingOfType("*types.WeeklyPeriod")).
		Return("period-1", nil)
	mockStore.On("GetPeriod", mock.Anything, "period-1").
		Return(created, nil)

	r := newTestRouter(t)
	r.POST("/periods", handler.CreatePeriodHandler)

	body := `{"name":"Semana 23","startDate":"2026-06-01T00:00:00Z","endDate":"2026-06-07T00:00:00Z","weeklyGoal":600}`
	w := performRequest(r, http.MethodPost, "/periods", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got types.WeeklyPeriod
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "period-1", got.ID)
	assert.Equal(t, "Semana 23", got.Name)
	mockStore.AssertExpectations(t)
}

func TestCreatePeriodHandler_Overlap(t *testing.T) {
	mockStore, handler := newPeriodHandlerTest(t)

	existing := []*types.WeeklyPeriod{{
		ID:        "period-old",
		UserID:    testUserID,
		Name:      "Semana 22",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC),
	}}

	mockStore.On("ListPeriodsByUser", mock.Anything, testUserID).
		Return(existing, nil)

	r := newTestRouter(t)
	r.POST("/periods", handler.CreatePeriodHandler)

	body := `{"name":"Semana 23","startDate":"2026-06-07T00:00:00Z","endDate":"2026-06-13T00:00:00Z"}`
	w := performRequest(r, http.MethodPost, "/periods", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockStore.AssertNotCalled(t, "CreatePeriod", mock.Anything, mock.Anything)
}

func TestCreatePeriodHandler_InvalidBody(t *testing.T) {
	mockStore, handler := newPeriodHandlerTest(t)

	r := newTestRouter(t)
	r.POST("/periods", handler.CreatePeriodHandler)

	w := performRequest(r, http.MethodPost, "/periods", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStore.AssertNotCalled(t, "CreatePeriod", mock.Anything, mock.Anything)
}

func TestGetPeriodHandler_NotFound(t *testing.T) {
	mockStore, handler := newPeriodHandlerTest(t)

	mockStore.On("GetPeriod", mock.Anything, "missing").
		Return(nil, storeNotFound())

	r := newTestRouter(t)
	r.GET("/periods/:id", handler.GetPeriodHandler)

	w := performRequest(r, http.MethodGet, "/periods/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivatePeriodHandler(t *testing.T) {
	mockStore, handler := newPeriodHandlerTest(t)

	period := &types.WeeklyPeriod{
		ID:        "period-1",
		UserID:    testUserID,
		Name:      "Semana 23",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC),
	}

	mockStore.On("GetPeriod", mock.Anything, "period-1").Return(period, nil)
	mockStore.On("SetActivePeriod", mock.Anything, testUserID, "period-1").Return(nil)

	r := newTestRouter(t)
	r.PATCH("/periods/:id/activate", handler.ActivatePeriodHandler)

	w := performRequest(r, http.MethodPatch, "/periods/period-1/activate", "")

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestDeletePeriodHandler_ActivePeriod(t *testing.T) {
	mockStore, handler := newPeriodHandlerTest(t)

	period := &types.WeeklyPeriod{
		ID:        "period-1",
		UserID:    testUserID,
		Name:      "Semana 23",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	mockStore.On("GetPeriod", mock.Anything, "period-1").Return(period, nil)

	r := newTestRouter(t)
	r.DELETE("/periods/:id", handler.DeletePeriodHandler)

	w := performRequest(r, http.MethodDelete, "/periods/period-1", "")

	assert.Equal(t, http.StatusConflict, w.Code)
	mockStore.AssertNotCalled(t, "DeletePeriod", mock.Anything, mock.Anything)
}
