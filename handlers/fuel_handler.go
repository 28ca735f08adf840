package handlers

import (
	"net/http"

	"github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/models"
	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/gin-gonic/gin"
)

type FuelHandler struct {
	fuelModel     *models.FuelModel
	reportService *services.ReportService
}

func NewFuelHandler(model *models.FuelModel, reportService *services.ReportService) *FuelHandler {
	return &FuelHandler{
		fuelModel:     model,
		reportService: reportService,
	}
}

// CreateFuelRecordHandler godoc
// @Summary Record a refueling
// @Description Records a fuel or charging stop for a vehicle, optionally linked to a shift and period.
// @Tags fuel
// @Accept json
// @Produce json
// @Param request body types.FuelRecordCreate true "Fuel record details"
// @Success 201 {object} types.FuelRecord "Successfully recorded refueling"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid input data"
// @Failure 404 {object} map[string]interface{} "Vehicle, shift or period not found"
// @Router /fuel [post]
// @Security BearerAuth
func (h *FuelHandler) CreateFuelRecordHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.FuelRecordCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	record, err := h.fuelModel.CreateFuelRecord(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, record)
}

// ListFuelRecordsHandler godoc
// @Summary List fuel records
// @Description Lists fuel records scoped by vehicle, shift or period. Exactly one filter is required.
// @Tags fuel
// @Produce json
// @Param vehicleId query string false "Filter by vehicle ID"
// @Param shiftId query string false "Filter by shift ID"
// @Param periodId query string false "Filter by period ID"
// @Success 200 {array} types.FuelRecord "List of fuel records"
// @Failure 400 {object} map[string]interface{} "Bad request - missing filter"
// @Failure 404 {object} map[string]interface{} "Filter target not found"
// @Router /fuel [get]
// @Security BearerAuth
func (h *FuelHandler) ListFuelRecordsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		records, err := h.fuelModel.ListFuelByVehicle(ctx, userID, vehicleID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	if shiftID := c.Query("shiftId"); shiftID != "" {
		records, err := h.fuelModel.ListFuelByShift(ctx, userID, shiftID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	if periodID := c.Query("periodId"); periodID != "" {
		records, err := h.fuelModel.ListFuelByPeriod(ctx, userID, periodID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	_ = c.Error(errors.ValidationFailed(
		"Missing filter",
		"one of vehicleId, shiftId or periodId is required"))
}

// GetFuelRecordHandler godoc
// @Summary Get a fuel record
// @Description Retrieves a single fuel record by ID.
// @Tags fuel
// @Produce json
// @Param id path string true "Fuel record ID"
// @Success 200 {object} types.FuelRecord "Fuel record details"
// @Failure 404 {object} map[string]interface{} "Fuel record not found"
// @Router /fuel/{id} [get]
// @Security BearerAuth
func (h *FuelHandler) GetFuelRecordHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recordID := c.Param("id")
	if recordID == "" {
		_ = c.Error(errors.ValidationFailed("Fuel record ID missing", "fuel record id is required"))
		return
	}

	record, err := h.fuelModel.GetFuelRecord(c.Request.Context(), userID, recordID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateFuelRecordHandler godoc
// @Summary Update a fuel record
// @Description Updates fields of an existing fuel record.
// @Tags fuel
// @Accept json
// @Produce json
// @Param id path string true "Fuel record ID"
// @Param request body types.FuelRecordUpdate true "Fields to update"
// @Success 200 {object} types.FuelRecord "Updated fuel record"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Fuel record not found"
// @Router /fuel/{id} [put]
// @Security BearerAuth
func (h *FuelHandler) UpdateFuelRecordHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recordID := c.Param("id")
	if recordID == "" {
		_ = c.Error(errors.ValidationFailed("Fuel record ID missing", "fuel record id is required"))
		return
	}

	var req types.FuelRecordUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	record, err := h.fuelModel.UpdateFuelRecord(c.Request.Context(), userID, recordID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, record)
}

// DeleteFuelRecordHandler godoc
// @Summary Delete a fuel record
// @Description Soft deletes a fuel record.
// @Tags fuel
// @Produce json
// @Param id path string true "Fuel record ID"
// @Success 200 {object} map[string]interface{} "Fuel record deleted"
// @Failure 404 {object} map[string]interface{} "Fuel record not found"
// @Router /fuel/{id} [delete]
// @Security BearerAuth
func (h *FuelHandler) DeleteFuelRecordHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recordID := c.Param("id")
	if recordID == "" {
		_ = c.Error(errors.ValidationFailed("Fuel record ID missing", "fuel record id is required"))
		return
	}

	if err := h.fuelModel.DeleteFuelRecord(c.Request.Context(), userID, recordID); err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Fuel record deleted successfully"})
}
