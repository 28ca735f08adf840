package handlers

import (
	"net/http"

	"github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetShiftReportHandler godoc
// @Summary Shift report
// @Description Returns distance, worked hours, earnings and per-km / per-hour rates for one shift.
// @Tags reports
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} types.ShiftReport "Shift report"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Router /reports/shifts/{id} [get]
// @Security BearerAuth
func (h *ReportHandler) GetShiftReportHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shiftID := c.Param("id")
	if shiftID == "" {
		_ = c.Error(errors.ValidationFailed("Shift ID missing", "shift id is required"))
		return
	}

	report, err := h.reportService.ShiftReport(c.Request.Context(), userID, shiftID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetVehicleReportHandler godoc
// @Summary Vehicle report
// @Description Returns lifetime distance, fuel consumption and cost per km for one vehicle.
// @Tags reports
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} types.VehicleReport "Vehicle report"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /reports/vehicles/{id} [get]
// @Security BearerAuth
func (h *ReportHandler) GetVehicleReportHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicleID := c.Param("id")
	if vehicleID == "" {
		_ = c.Error(errors.ValidationFailed("Vehicle ID missing", "vehicle id is required"))
		return
	}

	report, err := h.reportService.VehicleReport(c.Request.Context(), userID, vehicleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPeriodReportHandler godoc
// @Summary Weekly period report
// @Description Returns the full weekly dashboard: earnings by platform, expenses by category, vehicle cost, net profit and goal progress.
// @Tags reports
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} types.PeriodReport "Period report"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Router /reports/periods/{id} [get]
// @Security BearerAuth
func (h *ReportHandler) GetPeriodReportHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periodID := c.Param("id")
	if periodID == "" {
		_ = c.Error(errors.ValidationFailed("Period ID missing", "period id is required"))
		return
	}

	report, err := h.reportService.PeriodReport(c.Request.Context(), userID, periodID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}
