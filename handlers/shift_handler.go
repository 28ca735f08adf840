package handlers

import (
	"net/http"
	"strconv"

	"github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/models"
	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/gin-gonic/gin"
)

// PaginationParams defines pagination parameters
type PaginationParams struct {
	Limit  int
	Offset int
}

// getPaginationParams extracts and validates pagination parameters from the request.
func getPaginationParams(c *gin.Context, defaultLimit, defaultOffset int) PaginationParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(defaultOffset)))
	if err != nil || offset < 0 {
		offset = defaultOffset
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}

type ShiftHandler struct {
	shiftModel    *models.ShiftModel
	reportService *services.ReportService
}

func NewShiftHandler(model *models.ShiftModel, reportService *services.ReportService) *ShiftHandler {
	return &ShiftHandler{
		shiftModel:    model,
		reportService: reportService,
	}
}

// StartShiftHandler godoc
// @Summary Start a work shift
// @Description Opens a shift for a vehicle. The shift attaches to the active period when its date falls inside it.
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body types.ShiftCreate true "Shift details"
// @Success 201 {object} types.Shift "Successfully opened shift"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid input data"
// @Failure 404 {object} map[string]interface{} "Vehicle or period not found"
// @Router /shifts [post]
// @Security BearerAuth
func (h *ShiftHandler) StartShiftHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.ShiftCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	shift, err := h.shiftModel.StartShift(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, shift)
}

// ListShiftsHandler godoc
// @Summary List work shifts
// @Description Lists the driver's shifts, most recent first. Filterable by period or vehicle.
// @Tags shifts
// @Produce json
// @Param periodId query string false "Filter by period ID"
// @Param vehicleId query string false "Filter by vehicle ID"
// @Param limit query int false "Number of items to return (default 20, max 100)"
// @Param offset query int false "Offset for pagination (default 0)"
// @Success 200 {array} types.Shift "List of shifts"
// @Failure 404 {object} map[string]interface{} "Filter target not found"
// @Router /shifts [get]
// @Security BearerAuth
func (h *ShiftHandler) ListShiftsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if periodID := c.Query("periodId"); periodID != "" {
		shifts, err := h.shiftModel.ListShiftsByPeriod(ctx, userID, periodID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, shifts)
		return
	}

	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		shifts, err := h.shiftModel.ListShiftsByVehicle(ctx, userID, vehicleID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, shifts)
		return
	}

	params := getPaginationParams(c, 20, 0)
	shifts, err := h.shiftModel.ListShifts(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetShiftHandler godoc
// @Summary Get a work shift
// @Description Retrieves a single shift by ID.
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} types.Shift "Shift details"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Router /shifts/{id} [get]
// @Security BearerAuth
func (h *ShiftHandler) GetShiftHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shiftID := c.Param("id")
	if shiftID == "" {
		_ = c.Error(errors.ValidationFailed("Shift ID missing", "shift id is required"))
		return
	}

	shift, err := h.shiftModel.GetShift(c.Request.Context(), userID, shiftID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// UpdateShiftHandler godoc
// @Summary Update or close a work shift
// @Description Updates shift fields. Setting end time and end odometer closes the shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body types.ShiftUpdate true "Fields to update"
// @Success 200 {object} types.Shift "Updated shift"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Router /shifts/{id} [put]
// @Security BearerAuth
func (h *ShiftHandler) UpdateShiftHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shiftID := c.Param("id")
	if shiftID == "" {
		_ = c.Error(errors.ValidationFailed("Shift ID missing", "shift id is required"))
		return
	}

	var req types.ShiftUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	shift, err := h.shiftModel.UpdateShift(c.Request.Context(), userID, shiftID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, shift)
}

// DeleteShiftHandler godoc
// @Summary Delete a work shift
// @Description Soft deletes a shift. Linked fuel records keep their shift reference.
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} map[string]interface{} "Shift deleted"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Router /shifts/{id} [delete]
// @Security BearerAuth
func (h *ShiftHandler) DeleteShiftHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shiftID := c.Param("id")
	if shiftID == "" {
		_ = c.Error(errors.ValidationFailed("Shift ID missing", "shift id is required"))
		return
	}

	if err := h.shiftModel.DeleteShift(c.Request.Context(), userID, shiftID); err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted successfully"})
}
