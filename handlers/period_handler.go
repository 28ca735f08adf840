package handlers

import (
	"net/http"

	"github.com/Claudio-Lins/amigo-tvde-backend/errors"
	"github.com/Claudio-Lins/amigo-tvde-backend/logger"
	"github.com/Claudio-Lins/amigo-tvde-backend/middleware"
	"github.com/Claudio-Lins/amigo-tvde-backend/models"
	"github.com/Claudio-Lins/amigo-tvde-backend/services"
	"github.com/Claudio-Lins/amigo-tvde-backend/types"
	"github.com/gin-gonic/gin"
)

type PeriodHandler struct {
	periodModel   *models.PeriodModel
	reportService *services.ReportService
}

func NewPeriodHandler(model *models.PeriodModel, reportService *services.ReportService) *PeriodHandler {
	return &PeriodHandler{
		periodModel:   model,
		reportService: reportService,
	}
}

// requireUserID pulls the authenticated user from the request context.
// The auth middleware guarantees it for /v1 routes; the empty check
// guards against handlers mounted without it.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(string(middleware.UserIDKey))
	if userID == "" {
		logger.GetLogger().Warn("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return userID, true
}

// CreatePeriodHandler godoc
// @Summary Create a weekly period
// @Description Creates a new weekly tracking period for the authenticated driver.
// @Tags periods
// @Accept json
// @Produce json
// @Param request body types.PeriodCreate true "Period details"
// @Success 201 {object} types.WeeklyPeriod "Successfully created period"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid input data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Conflict - dates overlap an existing period"
// @Router /periods [post]
// @Security BearerAuth
func (h *PeriodHandler) CreatePeriodHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.PeriodCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	period, err := h.periodModel.CreatePeriod(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, period)
}

// ListPeriodsHandler godoc
// @Summary List weekly periods
// @Description Lists the authenticated driver's weekly periods, most recent first.
// @Tags periods
// @Produce json
// @Success 200 {array} types.WeeklyPeriod "List of periods"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /periods [get]
// @Security BearerAuth
func (h *PeriodHandler) ListPeriodsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periods, err := h.periodModel.ListPeriods(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, periods)
}

// GetActivePeriodHandler godoc
// @Summary Get the active weekly period
// @Description Returns the driver's currently active period, if any.
// @Tags periods
// @Produce json
// @Success 200 {object} types.WeeklyPeriod "Active period"
// @Failure 404 {object} map[string]interface{} "No active period"
// @Router /periods/active [get]
// @Security BearerAuth
func (h *PeriodHandler) GetActivePeriodHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := h.periodModel.GetActivePeriod(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// GetPeriodHandler godoc
// @Summary Get a weekly period
// @Description Retrieves a single weekly period by ID.
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} types.WeeklyPeriod "Period details"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Router /periods/{id} [get]
// @Security BearerAuth
func (h *PeriodHandler) GetPeriodHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periodID := c.Param("id")
	if periodID == "" {
		_ = c.Error(errors.ValidationFailed("Period ID missing", "period id is required"))
		return
	}

	period, err := h.periodModel.GetPeriod(c.Request.Context(), userID, periodID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// UpdatePeriodHandler godoc
// @Summary Update a weekly period
// @Description Updates name, dates or weekly goal of an existing period.
// @Tags periods
// @Accept json
// @Produce json
// @Param id path string true "Period ID"
// @Param request body types.PeriodUpdate true "Fields to update"
// @Success 200 {object} types.WeeklyPeriod "Updated period"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 409 {object} map[string]interface{} "Conflict - dates overlap an existing period"
// @Router /periods/{id} [put]
// @Security BearerAuth
func (h *PeriodHandler) UpdatePeriodHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periodID := c.Param("id")
	if periodID == "" {
		_ = c.Error(errors.ValidationFailed("Period ID missing", "period id is required"))
		return
	}

	var req types.PeriodUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	period, err := h.periodModel.UpdatePeriod(c.Request.Context(), userID, periodID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, period)
}

// ActivatePeriodHandler godoc
// @Summary Activate a weekly period
// @Description Marks the period as active, deactivating any other active period.
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} types.WeeklyPeriod "Activated period"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Router /periods/{id}/activate [patch]
// @Security BearerAuth
func (h *PeriodHandler) ActivatePeriodHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periodID := c.Param("id")
	if periodID == "" {
		_ = c.Error(errors.ValidationFailed("Period ID missing", "period id is required"))
		return
	}

	period, err := h.periodModel.SetActive(c.Request.Context(), userID, periodID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, period)
}

// DeletePeriodHandler godoc
// @Summary Delete a weekly period
// @Description Soft deletes a period. The active period cannot be deleted.
// @Tags periods
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} map[string]interface{} "Period deleted"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Failure 409 {object} map[string]interface{} "Conflict - period is active"
// @Router /periods/{id} [delete]
// @Security BearerAuth
func (h *PeriodHandler) DeletePeriodHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periodID := c.Param("id")
	if periodID == "" {
		_ = c.Error(errors.ValidationFailed("Period ID missing", "period id is required"))
		return
	}

	if err := h.periodModel.DeletePeriod(c.Request.Context(), userID, periodID); err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Period deleted successfully"})
}
