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

type VehicleHandler struct {
	vehicleModel  *models.VehicleModel
	reportService *services.ReportService
}

func NewVehicleHandler(model *models.VehicleModel, reportService *services.ReportService) *VehicleHandler {
	return &VehicleHandler{
		vehicleModel:  model,
		reportService: reportService,
	}
}

// CreateVehicleHandler godoc
// @Summary Register a vehicle
// @Description Registers a vehicle with its ownership arrangement (owned, rented or commission).
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body types.VehicleCreate true "Vehicle details"
// @Success 201 {object} types.Vehicle "Successfully registered vehicle"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid input data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /vehicles [post]
// @Security BearerAuth
func (h *VehicleHandler) CreateVehicleHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.VehicleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	vehicle, err := h.vehicleModel.CreateVehicle(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, vehicle)
}

// ListVehiclesHandler godoc
// @Summary List vehicles
// @Description Lists the authenticated driver's vehicles, default vehicle first.
// @Tags vehicles
// @Produce json
// @Success 200 {array} types.Vehicle "List of vehicles"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /vehicles [get]
// @Security BearerAuth
func (h *VehicleHandler) ListVehiclesHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleModel.ListVehicles(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicleHandler godoc
// @Summary Get a vehicle
// @Description Retrieves a single vehicle by ID.
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} types.Vehicle "Vehicle details"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id} [get]
// @Security BearerAuth
func (h *VehicleHandler) GetVehicleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicleID := c.Param("id")
	if vehicleID == "" {
		_ = c.Error(errors.ValidationFailed("Vehicle ID missing", "vehicle id is required"))
		return
	}

	vehicle, err := h.vehicleModel.GetVehicle(c.Request.Context(), userID, vehicleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicleHandler godoc
// @Summary Update a vehicle
// @Description Updates vehicle details or its ownership arrangement.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body types.VehicleUpdate true "Fields to update"
// @Success 200 {object} types.Vehicle "Updated vehicle"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id} [put]
// @Security BearerAuth
func (h *VehicleHandler) UpdateVehicleHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicleID := c.Param("id")
	if vehicleID == "" {
		_ = c.Error(errors.ValidationFailed("Vehicle ID missing", "vehicle id is required"))
		return
	}

	var req types.VehicleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	vehicle, err := h.vehicleModel.UpdateVehicle(c.Request.Context(), userID, vehicleID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, vehicle)
}

// SetDefaultVehicleHandler godoc
// @Summary Set the default vehicle
// @Description Marks the vehicle as default, clearing the flag from any other vehicle.
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} types.Vehicle "Default vehicle"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id}/default [patch]
// @Security BearerAuth
func (h *VehicleHandler) SetDefaultVehicleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicleID := c.Param("id")
	if vehicleID == "" {
		_ = c.Error(errors.ValidationFailed("Vehicle ID missing", "vehicle id is required"))
		return
	}

	vehicle, err := h.vehicleModel.SetDefault(c.Request.Context(), userID, vehicleID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicleHandler godoc
// @Summary Delete a vehicle
// @Description Soft deletes a vehicle. Historical shifts and fuel records keep their reference.
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} map[string]interface{} "Vehicle deleted"
// @Failure 404 {object} map[string]interface{} "Vehicle not found"
// @Router /vehicles/{id} [delete]
// @Security BearerAuth
func (h *VehicleHandler) DeleteVehicleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vehicleID := c.Param("id")
	if vehicleID == "" {
		_ = c.Error(errors.ValidationFailed("Vehicle ID missing", "vehicle id is required"))
		return
	}

	if err := h.vehicleModel.DeleteVehicle(c.Request.Context(), userID, vehicleID); err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
