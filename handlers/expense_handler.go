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

type ExpenseHandler struct {
	expenseModel  *models.ExpenseModel
	reportService *services.ReportService
}

func NewExpenseHandler(model *models.ExpenseModel, reportService *services.ReportService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseModel:  model,
		reportService: reportService,
	}
}

// CreateExpenseHandler godoc
// @Summary Record an expense
// @Description Records a categorized expense inside a weekly period.
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body types.ExpenseCreate true "Expense details"
// @Success 201 {object} types.Expense "Successfully recorded expense"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid input or date outside period"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Router /expenses [post]
// @Security BearerAuth
func (h *ExpenseHandler) CreateExpenseHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.ExpenseCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	expense, err := h.expenseModel.CreateExpense(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, expense)
}

// ListExpensesHandler godoc
// @Summary List expenses for a period
// @Description Lists the expenses recorded inside a weekly period, newest first.
// @Tags expenses
// @Produce json
// @Param periodId query string true "Period ID"
// @Success 200 {array} types.Expense "List of expenses"
// @Failure 400 {object} map[string]interface{} "Bad request - missing period filter"
// @Failure 404 {object} map[string]interface{} "Period not found"
// @Router /expenses [get]
// @Security BearerAuth
func (h *ExpenseHandler) ListExpensesHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periodID := c.Query("periodId")
	if periodID == "" {
		_ = c.Error(errors.ValidationFailed("Missing filter", "periodId is required"))
		return
	}

	expenses, err := h.expenseModel.ListExpensesByPeriod(c.Request.Context(), userID, periodID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpenseHandler godoc
// @Summary Get an expense
// @Description Retrieves a single expense by ID.
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} types.Expense "Expense details"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Router /expenses/{id} [get]
// @Security BearerAuth
func (h *ExpenseHandler) GetExpenseHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expenseID := c.Param("id")
	if expenseID == "" {
		_ = c.Error(errors.ValidationFailed("Expense ID missing", "expense id is required"))
		return
	}

	expense, err := h.expenseModel.GetExpense(c.Request.Context(), userID, expenseID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpenseHandler godoc
// @Summary Update an expense
// @Description Updates fields of an existing expense. A moved date must stay inside the period.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body types.ExpenseUpdate true "Fields to update"
// @Success 200 {object} types.Expense "Updated expense"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Router /expenses/{id} [put]
// @Security BearerAuth
func (h *ExpenseHandler) UpdateExpenseHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expenseID := c.Param("id")
	if expenseID == "" {
		_ = c.Error(errors.ValidationFailed("Expense ID missing", "expense id is required"))
		return
	}

	var req types.ExpenseUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	expense, err := h.expenseModel.UpdateExpense(c.Request.Context(), userID, expenseID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, expense)
}

// DeleteExpenseHandler godoc
// @Summary Delete an expense
// @Description Soft deletes an expense.
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]interface{} "Expense deleted"
// @Failure 404 {object} map[string]interface{} "Expense not found"
// @Router /expenses/{id} [delete]
// @Security BearerAuth
func (h *ExpenseHandler) DeleteExpenseHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expenseID := c.Param("id")
	if expenseID == "" {
		_ = c.Error(errors.ValidationFailed("Expense ID missing", "expense id is required"))
		return
	}

	if err := h.expenseModel.DeleteExpense(c.Request.Context(), userID, expenseID); err != nil {
		_ = c.Error(err)
		return
	}

	h.reportService.InvalidateUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
