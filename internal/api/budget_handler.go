package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/models"
)

// BudgetHandler handles API endpoints for the per-user monthly budget.
type BudgetHandler struct {
	budgetService core.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(bs core.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: bs}
}

func mapBudgetErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrBudgetNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No budget set for this user"})
	case errors.Is(err, core.ErrInvalidBudget):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidBudget.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// GetBudget handles GET /api/budget
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	budget, err := h.budgetService.Get(c.Request.Context(), userID)
	if err != nil {
		mapBudgetErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"budget":  budget,
	})
}

// SetBudget handles POST /api/budget
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req models.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	budget, err := h.budgetService.Set(c.Request.Context(), userID, req.Amount)
	if err != nil {
		mapBudgetErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"budget":  budget,
	})
}
