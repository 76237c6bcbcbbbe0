package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/models"
)

// SharedCartHandler handles API endpoints for shared cart sessions and the
// bill-split view.
type SharedCartHandler struct {
	sharedCartService core.SharedCartService
}

// NewSharedCartHandler creates a new SharedCartHandler.
func NewSharedCartHandler(scs core.SharedCartService) *SharedCartHandler {
	return &SharedCartHandler{sharedCartService: scs}
}

// mapSharedCartErrorToStatus maps errors from core.SharedCartService to
// HTTP status codes and an ErrorResponse body.
func mapSharedCartErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cart not found or inactive"})
	case errors.Is(err, core.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProductNotFound.Error()})
	case errors.Is(err, core.ErrClearIncomplete):
		// Partial failure must never look like success.
		log.Printf("Shared cart clear incomplete: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear all items from the cart; some items may remain"})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// CreateSession handles POST /api/shared-cart/create
func (h *SharedCartHandler) CreateSession(c *gin.Context) {
	var req models.CreateSharedCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	createdBy := contextUserEmail(c)
	session, err := h.sharedCartService.CreateSession(c.Request.Context(), req.Name, createdBy)
	if err != nil {
		mapSharedCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"session_id": session.ID,
		"name":       session.Name,
	})
}

// JoinSession handles GET /api/shared-cart/join/:cartId
func (h *SharedCartHandler) JoinSession(c *gin.Context) {
	cartID := c.Param("cartId")
	if cartID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cart ID is required"})
		return
	}

	session, err := h.sharedCartService.JoinSession(c.Request.Context(), cartID)
	if err != nil {
		mapSharedCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": gin.H{
			"id":         session.ID,
			"name":       session.Name,
			"created_at": session.CreatedAt,
		},
	})
}

// AddItem handles POST /api/shared-cart/:sessionId/add
func (h *SharedCartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Session ID is required"})
		return
	}

	var req models.AddSharedCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	// Prefer the verified identity; fall back to the self-reported email
	// from the request body for unauthenticated contributors.
	contributor := contextUserEmail(c)
	if contributor == "" {
		contributor = req.UserEmail
	}

	item, err := h.sharedCartService.AddItem(c.Request.Context(), sessionID, req.ProductID, contributor)
	if err != nil {
		mapSharedCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item_id": item.ID,
	})
}

// ListItems handles GET /api/shared-cart/:sessionId/items
func (h *SharedCartHandler) ListItems(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Session ID is required"})
		return
	}

	split, err := h.sharedCartService.ListItems(c.Request.Context(), sessionID)
	if err != nil {
		mapSharedCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": gin.H{
			"id":   split.Session.ID,
			"name": split.Session.Name,
		},
		"items":       split.Items,
		"user_totals": split.UserTotals,
		"over_budget": split.OverBudget,
		"grand_total": split.GrandTotal,
	})
}

// ClearSession handles DELETE /api/shared-cart/:sessionId/items
func (h *SharedCartHandler) ClearSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Session ID is required"})
		return
	}

	if err := h.sharedCartService.ClearSession(c.Request.Context(), sessionID); err != nil {
		mapSharedCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Shared cart cleared"})
}
