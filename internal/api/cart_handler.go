package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/models"
)

// CartHandler handles API endpoints for the owner's personal cart.
type CartHandler struct {
	cartService core.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs core.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func mapCartErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrProductNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProductNotFound.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	items, err := h.cartService.List(c.Request.Context(), userID)
	if err != nil {
		mapCartErrorToStatus(c, err)
		return
	}

	var total float64
	for _, item := range items {
		total += item.Price
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   items,
		"count":   len(items),
		"total":   total,
	})
}

// AddToCart handles POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	item, err := h.cartService.Add(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		mapCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item":    item,
	})
}

// RemoveFromCart handles DELETE /api/cart/:productId. Removing a product
// that is not in the cart reports removed=false rather than an error.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	productID := c.Param("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product ID is required"})
		return
	}

	removed, err := h.cartService.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		mapCartErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"removed": removed,
	})
}
