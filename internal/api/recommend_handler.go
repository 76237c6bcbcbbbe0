package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/models"
)

// RecommendHandler handles the product recommendation endpoint.
type RecommendHandler struct {
	recommendService core.RecommendService
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(rs core.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommendService: rs}
}

// Recommend handles POST /api/recommend. The caller may be anonymous; a
// verified identity is only used to attribute the analytics log entry.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	userID, _ := contextUserID(c)
	query := core.RecommendationQuery{
		Prompt:      req.Prompt,
		Preferences: req.Preferences,
		Budget:      req.Budget,
		UserID:      userID,
	}

	products, err := h.recommendService.Recommend(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, core.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrEmptyQuery.Error()})
			return
		}
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"count":    len(products),
		"query":    req.Prompt,
		"budget":   req.Budget,
	})
}
