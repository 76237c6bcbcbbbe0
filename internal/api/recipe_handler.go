package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/models"
)

// RecipeHandler handles the recipe chatbot endpoint.
type RecipeHandler struct {
	recipeService core.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(rs core.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: rs}
}

// GetRecipe handles POST /api/recipe-bot
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	var req models.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptyPrompt):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrEmptyPrompt.Error()})
		case errors.Is(err, core.ErrRecipeUnavailable):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Recipe service is not configured"})
		case errors.Is(err, core.ErrRecipeRemote):
			log.Printf("Recipe upstream error: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Recipe service is temporarily unavailable"})
		default:
			log.Printf("Internal Server Error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipe":  recipe,
	})
}
