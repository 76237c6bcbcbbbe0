package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
)

// UserHandler handles API endpoints for user profiles.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// InitializeUser handles POST /api/users/initialize. It is called by the
// frontend after sign-in and is idempotent: the profile is created on first
// call and only the last-login timestamp moves afterwards.
func (h *UserHandler) InitializeUser(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	displayName := ""
	if raw, exists := c.Get("userDisplayName"); exists {
		displayName, _ = raw.(string)
	}

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID, contextUserEmail(c), displayName)
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"success": true,
		"user":    user,
		"created": created,
	})
}

// GetCurrentUser handles GET /api/users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User profile not found"})
			return
		}
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
