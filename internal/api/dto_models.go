package api

import "github.com/gin-gonic/gin"

// ErrorResponse is the generic failure envelope: {"success": false, ...}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the generic envelope for simple success messages.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// contextUserID extracts the authenticated user's UID from the Gin context
// (populated by the auth middleware). ok is false when no identity is set.
func contextUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// contextUserEmail extracts the authenticated user's email, empty when the
// caller is anonymous.
func contextUserEmail(c *gin.Context) string {
	raw, exists := c.Get("userEmail")
	if !exists {
		return ""
	}
	email, _ := raw.(string)
	return email
}
