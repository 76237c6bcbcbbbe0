package middleware

import (
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a local definition for sending standardized error
// messages. It mirrors the one in internal/api to avoid import cycles.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides Gin middleware for Firebase ID token authentication.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
}

// NewAuthMiddleware creates a new AuthMiddleware instance. It panics if the
// auth client is nil, as authenticated routes cannot function without it.
func NewAuthMiddleware(fbAuthClient *auth.Client) *AuthMiddleware {
	if fbAuthClient == nil {
		log.Fatal("CRITICAL_ERROR: Firebase Auth client is not initialized for AuthMiddleware.")
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient}
}

// bearerToken extracts the token from an "Authorization: Bearer {token}"
// header. Empty string when the header is absent or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func (m *AuthMiddleware) setUserContext(c *gin.Context, token *auth.Token) {
	c.Set("userID", token.UID)
	if email, ok := token.Claims["email"].(string); ok {
		c.Set("userEmail", email)
	}
	if name, ok := token.Claims["name"].(string); ok {
		c.Set("userDisplayName", name)
	}
}

// VerifyToken requires a valid Firebase ID token and sets the user identity
// in the Gin context. Requests without one are rejected with 401.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken := bearerToken(c)
		if idToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header with a Bearer token is required"})
			return
		}

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			log.Printf("AuthMiddleware: error verifying Firebase ID token: %v", err)
			// Generic message to the client; details stay server-side.
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		m.setUserContext(c, token)
		c.Next()
	}
}

// OptionalToken extracts the user identity when a valid token is present
// but lets the request proceed anonymously otherwise. Used on routes open
// to unauthenticated contributors (shared carts, recommendations).
func (m *AuthMiddleware) OptionalToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if idToken := bearerToken(c); idToken != "" {
			if token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken); err == nil {
				m.setUserContext(c, token)
			} else {
				log.Printf("AuthMiddleware: ignoring invalid token on optional-auth route: %v", err)
			}
		}
		c.Next()
	}
}
