package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpro/event-management-service/internal/auth"
)

// LoginRequest is the POST /login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterAuthRoutes registers the login endpoint. Credential policy
// lives behind the auth.Verifier; a successful login answers with an
// opaque session token.
func RegisterAuthRoutes(r gin.IRoutes, verifier auth.Verifier, sessions *auth.Sessions) {
	r.POST("/login", func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON payload"})
			return
		}

		if !verifier.Verify(req.Email, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   sessions.Issue(req.Email),
		})
	})
}
