package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nasaem/pos-api/internal/application/service"
	"github.com/nasaem/pos-api/internal/presentation/http/dto/request"
	"github.com/nasaem/pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles the operator login
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles the operator login request.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Login successful", result)
}

// Logout acknowledges a logout. The session is a bearer token the client
// discards; nothing is tracked server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logged out", nil)
}

// Me returns the authenticated operator.
func (h *AuthHandler) Me(c *gin.Context) {
	response.OK(c, "Authenticated", gin.H{"username": GetUsername(c)})
}
