package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "manager-os-backend/internal/errors"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login handles POST /auth/login
// @Summary Issue a JWT for a known user
// @Description Look up a user by email and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "User email"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.service.Login(req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
	})
}

// Me handles GET /auth/me
// @Summary Return the acting user
// @Description Return the actor resolved from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Actor details"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, err := ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"user_id": actor.UserID,
		"email":   actor.Email,
	}
	if actor.OrganizationID != nil {
		resp["organization_id"] = actor.OrganizationID
	}
	if actor.PersonID != nil {
		resp["person_id"] = actor.PersonID
	}
	c.JSON(http.StatusOK, resp)
}
