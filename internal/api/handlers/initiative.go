package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"manager-os-backend/internal/auth"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/service"
)

// InitiativeHandler handles HTTP requests for initiatives
type InitiativeHandler struct {
	service service.InitiativeServiceInterface
}

// NewInitiativeHandler creates a new initiative handler
func NewInitiativeHandler(service service.InitiativeServiceInterface) *InitiativeHandler {
	return &InitiativeHandler{service: service}
}

// CreateInitiative handles POST /api/v1/initiatives
// @Summary Create a new initiative
// @Description Create a new initiative in the caller's organization
// @Tags initiatives
// @Accept json
// @Produce json
// @Param initiative body service.CreateInitiativeRequest true "Initiative data"
// @Success 201 {object} service.InitiativeResponse "Successfully created initiative"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 404 {object} map[string]interface{} "Owner person not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /initiatives [post]
func (h *InitiativeHandler) CreateInitiative(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req service.CreateInitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	initiative, err := h.service.Create(actor, &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create initiative", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, initiative)
}

// UpdateInitiative handles PUT /api/v1/initiatives/:id
// @Summary Update initiative
// @Description Update an existing initiative by ID
// @Tags initiatives
// @Accept json
// @Produce json
// @Param id path string true "Initiative ID (UUID)"
// @Param initiative body service.UpdateInitiativeRequest true "Updated initiative data"
// @Success 200 {object} service.InitiativeResponse "Successfully updated initiative"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Initiative not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /initiatives/{id} [put]
func (h *InitiativeHandler) UpdateInitiative(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid initiative ID"})
		return
	}

	var req service.UpdateInitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	initiative, err := h.service.Update(actor, id, &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInitiativeNotFound) || errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update initiative", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, initiative)
}

// GetInitiative handles GET /api/v1/initiatives/:id
// @Summary Get initiative by ID
// @Description Get a specific initiative in the caller's organization
// @Tags initiatives
// @Accept json
// @Produce json
// @Param id path string true "Initiative ID (UUID)"
// @Success 200 {object} service.InitiativeResponse "Successfully retrieved initiative"
// @Failure 400 {object} map[string]interface{} "Invalid initiative ID"
// @Failure 404 {object} map[string]interface{} "Initiative not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /initiatives/{id} [get]
func (h *InitiativeHandler) GetInitiative(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid initiative ID: invalid UUID format"})
		return
	}

	initiative, err := h.service.GetByID(actor, id)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInitiativeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get initiative", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, initiative)
}

// ListInitiatives handles GET /api/v1/initiatives
// @Summary List initiatives
// @Description Get initiatives in the caller's organization with pagination support
// @Tags initiatives
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.InitiativeListResponse "Successfully retrieved initiatives"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /initiatives [get]
func (h *InitiativeHandler) ListInitiatives(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	initiatives, err := h.service.List(actor, page, pageSize)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get initiatives", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, initiatives)
}
