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

// PersonHandler handles HTTP requests for directory people
type PersonHandler struct {
	service service.PersonServiceInterface
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(service service.PersonServiceInterface) *PersonHandler {
	return &PersonHandler{service: service}
}

// CreatePerson handles POST /api/v1/people
// @Summary Create a new person
// @Description Create a new person in the caller's organization
// @Tags people
// @Accept json
// @Produce json
// @Param person body service.CreatePersonRequest true "Person data"
// @Success 201 {object} service.PersonResponse "Successfully created person"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req service.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	person, err := h.service.Create(actor, &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, person)
}

// GetPerson handles GET /api/v1/people/:id
// @Summary Get person by ID
// @Description Get a specific person in the caller's organization
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID (UUID)"
// @Success 200 {object} service.PersonResponse "Successfully retrieved person"
// @Failure 400 {object} map[string]interface{} "Invalid person ID"
// @Failure 404 {object} map[string]interface{} "Person not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID: invalid UUID format"})
		return
	}

	person, err := h.service.GetByID(actor, id)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrPersonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get person", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, person)
}

// ListPeople handles GET /api/v1/people
// @Summary List people
// @Description Get people in the caller's organization with pagination support
// @Tags people
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PersonListResponse "Successfully retrieved people"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
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

	people, err := h.service.List(actor, page, pageSize)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get people", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, people)
}
