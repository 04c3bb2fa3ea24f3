package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"manager-os-backend/internal/auth"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/service"
)

// MeetingHandler handles HTTP requests for meetings
type MeetingHandler struct {
	service service.MeetingServiceInterface
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service service.MeetingServiceInterface) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// isValidationError reports whether the error is a payload validation
// failure, either a field-level domain error or a struct tag violation
func isValidationError(err error) bool {
	var vErrs validator.ValidationErrors
	return apperrors.IsValidation(err) || errors.As(err, &vErrs)
}

// CreateMeeting handles POST /api/v1/meetings
// @Summary Create a new meeting
// @Description Create a new meeting in the caller's organization, optionally with participants
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body service.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} service.MeetingResponse "Successfully created meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request body or recurrence settings"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 404 {object} map[string]interface{} "Referenced team, initiative or person not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.Create(actor, &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// GetMeeting handles GET /api/v1/meetings/:id
// @Summary Get meeting by ID
// @Description Get a meeting visible to the caller, with team, initiative, owner, participants and instances expanded
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.MeetingResponse "Successfully retrieved meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID: invalid UUID format"})
		return
	}

	meeting, err := h.service.GetByID(actor, id)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// ListMeetings handles GET /api/v1/meetings
// @Summary List meetings
// @Description Get meetings in the caller's organization that are visible to the caller, ordered by scheduled time
// @Tags meetings
// @Accept json
// @Produce json
// @Success 200 {object} service.MeetingListResponse "Successfully retrieved meetings"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	meetings, err := h.service.List(actor)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meetings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// UpdateMeeting handles PATCH /api/v1/meetings/:id
// @Summary Update meeting
// @Description Partially update a meeting. Recurrence settings are re-validated against the merged state.
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest true "Updated meeting data"
// @Success 200 {object} service.MeetingResponse "Successfully updated meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request or recurrence settings"
// @Failure 404 {object} map[string]interface{} "Meeting not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [patch]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	var req service.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.Update(actor, id, &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting handles DELETE /api/v1/meetings/:id
// @Summary Delete meeting
// @Description Delete a meeting. Its instances, participant rows and instance participant rows are removed with it.
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 204 "Successfully deleted meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID"})
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
