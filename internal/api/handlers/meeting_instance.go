package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/service"
)

// MeetingInstanceHandler handles HTTP requests for meeting instances
type MeetingInstanceHandler struct {
	service       service.MeetingInstanceServiceInterface
	importService service.ICSImportServiceInterface
}

// NewMeetingInstanceHandler creates a new meeting instance handler
func NewMeetingInstanceHandler(service service.MeetingInstanceServiceInterface, importService service.ICSImportServiceInterface) *MeetingInstanceHandler {
	return &MeetingInstanceHandler{service: service, importService: importService}
}

// participantRequest is the payload for adding a participant or updating
// its status
type participantRequest struct {
	PersonID uuid.UUID                `json:"person_id"`
	Status   models.ParticipantStatus `json:"status"`
}

// CreateMeetingInstance handles POST /api/v1/meeting-instances
// @Summary Create a new meeting instance
// @Description Create a dated occurrence under a meeting. Privacy is copied from the parent meeting.
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param instance body service.CreateMeetingInstanceRequest true "Instance data"
// @Success 201 {object} service.MeetingInstanceResponse "Successfully created meeting instance"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 404 {object} map[string]interface{} "Meeting or participant person not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances [post]
func (h *MeetingInstanceHandler) CreateMeetingInstance(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req service.CreateMeetingInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	instance, err := h.service.Create(actor, &req)
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, instance)
}

// GetMeetingInstance handles GET /api/v1/meeting-instances/:id
// @Summary Get meeting instance by ID
// @Description Get an instance visible to the caller, with its parent meeting context and participants expanded
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Instance ID (UUID)"
// @Success 200 {object} service.MeetingInstanceResponse "Successfully retrieved meeting instance"
// @Failure 400 {object} map[string]interface{} "Invalid instance ID"
// @Failure 404 {object} map[string]interface{} "Meeting instance not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/{id} [get]
func (h *MeetingInstanceHandler) GetMeetingInstance(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID: invalid UUID format"})
		return
	}

	instance, err := h.service.GetByID(actor, id)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrMeetingInstanceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, instance)
}

// GetInstancesByMeeting handles GET /api/v1/meetings/:id/instances
// @Summary List instances of a meeting
// @Description Get all instances of a meeting visible to the caller, ordered by scheduled time ascending
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved instances"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/instances [get]
func (h *MeetingInstanceHandler) GetInstancesByMeeting(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meeting ID: invalid UUID format"})
		return
	}

	instances, err := h.service.GetByMeeting(actor, meetingID)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get meeting instances", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"instances": instances, "total": len(instances)})
}

// UpdateMeetingInstance handles PATCH /api/v1/meeting-instances/:id
// @Summary Update meeting instance
// @Description Partially update an instance. A participants list, when present, fully replaces the existing set.
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Instance ID (UUID)"
// @Param instance body service.UpdateMeetingInstanceRequest true "Updated instance data"
// @Success 200 {object} service.MeetingInstanceResponse "Successfully updated meeting instance"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Meeting instance not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/{id} [patch]
func (h *MeetingInstanceHandler) UpdateMeetingInstance(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID"})
		return
	}

	var req service.UpdateMeetingInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	instance, err := h.service.Update(actor, id, &req)
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting instance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, instance)
}

// DeleteMeetingInstance handles DELETE /api/v1/meeting-instances/:id
// @Summary Delete meeting instance
// @Description Delete an instance and its participant rows. The parent meeting and sibling instances are untouched.
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Instance ID (UUID)"
// @Success 204 "Successfully deleted meeting instance"
// @Failure 400 {object} map[string]interface{} "Invalid instance ID"
// @Failure 404 {object} map[string]interface{} "Meeting instance not found or access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/{id} [delete]
func (h *MeetingInstanceHandler) DeleteMeetingInstance(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID"})
		return
	}

	if err := h.service.Delete(actor, id); err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrMeetingInstanceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting instance", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddParticipant handles POST /api/v1/meeting-instances/:id/participants
// @Summary Add a participant to an instance
// @Description Add a person to a meeting instance. Status defaults to invited. Adding a person already on the instance is rejected.
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Instance ID (UUID)"
// @Param participant body participantRequest true "Participant data"
// @Success 201 {object} service.InstanceParticipantResponse "Successfully added participant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Instance or person not found"
// @Failure 409 {object} map[string]interface{} "Participant already on this instance"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/{id}/participants [post]
func (h *MeetingInstanceHandler) AddParticipant(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID"})
		return
	}

	var req participantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.PersonID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "person_id is required"})
		return
	}

	participant, err := h.service.AddParticipant(actor, instanceID, req.PersonID, req.Status)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrParticipantExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add participant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// UpdateParticipantStatus handles PATCH /api/v1/meeting-instances/:id/participants/:personId
// @Summary Update a participant's status
// @Description Set the status of a participant on an instance. Any status can move to any other status.
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Instance ID (UUID)"
// @Param personId path string true "Person ID (UUID)"
// @Param status body participantRequest true "New status"
// @Success 200 {object} service.InstanceParticipantResponse "Successfully updated participant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Instance or participant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/{id}/participants/{personId} [patch]
func (h *MeetingInstanceHandler) UpdateParticipantStatus(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID"})
		return
	}
	personID, err := uuid.Parse(c.Param("personId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return
	}

	var req participantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	participant, err := h.service.UpdateParticipantStatus(actor, instanceID, personID, req.Status)
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, participant)
}

// RemoveParticipant handles DELETE /api/v1/meeting-instances/:id/participants/:personId
// @Summary Remove a participant from an instance
// @Description Remove a person from a meeting instance. The person record itself is untouched.
// @Tags meeting-instances
// @Accept json
// @Produce json
// @Param id path string true "Instance ID (UUID)"
// @Param personId path string true "Person ID (UUID)"
// @Success 204 "Successfully removed participant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Instance or participant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/{id}/participants/{personId} [delete]
func (h *MeetingInstanceHandler) RemoveParticipant(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID"})
		return
	}
	personID, err := uuid.Parse(c.Param("personId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return
	}

	if err := h.service.RemoveParticipant(actor, instanceID, personID); err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove participant", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportMeetingInstance handles POST /api/v1/meeting-instances/import
// @Summary Parse an ICS file into an instance payload
// @Description Parse an uploaded iCalendar file and return the extracted start time, notes and matched participants. Nothing is persisted.
// @Tags meeting-instances
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "ICS file"
// @Success 200 {object} service.MeetingInstanceImportResult "Successfully parsed calendar file"
// @Failure 400 {object} map[string]interface{} "Invalid or empty calendar file"
// @Failure 403 {object} map[string]interface{} "User has no organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /meeting-instances/import [post]
func (h *MeetingInstanceHandler) ImportMeetingInstance(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "details": err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "details": err.Error()})
		return
	}

	result, err := h.importService.ImportMeetingInstance(actor, string(content))
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrImportNoEvent) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import calendar file", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
