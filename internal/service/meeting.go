package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/repository"
	"manager-os-backend/internal/revalidation"
)

// meetingsListPath is the rendered page path marked stale after meeting mutations
const meetingsListPath = "/meetings"

func meetingDetailPath(id uuid.UUID) string {
	return meetingsListPath + "/" + id.String()
}

// MeetingService handles business logic for meeting definitions
type MeetingService struct {
	repo           repository.MeetingRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	initiativeRepo repository.InitiativeRepositoryInterface
	personRepo     repository.PersonRepositoryInterface
	revalidator    revalidation.Revalidator
	validator      *validator.Validate
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	repo repository.MeetingRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	initiativeRepo repository.InitiativeRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	revalidator revalidation.Revalidator,
	validator *validator.Validate,
) *MeetingService {
	return &MeetingService{
		repo:           repo,
		teamRepo:       teamRepo,
		initiativeRepo: initiativeRepo,
		personRepo:     personRepo,
		revalidator:    revalidator,
		validator:      validator,
	}
}

// ParticipantInput represents one participant entry of a create/update payload
type ParticipantInput struct {
	PersonID uuid.UUID                `json:"person_id" validate:"required"`
	Status   models.ParticipantStatus `json:"status" validate:"omitempty,oneof=invited accepted declined tentative attended absent"`
}

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title          string                 `json:"title" validate:"required,min=1,max=200"`
	Description    string                 `json:"description"`
	ScheduledAt    time.Time              `json:"scheduled_at" validate:"required"`
	Duration       *int                   `json:"duration,omitempty" validate:"omitempty,min=1,max=480"`
	Location       string                 `json:"location" validate:"max=200"`
	Notes          string                 `json:"notes"`
	IsRecurring    bool                   `json:"is_recurring"`
	RecurrenceType *models.RecurrenceType `json:"recurrence_type,omitempty"`
	IsPrivate      *bool                  `json:"is_private,omitempty"`
	TeamID         *uuid.UUID             `json:"team_id,omitempty"`
	InitiativeID   *uuid.UUID             `json:"initiative_id,omitempty"`
	OwnerID        *uuid.UUID             `json:"owner_id,omitempty"`
	Participants   []ParticipantInput     `json:"participants,omitempty" validate:"dive"`
}

// UpdateMeetingRequest represents the request to partially update a meeting.
// Passing an empty-string recurrence type explicitly clears it.
type UpdateMeetingRequest struct {
	Title          *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string                `json:"description,omitempty"`
	ScheduledAt    *time.Time             `json:"scheduled_at,omitempty"`
	Duration       *int                   `json:"duration,omitempty" validate:"omitempty,min=1,max=480"`
	Location       *string                `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes          *string                `json:"notes,omitempty"`
	IsRecurring    *bool                  `json:"is_recurring,omitempty"`
	RecurrenceType *models.RecurrenceType `json:"recurrence_type,omitempty"`
	IsPrivate      *bool                  `json:"is_private,omitempty"`
	TeamID         *uuid.UUID             `json:"team_id,omitempty"`
	InitiativeID   *uuid.UUID             `json:"initiative_id,omitempty"`
	OwnerID        *uuid.UUID             `json:"owner_id,omitempty"`
}

// MeetingParticipantResponse represents a participant row on a meeting
type MeetingParticipantResponse struct {
	ID       uuid.UUID                `json:"id"`
	PersonID uuid.UUID                `json:"person_id"`
	Status   models.ParticipantStatus `json:"status"`
	Person   *PersonRef               `json:"person,omitempty"`
}

// MeetingResponse represents the response for meeting operations
type MeetingResponse struct {
	ID             uuid.UUID                    `json:"id"`
	OrganizationID uuid.UUID                    `json:"organization_id"`
	Title          string                       `json:"title"`
	Description    string                       `json:"description,omitempty"`
	ScheduledAt    string                       `json:"scheduled_at"`
	Duration       *int                         `json:"duration,omitempty"`
	Location       string                       `json:"location,omitempty"`
	Notes          string                       `json:"notes,omitempty"`
	IsRecurring    bool                         `json:"is_recurring"`
	RecurrenceType *models.RecurrenceType       `json:"recurrence_type,omitempty"`
	IsPrivate      bool                         `json:"is_private"`
	Team           *TeamRef                     `json:"team,omitempty"`
	Initiative     *InitiativeRef               `json:"initiative,omitempty"`
	Owner          *PersonRef                   `json:"owner,omitempty"`
	CreatedBy      *UserRef                     `json:"created_by,omitempty"`
	Participants   []MeetingParticipantResponse `json:"participants"`
	Instances      []MeetingInstanceResponse    `json:"instances,omitempty"`
	CreatedAt      string                       `json:"created_at"`
	UpdatedAt      string                       `json:"updated_at"`
}

// MeetingListResponse represents the list of meetings visible to the actor
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int               `json:"total"`
}

// Create creates a new meeting together with its initial participants
func (s *MeetingService) Create(actor *auth.Actor, req *CreateMeetingRequest) (*MeetingResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("create meetings")
	}
	orgID := *actor.OrganizationID

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateRecurrence(req.IsRecurring, req.RecurrenceType); err != nil {
		return nil, err
	}
	if err := validateParticipantList(req.Participants); err != nil {
		return nil, err
	}

	// Resolve and authorize optional references within the organization
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}
	if req.InitiativeID != nil {
		if _, err := s.initiativeRepo.GetByID(*req.InitiativeID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInitiativeNotFound
			}
			return nil, fmt.Errorf("failed to verify initiative: %w", err)
		}
	}
	if req.OwnerID != nil {
		if _, err := s.personRepo.GetByID(*req.OwnerID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to verify owner: %w", err)
		}
	}

	// All participant persons must belong to the organization; fail before
	// writing anything if any does not resolve
	if err := s.verifyParticipantsInOrganization(req.Participants, orgID); err != nil {
		return nil, err
	}

	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	meeting := &models.Meeting{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		ScheduledAt:    req.ScheduledAt,
		Duration:       req.Duration,
		Location:       req.Location,
		Notes:          req.Notes,
		IsRecurring:    req.IsRecurring,
		RecurrenceType: req.RecurrenceType,
		IsPrivate:      isPrivate,
		TeamID:         req.TeamID,
		InitiativeID:   req.InitiativeID,
		OwnerID:        req.OwnerID,
		CreatedByID:    actor.UserID,
		Participants:   buildMeetingParticipants(req.Participants),
	}

	if err := s.repo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	created, err := s.repo.GetWithRelations(meeting.ID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created meeting: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(meeting.ID))

	return s.toResponse(created, false), nil
}

// Update partially updates a meeting. The recurrence cross-field rule is
// re-checked against the merged effective state whenever is_recurring or
// recurrence_type appears in the payload.
func (s *MeetingService) Update(actor *auth.Actor, id uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("update meetings")
	}
	orgID := *actor.OrganizationID

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	meeting, err := s.repo.GetByID(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	// Merge recurrence state and re-validate the cross-field rule
	mergedRecurring := meeting.IsRecurring
	if req.IsRecurring != nil {
		mergedRecurring = *req.IsRecurring
	}
	mergedType := meeting.RecurrenceType
	if req.RecurrenceType != nil {
		if *req.RecurrenceType == "" {
			mergedType = nil
		} else {
			mergedType = req.RecurrenceType
		}
	}
	if req.IsRecurring != nil || req.RecurrenceType != nil {
		if err := validateRecurrence(mergedRecurring, mergedType); err != nil {
			return nil, err
		}
	}

	// Re-authorize newly referenced team/initiative/owner
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		meeting.TeamID = req.TeamID
	}
	if req.InitiativeID != nil {
		if _, err := s.initiativeRepo.GetByID(*req.InitiativeID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrInitiativeNotFound
			}
			return nil, fmt.Errorf("failed to verify initiative: %w", err)
		}
		meeting.InitiativeID = req.InitiativeID
	}
	if req.OwnerID != nil {
		if _, err := s.personRepo.GetByID(*req.OwnerID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to verify owner: %w", err)
		}
		meeting.OwnerID = req.OwnerID
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.ScheduledAt != nil {
		meeting.ScheduledAt = *req.ScheduledAt
	}
	if req.Duration != nil {
		meeting.Duration = req.Duration
	}
	if req.Location != nil {
		meeting.Location = *req.Location
	}
	if req.Notes != nil {
		meeting.Notes = *req.Notes
	}
	if req.IsPrivate != nil {
		meeting.IsPrivate = *req.IsPrivate
	}
	meeting.IsRecurring = mergedRecurring
	meeting.RecurrenceType = mergedType

	if err := s.repo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	updated, err := s.repo.GetWithRelations(meeting.ID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated meeting: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(meeting.ID))

	return s.toResponse(updated, false), nil
}

// GetByID retrieves a meeting visible to the actor, with instances and
// relations expanded
func (s *MeetingService) GetByID(actor *auth.Actor, id uuid.UUID) (*MeetingResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view meetings")
	}

	meeting, err := s.repo.GetVisibleByID(id, *actor.OrganizationID, actor.UserID, actor.PersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return s.toResponse(meeting, true), nil
}

// List retrieves all meetings in the actor's organization the actor may
// see, ordered by scheduled_at ascending
func (s *MeetingService) List(actor *auth.Actor) (*MeetingListResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view meetings")
	}

	meetings, err := s.repo.ListVisible(*actor.OrganizationID, actor.UserID, actor.PersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	responses := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		responses[i] = *s.toResponse(&meetings[i], false)
	}

	return &MeetingListResponse{Meetings: responses, Total: len(responses)}, nil
}

// Delete deletes a meeting. Its instances and all participant rows cascade.
func (s *MeetingService) Delete(actor *auth.Actor, id uuid.UUID) error {
	if actor.OrganizationID == nil {
		return apperrors.NewNoOrganizationError("delete meetings")
	}
	orgID := *actor.OrganizationID

	if _, err := s.repo.GetByID(id, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to load meeting: %w", err)
	}

	if err := s.repo.Delete(id, orgID); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(id))

	return nil
}

// verifyParticipantsInOrganization checks that every participant person
// belongs to the organization, all-or-nothing
func (s *MeetingService) verifyParticipantsInOrganization(participants []ParticipantInput, orgID uuid.UUID) error {
	if len(participants) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(participants))
	for i, p := range participants {
		ids[i] = p.PersonID
	}
	count, err := s.personRepo.CountByIDs(ids, orgID)
	if err != nil {
		return fmt.Errorf("failed to verify participants: %w", err)
	}
	if count != int64(len(ids)) {
		return apperrors.ErrPersonNotFound
	}
	return nil
}

func (s *MeetingService) toResponse(meeting *models.Meeting, withInstances bool) *MeetingResponse {
	resp := &MeetingResponse{
		ID:             meeting.ID,
		OrganizationID: meeting.OrganizationID,
		Title:          meeting.Title,
		Description:    meeting.Description,
		ScheduledAt:    meeting.ScheduledAt.Format(timeFormat),
		Duration:       meeting.Duration,
		Location:       meeting.Location,
		Notes:          meeting.Notes,
		IsRecurring:    meeting.IsRecurring,
		RecurrenceType: meeting.RecurrenceType,
		IsPrivate:      meeting.IsPrivate,
		Team:           teamRef(meeting.Team),
		Initiative:     initiativeRef(meeting.Initiative),
		Owner:          personRef(meeting.Owner),
		CreatedBy:      userRef(&meeting.CreatedBy),
		Participants:   make([]MeetingParticipantResponse, len(meeting.Participants)),
		CreatedAt:      meeting.CreatedAt.Format(timeFormat),
		UpdatedAt:      meeting.UpdatedAt.Format(timeFormat),
	}
	for i, p := range meeting.Participants {
		person := p.Person
		resp.Participants[i] = MeetingParticipantResponse{
			ID:       p.ID,
			PersonID: p.PersonID,
			Status:   p.Status,
			Person:   personRef(&person),
		}
	}
	if withInstances {
		resp.Instances = make([]MeetingInstanceResponse, len(meeting.Instances))
		for i := range meeting.Instances {
			resp.Instances[i] = *instanceToResponse(&meeting.Instances[i])
		}
	}
	return resp
}

// validateRecurrence enforces the cross-field rule binding recurrence_type
// one-to-one with is_recurring
func validateRecurrence(isRecurring bool, recurrenceType *models.RecurrenceType) error {
	if isRecurring {
		if recurrenceType == nil {
			return apperrors.NewValidationError("recurrence_type", "recurrence type is required for recurring meetings")
		}
		if !recurrenceType.IsValid() {
			return apperrors.NewValidationError("recurrence_type", fmt.Sprintf("unknown recurrence type %q", *recurrenceType))
		}
		return nil
	}
	if recurrenceType != nil {
		return apperrors.NewValidationError("recurrence_type", "recurrence type must not be set for non-recurring meetings")
	}
	return nil
}

// validateParticipantList rejects duplicate persons within one payload
func validateParticipantList(participants []ParticipantInput) error {
	seen := make(map[uuid.UUID]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p.PersonID]; dup {
			return apperrors.NewValidationError("participants", fmt.Sprintf("person %s appears more than once", p.PersonID))
		}
		seen[p.PersonID] = struct{}{}
	}
	return nil
}

// buildMeetingParticipants converts payload entries to participant rows,
// defaulting status to invited
func buildMeetingParticipants(participants []ParticipantInput) []models.MeetingParticipant {
	if len(participants) == 0 {
		return nil
	}
	rows := make([]models.MeetingParticipant, len(participants))
	for i, p := range participants {
		status := p.Status
		if status == "" {
			status = models.ParticipantStatusInvited
		}
		rows[i] = models.MeetingParticipant{
			PersonID: p.PersonID,
			Status:   status,
		}
	}
	return rows
}
