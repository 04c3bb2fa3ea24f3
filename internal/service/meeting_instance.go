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

// MeetingInstanceService handles business logic for dated meeting occurrences
type MeetingInstanceService struct {
	repo            repository.MeetingInstanceRepositoryInterface
	meetingRepo     repository.MeetingRepositoryInterface
	participantRepo repository.MeetingInstanceParticipantRepositoryInterface
	personRepo      repository.PersonRepositoryInterface
	revalidator     revalidation.Revalidator
	validator       *validator.Validate
}

// NewMeetingInstanceService creates a new meeting instance service
func NewMeetingInstanceService(
	repo repository.MeetingInstanceRepositoryInterface,
	meetingRepo repository.MeetingRepositoryInterface,
	participantRepo repository.MeetingInstanceParticipantRepositoryInterface,
	personRepo repository.PersonRepositoryInterface,
	revalidator revalidation.Revalidator,
	validator *validator.Validate,
) *MeetingInstanceService {
	return &MeetingInstanceService{
		repo:            repo,
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		personRepo:      personRepo,
		revalidator:     revalidator,
		validator:       validator,
	}
}

// CreateMeetingInstanceRequest represents the request to create a meeting instance
type CreateMeetingInstanceRequest struct {
	MeetingID    uuid.UUID          `json:"meeting_id" validate:"required"`
	ScheduledAt  time.Time          `json:"scheduled_at" validate:"required"`
	Notes        string             `json:"notes"`
	Participants []ParticipantInput `json:"participants,omitempty" validate:"dive"`
}

// UpdateMeetingInstanceRequest represents the request to partially update a
// meeting instance. A non-nil participant list fully replaces the existing
// set; nil leaves it untouched.
type UpdateMeetingInstanceRequest struct {
	ScheduledAt  *time.Time          `json:"scheduled_at,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
	Participants *[]ParticipantInput `json:"participants,omitempty" validate:"omitempty,dive"`
}

// InstanceParticipantResponse represents a participant row on an instance
type InstanceParticipantResponse struct {
	ID       uuid.UUID                `json:"id"`
	PersonID uuid.UUID                `json:"person_id"`
	Status   models.ParticipantStatus `json:"status"`
	Person   *PersonRef               `json:"person,omitempty"`
}

// MeetingInstanceResponse represents the response for instance operations
type MeetingInstanceResponse struct {
	ID             uuid.UUID                     `json:"id"`
	MeetingID      uuid.UUID                     `json:"meeting_id"`
	OrganizationID uuid.UUID                     `json:"organization_id"`
	ScheduledAt    string                        `json:"scheduled_at"`
	Notes          string                        `json:"notes,omitempty"`
	IsPrivate      bool                          `json:"is_private"`
	MeetingTitle   string                        `json:"meeting_title,omitempty"`
	Team           *TeamRef                      `json:"team,omitempty"`
	Initiative     *InitiativeRef                `json:"initiative,omitempty"`
	Owner          *PersonRef                    `json:"owner,omitempty"`
	Participants   []InstanceParticipantResponse `json:"participants"`
	CreatedAt      string                        `json:"created_at"`
	UpdatedAt      string                        `json:"updated_at"`
}

// Create creates a new instance under a meeting. Privacy is copied from the
// parent meeting at this moment; later changes to the parent do not
// propagate to the instance.
func (s *MeetingInstanceService) Create(actor *auth.Actor, req *CreateMeetingInstanceRequest) (*MeetingInstanceResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("create meeting instances")
	}
	orgID := *actor.OrganizationID

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateParticipantList(req.Participants); err != nil {
		return nil, err
	}

	meeting, err := s.meetingRepo.GetByID(req.MeetingID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}

	// All participant persons must resolve within the organization before
	// any row is written
	if err := s.verifyParticipantsInOrganization(req.Participants, orgID); err != nil {
		return nil, err
	}

	instance := &models.MeetingInstance{
		MeetingID:      meeting.ID,
		OrganizationID: meeting.OrganizationID,
		ScheduledAt:    req.ScheduledAt,
		Notes:          req.Notes,
		IsPrivate:      meeting.IsPrivate,
		Participants:   buildInstanceParticipants(req.Participants),
	}

	if err := s.repo.Create(instance); err != nil {
		return nil, fmt.Errorf("failed to create meeting instance: %w", err)
	}

	created, err := s.repo.GetWithRelations(instance.ID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created meeting instance: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(meeting.ID))

	return instanceToResponse(created), nil
}

// Update partially updates an instance. Paths are invalidated using the
// instance's resolved meeting id, not the caller-supplied instance id.
func (s *MeetingInstanceService) Update(actor *auth.Actor, id uuid.UUID, req *UpdateMeetingInstanceRequest) (*MeetingInstanceResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("update meeting instances")
	}
	orgID := *actor.OrganizationID

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	instance, err := s.repo.GetByID(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingInstanceNotFound
		}
		return nil, fmt.Errorf("failed to load meeting instance: %w", err)
	}

	if req.Participants != nil {
		if err := validateParticipantList(*req.Participants); err != nil {
			return nil, err
		}
		if err := s.verifyParticipantsInOrganization(*req.Participants, orgID); err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceParticipants(instance.ID, buildInstanceParticipants(*req.Participants)); err != nil {
			return nil, fmt.Errorf("failed to replace participants: %w", err)
		}
	}

	if req.ScheduledAt != nil {
		instance.ScheduledAt = *req.ScheduledAt
	}
	if req.Notes != nil {
		instance.Notes = *req.Notes
	}
	if req.ScheduledAt != nil || req.Notes != nil {
		if err := s.repo.Update(instance); err != nil {
			return nil, fmt.Errorf("failed to update meeting instance: %w", err)
		}
	}

	updated, err := s.repo.GetWithRelations(instance.ID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated meeting instance: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(instance.MeetingID))

	return instanceToResponse(updated), nil
}

// GetByID retrieves an instance visible to the actor, with relations expanded
func (s *MeetingInstanceService) GetByID(actor *auth.Actor, id uuid.UUID) (*MeetingInstanceResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view meeting instances")
	}

	instance, err := s.repo.GetVisibleByID(id, *actor.OrganizationID, actor.UserID, actor.PersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get meeting instance: %w", err)
	}

	return instanceToResponse(instance), nil
}

// GetByMeeting retrieves all instances of a meeting, ordered by
// scheduled_at ascending. Visibility is checked once on the parent meeting
// and inherited by its instances rather than re-computed per instance.
func (s *MeetingInstanceService) GetByMeeting(actor *auth.Actor, meetingID uuid.UUID) ([]MeetingInstanceResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view meeting instances")
	}
	orgID := *actor.OrganizationID

	if _, err := s.meetingRepo.GetVisibleByID(meetingID, orgID, actor.UserID, actor.PersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	instances, err := s.repo.GetByMeetingID(meetingID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting instances: %w", err)
	}

	responses := make([]MeetingInstanceResponse, len(instances))
	for i := range instances {
		responses[i] = *instanceToResponse(&instances[i])
	}
	return responses, nil
}

// Delete deletes an instance. Its participant rows cascade; sibling
// instances are untouched.
func (s *MeetingInstanceService) Delete(actor *auth.Actor, id uuid.UUID) error {
	if actor.OrganizationID == nil {
		return apperrors.NewNoOrganizationError("delete meeting instances")
	}
	orgID := *actor.OrganizationID

	instance, err := s.repo.GetByID(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingInstanceNotFound
		}
		return fmt.Errorf("failed to load meeting instance: %w", err)
	}

	if err := s.repo.Delete(id, orgID); err != nil {
		return fmt.Errorf("failed to delete meeting instance: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(instance.MeetingID))

	return nil
}

// AddParticipant adds a person to an instance. Adding a person who is
// already on the instance is rejected with a descriptive error, not merged.
func (s *MeetingInstanceService) AddParticipant(actor *auth.Actor, instanceID, personID uuid.UUID, status models.ParticipantStatus) (*InstanceParticipantResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("manage meeting participants")
	}
	orgID := *actor.OrganizationID

	if status == "" {
		status = models.ParticipantStatusInvited
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown participant status %q", status))
	}

	instance, err := s.repo.GetByID(instanceID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingInstanceNotFound
		}
		return nil, fmt.Errorf("failed to load meeting instance: %w", err)
	}

	if _, err := s.personRepo.GetByID(personID, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to verify person: %w", err)
	}

	exists, err := s.participantRepo.Exists(instanceID, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing participant: %w", err)
	}
	if exists {
		return nil, apperrors.ErrParticipantExists
	}

	participant := &models.MeetingInstanceParticipant{
		MeetingInstanceID: instanceID,
		PersonID:          personID,
		Status:            status,
	}
	if err := s.participantRepo.Create(participant); err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	created, err := s.participantRepo.GetWithPerson(instanceID, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created participant: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(instance.MeetingID))

	return participantToResponse(created), nil
}

// UpdateParticipantStatus updates the status of the unique
// (instance, person) participant row
func (s *MeetingInstanceService) UpdateParticipantStatus(actor *auth.Actor, instanceID, personID uuid.UUID, status models.ParticipantStatus) (*InstanceParticipantResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("manage meeting participants")
	}
	orgID := *actor.OrganizationID

	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown participant status %q", status))
	}

	if _, err := s.repo.GetByID(instanceID, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingInstanceNotFound
		}
		return nil, fmt.Errorf("failed to load meeting instance: %w", err)
	}

	if err := s.participantRepo.UpdateStatus(instanceID, personID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to update participant status: %w", err)
	}

	updated, err := s.participantRepo.GetWithPerson(instanceID, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated participant: %w", err)
	}

	return participantToResponse(updated), nil
}

// RemoveParticipant deletes the unique (instance, person) participant row
func (s *MeetingInstanceService) RemoveParticipant(actor *auth.Actor, instanceID, personID uuid.UUID) error {
	if actor.OrganizationID == nil {
		return apperrors.NewNoOrganizationError("manage meeting participants")
	}
	orgID := *actor.OrganizationID

	instance, err := s.repo.GetByID(instanceID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingInstanceNotFound
		}
		return fmt.Errorf("failed to load meeting instance: %w", err)
	}

	exists, err := s.participantRepo.Exists(instanceID, personID)
	if err != nil {
		return fmt.Errorf("failed to check participant: %w", err)
	}
	if !exists {
		return apperrors.ErrParticipantNotFound
	}

	if err := s.participantRepo.Delete(instanceID, personID); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	s.revalidator.Invalidate(meetingsListPath, meetingDetailPath(instance.MeetingID))

	return nil
}

func (s *MeetingInstanceService) verifyParticipantsInOrganization(participants []ParticipantInput, orgID uuid.UUID) error {
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

// buildInstanceParticipants converts payload entries to participant rows,
// defaulting status to invited
func buildInstanceParticipants(participants []ParticipantInput) []models.MeetingInstanceParticipant {
	if len(participants) == 0 {
		return nil
	}
	rows := make([]models.MeetingInstanceParticipant, len(participants))
	for i, p := range participants {
		status := p.Status
		if status == "" {
			status = models.ParticipantStatusInvited
		}
		rows[i] = models.MeetingInstanceParticipant{
			PersonID: p.PersonID,
			Status:   status,
		}
	}
	return rows
}

func instanceToResponse(instance *models.MeetingInstance) *MeetingInstanceResponse {
	resp := &MeetingInstanceResponse{
		ID:             instance.ID,
		MeetingID:      instance.MeetingID,
		OrganizationID: instance.OrganizationID,
		ScheduledAt:    instance.ScheduledAt.Format(timeFormat),
		Notes:          instance.Notes,
		IsPrivate:      instance.IsPrivate,
		Participants:   make([]InstanceParticipantResponse, len(instance.Participants)),
		CreatedAt:      instance.CreatedAt.Format(timeFormat),
		UpdatedAt:      instance.UpdatedAt.Format(timeFormat),
	}
	if instance.Meeting.ID != uuid.Nil {
		resp.MeetingTitle = instance.Meeting.Title
		resp.Team = teamRef(instance.Meeting.Team)
		resp.Initiative = initiativeRef(instance.Meeting.Initiative)
		resp.Owner = personRef(instance.Meeting.Owner)
	}
	for i, p := range instance.Participants {
		person := p.Person
		resp.Participants[i] = InstanceParticipantResponse{
			ID:       p.ID,
			PersonID: p.PersonID,
			Status:   p.Status,
			Person:   personRef(&person),
		}
	}
	return resp
}

func participantToResponse(p *models.MeetingInstanceParticipant) *InstanceParticipantResponse {
	person := p.Person
	return &InstanceParticipantResponse{
		ID:       p.ID,
		PersonID: p.PersonID,
		Status:   p.Status,
		Person:   personRef(&person),
	}
}
