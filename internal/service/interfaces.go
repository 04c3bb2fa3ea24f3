package service

import (
	"github.com/google/uuid"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service operations
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
}

// PersonServiceInterface defines the interface for person service operations
type PersonServiceInterface interface {
	Create(actor *auth.Actor, req *CreatePersonRequest) (*PersonResponse, error)
	GetByID(actor *auth.Actor, id uuid.UUID) (*PersonResponse, error)
	List(actor *auth.Actor, page, pageSize int) (*PersonListResponse, error)
}

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	Create(actor *auth.Actor, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(actor *auth.Actor, id uuid.UUID) (*TeamResponse, error)
	List(actor *auth.Actor, page, pageSize int) (*TeamListResponse, error)
}

// InitiativeServiceInterface defines the interface for initiative service operations
type InitiativeServiceInterface interface {
	Create(actor *auth.Actor, req *CreateInitiativeRequest) (*InitiativeResponse, error)
	Update(actor *auth.Actor, id uuid.UUID, req *UpdateInitiativeRequest) (*InitiativeResponse, error)
	GetByID(actor *auth.Actor, id uuid.UUID) (*InitiativeResponse, error)
	List(actor *auth.Actor, page, pageSize int) (*InitiativeListResponse, error)
}

// MeetingServiceInterface defines the interface for meeting service operations
type MeetingServiceInterface interface {
	Create(actor *auth.Actor, req *CreateMeetingRequest) (*MeetingResponse, error)
	Update(actor *auth.Actor, id uuid.UUID, req *UpdateMeetingRequest) (*MeetingResponse, error)
	GetByID(actor *auth.Actor, id uuid.UUID) (*MeetingResponse, error)
	List(actor *auth.Actor) (*MeetingListResponse, error)
	Delete(actor *auth.Actor, id uuid.UUID) error
}

// MeetingInstanceServiceInterface defines the interface for meeting instance service operations
type MeetingInstanceServiceInterface interface {
	Create(actor *auth.Actor, req *CreateMeetingInstanceRequest) (*MeetingInstanceResponse, error)
	Update(actor *auth.Actor, id uuid.UUID, req *UpdateMeetingInstanceRequest) (*MeetingInstanceResponse, error)
	GetByID(actor *auth.Actor, id uuid.UUID) (*MeetingInstanceResponse, error)
	GetByMeeting(actor *auth.Actor, meetingID uuid.UUID) ([]MeetingInstanceResponse, error)
	Delete(actor *auth.Actor, id uuid.UUID) error
	AddParticipant(actor *auth.Actor, instanceID, personID uuid.UUID, status models.ParticipantStatus) (*InstanceParticipantResponse, error)
	UpdateParticipantStatus(actor *auth.Actor, instanceID, personID uuid.UUID, status models.ParticipantStatus) (*InstanceParticipantResponse, error)
	RemoveParticipant(actor *auth.Actor, instanceID, personID uuid.UUID) error
}

// ICSImportServiceInterface defines the interface for ICS import operations
type ICSImportServiceInterface interface {
	ImportMeetingInstance(actor *auth.Actor, fileContent string) (*MeetingInstanceImportResult, error)
}
