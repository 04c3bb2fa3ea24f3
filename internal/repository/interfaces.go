package repository

import (
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByDomain(domain string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// PersonRepositoryInterface defines the interface for person repository operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	GetByID(id, orgID uuid.UUID) (*models.Person, error)
	GetByEmail(email string, orgID uuid.UUID) (*models.Person, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Person, int64, error)
	CountByIDs(ids []uuid.UUID, orgID uuid.UUID) (int64, error)
	Update(person *models.Person) error
	Delete(id, orgID uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id, orgID uuid.UUID) (*models.Team, error)
	GetByName(orgID uuid.UUID, name string) (*models.Team, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id, orgID uuid.UUID) error
}

// InitiativeRepositoryInterface defines the interface for initiative repository operations
type InitiativeRepositoryInterface interface {
	Create(initiative *models.Initiative) error
	GetByID(id, orgID uuid.UUID) (*models.Initiative, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Initiative, int64, error)
	Update(initiative *models.Initiative) error
	Delete(id, orgID uuid.UUID) error
}

// MeetingRepositoryInterface defines the interface for meeting repository operations
type MeetingRepositoryInterface interface {
	Create(meeting *models.Meeting) error
	GetByID(id, orgID uuid.UUID) (*models.Meeting, error)
	GetVisibleByID(id, orgID, userID uuid.UUID, personID *uuid.UUID) (*models.Meeting, error)
	GetWithRelations(id, orgID uuid.UUID) (*models.Meeting, error)
	ListVisible(orgID, userID uuid.UUID, personID *uuid.UUID) ([]models.Meeting, error)
	Update(meeting *models.Meeting) error
	Delete(id, orgID uuid.UUID) error
}

// MeetingInstanceRepositoryInterface defines the interface for meeting instance repository operations
type MeetingInstanceRepositoryInterface interface {
	Create(instance *models.MeetingInstance) error
	GetByID(id, orgID uuid.UUID) (*models.MeetingInstance, error)
	GetVisibleByID(id, orgID, userID uuid.UUID, personID *uuid.UUID) (*models.MeetingInstance, error)
	GetWithRelations(id, orgID uuid.UUID) (*models.MeetingInstance, error)
	GetByMeetingID(meetingID, orgID uuid.UUID) ([]models.MeetingInstance, error)
	Update(instance *models.MeetingInstance) error
	ReplaceParticipants(instanceID uuid.UUID, participants []models.MeetingInstanceParticipant) error
	Delete(id, orgID uuid.UUID) error
}

// MeetingInstanceParticipantRepositoryInterface defines the interface for instance participant operations
type MeetingInstanceParticipantRepositoryInterface interface {
	Create(participant *models.MeetingInstanceParticipant) error
	Get(instanceID, personID uuid.UUID) (*models.MeetingInstanceParticipant, error)
	GetWithPerson(instanceID, personID uuid.UUID) (*models.MeetingInstanceParticipant, error)
	Exists(instanceID, personID uuid.UUID) (bool, error)
	UpdateStatus(instanceID, personID uuid.UUID, status models.ParticipantStatus) error
	Delete(instanceID, personID uuid.UUID) error
}
