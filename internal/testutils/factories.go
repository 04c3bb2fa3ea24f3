package testutils

import (
	"time"

	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		Domain:      id.String()[:8] + ".test.com",
		Description: "A test organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and no organization link
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: id.String()[:8] + "@test.com",
		Name:  "Test User",
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	return user
}

// WithPerson links the user to a person record
func (f *UserFactory) WithPerson(orgID, personID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = &orgID
	user.PersonID = &personID
	return user
}

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates a test Person in the given organization
func (f *PersonFactory) Create(orgID uuid.UUID) *models.Person {
	id := uuid.New()
	return &models.Person{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		FullName:       "Jane Doe",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          id.String()[:8] + "@people.test.com",
	}
}

// WithEmail sets a custom email for the person
func (f *PersonFactory) WithEmail(orgID uuid.UUID, email string) *models.Person {
	person := f.Create(orgID)
	person.Email = email
	return person
}

// WithTeam sets the team ID for the person
func (f *PersonFactory) WithTeam(orgID, teamID uuid.UUID) *models.Person {
	person := f.Create(orgID)
	person.TeamID = &teamID
	return person
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team in the given organization
func (f *TeamFactory) Create(orgID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "test-team-" + id.String()[:8],
		Description:    "A test team",
	}
}

// InitiativeFactory provides methods to create test Initiative data
type InitiativeFactory struct{}

// NewInitiativeFactory creates a new InitiativeFactory
func NewInitiativeFactory() *InitiativeFactory {
	return &InitiativeFactory{}
}

// Create creates a test Initiative in the given organization
func (f *InitiativeFactory) Create(orgID uuid.UUID) *models.Initiative {
	id := uuid.New()
	return &models.Initiative{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           "test-initiative-" + id.String()[:8],
		Status:         models.InitiativeStatusActive,
	}
}

// MeetingFactory provides methods to create test Meeting data
type MeetingFactory struct{}

// NewMeetingFactory creates a new MeetingFactory
func NewMeetingFactory() *MeetingFactory {
	return &MeetingFactory{}
}

// Create creates a private non-recurring test Meeting
func (f *MeetingFactory) Create(orgID, createdByID uuid.UUID) *models.Meeting {
	id := uuid.New()
	return &models.Meeting{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Title:          "Test Meeting " + id.String()[:8],
		ScheduledAt:    time.Now().Add(24 * time.Hour),
		IsPrivate:      true,
		CreatedByID:    createdByID,
	}
}

// Public creates a public test Meeting
func (f *MeetingFactory) Public(orgID, createdByID uuid.UUID) *models.Meeting {
	meeting := f.Create(orgID, createdByID)
	meeting.IsPrivate = false
	return meeting
}

// Recurring creates a recurring test Meeting with the given recurrence type
func (f *MeetingFactory) Recurring(orgID, createdByID uuid.UUID, recurrence models.RecurrenceType) *models.Meeting {
	meeting := f.Create(orgID, createdByID)
	meeting.IsRecurring = true
	meeting.RecurrenceType = &recurrence
	return meeting
}

// WithOwner sets the owner person for the meeting
func (f *MeetingFactory) WithOwner(orgID, createdByID, ownerID uuid.UUID) *models.Meeting {
	meeting := f.Create(orgID, createdByID)
	meeting.OwnerID = &ownerID
	return meeting
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization    *OrganizationFactory
	User            *UserFactory
	Person          *PersonFactory
	Team            *TeamFactory
	Initiative      *InitiativeFactory
	Meeting         *MeetingFactory
	MeetingInstance *MeetingInstanceFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    NewOrganizationFactory(),
		User:            NewUserFactory(),
		Person:          NewPersonFactory(),
		Team:            NewTeamFactory(),
		Initiative:      NewInitiativeFactory(),
		Meeting:         NewMeetingFactory(),
		MeetingInstance: NewMeetingInstanceFactory(),
	}
}

// MeetingInstanceFactory provides methods to create test MeetingInstance data
type MeetingInstanceFactory struct{}

// NewMeetingInstanceFactory creates a new MeetingInstanceFactory
func NewMeetingInstanceFactory() *MeetingInstanceFactory {
	return &MeetingInstanceFactory{}
}

// Create creates a test MeetingInstance under the given meeting
func (f *MeetingInstanceFactory) Create(meeting *models.Meeting) *models.MeetingInstance {
	id := uuid.New()
	return &models.MeetingInstance{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MeetingID:      meeting.ID,
		OrganizationID: meeting.OrganizationID,
		ScheduledAt:    time.Now().Add(48 * time.Hour),
		IsPrivate:      meeting.IsPrivate,
	}
}

// At creates a test MeetingInstance scheduled at a specific time
func (f *MeetingInstanceFactory) At(meeting *models.Meeting, scheduledAt time.Time) *models.MeetingInstance {
	instance := f.Create(meeting)
	instance.ScheduledAt = scheduledAt
	return instance
}
