package models

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents a reusable meeting definition, either a single meeting
// or a recurring template whose dated occurrences are MeetingInstance rows.
// RecurrenceType must be set iff IsRecurring is true.
type Meeting struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string          `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string          `json:"description" gorm:"type:text"`
	ScheduledAt    time.Time       `json:"scheduled_at" gorm:"not null" validate:"required"`
	Duration       *int            `json:"duration,omitempty" validate:"omitempty,min=1,max=480"` // minutes
	Location       string          `json:"location" gorm:"size:200"`
	Notes          string          `json:"notes" gorm:"type:text"`
	IsRecurring    bool            `json:"is_recurring" gorm:"not null;default:false"`
	RecurrenceType *RecurrenceType `json:"recurrence_type,omitempty" gorm:"type:varchar(50)"`
	IsPrivate      bool            `json:"is_private" gorm:"not null;default:true"`
	TeamID         *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid;index"`
	InitiativeID   *uuid.UUID      `json:"initiative_id,omitempty" gorm:"type:uuid;index"`
	OwnerID        *uuid.UUID      `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID    uuid.UUID       `json:"created_by_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Organization Organization         `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Team         *Team                `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Initiative   *Initiative          `json:"initiative,omitempty" gorm:"foreignKey:InitiativeID;constraint:OnDelete:SET NULL"`
	Owner        *Person              `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	CreatedBy    User                 `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Participants []MeetingParticipant `json:"participants,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Instances    []MeetingInstance    `json:"instances,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// MeetingParticipant represents a person's invitation record on a meeting
// definition. At most one row exists per (meeting, person) pair.
type MeetingParticipant struct {
	BaseModel
	MeetingID uuid.UUID         `json:"meeting_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_meeting_participants_pair" validate:"required"`
	PersonID  uuid.UUID         `json:"person_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_meeting_participants_pair" validate:"required"`
	Status    ParticipantStatus `json:"status" gorm:"type:varchar(50);not null;default:'invited'"`

	// Relationships
	Meeting Meeting `json:"meeting,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Person  Person  `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MeetingParticipant
func (MeetingParticipant) TableName() string {
	return "meeting_participants"
}
