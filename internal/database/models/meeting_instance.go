package models

import (
	"time"

	"github.com/google/uuid"
)

// MeetingInstance represents one dated occurrence of a Meeting. Instances
// are created explicitly, never computed from the recurrence rule. IsPrivate
// is copied from the parent meeting at creation time and is not editable;
// later privacy changes on the parent do not propagate to existing instances.
type MeetingInstance struct {
	BaseModel
	MeetingID      uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" gorm:"not null;index" validate:"required"`
	Notes          string    `json:"notes" gorm:"type:text"`
	IsPrivate      bool      `json:"is_private" gorm:"not null;default:true"`

	// Relationships
	Meeting      Meeting                      `json:"meeting,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Organization Organization                 `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Participants []MeetingInstanceParticipant `json:"participants,omitempty" gorm:"foreignKey:MeetingInstanceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MeetingInstance
func (MeetingInstance) TableName() string {
	return "meeting_instances"
}

// MeetingInstanceParticipant represents a person's invitation/attendance
// record on one meeting instance. At most one row exists per
// (instance, person) pair; adding a duplicate is rejected, not merged.
type MeetingInstanceParticipant struct {
	BaseModel
	MeetingInstanceID uuid.UUID         `json:"meeting_instance_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_instance_participants_pair" validate:"required"`
	PersonID          uuid.UUID         `json:"person_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_instance_participants_pair" validate:"required"`
	Status            ParticipantStatus `json:"status" gorm:"type:varchar(50);not null;default:'invited'"`

	// Relationships
	MeetingInstance MeetingInstance `json:"meeting_instance,omitempty" gorm:"foreignKey:MeetingInstanceID;constraint:OnDelete:CASCADE"`
	Person          Person          `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MeetingInstanceParticipant
func (MeetingInstanceParticipant) TableName() string {
	return "meeting_instance_participants"
}
