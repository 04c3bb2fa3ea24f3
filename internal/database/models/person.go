package models

import (
	"github.com/google/uuid"
)

// Person represents a directory record for a human in an organization,
// distinct from the User authentication identity that may link to it
type Person struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName       string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	FirstName      string     `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName       string     `json:"last_name" gorm:"size:100" validate:"max=100"`
	Email          string     `json:"email" gorm:"size:255;index" validate:"omitempty,email,max=255"`
	TeamID         *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Team         *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}
