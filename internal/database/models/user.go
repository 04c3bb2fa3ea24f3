package models

import (
	"github.com/google/uuid"
)

// User represents an authentication identity. A user may belong to an
// organization and may be linked to a Person directory record; both links
// are optional and a user without an organization cannot act on any
// tenant-scoped data.
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	PersonID       *uuid.UUID `json:"person_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
	Person       *Person       `json:"person,omitempty" gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
