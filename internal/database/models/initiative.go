package models

import (
	"github.com/google/uuid"
)

// Initiative represents a long-running body of work meetings can be linked to
type Initiative struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string           `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string           `json:"description" gorm:"type:text"`
	Status         InitiativeStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	OwnerID        *uuid.UUID       `json:"owner_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Owner        *Person      `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Initiative
func (Initiative) TableName() string {
	return "initiatives"
}
