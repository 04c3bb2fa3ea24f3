package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain      string `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	People      []Person     `json:"people,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Teams       []Team       `json:"teams,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Initiatives []Initiative `json:"initiatives,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Meetings    []Meeting    `json:"meetings,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
