package repository

import (
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InitiativeRepository handles database operations for initiatives
type InitiativeRepository struct {
	db *gorm.DB
}

// NewInitiativeRepository creates a new initiative repository
func NewInitiativeRepository(db *gorm.DB) *InitiativeRepository {
	return &InitiativeRepository{db: db}
}

// Create creates a new initiative
func (r *InitiativeRepository) Create(initiative *models.Initiative) error {
	return r.db.Create(initiative).Error
}

// GetByID retrieves an initiative by ID within an organization
func (r *InitiativeRepository) GetByID(id, orgID uuid.UUID) (*models.Initiative, error) {
	var initiative models.Initiative
	err := r.db.First(&initiative, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &initiative, nil
}

// GetByOrganizationID retrieves all initiatives for an organization with pagination
func (r *InitiativeRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Initiative, int64, error) {
	var initiatives []models.Initiative
	var total int64

	if err := r.db.Model(&models.Initiative{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&initiatives).Error
	if err != nil {
		return nil, 0, err
	}

	return initiatives, total, nil
}

// Update updates an initiative
func (r *InitiativeRepository) Update(initiative *models.Initiative) error {
	return r.db.Save(initiative).Error
}

// Delete deletes an initiative within an organization
func (r *InitiativeRepository) Delete(id, orgID uuid.UUID) error {
	return r.db.Delete(&models.Initiative{}, "id = ? AND organization_id = ?", id, orgID).Error
}
