package repository

import (
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for people. Every lookup is
// scoped to an organization; a person in another tenant is indistinguishable
// from a missing one.
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	return r.db.Create(person).Error
}

// GetByID retrieves a person by ID within an organization
func (r *PersonRepository) GetByID(id, orgID uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByEmail retrieves a person by email within an organization
func (r *PersonRepository) GetByEmail(email string, orgID uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "email = ? AND organization_id = ?", email, orgID).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByOrganizationID retrieves all people in an organization with pagination
func (r *PersonRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Person, int64, error) {
	var people []models.Person
	var total int64

	if err := r.db.Model(&models.Person{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("organization_id = ?", orgID).
		Order("full_name ASC").
		Limit(limit).Offset(offset).
		Find(&people).Error
	if err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

// CountByIDs counts how many of the given person IDs exist in the
// organization. Callers compare the count against len(ids) to validate a
// participant list all-or-nothing before writing any rows.
func (r *PersonRepository) CountByIDs(ids []uuid.UUID, orgID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Person{}).
		Where("id IN ? AND organization_id = ?", ids, orgID).
		Count(&count).Error
	return count, err
}

// Update updates a person
func (r *PersonRepository) Update(person *models.Person) error {
	return r.db.Save(person).Error
}

// Delete deletes a person within an organization
func (r *PersonRepository) Delete(id, orgID uuid.UUID) error {
	return r.db.Delete(&models.Person{}, "id = ? AND organization_id = ?", id, orgID).Error
}
