package repository

import (
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingInstanceParticipantRepository handles database operations for
// meeting instance participant rows
type MeetingInstanceParticipantRepository struct {
	db *gorm.DB
}

// NewMeetingInstanceParticipantRepository creates a new instance participant repository
func NewMeetingInstanceParticipantRepository(db *gorm.DB) *MeetingInstanceParticipantRepository {
	return &MeetingInstanceParticipantRepository{db: db}
}

// Create creates a new participant row
func (r *MeetingInstanceParticipantRepository) Create(participant *models.MeetingInstanceParticipant) error {
	return r.db.Create(participant).Error
}

// Get retrieves the unique participant row for an (instance, person) pair
func (r *MeetingInstanceParticipantRepository) Get(instanceID, personID uuid.UUID) (*models.MeetingInstanceParticipant, error) {
	var participant models.MeetingInstanceParticipant
	err := r.db.First(&participant, "meeting_instance_id = ? AND person_id = ?", instanceID, personID).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetWithPerson retrieves the unique participant row with the person expanded
func (r *MeetingInstanceParticipantRepository) GetWithPerson(instanceID, personID uuid.UUID) (*models.MeetingInstanceParticipant, error) {
	var participant models.MeetingInstanceParticipant
	err := r.db.
		Preload("Person").
		First(&participant, "meeting_instance_id = ? AND person_id = ?", instanceID, personID).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// Exists checks whether a participant row exists for the pair
func (r *MeetingInstanceParticipantRepository) Exists(instanceID, personID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.MeetingInstanceParticipant{}).
		Where("meeting_instance_id = ? AND person_id = ?", instanceID, personID).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus updates the status of the unique participant row for the pair
func (r *MeetingInstanceParticipantRepository) UpdateStatus(instanceID, personID uuid.UUID, status models.ParticipantStatus) error {
	result := r.db.Model(&models.MeetingInstanceParticipant{}).
		Where("meeting_instance_id = ? AND person_id = ?", instanceID, personID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes the unique participant row for the pair
func (r *MeetingInstanceParticipantRepository) Delete(instanceID, personID uuid.UUID) error {
	return r.db.Delete(&models.MeetingInstanceParticipant{}, "meeting_instance_id = ? AND person_id = ?", instanceID, personID).Error
}
