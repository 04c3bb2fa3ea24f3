package repository

import (
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingInstanceRepository handles database operations for meeting instances
type MeetingInstanceRepository struct {
	db *gorm.DB
}

// NewMeetingInstanceRepository creates a new meeting instance repository
func NewMeetingInstanceRepository(db *gorm.DB) *MeetingInstanceRepository {
	return &MeetingInstanceRepository{db: db}
}

// Create creates a new meeting instance together with its participant rows
// in one transaction
func (r *MeetingInstanceRepository) Create(instance *models.MeetingInstance) error {
	return r.db.Create(instance).Error
}

// GetByID retrieves an instance by ID within an organization, without the
// visibility filter
func (r *MeetingInstanceRepository) GetByID(id, orgID uuid.UUID) (*models.MeetingInstance, error) {
	var instance models.MeetingInstance
	err := r.db.First(&instance, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetVisibleByID retrieves an instance by ID within an organization,
// applying the actor visibility condition through the parent meeting, with
// relations expanded
func (r *MeetingInstanceRepository) GetVisibleByID(id, orgID, userID uuid.UUID, personID *uuid.UUID) (*models.MeetingInstance, error) {
	cond, args := instanceVisibilityCondition(userID, personID)

	var instance models.MeetingInstance
	err := r.db.
		Joins("JOIN meetings ON meetings.id = meeting_instances.meeting_id").
		Preload("Meeting.Team").
		Preload("Meeting.Initiative").
		Preload("Meeting.Owner").
		Preload("Participants.Person").
		Where("meeting_instances.id = ? AND meeting_instances.organization_id = ?", id, orgID).
		Where(cond, args...).
		First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetWithRelations retrieves an org-scoped instance with relations
// expanded, without the visibility filter
func (r *MeetingInstanceRepository) GetWithRelations(id, orgID uuid.UUID) (*models.MeetingInstance, error) {
	var instance models.MeetingInstance
	err := r.db.
		Preload("Meeting.Team").
		Preload("Meeting.Initiative").
		Preload("Meeting.Owner").
		Preload("Participants.Person").
		First(&instance, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// GetByMeetingID retrieves all instances of a meeting ordered by
// scheduled_at ascending. Visibility of the parent meeting is checked by
// the caller; instances inherit it and are not re-filtered individually.
func (r *MeetingInstanceRepository) GetByMeetingID(meetingID, orgID uuid.UUID) ([]models.MeetingInstance, error) {
	var instances []models.MeetingInstance
	err := r.db.
		Preload("Participants.Person").
		Where("meeting_id = ? AND organization_id = ?", meetingID, orgID).
		Order("scheduled_at ASC, id ASC").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}

// Update updates a meeting instance
func (r *MeetingInstanceRepository) Update(instance *models.MeetingInstance) error {
	return r.db.Save(instance).Error
}

// ReplaceParticipants swaps the full participant set of an instance in a
// single transaction. The end state is full replacement; concurrent readers
// never observe the intermediate empty set.
func (r *MeetingInstanceRepository) ReplaceParticipants(instanceID uuid.UUID, participants []models.MeetingInstanceParticipant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MeetingInstanceParticipant{}, "meeting_instance_id = ?", instanceID).Error; err != nil {
			return err
		}
		if len(participants) == 0 {
			return nil
		}
		for i := range participants {
			participants[i].MeetingInstanceID = instanceID
		}
		return tx.Create(&participants).Error
	})
}

// Delete deletes a meeting instance within an organization. Its participant
// rows go with it through the FK cascade constraint; sibling instances are
// untouched.
func (r *MeetingInstanceRepository) Delete(id, orgID uuid.UUID) error {
	return r.db.Delete(&models.MeetingInstance{}, "id = ? AND organization_id = ?", id, orgID).Error
}
