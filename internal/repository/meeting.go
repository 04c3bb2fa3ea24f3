package repository

import (
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting together with its initial participant rows
// in one transaction
func (r *MeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// GetByID retrieves a meeting by ID within an organization, without the
// visibility filter. Used by mutations that only need the org-scoped
// existence check.
func (r *MeetingRepository) GetByID(id, orgID uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.First(&meeting, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetVisibleByID retrieves a meeting by ID within an organization, applying
// the actor visibility condition, with instances (ordered by scheduled_at
// ascending) and relations expanded
func (r *MeetingRepository) GetVisibleByID(id, orgID, userID uuid.UUID, personID *uuid.UUID) (*models.Meeting, error) {
	cond, args := meetingVisibilityCondition(userID, personID)

	var meeting models.Meeting
	err := r.db.
		Preload("Team").
		Preload("Initiative").
		Preload("Owner").
		Preload("CreatedBy").
		Preload("Participants.Person").
		Preload("Instances", func(db *gorm.DB) *gorm.DB {
			return db.Order("meeting_instances.scheduled_at ASC, meeting_instances.id ASC")
		}).
		Where("meetings.id = ? AND meetings.organization_id = ?", id, orgID).
		Where(cond, args...).
		First(&meeting).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetWithRelations retrieves an org-scoped meeting with relations expanded,
// without the visibility filter. Used to build responses for mutations the
// actor has already been authorized for.
func (r *MeetingRepository) GetWithRelations(id, orgID uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.
		Preload("Team").
		Preload("Initiative").
		Preload("Owner").
		Preload("CreatedBy").
		Preload("Participants.Person").
		First(&meeting, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ListVisible retrieves all meetings in an organization the actor may see,
// ordered by scheduled_at ascending, id as tiebreak so the order is stable
func (r *MeetingRepository) ListVisible(orgID, userID uuid.UUID, personID *uuid.UUID) ([]models.Meeting, error) {
	cond, args := meetingVisibilityCondition(userID, personID)

	var meetings []models.Meeting
	err := r.db.
		Preload("Team").
		Preload("Initiative").
		Preload("Owner").
		Preload("Participants.Person").
		Where("meetings.organization_id = ?", orgID).
		Where(cond, args...).
		Order("meetings.scheduled_at ASC, meetings.id ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// Update updates a meeting
func (r *MeetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}

// Delete deletes a meeting within an organization. Instances and
// participant rows go with it through the FK cascade constraints.
func (r *MeetingRepository) Delete(id, orgID uuid.UUID) error {
	return r.db.Delete(&models.Meeting{}, "id = ? AND organization_id = ?", id, orgID).Error
}
