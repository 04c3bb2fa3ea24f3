package service_test

import (
	"testing"
	"time"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/mocks"
	"manager-os-backend/internal/revalidation"
	"manager-os-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MeetingInstanceServiceTestSuite defines the test suite for MeetingInstanceService
type MeetingInstanceServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockInstanceRepo    *mocks.MockMeetingInstanceRepositoryInterface
	mockMeetingRepo     *mocks.MockMeetingRepositoryInterface
	mockParticipantRepo *mocks.MockMeetingInstanceParticipantRepositoryInterface
	mockPersonRepo      *mocks.MockPersonRepositoryInterface
	revalidator         *revalidation.MemoryRevalidator
	instanceService     *service.MeetingInstanceService
	orgID               uuid.UUID
	actor               *auth.Actor
}

// SetupTest sets up the test suite
func (suite *MeetingInstanceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInstanceRepo = mocks.NewMockMeetingInstanceRepositoryInterface(suite.ctrl)
	suite.mockMeetingRepo = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.mockParticipantRepo = mocks.NewMockMeetingInstanceParticipantRepositoryInterface(suite.ctrl)
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.revalidator = revalidation.NewMemoryRevalidator()

	suite.instanceService = service.NewMeetingInstanceService(
		suite.mockInstanceRepo,
		suite.mockMeetingRepo,
		suite.mockParticipantRepo,
		suite.mockPersonRepo,
		suite.revalidator,
		validator.New(),
	)

	suite.orgID = uuid.New()
	suite.actor = &auth.Actor{
		UserID:         uuid.New(),
		Email:          "manager@test.com",
		OrganizationID: &suite.orgID,
	}
}

// TearDownTest cleans up after each test
func (suite *MeetingInstanceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MeetingInstanceServiceTestSuite) parentMeeting(id uuid.UUID, isPrivate bool) *models.Meeting {
	return &models.Meeting{
		BaseModel:      models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		OrganizationID: suite.orgID,
		Title:          "Weekly Sync",
		ScheduledAt:    time.Now().Add(24 * time.Hour),
		IsPrivate:      isPrivate,
		CreatedByID:    suite.actor.UserID,
	}
}

func (suite *MeetingInstanceServiceTestSuite) storedInstance(id, meetingID uuid.UUID) *models.MeetingInstance {
	return &models.MeetingInstance{
		BaseModel:      models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		MeetingID:      meetingID,
		OrganizationID: suite.orgID,
		ScheduledAt:    time.Now().Add(48 * time.Hour),
		IsPrivate:      true,
	}
}

// TestCreateInstanceInheritsPrivacy tests that a new instance copies the
// parent meeting's privacy and organization at creation time
func (suite *MeetingInstanceServiceTestSuite) TestCreateInstanceInheritsPrivacy() {
	meetingID := uuid.New()
	req := &service.CreateMeetingInstanceRequest{
		MeetingID:   meetingID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(suite.parentMeeting(meetingID, false), nil).
		Times(1)

	var captured *models.MeetingInstance
	suite.mockInstanceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(i *models.MeetingInstance) error {
			i.ID = uuid.New()
			captured = i
			return nil
		}).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		GetWithRelations(gomock.Any(), suite.orgID).
		DoAndReturn(func(id uuid.UUID, _ uuid.UUID) (*models.MeetingInstance, error) {
			instance := suite.storedInstance(id, meetingID)
			instance.IsPrivate = false
			return instance, nil
		}).
		Times(1)

	response, err := suite.instanceService.Create(suite.actor, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.False(suite.T(), captured.IsPrivate)
	assert.Equal(suite.T(), suite.orgID, captured.OrganizationID)
	assert.Equal(suite.T(), meetingID, captured.MeetingID)

	_, detailStale := suite.revalidator.StaleSince("/meetings/" + meetingID.String())
	assert.True(suite.T(), detailStale)
}

// TestCreateInstanceWithParticipants tests that payload participants are
// written with invited as the default status
func (suite *MeetingInstanceServiceTestSuite) TestCreateInstanceWithParticipants() {
	meetingID := uuid.New()
	personA := uuid.New()
	personB := uuid.New()
	req := &service.CreateMeetingInstanceRequest{
		MeetingID:   meetingID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Participants: []service.ParticipantInput{
			{PersonID: personA},
			{PersonID: personB, Status: models.ParticipantStatusAccepted},
		},
	}

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(suite.parentMeeting(meetingID, true), nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		CountByIDs(gomock.Any(), suite.orgID).
		Return(int64(2), nil).
		Times(1)

	var captured *models.MeetingInstance
	suite.mockInstanceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(i *models.MeetingInstance) error {
			i.ID = uuid.New()
			captured = i
			return nil
		}).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		GetWithRelations(gomock.Any(), suite.orgID).
		DoAndReturn(func(id uuid.UUID, _ uuid.UUID) (*models.MeetingInstance, error) {
			return suite.storedInstance(id, meetingID), nil
		}).
		Times(1)

	response, err := suite.instanceService.Create(suite.actor, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), captured.Participants, 2)
	assert.Equal(suite.T(), models.ParticipantStatusInvited, captured.Participants[0].Status)
	assert.Equal(suite.T(), models.ParticipantStatusAccepted, captured.Participants[1].Status)
}

// TestCreateInstanceMeetingNotFound tests creating an instance under a
// meeting outside the actor's organization
func (suite *MeetingInstanceServiceTestSuite) TestCreateInstanceMeetingNotFound() {
	meetingID := uuid.New()
	req := &service.CreateMeetingInstanceRequest{
		MeetingID:   meetingID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.instanceService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotFound)
}

// TestCreateInstanceNoOrganization tests the tenancy precondition
func (suite *MeetingInstanceServiceTestSuite) TestCreateInstanceNoOrganization() {
	actor := &auth.Actor{UserID: uuid.New(), Email: "drifter@test.com"}
	req := &service.CreateMeetingInstanceRequest{
		MeetingID:   uuid.New(),
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	response, err := suite.instanceService.Create(actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestUpdateInstanceReplacesParticipants tests that a non-nil participant
// list fully replaces the existing set
func (suite *MeetingInstanceServiceTestSuite) TestUpdateInstanceReplacesParticipants() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	participants := []service.ParticipantInput{{PersonID: personID}}
	req := &service.UpdateMeetingInstanceRequest{Participants: &participants}

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		CountByIDs(gomock.Any(), suite.orgID).
		Return(int64(1), nil).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		ReplaceParticipants(instanceID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, rows []models.MeetingInstanceParticipant) error {
			assert.Len(suite.T(), rows, 1)
			assert.Equal(suite.T(), personID, rows[0].PersonID)
			assert.Equal(suite.T(), models.ParticipantStatusInvited, rows[0].Status)
			return nil
		}).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		GetWithRelations(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)

	response, err := suite.instanceService.Update(suite.actor, instanceID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)

	// Invalidation uses the instance's resolved meeting id
	_, detailStale := suite.revalidator.StaleSince("/meetings/" + meetingID.String())
	assert.True(suite.T(), detailStale)
}

// TestUpdateInstanceEmptyReplacement tests that an explicit empty list
// clears all participants
func (suite *MeetingInstanceServiceTestSuite) TestUpdateInstanceEmptyReplacement() {
	instanceID := uuid.New()
	meetingID := uuid.New()

	empty := []service.ParticipantInput{}
	req := &service.UpdateMeetingInstanceRequest{Participants: &empty}

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		ReplaceParticipants(instanceID, gomock.Len(0)).
		Return(nil).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		GetWithRelations(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)

	response, err := suite.instanceService.Update(suite.actor, instanceID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestUpdateInstanceNotesOnly tests that omitting the participant list
// leaves participants untouched
func (suite *MeetingInstanceServiceTestSuite) TestUpdateInstanceNotesOnly() {
	instanceID := uuid.New()
	meetingID := uuid.New()

	notes := "Covered the rollout plan"
	req := &service.UpdateMeetingInstanceRequest{Notes: &notes}

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)

	var captured *models.MeetingInstance
	suite.mockInstanceRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(i *models.MeetingInstance) error {
			captured = i
			return nil
		}).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		GetWithRelations(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)

	response, err := suite.instanceService.Update(suite.actor, instanceID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), notes, captured.Notes)
}

// TestGetByMeetingChecksParentVisibility tests that instance listing
// authorizes on the parent meeting once
func (suite *MeetingInstanceServiceTestSuite) TestGetByMeetingChecksParentVisibility() {
	meetingID := uuid.New()

	suite.mockMeetingRepo.EXPECT().
		GetVisibleByID(meetingID, suite.orgID, suite.actor.UserID, nil).
		Return(suite.parentMeeting(meetingID, true), nil).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		GetByMeetingID(meetingID, suite.orgID).
		Return([]models.MeetingInstance{
			*suite.storedInstance(uuid.New(), meetingID),
			*suite.storedInstance(uuid.New(), meetingID),
		}, nil).
		Times(1)

	responses, err := suite.instanceService.GetByMeeting(suite.actor, meetingID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
}

// TestGetByMeetingHiddenParent tests that a hidden parent meeting collapses
// to not found without touching the instance repository
func (suite *MeetingInstanceServiceTestSuite) TestGetByMeetingHiddenParent() {
	meetingID := uuid.New()

	suite.mockMeetingRepo.EXPECT().
		GetVisibleByID(meetingID, suite.orgID, suite.actor.UserID, nil).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, err := suite.instanceService.GetByMeeting(suite.actor, meetingID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotFound)
}

// TestAddParticipant tests adding a person to an instance
func (suite *MeetingInstanceServiceTestSuite) TestAddParticipant() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		GetByID(personID, suite.orgID).
		Return(&models.Person{
			BaseModel:      models.BaseModel{ID: personID},
			OrganizationID: suite.orgID,
			FullName:       "Dana Reyes",
			Email:          "dana@test.com",
		}, nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		Exists(instanceID, personID).
		Return(false, nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		GetWithPerson(instanceID, personID).
		Return(&models.MeetingInstanceParticipant{
			BaseModel:         models.BaseModel{ID: uuid.New()},
			MeetingInstanceID: instanceID,
			PersonID:          personID,
			Status:            models.ParticipantStatusInvited,
		}, nil).
		Times(1)

	response, err := suite.instanceService.AddParticipant(suite.actor, instanceID, personID, "")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), personID, response.PersonID)
	assert.Equal(suite.T(), models.ParticipantStatusInvited, response.Status)
}

// TestAddParticipantDuplicate tests that adding a person twice is rejected
// with the descriptive duplicate error
func (suite *MeetingInstanceServiceTestSuite) TestAddParticipantDuplicate() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		GetByID(personID, suite.orgID).
		Return(&models.Person{BaseModel: models.BaseModel{ID: personID}}, nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		Exists(instanceID, personID).
		Return(true, nil).
		Times(1)

	response, err := suite.instanceService.AddParticipant(suite.actor, instanceID, personID, models.ParticipantStatusInvited)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantExists)
	assert.Contains(suite.T(), err.Error(), "already exists on this meeting instance")
}

// TestAddParticipantInvalidStatus tests rejecting an unknown status value
func (suite *MeetingInstanceServiceTestSuite) TestAddParticipantInvalidStatus() {
	response, err := suite.instanceService.AddParticipant(suite.actor, uuid.New(), uuid.New(), "maybe")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateParticipantStatus tests updating a participant's status
func (suite *MeetingInstanceServiceTestSuite) TestUpdateParticipantStatus() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		UpdateStatus(instanceID, personID, models.ParticipantStatusAttended).
		Return(nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		GetWithPerson(instanceID, personID).
		Return(&models.MeetingInstanceParticipant{
			BaseModel:         models.BaseModel{ID: uuid.New()},
			MeetingInstanceID: instanceID,
			PersonID:          personID,
			Status:            models.ParticipantStatusAttended,
		}, nil).
		Times(1)

	response, err := suite.instanceService.UpdateParticipantStatus(suite.actor, instanceID, personID, models.ParticipantStatusAttended)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ParticipantStatusAttended, response.Status)
}

// TestUpdateParticipantStatusNotFound tests updating a person who is not on
// the instance
func (suite *MeetingInstanceServiceTestSuite) TestUpdateParticipantStatusNotFound() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		UpdateStatus(instanceID, personID, models.ParticipantStatusDeclined).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.instanceService.UpdateParticipantStatus(suite.actor, instanceID, personID, models.ParticipantStatusDeclined)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantNotFound)
}

// TestRemoveParticipant tests removing a participant row
func (suite *MeetingInstanceServiceTestSuite) TestRemoveParticipant() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		Exists(instanceID, personID).
		Return(true, nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		Delete(instanceID, personID).
		Return(nil).
		Times(1)

	err := suite.instanceService.RemoveParticipant(suite.actor, instanceID, personID)

	assert.NoError(suite.T(), err)
	_, detailStale := suite.revalidator.StaleSince("/meetings/" + meetingID.String())
	assert.True(suite.T(), detailStale)
}

// TestRemoveParticipantNotFound tests removing a person who is not on the
// instance
func (suite *MeetingInstanceServiceTestSuite) TestRemoveParticipantNotFound() {
	instanceID := uuid.New()
	meetingID := uuid.New()
	personID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockParticipantRepo.EXPECT().
		Exists(instanceID, personID).
		Return(false, nil).
		Times(1)

	err := suite.instanceService.RemoveParticipant(suite.actor, instanceID, personID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParticipantNotFound)
}

// TestDeleteInstance tests deleting a single instance
func (suite *MeetingInstanceServiceTestSuite) TestDeleteInstance() {
	instanceID := uuid.New()
	meetingID := uuid.New()

	suite.mockInstanceRepo.EXPECT().
		GetByID(instanceID, suite.orgID).
		Return(suite.storedInstance(instanceID, meetingID), nil).
		Times(1)
	suite.mockInstanceRepo.EXPECT().
		Delete(instanceID, suite.orgID).
		Return(nil).
		Times(1)

	err := suite.instanceService.Delete(suite.actor, instanceID)

	assert.NoError(suite.T(), err)
	_, detailStale := suite.revalidator.StaleSince("/meetings/" + meetingID.String())
	assert.True(suite.T(), detailStale)
}

// TestMeetingInstanceServiceTestSuite runs the test suite
func TestMeetingInstanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingInstanceServiceTestSuite))
}
