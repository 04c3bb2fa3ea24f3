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

// MeetingServiceTestSuite defines the test suite for MeetingService
type MeetingServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMeetingRepo    *mocks.MockMeetingRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockInitiativeRepo *mocks.MockInitiativeRepositoryInterface
	mockPersonRepo     *mocks.MockPersonRepositoryInterface
	revalidator        *revalidation.MemoryRevalidator
	meetingService     *service.MeetingService
	orgID              uuid.UUID
	actor              *auth.Actor
}

// SetupTest sets up the test suite
func (suite *MeetingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMeetingRepo = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockInitiativeRepo = mocks.NewMockInitiativeRepositoryInterface(suite.ctrl)
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.revalidator = revalidation.NewMemoryRevalidator()

	suite.meetingService = service.NewMeetingService(
		suite.mockMeetingRepo,
		suite.mockTeamRepo,
		suite.mockInitiativeRepo,
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
func (suite *MeetingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MeetingServiceTestSuite) storedMeeting(id uuid.UUID) *models.Meeting {
	return &models.Meeting{
		BaseModel:      models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		OrganizationID: suite.orgID,
		Title:          "Weekly Sync",
		ScheduledAt:    time.Now().Add(24 * time.Hour),
		IsPrivate:      true,
		CreatedByID:    suite.actor.UserID,
	}
}

// TestCreateMeetingDefaultsToPrivate tests that an omitted is_private flag
// results in a private meeting stamped with the acting user
func (suite *MeetingServiceTestSuite) TestCreateMeetingDefaultsToPrivate() {
	req := &service.CreateMeetingRequest{
		Title:       "Weekly Sync",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}

	var captured *models.Meeting
	suite.mockMeetingRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Meeting) error {
			m.ID = uuid.New()
			captured = m
			return nil
		}).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		GetWithRelations(gomock.Any(), suite.orgID).
		DoAndReturn(func(id uuid.UUID, _ uuid.UUID) (*models.Meeting, error) {
			return suite.storedMeeting(id), nil
		}).
		Times(1)

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.True(suite.T(), captured.IsPrivate)
	assert.Equal(suite.T(), suite.actor.UserID, captured.CreatedByID)
	assert.Equal(suite.T(), suite.orgID, captured.OrganizationID)

	_, stale := suite.revalidator.StaleSince("/meetings")
	assert.True(suite.T(), stale)
}

// TestCreateMeetingExplicitlyPublic tests creating a public meeting
func (suite *MeetingServiceTestSuite) TestCreateMeetingExplicitlyPublic() {
	isPrivate := false
	req := &service.CreateMeetingRequest{
		Title:       "All Hands",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		IsPrivate:   &isPrivate,
	}

	var captured *models.Meeting
	suite.mockMeetingRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Meeting) error {
			m.ID = uuid.New()
			captured = m
			return nil
		}).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		GetWithRelations(gomock.Any(), suite.orgID).
		DoAndReturn(func(id uuid.UUID, _ uuid.UUID) (*models.Meeting, error) {
			m := suite.storedMeeting(id)
			m.IsPrivate = false
			return m, nil
		}).
		Times(1)

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), captured.IsPrivate)
	assert.False(suite.T(), response.IsPrivate)
}

// TestCreateMeetingNoOrganization tests that an actor without an
// organization cannot create meetings
func (suite *MeetingServiceTestSuite) TestCreateMeetingNoOrganization() {
	actor := &auth.Actor{UserID: uuid.New(), Email: "drifter@test.com"}
	req := &service.CreateMeetingRequest{
		Title:       "Weekly Sync",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}

	response, err := suite.meetingService.Create(actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestCreateMeetingRecurringWithoutType tests that a recurring meeting
// without a recurrence type is rejected
func (suite *MeetingServiceTestSuite) TestCreateMeetingRecurringWithoutType() {
	req := &service.CreateMeetingRequest{
		Title:       "Weekly Sync",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		IsRecurring: true,
	}

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "recurrence_type")
}

// TestCreateMeetingTypeWithoutRecurring tests that a recurrence type on a
// non-recurring meeting is rejected
func (suite *MeetingServiceTestSuite) TestCreateMeetingTypeWithoutRecurring() {
	weekly := models.RecurrenceWeekly
	req := &service.CreateMeetingRequest{
		Title:          "One Off",
		ScheduledAt:    time.Now().Add(24 * time.Hour),
		RecurrenceType: &weekly,
	}

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateMeetingUnknownRecurrenceType tests rejecting recurrence values
// outside the enum
func (suite *MeetingServiceTestSuite) TestCreateMeetingUnknownRecurrenceType() {
	bogus := models.RecurrenceType("fortnightly")
	req := &service.CreateMeetingRequest{
		Title:          "Weekly Sync",
		ScheduledAt:    time.Now().Add(24 * time.Hour),
		IsRecurring:    true,
		RecurrenceType: &bogus,
	}

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateMeetingDuplicateParticipants tests that the same person listed
// twice in one payload is rejected
func (suite *MeetingServiceTestSuite) TestCreateMeetingDuplicateParticipants() {
	personID := uuid.New()
	req := &service.CreateMeetingRequest{
		Title:       "Weekly Sync",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Participants: []service.ParticipantInput{
			{PersonID: personID},
			{PersonID: personID, Status: models.ParticipantStatusAccepted},
		},
	}

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "more than once")
}

// TestCreateMeetingParticipantOutsideOrganization tests that a participant
// from another organization fails the whole create
func (suite *MeetingServiceTestSuite) TestCreateMeetingParticipantOutsideOrganization() {
	req := &service.CreateMeetingRequest{
		Title:       "Weekly Sync",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Participants: []service.ParticipantInput{
			{PersonID: uuid.New()},
			{PersonID: uuid.New()},
		},
	}

	// Only one of the two persons resolves within the organization
	suite.mockPersonRepo.EXPECT().
		CountByIDs(gomock.Any(), suite.orgID).
		Return(int64(1), nil).
		Times(1)

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestCreateMeetingUnknownTeam tests that a team reference outside the
// organization collapses to not found
func (suite *MeetingServiceTestSuite) TestCreateMeetingUnknownTeam() {
	teamID := uuid.New()
	req := &service.CreateMeetingRequest{
		Title:       "Weekly Sync",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		TeamID:      &teamID,
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.meetingService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestUpdateMeetingClearsRecurrence tests that an empty-string recurrence
// type clears recurrence on a recurring meeting
func (suite *MeetingServiceTestSuite) TestUpdateMeetingClearsRecurrence() {
	meetingID := uuid.New()
	weekly := models.RecurrenceWeekly
	existing := suite.storedMeeting(meetingID)
	existing.IsRecurring = true
	existing.RecurrenceType = &weekly

	notRecurring := false
	cleared := models.RecurrenceType("")
	req := &service.UpdateMeetingRequest{
		IsRecurring:    &notRecurring,
		RecurrenceType: &cleared,
	}

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(existing, nil).
		Times(1)

	var captured *models.Meeting
	suite.mockMeetingRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(m *models.Meeting) error {
			captured = m
			return nil
		}).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		GetWithRelations(meetingID, suite.orgID).
		DoAndReturn(func(id uuid.UUID, _ uuid.UUID) (*models.Meeting, error) {
			return suite.storedMeeting(id), nil
		}).
		Times(1)

	response, err := suite.meetingService.Update(suite.actor, meetingID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.False(suite.T(), captured.IsRecurring)
	assert.Nil(suite.T(), captured.RecurrenceType)
}

// TestUpdateMeetingInvalidMergedRecurrence tests that turning on recurrence
// without supplying a type in the merged state is rejected
func (suite *MeetingServiceTestSuite) TestUpdateMeetingInvalidMergedRecurrence() {
	meetingID := uuid.New()
	existing := suite.storedMeeting(meetingID)

	recurring := true
	req := &service.UpdateMeetingRequest{IsRecurring: &recurring}

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(existing, nil).
		Times(1)

	response, err := suite.meetingService.Update(suite.actor, meetingID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateMeetingNotFound tests updating a meeting in another
// organization
func (suite *MeetingServiceTestSuite) TestUpdateMeetingNotFound() {
	meetingID := uuid.New()
	title := "Renamed"
	req := &service.UpdateMeetingRequest{Title: &title}

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.meetingService.Update(suite.actor, meetingID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotFound)
}

// TestGetMeetingHiddenByVisibility tests that a private meeting the actor
// is not attached to reads as not found
func (suite *MeetingServiceTestSuite) TestGetMeetingHiddenByVisibility() {
	meetingID := uuid.New()

	suite.mockMeetingRepo.EXPECT().
		GetVisibleByID(meetingID, suite.orgID, suite.actor.UserID, nil).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.meetingService.GetByID(suite.actor, meetingID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotFound)
}

// TestListMeetings tests listing visible meetings
func (suite *MeetingServiceTestSuite) TestListMeetings() {
	meetings := []models.Meeting{
		*suite.storedMeeting(uuid.New()),
		*suite.storedMeeting(uuid.New()),
	}

	suite.mockMeetingRepo.EXPECT().
		ListVisible(suite.orgID, suite.actor.UserID, nil).
		Return(meetings, nil).
		Times(1)

	response, err := suite.meetingService.List(suite.actor)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), 2, response.Total)
	assert.Len(suite.T(), response.Meetings, 2)
}

// TestDeleteMeeting tests deleting a meeting and the staleness stamps it
// leaves behind
func (suite *MeetingServiceTestSuite) TestDeleteMeeting() {
	meetingID := uuid.New()

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(suite.storedMeeting(meetingID), nil).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		Delete(meetingID, suite.orgID).
		Return(nil).
		Times(1)

	err := suite.meetingService.Delete(suite.actor, meetingID)

	assert.NoError(suite.T(), err)
	_, listStale := suite.revalidator.StaleSince("/meetings")
	_, detailStale := suite.revalidator.StaleSince("/meetings/" + meetingID.String())
	assert.True(suite.T(), listStale)
	assert.True(suite.T(), detailStale)
}

// TestDeleteMeetingNotFound tests deleting a meeting that does not resolve
func (suite *MeetingServiceTestSuite) TestDeleteMeetingNotFound() {
	meetingID := uuid.New()

	suite.mockMeetingRepo.EXPECT().
		GetByID(meetingID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.meetingService.Delete(suite.actor, meetingID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotFound)
}

// TestCreateMeetingValidation tests the request-level validation tags
func (suite *MeetingServiceTestSuite) TestCreateMeetingValidation() {
	testCases := []struct {
		name        string
		request     *service.CreateMeetingRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "Valid request",
			request: &service.CreateMeetingRequest{
				Title:       "Weekly Sync",
				ScheduledAt: time.Now().Add(24 * time.Hour),
			},
			expectError: false,
		},
		{
			name: "Missing title",
			request: &service.CreateMeetingRequest{
				ScheduledAt: time.Now().Add(24 * time.Hour),
			},
			expectError: true,
			errorMsg:    "Title",
		},
		{
			name: "Missing scheduled at",
			request: &service.CreateMeetingRequest{
				Title: "Weekly Sync",
			},
			expectError: true,
			errorMsg:    "ScheduledAt",
		},
		{
			name: "Duration out of range",
			request: &service.CreateMeetingRequest{
				Title:       "Weekly Sync",
				ScheduledAt: time.Now().Add(24 * time.Hour),
				Duration:    intPtr(0),
			},
			expectError: true,
			errorMsg:    "Duration",
		},
	}

	v := validator.New()
	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.request)
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

// TestMeetingServiceTestSuite runs the test suite
func TestMeetingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingServiceTestSuite))
}
