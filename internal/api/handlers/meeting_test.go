package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"manager-os-backend/internal/api/handlers"
	"manager-os-backend/internal/auth"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/mocks"
	"manager-os-backend/internal/service"
	"manager-os-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MeetingHandlerTestSuite defines the test suite for MeetingHandler
type MeetingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMeetingServiceInterface
	http        *testutils.HTTPTestSuite
	orgID       uuid.UUID
	actor       *auth.Actor
}

// SetupTest sets up the test suite
func (suite *MeetingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMeetingServiceInterface(suite.ctrl)

	suite.orgID = uuid.New()
	suite.actor = testutils.TestActor(suite.orgID)

	suite.http = testutils.SetupHTTPTest()
	suite.http.WithActor(suite.actor)

	handler := handlers.NewMeetingHandler(suite.mockService)
	suite.http.Router.POST("/meetings", handler.CreateMeeting)
	suite.http.Router.GET("/meetings", handler.ListMeetings)
	suite.http.Router.GET("/meetings/:id", handler.GetMeeting)
	suite.http.Router.PATCH("/meetings/:id", handler.UpdateMeeting)
	suite.http.Router.DELETE("/meetings/:id", handler.DeleteMeeting)
}

// TearDownTest cleans up after each test
func (suite *MeetingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MeetingHandlerTestSuite) meetingResponse(id uuid.UUID) *service.MeetingResponse {
	return &service.MeetingResponse{
		ID:             id,
		OrganizationID: suite.orgID,
		Title:          "Weekly Sync",
		ScheduledAt:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		IsPrivate:      true,
		Participants:   []service.MeetingParticipantResponse{},
	}
}

// TestCreateMeeting tests a successful create
func (suite *MeetingHandlerTestSuite) TestCreateMeeting() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(suite.meetingResponse(meetingID), nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/meetings", map[string]interface{}{
		"title":        "Weekly Sync",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	var response service.MeetingResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), meetingID, response.ID)
	assert.Equal(suite.T(), "Weekly Sync", response.Title)
}

// TestCreateMeetingWithoutActor tests that a request with no authenticated
// user is rejected
func (suite *MeetingHandlerTestSuite) TestCreateMeetingWithoutActor() {
	bare := testutils.SetupHTTPTest()
	handler := handlers.NewMeetingHandler(suite.mockService)
	bare.Router.POST("/meetings", handler.CreateMeeting)

	recorder := bare.MakeRequest(http.MethodPost, "/meetings", map[string]interface{}{
		"title":        "Weekly Sync",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestCreateMeetingNoOrganization tests the 403 mapping for an actor with
// no organization
func (suite *MeetingHandlerTestSuite) TestCreateMeetingNoOrganization() {
	suite.mockService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.NewNoOrganizationError("create meetings")).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/meetings", map[string]interface{}{
		"title":        "Weekly Sync",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "must belong to an organization")
}

// TestCreateMeetingInvalidRecurrence tests the 400 mapping for the
// recurrence cross-field rule
func (suite *MeetingHandlerTestSuite) TestCreateMeetingInvalidRecurrence() {
	suite.mockService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.NewValidationError("recurrence_type", "recurrence type is required for recurring meetings")).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/meetings", map[string]interface{}{
		"title":        "Weekly Sync",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"is_recurring": true,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "recurrence_type")
}

// TestCreateMeetingUnknownTeam tests the 404 mapping for a bad team
// reference
func (suite *MeetingHandlerTestSuite) TestCreateMeetingUnknownTeam() {
	suite.mockService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrTeamNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/meetings", map[string]interface{}{
		"title":        "Weekly Sync",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"team_id":      uuid.New().String(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestGetMeeting tests fetching a meeting by id
func (suite *MeetingHandlerTestSuite) TestGetMeeting() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(suite.actor, meetingID).
		Return(suite.meetingResponse(meetingID), nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/meetings/"+meetingID.String(), nil)

	var response service.MeetingResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), meetingID, response.ID)
}

// TestGetMeetingInvalidID tests the 400 mapping for a malformed UUID
func (suite *MeetingHandlerTestSuite) TestGetMeetingInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/meetings/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid meeting ID")
}

// TestGetMeetingNotFound tests the 404 mapping, identical for missing and
// hidden meetings
func (suite *MeetingHandlerTestSuite) TestGetMeetingNotFound() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(suite.actor, meetingID).
		Return(nil, apperrors.ErrMeetingNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/meetings/"+meetingID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "meeting not found or access denied")
}

// TestListMeetings tests listing visible meetings
func (suite *MeetingHandlerTestSuite) TestListMeetings() {
	suite.mockService.EXPECT().
		List(suite.actor).
		Return(&service.MeetingListResponse{
			Meetings: []service.MeetingResponse{*suite.meetingResponse(uuid.New())},
			Total:    1,
		}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/meetings", nil)

	var response service.MeetingListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 1, response.Total)
}

// TestUpdateMeeting tests a partial update
func (suite *MeetingHandlerTestSuite) TestUpdateMeeting() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		Update(suite.actor, meetingID, gomock.Any()).
		Return(suite.meetingResponse(meetingID), nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/meetings/"+meetingID.String(), map[string]interface{}{
		"title": "Renamed",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUpdateMeetingNotFound tests updating a meeting that does not resolve
func (suite *MeetingHandlerTestSuite) TestUpdateMeetingNotFound() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		Update(suite.actor, meetingID, gomock.Any()).
		Return(nil, apperrors.ErrMeetingNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPatch, "/meetings/"+meetingID.String(), map[string]interface{}{
		"title": "Renamed",
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteMeeting tests the 204 on successful delete
func (suite *MeetingHandlerTestSuite) TestDeleteMeeting() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.actor, meetingID).
		Return(nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/meetings/"+meetingID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

// TestDeleteMeetingNotFound tests deleting a meeting that does not resolve
func (suite *MeetingHandlerTestSuite) TestDeleteMeetingNotFound() {
	meetingID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.actor, meetingID).
		Return(apperrors.ErrMeetingNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/meetings/"+meetingID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestMeetingHandlerTestSuite runs the test suite
func TestMeetingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingHandlerTestSuite))
}
