//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"manager-os-backend/internal/database/models"
	"manager-os-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MeetingInstanceRepositoryTestSuite tests the MeetingInstanceRepository
// and the instance participant repository
type MeetingInstanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *MeetingInstanceRepository
	meetingRepo     *MeetingRepository
	participantRepo *MeetingInstanceParticipantRepository
	factories       *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MeetingInstanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMeetingInstanceRepository(suite.baseTestSuite.DB)
	suite.meetingRepo = NewMeetingRepository(suite.baseTestSuite.DB)
	suite.participantRepo = NewMeetingInstanceParticipantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MeetingInstanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MeetingInstanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MeetingInstanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MeetingInstanceRepositoryTestSuite) seedMeeting() (*models.Organization, *models.User, *models.Person, *models.Meeting) {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(org).Error)

	user := suite.factories.User.WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	person := suite.factories.Person.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(person).Error)

	meeting := suite.factories.Meeting.Create(org.ID, user.ID)
	suite.NoError(suite.meetingRepo.Create(meeting))

	return org, user, person, meeting
}

// TestGetByMeetingIDOrdering tests listing a meeting's instances ordered by
// scheduled_at ascending
func (suite *MeetingInstanceRepositoryTestSuite) TestGetByMeetingIDOrdering() {
	org, _, _, meeting := suite.seedMeeting()

	later := suite.factories.MeetingInstance.At(meeting, time.Now().Add(96*time.Hour))
	suite.NoError(suite.repo.Create(later))

	earlier := suite.factories.MeetingInstance.At(meeting, time.Now().Add(24*time.Hour))
	suite.NoError(suite.repo.Create(earlier))

	instances, err := suite.repo.GetByMeetingID(meeting.ID, org.ID)

	suite.NoError(err)
	suite.Len(instances, 2)
	suite.Equal(earlier.ID, instances[0].ID)
	suite.Equal(later.ID, instances[1].ID)
}

// TestReplaceParticipants tests full replacement of the participant set
func (suite *MeetingInstanceRepositoryTestSuite) TestReplaceParticipants() {
	org, _, person, meeting := suite.seedMeeting()

	personB := suite.factories.Person.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(personB).Error)

	instance := suite.factories.MeetingInstance.Create(meeting)
	instance.Participants = []models.MeetingInstanceParticipant{
		{PersonID: person.ID, Status: models.ParticipantStatusInvited},
	}
	suite.NoError(suite.repo.Create(instance))

	err := suite.repo.ReplaceParticipants(instance.ID, []models.MeetingInstanceParticipant{
		{PersonID: personB.ID, Status: models.ParticipantStatusAccepted},
	})
	suite.NoError(err)

	loaded, err := suite.repo.GetWithRelations(instance.ID, org.ID)
	suite.NoError(err)
	suite.Len(loaded.Participants, 1)
	suite.Equal(personB.ID, loaded.Participants[0].PersonID)
	suite.Equal(models.ParticipantStatusAccepted, loaded.Participants[0].Status)
}

// TestReplaceParticipantsWithEmptySet tests that an empty replacement
// clears all rows
func (suite *MeetingInstanceRepositoryTestSuite) TestReplaceParticipantsWithEmptySet() {
	org, _, person, meeting := suite.seedMeeting()

	instance := suite.factories.MeetingInstance.Create(meeting)
	instance.Participants = []models.MeetingInstanceParticipant{
		{PersonID: person.ID, Status: models.ParticipantStatusInvited},
	}
	suite.NoError(suite.repo.Create(instance))

	suite.NoError(suite.repo.ReplaceParticipants(instance.ID, nil))

	loaded, err := suite.repo.GetWithRelations(instance.ID, org.ID)
	suite.NoError(err)
	suite.Empty(loaded.Participants)
}

// TestParticipantPairUniqueness tests the composite unique index on
// (instance, person)
func (suite *MeetingInstanceRepositoryTestSuite) TestParticipantPairUniqueness() {
	_, _, person, meeting := suite.seedMeeting()

	instance := suite.factories.MeetingInstance.Create(meeting)
	suite.NoError(suite.repo.Create(instance))

	first := &models.MeetingInstanceParticipant{
		MeetingInstanceID: instance.ID,
		PersonID:          person.ID,
		Status:            models.ParticipantStatusInvited,
	}
	suite.NoError(suite.participantRepo.Create(first))

	dup := &models.MeetingInstanceParticipant{
		MeetingInstanceID: instance.ID,
		PersonID:          person.ID,
		Status:            models.ParticipantStatusAccepted,
	}
	err := suite.participantRepo.Create(dup)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestUpdateStatusMissingRow tests that updating a non-existent pair
// reports not found instead of succeeding silently
func (suite *MeetingInstanceRepositoryTestSuite) TestUpdateStatusMissingRow() {
	_, _, person, meeting := suite.seedMeeting()

	instance := suite.factories.MeetingInstance.Create(meeting)
	suite.NoError(suite.repo.Create(instance))

	err := suite.participantRepo.UpdateStatus(instance.ID, person.ID, models.ParticipantStatusAttended)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestInstanceVisibilityThroughInstanceParticipant tests that being on an
// instance's own participant list grants visibility even when the parent
// meeting would hide it
func (suite *MeetingInstanceRepositoryTestSuite) TestInstanceVisibilityThroughInstanceParticipant() {
	org, _, person, meeting := suite.seedMeeting()

	viewer := suite.factories.User.WithPerson(org.ID, person.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(viewer).Error)

	instance := suite.factories.MeetingInstance.Create(meeting)
	instance.Participants = []models.MeetingInstanceParticipant{
		{PersonID: person.ID, Status: models.ParticipantStatusInvited},
	}
	suite.NoError(suite.repo.Create(instance))

	loaded, err := suite.repo.GetVisibleByID(instance.ID, org.ID, viewer.ID, &person.ID)
	suite.NoError(err)
	suite.Equal(instance.ID, loaded.ID)

	// Without the participant link the private parent hides the instance
	personB := suite.factories.Person.Create(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(personB).Error)
	outsider := suite.factories.User.WithPerson(org.ID, personB.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(outsider).Error)

	_, err = suite.repo.GetVisibleByID(instance.ID, org.ID, outsider.ID, &personB.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteLeavesSiblings tests that deleting one instance does not touch
// its siblings or the parent meeting
func (suite *MeetingInstanceRepositoryTestSuite) TestDeleteLeavesSiblings() {
	org, _, person, meeting := suite.seedMeeting()

	doomed := suite.factories.MeetingInstance.Create(meeting)
	doomed.Participants = []models.MeetingInstanceParticipant{
		{PersonID: person.ID, Status: models.ParticipantStatusInvited},
	}
	suite.NoError(suite.repo.Create(doomed))

	sibling := suite.factories.MeetingInstance.Create(meeting)
	suite.NoError(suite.repo.Create(sibling))

	suite.NoError(suite.repo.Delete(doomed.ID, org.ID))

	_, err := suite.repo.GetByID(doomed.ID, org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByID(sibling.ID, org.ID)
	suite.NoError(err)

	_, err = suite.meetingRepo.GetByID(meeting.ID, org.ID)
	suite.NoError(err)

	var mipCount int64
	suite.baseTestSuite.DB.Model(&models.MeetingInstanceParticipant{}).
		Where("meeting_instance_id = ?", doomed.ID).
		Count(&mipCount)
	suite.Zero(mipCount)
}

// TestRecurringMeetingLifecycle walks a recurring private meeting through
// instance creation, a participant status change, and parent deletion
func (suite *MeetingInstanceRepositoryTestSuite) TestRecurringMeetingLifecycle() {
	org, user, person, _ := suite.seedMeeting()

	meeting := suite.factories.Meeting.Recurring(org.ID, user.ID, models.RecurrenceWeekly)
	suite.NoError(suite.meetingRepo.Create(meeting))
	suite.True(meeting.IsPrivate)

	instance := suite.factories.MeetingInstance.At(meeting, meeting.ScheduledAt.AddDate(0, 0, 7))
	instance.Participants = []models.MeetingInstanceParticipant{
		{PersonID: person.ID, Status: models.ParticipantStatusInvited},
	}
	suite.NoError(suite.repo.Create(instance))

	loaded, err := suite.repo.GetWithRelations(instance.ID, org.ID)
	suite.NoError(err)
	suite.True(loaded.IsPrivate)
	suite.Len(loaded.Participants, 1)

	suite.NoError(suite.participantRepo.UpdateStatus(instance.ID, person.ID, models.ParticipantStatusAttended))
	row, err := suite.participantRepo.Get(instance.ID, person.ID)
	suite.NoError(err)
	suite.Equal(models.ParticipantStatusAttended, row.Status)

	suite.NoError(suite.meetingRepo.Delete(meeting.ID, org.ID))
	_, err = suite.repo.GetByID(instance.ID, org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMeetingInstanceRepositoryTestSuite runs the test suite
func TestMeetingInstanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingInstanceRepositoryTestSuite))
}
