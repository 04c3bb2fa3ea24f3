package service_test

import (
	"testing"
	"time"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/mocks"
	"manager-os-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PersonServiceTestSuite defines the test suite for PersonService
type PersonServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPersonRepo *mocks.MockPersonRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	personService  *service.PersonService
	orgID          uuid.UUID
	actor          *auth.Actor
}

// SetupTest sets up the test suite
func (suite *PersonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonRepo = mocks.NewMockPersonRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.personService = service.NewPersonService(suite.mockPersonRepo, suite.mockTeamRepo, validator.New())

	suite.orgID = uuid.New()
	suite.actor = &auth.Actor{
		UserID:         uuid.New(),
		Email:          "manager@test.com",
		OrganizationID: &suite.orgID,
	}
}

// TearDownTest cleans up after each test
func (suite *PersonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePerson tests creating a person in the actor's organization
func (suite *PersonServiceTestSuite) TestCreatePerson() {
	req := &service.CreatePersonRequest{
		FullName:  "Dana Reyes",
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@test.com",
	}

	var captured *models.Person
	suite.mockPersonRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Person) error {
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			captured = p
			return nil
		}).
		Times(1)

	response, err := suite.personService.Create(suite.actor, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.FullName, response.FullName)
	assert.Equal(suite.T(), suite.orgID, captured.OrganizationID)
}

// TestCreatePersonWithTeam tests that a team reference is verified within
// the organization
func (suite *PersonServiceTestSuite) TestCreatePersonWithTeam() {
	teamID := uuid.New()
	req := &service.CreatePersonRequest{
		FullName: "Dana Reyes",
		TeamID:   &teamID,
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID, suite.orgID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}, OrganizationID: suite.orgID}, nil).
		Times(1)
	suite.mockPersonRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Person) error {
			p.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.personService.Create(suite.actor, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &teamID, response.TeamID)
}

// TestCreatePersonUnknownTeam tests rejecting a team outside the
// organization
func (suite *PersonServiceTestSuite) TestCreatePersonUnknownTeam() {
	teamID := uuid.New()
	req := &service.CreatePersonRequest{
		FullName: "Dana Reyes",
		TeamID:   &teamID,
	}

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.personService.Create(suite.actor, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestCreatePersonNoOrganization tests the tenancy precondition
func (suite *PersonServiceTestSuite) TestCreatePersonNoOrganization() {
	actor := &auth.Actor{UserID: uuid.New(), Email: "drifter@test.com"}

	response, err := suite.personService.Create(actor, &service.CreatePersonRequest{FullName: "Dana Reyes"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestGetPersonNotFound tests that a person in another organization
// collapses to not found
func (suite *PersonServiceTestSuite) TestGetPersonNotFound() {
	personID := uuid.New()

	suite.mockPersonRepo.EXPECT().
		GetByID(personID, suite.orgID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.personService.GetByID(suite.actor, personID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonNotFound)
}

// TestListPeople tests listing people with pagination
func (suite *PersonServiceTestSuite) TestListPeople() {
	people := []models.Person{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, FullName: "Dana Reyes"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID, FullName: "Sam Keller"},
	}

	suite.mockPersonRepo.EXPECT().
		GetByOrganizationID(suite.orgID, 50, 50).
		Return(people, int64(102), nil).
		Times(1)

	response, err := suite.personService.List(suite.actor, 2, 50)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(102), response.Total)
	assert.Equal(suite.T(), 2, response.Page)
	assert.Len(suite.T(), response.People, 2)
}

// TestPersonServiceTestSuite runs the test suite
func TestPersonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceTestSuite))
}
