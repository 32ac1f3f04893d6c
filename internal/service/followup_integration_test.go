//go:build integration
// +build integration

package service_test

import (
	"testing"
	"time"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/repository"
	"temple-outreach-backend/internal/service"
	"temple-outreach-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// FollowUpWorkflowTestSuite exercises the full follow-up list workflow
// against a real Postgres: create, conflict, record, delete, recreate,
// session materialization.
type FollowUpWorkflowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	followUps *service.FollowUpService
	sessions  *service.SessionService
}

// SetupSuite runs before all tests in the suite
func (suite *FollowUpWorkflowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	validate := validator.New()
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	programRepo := repository.NewProgramRepository(db)

	suite.followUps = service.NewFollowUpService(db, followUpRepo, contactRepo, userRepo, sessionRepo, programRepo, validate)
	suite.sessions = service.NewSessionService(db, sessionRepo, followUpRepo, programRepo)
}

// TearDownSuite runs after all tests in the suite
func (suite *FollowUpWorkflowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FollowUpWorkflowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FollowUpWorkflowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seed creates an admin, v volunteers, a program and n contacts in that program
func (suite *FollowUpWorkflowTestSuite) seed(n, v int) (*models.User, []uuid.UUID, *models.Program) {
	db := suite.baseTestSuite.DB

	admin := suite.factories.User.WithRole(models.RoleAdmin)
	suite.Require().NoError(db.Create(admin).Error)

	volunteerIDs := make([]uuid.UUID, v)
	for i := range volunteerIDs {
		volunteer := suite.factories.User.WithRole(models.RoleVolunteer)
		suite.Require().NoError(db.Create(volunteer).Error)
		volunteerIDs[i] = volunteer.ID
	}

	program := suite.factories.Program.Create()
	suite.Require().NoError(db.Create(program).Error)

	for i := 0; i < n; i++ {
		contact := suite.factories.Contact.WithProgram(admin.ID, program.ID)
		contact.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		suite.Require().NoError(db.Create(contact).Error)
	}

	return admin, volunteerIDs, program
}

// TestSevenContactsThreeVolunteers runs the canonical workflow end to end
func (suite *FollowUpWorkflowTestSuite) TestSevenContactsThreeVolunteers() {
	admin, volunteerIDs, program := suite.seed(7, 3)
	req := &service.CreateFollowUpListRequest{VolunteerIDs: volunteerIDs, Date: "2025-03-15"}

	created, err := suite.followUps.CreateList(admin.ID, req)
	suite.Require().NoError(err)
	suite.Equal(7, created.CreatedCount)
	suite.Equal("2025-03-15", created.Date)

	// Buckets are near-equal and fill earlier volunteers first
	listed, err := suite.followUps.ListForOwner(admin.ID, "2025-03-15", nil)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 7)

	perVolunteer := map[uuid.UUID]int{}
	for _, assignment := range listed {
		perVolunteer[assignment.VolunteerID]++
		suite.Equal(models.StatusNotCalled, assignment.Status)
	}
	suite.Equal(3, perVolunteer[volunteerIDs[0]])
	suite.Equal(2, perVolunteer[volunteerIDs[1]])
	suite.Equal(2, perVolunteer[volunteerIDs[2]])

	// Re-running the same date conflicts and writes nothing
	_, err = suite.followUps.CreateList(admin.ID, req)
	suite.Require().Error(err)
	suite.True(apperrors.IsAlreadyExists(err))

	after, err := suite.followUps.ListForOwner(admin.ID, "2025-03-15", nil)
	suite.Require().NoError(err)
	suite.Len(after, 7)

	// Listing sessions materializes one placeholder for the date
	sessions, err := suite.sessions.ListForProgram(program.ID)
	suite.Require().NoError(err)
	suite.Require().Len(sessions, 1)
	suite.Equal("2025-03-15", sessions[0].SessionDate)
	suite.Equal(service.PlaceholderTopic, sessions[0].Topic)
	suite.Equal(service.PlaceholderSpeaker, sessions[0].SpeakerName)

	// Materialization is idempotent
	sessions, err = suite.sessions.ListForProgram(program.ID)
	suite.Require().NoError(err)
	suite.Len(sessions, 1)

	// Deleting the list removes assignments and the derived session together
	deleted, err := suite.followUps.DeleteListForDate(program.ID, "2025-03-15")
	suite.Require().NoError(err)
	suite.Equal(int64(7), deleted.DeletedAssignments)
	suite.Equal(int64(1), deleted.DeletedSessions)

	// The deleted session is not resurrected: its source assignments are gone
	sessions, err = suite.sessions.ListForProgram(program.ID)
	suite.Require().NoError(err)
	suite.Empty(sessions)

	// Recreating with the same inputs succeeds
	recreated, err := suite.followUps.CreateList(admin.ID, req)
	suite.Require().NoError(err)
	suite.Equal(7, recreated.CreatedCount)
}

// TestCreateListNoContacts tests the contact-free admin edge case
func (suite *FollowUpWorkflowTestSuite) TestCreateListNoContacts() {
	admin, volunteerIDs, _ := suite.seed(0, 1)

	created, err := suite.followUps.CreateList(admin.ID, &service.CreateFollowUpListRequest{
		VolunteerIDs: volunteerIDs,
		Date:         "2025-03-15",
	})
	suite.Require().NoError(err)
	suite.Equal(0, created.CreatedCount)
}

// TestCreateListUnknownVolunteer tests volunteer existence verification
func (suite *FollowUpWorkflowTestSuite) TestCreateListUnknownVolunteer() {
	admin, _, _ := suite.seed(2, 1)

	_, err := suite.followUps.CreateList(admin.ID, &service.CreateFollowUpListRequest{
		VolunteerIDs: []uuid.UUID{uuid.New()},
		Date:         "2025-03-15",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestRecordOutcome tests the recorder's update, idempotence and miss paths
func (suite *FollowUpWorkflowTestSuite) TestRecordOutcome() {
	admin, volunteerIDs, _ := suite.seed(1, 1)

	_, err := suite.followUps.CreateList(admin.ID, &service.CreateFollowUpListRequest{
		VolunteerIDs: volunteerIDs,
		Date:         "2025-03-15",
	})
	suite.Require().NoError(err)

	listed, err := suite.followUps.ListForOwner(admin.ID, "2025-03-15", nil)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	contactID := listed[0].ContactID

	status := models.StatusCalledComing
	remarks := "will bring a friend"
	first, err := suite.followUps.RecordOutcome(volunteerIDs[0], &service.RecordOutcomeRequest{
		ContactID: contactID,
		Date:      "2025-03-15",
		Status:    &status,
		Remarks:   &remarks,
	})
	suite.Require().NoError(err)
	suite.Equal(models.StatusCalledComing, first.Status)
	suite.Equal(remarks, first.Remarks)
	suite.Require().NotNil(first.CalledByID)
	suite.Equal(volunteerIDs[0], *first.CalledByID)
	suite.Require().NotNil(first.CalledAt)

	// Repeating the identical call keeps status/remarks and advances calledAt
	time.Sleep(1100 * time.Millisecond)
	second, err := suite.followUps.RecordOutcome(volunteerIDs[0], &service.RecordOutcomeRequest{
		ContactID: contactID,
		Date:      "2025-03-15",
		Status:    &status,
		Remarks:   &remarks,
	})
	suite.Require().NoError(err)
	suite.Equal(first.Status, second.Status)
	suite.Equal(first.Remarks, second.Remarks)

	firstAt, err := time.Parse(time.RFC3339, *first.CalledAt)
	suite.Require().NoError(err)
	secondAt, err := time.Parse(time.RFC3339, *second.CalledAt)
	suite.Require().NoError(err)
	suite.True(secondAt.After(firstAt))

	// Omitting remarks leaves them in place; an empty string clears them
	third, err := suite.followUps.RecordOutcome(volunteerIDs[0], &service.RecordOutcomeRequest{
		ContactID: contactID,
		Date:      "2025-03-15",
	})
	suite.Require().NoError(err)
	suite.Equal(remarks, third.Remarks)

	empty := ""
	fourth, err := suite.followUps.RecordOutcome(volunteerIDs[0], &service.RecordOutcomeRequest{
		ContactID: contactID,
		Date:      "2025-03-15",
		Remarks:   &empty,
	})
	suite.Require().NoError(err)
	suite.Equal("", fourth.Remarks)

	// A date with no list is a miss, not a create
	_, err = suite.followUps.RecordOutcome(volunteerIDs[0], &service.RecordOutcomeRequest{
		ContactID: contactID,
		Date:      "2025-04-01",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsNotFound(err))
}

// TestFollowUpWorkflowTestSuite runs the test suite
func TestFollowUpWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(FollowUpWorkflowTestSuite))
}
