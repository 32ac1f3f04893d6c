//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"temple-outreach-backend/internal/database/models"
	"temple-outreach-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FollowUpRepositoryTestSuite tests the FollowUpRepository
type FollowUpRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FollowUpRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *FollowUpRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewFollowUpRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FollowUpRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FollowUpRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FollowUpRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedList creates an admin, a volunteer, a program and n contacts with one
// assignment each for the given date.
func (suite *FollowUpRepositoryTestSuite) seedList(n int, date time.Time) (*models.User, *models.User, *models.Program, []models.Contact) {
	db := suite.baseTestSuite.DB

	admin := suite.factories.User.WithRole(models.RoleAdmin)
	suite.Require().NoError(db.Create(admin).Error)

	volunteer := suite.factories.User.WithRole(models.RoleVolunteer)
	suite.Require().NoError(db.Create(volunteer).Error)

	program := suite.factories.Program.Create()
	suite.Require().NoError(db.Create(program).Error)

	contacts := make([]models.Contact, 0, n)
	assignments := make([]models.FollowUpAssignment, 0, n)
	for i := 0; i < n; i++ {
		contact := suite.factories.Contact.WithProgram(admin.ID, program.ID)
		suite.Require().NoError(db.Create(contact).Error)
		contacts = append(contacts, *contact)
		assignments = append(assignments, *suite.factories.FollowUp.Create(contact.ID, volunteer.ID, date))
	}
	suite.Require().NoError(suite.repo.CreateBatch(assignments))

	return admin, volunteer, program, contacts
}

// TestCreateBatchAndCount tests batch creation and the owner-scoped count
func (suite *FollowUpRepositoryTestSuite) TestCreateBatchAndCount() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	admin, _, _, _ := suite.seedList(3, date)

	count, err := suite.repo.CountForOwnerOnDate(admin.ID, date)
	suite.NoError(err)
	suite.Equal(int64(3), count)

	// A different date is a different list
	count, err = suite.repo.CountForOwnerOnDate(admin.ID, date.AddDate(0, 0, 1))
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestUniqueIndexRejectsDuplicate tests that a second row for the same
// (contact, date) is rejected by the partial unique index
func (suite *FollowUpRepositoryTestSuite) TestUniqueIndexRejectsDuplicate() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	_, volunteer, _, contacts := suite.seedList(1, date)

	duplicate := []models.FollowUpAssignment{
		*suite.factories.FollowUp.Create(contacts[0].ID, volunteer.ID, date),
	}
	err := suite.repo.CreateBatch(duplicate)
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestGetByContactAndDate tests assignment lookup by its natural key
func (suite *FollowUpRepositoryTestSuite) TestGetByContactAndDate() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	_, _, _, contacts := suite.seedList(1, date)

	assignment, err := suite.repo.GetByContactAndDate(contacts[0].ID, date)
	suite.NoError(err)
	suite.Equal(contacts[0].ID, assignment.ContactID)
	suite.Equal(models.StatusNotCalled, assignment.Status)
}

// TestGetByContactAndDateNotFound tests the miss path
func (suite *FollowUpRepositoryTestSuite) TestGetByContactAndDateNotFound() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	_, err := suite.repo.GetByContactAndDate(uuid.New(), date)
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestListForOwnerOnDateOrdering tests that listings sort by contact name
func (suite *FollowUpRepositoryTestSuite) TestListForOwnerOnDateOrdering() {
	db := suite.baseTestSuite.DB
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	admin := suite.factories.User.WithRole(models.RoleAdmin)
	suite.Require().NoError(db.Create(admin).Error)
	volunteer := suite.factories.User.WithRole(models.RoleVolunteer)
	suite.Require().NoError(db.Create(volunteer).Error)

	var assignments []models.FollowUpAssignment
	for _, name := range []string{"Zina", "Arun", "Mira"} {
		contact := suite.factories.Contact.WithName(admin.ID, name)
		suite.Require().NoError(db.Create(contact).Error)
		assignments = append(assignments, *suite.factories.FollowUp.Create(contact.ID, volunteer.ID, date))
	}
	suite.Require().NoError(suite.repo.CreateBatch(assignments))

	listed, err := suite.repo.ListForOwnerOnDate(admin.ID, date, nil)
	suite.NoError(err)
	suite.Require().Len(listed, 3)
	suite.Equal("Arun", listed[0].Contact.FullName)
	suite.Equal("Mira", listed[1].Contact.FullName)
	suite.Equal("Zina", listed[2].Contact.FullName)
}

// TestListStatusFilter tests the optional status filter
func (suite *FollowUpRepositoryTestSuite) TestListStatusFilter() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	admin, _, _, contacts := suite.seedList(2, date)

	assignment, err := suite.repo.GetByContactAndDate(contacts[0].ID, date)
	suite.Require().NoError(err)
	assignment.Status = models.StatusCalledComing
	suite.Require().NoError(suite.repo.Update(assignment))

	coming := models.StatusCalledComing
	listed, err := suite.repo.ListForOwnerOnDate(admin.ID, date, &coming)
	suite.NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(contacts[0].ID, listed[0].ContactID)
}

// TestDeleteForProgramOnDate tests scoped deletion and its row count
func (suite *FollowUpRepositoryTestSuite) TestDeleteForProgramOnDate() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	admin, _, program, _ := suite.seedList(3, date)

	deleted, err := suite.repo.DeleteForProgramOnDate(program.ID, date)
	suite.NoError(err)
	suite.Equal(int64(3), deleted)

	count, err := suite.repo.CountForOwnerOnDate(admin.ID, date)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	// Deleting again is a no-op
	deleted, err = suite.repo.DeleteForProgramOnDate(program.ID, date)
	suite.NoError(err)
	suite.Equal(int64(0), deleted)
}

// TestRecreateAfterDelete tests that soft-deleted rows do not block a new
// list for the same (contact, date)
func (suite *FollowUpRepositoryTestSuite) TestRecreateAfterDelete() {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	_, volunteer, program, contacts := suite.seedList(2, date)

	deleted, err := suite.repo.DeleteForProgramOnDate(program.ID, date)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(2), deleted)

	fresh := make([]models.FollowUpAssignment, 0, len(contacts))
	for _, contact := range contacts {
		fresh = append(fresh, *suite.factories.FollowUp.Create(contact.ID, volunteer.ID, date))
	}
	suite.NoError(suite.repo.CreateBatch(fresh))
}

// TestDistinctDatesForProgram tests date extraction for session materialization
func (suite *FollowUpRepositoryTestSuite) TestDistinctDatesForProgram() {
	db := suite.baseTestSuite.DB
	day1 := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 22, 0, 0, 0, 0, time.Local)

	admin := suite.factories.User.WithRole(models.RoleAdmin)
	suite.Require().NoError(db.Create(admin).Error)
	volunteer := suite.factories.User.WithRole(models.RoleVolunteer)
	suite.Require().NoError(db.Create(volunteer).Error)
	program := suite.factories.Program.Create()
	suite.Require().NoError(db.Create(program).Error)

	var assignments []models.FollowUpAssignment
	for i := 0; i < 2; i++ {
		contact := suite.factories.Contact.WithProgram(admin.ID, program.ID)
		suite.Require().NoError(db.Create(contact).Error)
		assignments = append(assignments,
			*suite.factories.FollowUp.Create(contact.ID, volunteer.ID, day1),
			*suite.factories.FollowUp.Create(contact.ID, volunteer.ID, day2),
		)
	}
	suite.Require().NoError(suite.repo.CreateBatch(assignments))

	dates, err := suite.repo.DistinctDatesForProgram(program.ID)
	suite.NoError(err)
	suite.Require().Len(dates, 2)
	suite.True(dates[0].Before(dates[1]))
}

// TestFollowUpRepositoryTestSuite runs the test suite
func TestFollowUpRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FollowUpRepositoryTestSuite))
}
