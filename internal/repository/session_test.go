//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"temple-outreach-backend/internal/database/models"
	"temple-outreach-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SessionRepositoryTestSuite tests the SessionRepository
type SessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SessionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSessionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SessionRepositoryTestSuite) createProgram() *models.Program {
	program := suite.factories.Program.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(program).Error)
	return program
}

// TestCreateAndGet tests session creation and lookup
func (suite *SessionRepositoryTestSuite) TestCreateAndGet() {
	program := suite.createProgram()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	session := suite.factories.Session.Create(program.ID, date)
	suite.NoError(suite.repo.Create(session))

	found, err := suite.repo.GetByID(session.ID)
	suite.NoError(err)
	suite.Equal("Session", found.Topic)
	suite.Equal("To be updated", found.SpeakerName)
}

// TestUniqueIndexRejectsDuplicateDate tests that one program cannot hold two
// sessions on the same date
func (suite *SessionRepositoryTestSuite) TestUniqueIndexRejectsDuplicateDate() {
	program := suite.createProgram()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	suite.Require().NoError(suite.repo.Create(suite.factories.Session.Create(program.ID, date)))

	err := suite.repo.Create(suite.factories.Session.Create(program.ID, date))
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestListByProgramOrdering tests newest-first ordering
func (suite *SessionRepositoryTestSuite) TestListByProgramOrdering() {
	program := suite.createProgram()
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 8, 0, 0, 0, 0, time.Local)

	suite.Require().NoError(suite.repo.Create(suite.factories.Session.Create(program.ID, day1)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Session.Create(program.ID, day2)))

	sessions, err := suite.repo.ListByProgram(program.ID)
	suite.NoError(err)
	suite.Require().Len(sessions, 2)
	suite.True(sessions[0].SessionDate.After(sessions[1].SessionDate))
}

// TestDeleteForProgramOnDate tests scoped deletion and recreation
func (suite *SessionRepositoryTestSuite) TestDeleteForProgramOnDate() {
	program := suite.createProgram()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	suite.Require().NoError(suite.repo.Create(suite.factories.Session.Create(program.ID, date)))

	deleted, err := suite.repo.DeleteForProgramOnDate(program.ID, date)
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	sessions, err := suite.repo.ListByProgram(program.ID)
	suite.NoError(err)
	suite.Empty(sessions)

	// The soft-deleted row does not block a new session on the same date
	suite.NoError(suite.repo.Create(suite.factories.Session.Create(program.ID, date)))
}

// TestSessionRepositoryTestSuite runs the test suite
func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
