package handlers

import (
	"net/http"
	"testing"

	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/mocks"
	"temple-outreach-backend/internal/service"
	"temple-outreach-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProgramHandlerTestSuite defines the test suite for ProgramHandler
type ProgramHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProgramService *mocks.MockProgramServiceInterface
	mockSessionService *mocks.MockSessionServiceInterface
	handler            *ProgramHandler
	httpSuite          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProgramHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProgramService = mocks.NewMockProgramServiceInterface(suite.ctrl)
	suite.mockSessionService = mocks.NewMockSessionServiceInterface(suite.ctrl)
	suite.handler = NewProgramHandler(suite.mockProgramService, suite.mockSessionService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	programs := v1.Group("/programs")
	{
		programs.POST("", suite.handler.Create)
		programs.GET("", suite.handler.List)
		programs.GET("/:id", suite.handler.Get)
		programs.POST("/:id/enrollments", suite.handler.Enroll)
		programs.GET("/:id/enrollments", suite.handler.ListEnrollments)
		programs.GET("/:id/sessions", suite.handler.ListSessions)
	}
}

// TearDownTest cleans up after each test
func (suite *ProgramHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProgram tests creating a program
func (suite *ProgramHandlerTestSuite) TestCreateProgram() {
	programID := uuid.New()
	requestBody := map[string]interface{}{
		"name":        "Youth Circle",
		"description": "Weekly youth gathering",
	}

	suite.mockProgramService.EXPECT().
		CreateProgram(gomock.Any()).
		Return(&service.ProgramResponse{ID: programID, Name: "Youth Circle", Description: "Weekly youth gathering"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/programs", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ProgramResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Youth Circle", response.Name)
}

// TestCreateProgramDuplicateName tests the name conflict mapping
func (suite *ProgramHandlerTestSuite) TestCreateProgramDuplicateName() {
	suite.mockProgramService.EXPECT().
		CreateProgram(gomock.Any()).
		Return(nil, apperrors.ErrProgramExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/programs", map[string]interface{}{
		"name": "Youth Circle",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestListProgramsByName tests the exact-name lookup
func (suite *ProgramHandlerTestSuite) TestListProgramsByName() {
	programID := uuid.New()

	suite.mockProgramService.EXPECT().
		GetProgramByName("Youth Circle").
		Return(&service.ProgramResponse{ID: programID, Name: "Youth Circle"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/programs?name=Youth+Circle", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ProgramListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Equal(suite.T(), "Youth Circle", response.Programs[0].Name)
}

// TestListProgramsByNameNotFound tests the miss path of the name lookup
func (suite *ProgramHandlerTestSuite) TestListProgramsByNameNotFound() {
	suite.mockProgramService.EXPECT().
		GetProgramByName("Nowhere").
		Return(nil, apperrors.ErrProgramNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/programs?name=Nowhere", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestGetProgramNotFound tests the miss path
func (suite *ProgramHandlerTestSuite) TestGetProgramNotFound() {
	programID := uuid.New()

	suite.mockProgramService.EXPECT().
		GetProgram(programID).
		Return(nil, apperrors.ErrProgramNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/programs/"+programID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestListSessions tests the materializing session listing
func (suite *ProgramHandlerTestSuite) TestListSessions() {
	programID := uuid.New()
	expected := []service.SessionResponse{
		{
			ID:          uuid.New(),
			ProgramID:   programID,
			SessionDate: "2025-03-15",
			Topic:       service.PlaceholderTopic,
			SpeakerName: service.PlaceholderSpeaker,
		},
	}

	suite.mockSessionService.EXPECT().
		ListForProgram(programID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/programs/"+programID.String()+"/sessions", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.SessionResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Session", response[0].Topic)
	assert.Equal(suite.T(), "To be updated", response[0].SpeakerName)
}

// TestEnroll tests enrolling a user
func (suite *ProgramHandlerTestSuite) TestEnroll() {
	programID := uuid.New()
	userID := uuid.New()

	suite.mockProgramService.EXPECT().
		Enroll(programID, gomock.Any()).
		Return(&service.EnrollmentResponse{ID: uuid.New(), UserID: userID, FullName: "Test User"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/programs/"+programID.String()+"/enrollments",
		map[string]interface{}{"user_id": userID.String()})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestEnrollTwiceConflicts tests the duplicate-enrollment mapping
func (suite *ProgramHandlerTestSuite) TestEnrollTwiceConflicts() {
	programID := uuid.New()

	suite.mockProgramService.EXPECT().
		Enroll(programID, gomock.Any()).
		Return(nil, apperrors.ErrEnrollmentExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/programs/"+programID.String()+"/enrollments",
		map[string]interface{}{"user_id": uuid.New().String()})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestProgramHandlerTestSuite runs the test suite
func TestProgramHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProgramHandlerTestSuite))
}
