package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/handlers"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
)

// --- Mock AccessService ---

type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) RequireUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccessService) RequireOnboarded(ctx context.Context, userID string) (*domain.User, string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAccessService) RequireManager(ctx context.Context, userID string) (*domain.User, string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAccessService) RequireApprovedEmployee(ctx context.Context, userID string) (*domain.User, string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

var _ portssvc.AccessSvcFacade = (*MockAccessService)(nil)

// --- Mock ScheduleService ---

type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) GetPreferences(ctx context.Context, workplaceID string, weekStart time.Time) (*dto.GetPreferencesResponse, error) {
	args := m.Called(ctx, workplaceID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetPreferencesResponse), args.Error(1)
}

func (m *MockScheduleService) SetPreferences(ctx context.Context, workplaceID string, weekStart time.Time, prefs domain.BoardPreferences) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, weekStart, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockScheduleService) SetRequestWindow(ctx context.Context, workplaceID string, weekStart, windowStart, windowEnd time.Time) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, weekStart, windowStart, windowEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockScheduleService) SetPublishState(ctx context.Context, workplaceID, publisherID string, weekStart time.Time, publish bool) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, publisherID, weekStart, publish)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockScheduleService) GetBoard(ctx context.Context, workplaceID string, weekStart time.Time) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockScheduleService) ListWeekAssignments(ctx context.Context, workplaceID string, weekStart time.Time) ([]domain.WeekAssignment, error) {
	args := m.Called(ctx, workplaceID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekAssignment), args.Error(1)
}

var _ portssvc.ScheduleSvcFacade = (*MockScheduleService)(nil)

// --- Test Suite ---

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockAccessService   *MockAccessService
	mockScheduleService *MockScheduleService
	jwtSecret           string
	managerID           string
	workplaceID         string
	weekStart           time.Time
}

func (suite *ScheduleHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "shiftboard-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.managerID = uuid.NewString()
	suite.workplaceID = uuid.NewString()
	suite.weekStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // a Sunday

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccessService = new(MockAccessService)
	suite.mockScheduleService = new(MockScheduleService)

	manager := suite.router.Group("/api/v1/manager")
	handlers.RegisterScheduleRoutes(manager, suite.mockAccessService, suite.mockScheduleService)
}

func (suite *ScheduleHandlerTestSuite) manager() *domain.User {
	return &domain.User{
		UserID:      suite.managerID,
		IsManager:   true,
		IsActive:    true,
		IsApproved:  true,
		WorkplaceID: &suite.workplaceID,
	}
}

func (suite *ScheduleHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.managerID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ScheduleHandlerTestSuite) TestGetPreferences_Success() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	expected := &dto.GetPreferencesResponse{
		Preferences: dto.PreferencesPayload{ClosedDays: []string{"friday"}, ShiftsPerDay: 2},
		Exists:      false,
	}
	suite.mockScheduleService.On("GetPreferences", mock.Anything, suite.workplaceID, suite.weekStart).
		Return(expected, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/manager/schedule/preferences?week_start=2025-06-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GetPreferencesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"friday"}, resp.Preferences.ClosedDays)
	suite.Equal(2, resp.Preferences.ShiftsPerDay)
	suite.False(resp.Exists)
	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestGetPreferences_MissingWeekStart() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/manager/schedule/preferences", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "GetPreferences")
}

func (suite *ScheduleHandlerTestSuite) TestGetPreferences_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/manager/schedule/preferences?week_start=2025-06-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccessService.AssertNotCalled(suite.T(), "RequireManager")
}

func (suite *ScheduleHandlerTestSuite) TestGetPreferences_EmployeeForbidden() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(nil, "", apperrors.NewForbiddenError("manager role required")).Once()

	w := suite.serve(http.MethodGet, "/api/v1/manager/schedule/preferences?week_start=2025-06-01", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "GetPreferences")
}

func (suite *ScheduleHandlerTestSuite) TestSetPreferences_Success() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	prefs := domain.BoardPreferences{ClosedDays: []string{"monday", "friday"}, ShiftsPerDay: 3}
	stored := &domain.ShiftBoard{
		BoardID:       uuid.NewString(),
		WorkplaceID:   suite.workplaceID,
		WeekStartDate: suite.weekStart,
		Preferences:   prefs,
	}
	suite.mockScheduleService.On("SetPreferences", mock.Anything, suite.workplaceID, suite.weekStart, prefs).
		Return(stored, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/manager/schedule/preferences", dto.SetPreferencesRequest{
		WeekStart: "2025-06-01",
		Preferences: dto.PreferencesPayload{
			ClosedDays:   []string{"monday", "friday"},
			ShiftsPerDay: 3,
		},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ShiftBoardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"monday", "friday"}, resp.Preferences.ClosedDays)
	suite.Equal(3, resp.Preferences.ShiftsPerDay)
	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestSetPreferences_RejectsUnknownClosedDay() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/manager/schedule/preferences", dto.SetPreferencesRequest{
		WeekStart: "2025-06-01",
		Preferences: dto.PreferencesPayload{
			ClosedDays:   []string{"funday"},
			ShiftsPerDay: 2,
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "SetPreferences")
}

func (suite *ScheduleHandlerTestSuite) TestSetPublishState_Publish() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	stored := &domain.ShiftBoard{
		BoardID:       uuid.NewString(),
		WorkplaceID:   suite.workplaceID,
		WeekStartDate: suite.weekStart,
		IsPublished:   true,
		Preferences:   domain.DefaultBoardPreferences(),
		Content:       &domain.BoardContent{PublishedBy: suite.managerID, TotalShifts: 3},
	}
	suite.mockScheduleService.On("SetPublishState", mock.Anything, suite.workplaceID, suite.managerID, suite.weekStart, true).
		Return(stored, nil).Once()

	published := true
	w := suite.serve(http.MethodPost, "/api/v1/manager/schedule/publish", dto.PublishRequest{
		WeekStart:   "2025-06-01",
		IsPublished: &published,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ShiftBoardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsPublished)
	suite.Equal("2025-06-01", resp.WeekStartDate)
	suite.Require().NotNil(resp.Content)
	suite.Equal(3, resp.Content.TotalShifts)
	suite.mockScheduleService.AssertExpectations(suite.T())
}

func (suite *ScheduleHandlerTestSuite) TestSetPublishState_MissingFlag() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/manager/schedule/publish", gin.H{"week_start": "2025-06-01"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockScheduleService.AssertNotCalled(suite.T(), "SetPublishState")
}

func (suite *ScheduleHandlerTestSuite) TestListAssignments_Success() {
	suite.mockAccessService.On("RequireManager", mock.Anything, suite.managerID).
		Return(suite.manager(), suite.workplaceID, nil).Once()

	comment := "opening"
	suite.mockScheduleService.On("ListWeekAssignments", mock.Anything, suite.workplaceID, suite.weekStart).
		Return([]domain.WeekAssignment{
			{
				ID:        "shift-1-user-1",
				ShiftID:   "shift-1",
				UserID:    "user-1",
				UserName:  "Pat Worker",
				Comment:   &comment,
				ShiftDate: suite.weekStart,
				ShiftPart: domain.ShiftPartMorning,
			},
		}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/manager/schedule/assignments?week_start=2025-06-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.WeekAssignmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Pat Worker", resp[0].UserName)
	suite.Equal("2025-06-01", resp[0].ShiftDate)
	suite.mockScheduleService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestScheduleHandler(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
