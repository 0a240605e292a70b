package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/core/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// --- Test Suite Setup ---

type ShiftServiceTestSuite struct {
	suite.Suite
	mockShiftRepo *MockShiftRepository
	mockUserRepo  *MockUserRepository
	mockBoardRepo *MockShiftBoardRepository
	service       portssvc.ShiftSvcFacade

	workplaceID string
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockBoardRepo = new(MockShiftBoardRepository)
	suite.service = services.NewShiftService(suite.mockShiftRepo, suite.mockUserRepo, suite.mockBoardRepo)
	suite.workplaceID = uuid.NewString()
}

func (suite *ShiftServiceTestSuite) approvedWorker(userID string) *domain.User {
	return &domain.User{
		UserID:      userID,
		IsActive:    true,
		IsApproved:  true,
		WorkplaceID: &suite.workplaceID,
	}
}

// --- Create / update / generate ---

func (suite *ShiftServiceTestSuite) TestCreateShift_DuplicateSlot() {
	ctx := context.Background()
	req := dto.CreateShiftRequest{ShiftDate: "2025-06-02", ShiftPart: "morning"}

	suite.mockShiftRepo.On("CreateShift", ctx, mock.AnythingOfType("domain.Shift")).Return(nil, apperrors.ErrDuplicate).Once()

	result, err := suite.service.CreateShift(ctx, suite.workplaceID, req)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_AssignmentFailureIsWarning() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreateShiftRequest{ShiftDate: "2025-06-02", ShiftPart: "morning", UserID: workerID}
	created := &domain.Shift{ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID}

	suite.mockShiftRepo.On("CreateShift", ctx, mock.AnythingOfType("domain.Shift")).Return(created, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, workerID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CreateShift(ctx, suite.workplaceID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(created, result.Shift)
	suite.NotEmpty(result.Warning)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "AddWorker", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_WithWorker() {
	ctx := context.Background()
	workerID := uuid.NewString()
	req := dto.CreateShiftRequest{ShiftDate: "2025-06-02", ShiftPart: "evening", UserID: workerID, Comment: "close up"}
	created := &domain.Shift{ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID}
	refreshed := &domain.Shift{ShiftID: created.ShiftID, WorkplaceID: suite.workplaceID, Workers: []domain.ShiftWorker{{UserID: workerID}}}

	suite.mockShiftRepo.On("CreateShift", ctx, mock.AnythingOfType("domain.Shift")).Return(created, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, workerID).Return(suite.approvedWorker(workerID), nil).Once()
	suite.mockShiftRepo.On("AddWorker", ctx, mock.MatchedBy(func(a domain.ShiftWorker) bool {
		return a.ShiftID == created.ShiftID && a.UserID == workerID && a.Comment != nil && *a.Comment == "close up"
	})).Return(&domain.ShiftWorker{}, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, created.ShiftID).Return(refreshed, nil).Once()

	result, err := suite.service.CreateShift(ctx, suite.workplaceID, req)

	suite.Require().NoError(err)
	suite.Empty(result.Warning)
	suite.Equal(refreshed, result.Shift)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGenerateShifts_CopiesSlotsWithWeekDelta() {
	ctx := context.Background()
	source := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	slots := []domain.Shift{
		{ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: source, ShiftPart: domain.ShiftPartMorning},
		{ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: calendar.AddDays(source, 3), ShiftPart: domain.ShiftPartNoon},
	}

	suite.mockShiftRepo.On("ListShiftSlots", ctx, suite.workplaceID, source, calendar.WeekEnd(source)).Return(slots, nil).Once()
	suite.mockShiftRepo.On("UpsertShifts", ctx, mock.MatchedBy(func(generated []domain.Shift) bool {
		if len(generated) != 2 {
			return false
		}
		return generated[0].ShiftDate.Equal(target) &&
			generated[1].ShiftDate.Equal(calendar.AddDays(target, 3)) &&
			generated[0].ShiftPart == domain.ShiftPartMorning &&
			generated[1].ShiftPart == domain.ShiftPartNoon
	})).Return(slots[:1], nil).Once()

	created, err := suite.service.GenerateShifts(ctx, suite.workplaceID, source, target)

	suite.Require().NoError(err)
	suite.Equal(1, created) // One slot already existed on the target week
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestGenerateShifts_SameWeekRejected() {
	source := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	created, err := suite.service.GenerateShifts(context.Background(), suite.workplaceID, source, source)

	suite.Require().Error(err)
	suite.Zero(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "ListShiftSlots", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestGenerateShifts_EmptySourceWeek() {
	ctx := context.Background()
	source := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	target := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	suite.mockShiftRepo.On("ListShiftSlots", ctx, suite.workplaceID, source, calendar.WeekEnd(source)).Return([]domain.Shift{}, nil).Once()

	created, err := suite.service.GenerateShifts(ctx, suite.workplaceID, source, target)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "UpsertShifts", mock.Anything, mock.Anything)
}

// --- Assignments ---

func (suite *ShiftServiceTestSuite) TestAssignWorker_CrossWorkplaceShift() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	foreign := &domain.Shift{ShiftID: shiftID, WorkplaceID: uuid.NewString()}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(foreign, nil).Once()

	shift, err := suite.service.AssignWorker(ctx, suite.workplaceID, shiftID, dto.AssignWorkerRequest{UserID: uuid.NewString(), Action: "add"})

	suite.Require().Error(err)
	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShiftServiceTestSuite) TestAssignWorker_UnapprovedWorkerForbidden() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	workerID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, WorkplaceID: suite.workplaceID}
	pending := suite.approvedWorker(workerID)
	pending.IsApproved = false

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, workerID).Return(pending, nil).Once()

	result, err := suite.service.AssignWorker(ctx, suite.workplaceID, shiftID, dto.AssignWorkerRequest{UserID: workerID, Action: "add"})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "AddWorker", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestAssignWorker_DuplicateAssignment() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	workerID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, WorkplaceID: suite.workplaceID}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, workerID).Return(suite.approvedWorker(workerID), nil).Once()
	suite.mockShiftRepo.On("AddWorker", ctx, mock.AnythingOfType("domain.ShiftWorker")).Return(nil, apperrors.ErrDuplicate).Once()

	result, err := suite.service.AssignWorker(ctx, suite.workplaceID, shiftID, dto.AssignWorkerRequest{UserID: workerID, Action: "add"})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ShiftServiceTestSuite) TestAssignWorker_Remove() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	workerID := uuid.NewString()
	shift := &domain.Shift{ShiftID: shiftID, WorkplaceID: suite.workplaceID}

	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()
	suite.mockShiftRepo.On("RemoveWorker", ctx, shiftID, workerID).Return(nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, shiftID).Return(shift, nil).Once()

	result, err := suite.service.AssignWorker(ctx, suite.workplaceID, shiftID, dto.AssignWorkerRequest{UserID: workerID, Action: "remove"})

	suite.Require().NoError(err)
	suite.Equal(shift, result)
	suite.mockShiftRepo.AssertExpectations(suite.T())
}

// --- Employee visibility ---

func (suite *ShiftServiceTestSuite) TestListEmployeeShifts_HidesUnpublishedFutureWeeks() {
	ctx := context.Background()
	userID := uuid.NewString()
	today := calendar.Today()
	publishedDay := calendar.AddDays(today, 3)
	unpublishedDay := calendar.AddDays(today, 10)
	assigned := []domain.AssignedShift{
		{AssignmentID: uuid.NewString(), ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: publishedDay, ShiftPart: domain.ShiftPartMorning},
		{AssignmentID: uuid.NewString(), ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: unpublishedDay, ShiftPart: domain.ShiftPartNoon},
	}

	suite.mockShiftRepo.On("ListAssignedShifts", ctx, userID).Return(assigned, nil).Once()
	suite.mockBoardRepo.On("ListPublishedWeeks", ctx, suite.workplaceID, mock.AnythingOfType("[]time.Time")).
		Return([]time.Time{calendar.WeekStart(publishedDay)}, nil).Once()

	resp, err := suite.service.ListEmployeeShifts(ctx, suite.workplaceID, userID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Equal(1, resp.Total)
	suite.Equal(assigned[0].AssignmentID, resp.Shifts[0].AssignmentID)
}

func (suite *ShiftServiceTestSuite) TestListEmployeeShifts_PastAlwaysVisible() {
	ctx := context.Background()
	userID := uuid.NewString()
	today := calendar.Today()
	pastDay := calendar.AddDays(today, -3)
	from := calendar.AddDays(today, -7)
	to := calendar.AddDays(today, 7)
	assigned := []domain.AssignedShift{
		{AssignmentID: uuid.NewString(), ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: pastDay, ShiftPart: domain.ShiftPartEvening},
	}

	suite.mockShiftRepo.On("ListAssignedShifts", ctx, userID).Return(assigned, nil).Once()

	resp, err := suite.service.ListEmployeeShifts(ctx, suite.workplaceID, userID, &from, &to)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Total)
	suite.mockBoardRepo.AssertNotCalled(suite.T(), "ListPublishedWeeks", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestListEmployeeShifts_DropsForeignAndOutOfRange() {
	ctx := context.Background()
	userID := uuid.NewString()
	today := calendar.Today()
	from := calendar.AddDays(today, -7)
	to := calendar.AddDays(today, 7)
	assigned := []domain.AssignedShift{
		// Belongs to another workplace.
		{AssignmentID: uuid.NewString(), ShiftID: uuid.NewString(), WorkplaceID: uuid.NewString(), ShiftDate: calendar.AddDays(today, -1)},
		// Outside the requested range.
		{AssignmentID: uuid.NewString(), ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: calendar.AddDays(today, -20)},
		// Orphaned row with no shift date.
		{AssignmentID: uuid.NewString(), ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID},
	}

	suite.mockShiftRepo.On("ListAssignedShifts", ctx, userID).Return(assigned, nil).Once()

	resp, err := suite.service.ListEmployeeShifts(ctx, suite.workplaceID, userID, &from, &to)

	suite.Require().NoError(err)
	suite.Zero(resp.Total)
	suite.Empty(resp.Shifts)
}

func (suite *ShiftServiceTestSuite) TestListEmployeeShifts_SortedByDate() {
	ctx := context.Background()
	userID := uuid.NewString()
	today := calendar.Today()
	from := calendar.AddDays(today, -7)
	to := calendar.AddDays(today, -1)
	later := calendar.AddDays(today, -2)
	earlier := calendar.AddDays(today, -5)
	assigned := []domain.AssignedShift{
		{AssignmentID: "later", ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: later},
		{AssignmentID: "earlier", ShiftID: uuid.NewString(), WorkplaceID: suite.workplaceID, ShiftDate: earlier},
	}

	suite.mockShiftRepo.On("ListAssignedShifts", ctx, userID).Return(assigned, nil).Once()

	resp, err := suite.service.ListEmployeeShifts(ctx, suite.workplaceID, userID, &from, &to)

	suite.Require().NoError(err)
	suite.Require().Equal(2, resp.Total)
	suite.Equal("earlier", resp.Shifts[0].AssignmentID)
	suite.Equal("later", resp.Shifts[1].AssignmentID)
}

// --- Run Test Suite ---

func TestShiftService(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
