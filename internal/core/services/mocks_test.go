package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListEmployeesByWorkplace(ctx context.Context, workplaceID string) ([]domain.User, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserWorkplace(ctx context.Context, userID, workplaceID string) error {
	args := m.Called(ctx, userID, workplaceID)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserApproval(ctx context.Context, userID string, approved bool) error {
	args := m.Called(ctx, userID, approved)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID string, fullName, avatarURL *string) (*domain.User, error) {
	args := m.Called(ctx, userID, fullName, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockWorkplaceRepository is a mock type for the WorkplaceRepositoryFacade interface
type MockWorkplaceRepository struct {
	mock.Mock
}

func (m *MockWorkplaceRepository) CreateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	args := m.Called(ctx, workplace)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) FindWorkplaceByBusinessName(ctx context.Context, businessName string) (*domain.Workplace, error) {
	args := m.Called(ctx, businessName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	args := m.Called(ctx, workplaceID)
	return args.Error(0)
}

// MockInviteRepository is a mock type for the InviteRepositoryFacade interface
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) FindUnusedInvite(ctx context.Context, code string) (*domain.Invite, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invite), args.Error(1)
}

func (m *MockInviteRepository) MarkInviteUsed(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockShiftRepository is a mock type for the ShiftRepositoryFacade interface
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) CreateShift(ctx context.Context, shift domain.Shift) (*domain.Shift, error) {
	args := m.Called(ctx, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) UpsertShifts(ctx context.Context, shifts []domain.Shift) ([]domain.Shift, error) {
	args := m.Called(ctx, shifts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShifts(ctx context.Context, workplaceID string, from, to *time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, workplaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftSlots(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, workplaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) UpdateShift(ctx context.Context, shiftID, workplaceID string, date *time.Time, part *domain.ShiftPart) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID, workplaceID, date, part)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) DeleteShift(ctx context.Context, shiftID, workplaceID string) error {
	args := m.Called(ctx, shiftID, workplaceID)
	return args.Error(0)
}

func (m *MockShiftRepository) AddWorker(ctx context.Context, assignment domain.ShiftWorker) (*domain.ShiftWorker, error) {
	args := m.Called(ctx, assignment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftWorker), args.Error(1)
}

func (m *MockShiftRepository) RemoveWorker(ctx context.Context, shiftID, userID string) error {
	args := m.Called(ctx, shiftID, userID)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateWorkerComment(ctx context.Context, shiftID, assignmentID, comment string) (*domain.ShiftWorker, error) {
	args := m.Called(ctx, shiftID, assignmentID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftWorker), args.Error(1)
}

func (m *MockShiftRepository) ListAssignedShifts(ctx context.Context, userID string) ([]domain.AssignedShift, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssignedShift), args.Error(1)
}

// MockShiftBoardRepository is a mock type for the ShiftBoardRepositoryFacade interface
type MockShiftBoardRepository struct {
	mock.Mock
}

func (m *MockShiftBoardRepository) FindBoard(ctx context.Context, workplaceID string, weekStart time.Time) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockShiftBoardRepository) UpsertBoard(ctx context.Context, board domain.ShiftBoard) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, board)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockShiftBoardRepository) UpsertPreferences(ctx context.Context, workplaceID string, weekStart time.Time, prefs domain.BoardPreferences) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, weekStart, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockShiftBoardRepository) UpsertRequestWindow(ctx context.Context, workplaceID string, weekStart time.Time, windowStart, windowEnd time.Time) (*domain.ShiftBoard, error) {
	args := m.Called(ctx, workplaceID, weekStart, windowStart, windowEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBoard), args.Error(1)
}

func (m *MockShiftBoardRepository) ListPublishedWeeks(ctx context.Context, workplaceID string, weekStarts []time.Time) ([]time.Time, error) {
	args := m.Called(ctx, workplaceID, weekStarts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// MockUserRequestRepository is a mock type for the UserRequestRepositoryFacade interface
type MockUserRequestRepository struct {
	mock.Mock
}

func (m *MockUserRequestRepository) UpsertRequest(ctx context.Context, request domain.UserRequest) (*domain.UserRequest, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRequest), args.Error(1)
}

func (m *MockUserRequestRepository) ListRequestsByUser(ctx context.Context, userID, workplaceID string) ([]domain.UserRequest, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRequest), args.Error(1)
}

func (m *MockUserRequestRepository) ListRequestsByWorkplace(ctx context.Context, workplaceID string) ([]domain.UserRequest, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRequest), args.Error(1)
}
