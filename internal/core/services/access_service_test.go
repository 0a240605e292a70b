package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/core/services"
)

// --- Test Suite Setup ---

type AccessServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.AccessSvcFacade
}

func (suite *AccessServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAccessService(suite.mockUserRepo)
}

// --- Test Cases ---

func (suite *AccessServiceTestSuite) TestRequireUser_EmptySubject() {
	user, err := suite.service.RequireUser(context.Background(), "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccessServiceTestSuite) TestRequireUser_MissingRowRoutesToOnboarding() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.RequireUser(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrProfileIncomplete)

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal("PROFILE_INCOMPLETE", appErr.Kind)
	suite.Equal("/auth/complete-profile", appErr.Redirect)
}

func (suite *AccessServiceTestSuite) TestRequireUser_Deactivated() {
	ctx := context.Background()
	userID := uuid.NewString()
	inactive := &domain.User{UserID: userID, IsActive: false}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(inactive, nil).Once()

	user, err := suite.service.RequireUser(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccessServiceTestSuite) TestRequireOnboarded_NoWorkplace() {
	ctx := context.Background()
	userID := uuid.NewString()
	notOnboarded := &domain.User{UserID: userID, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(notOnboarded, nil).Once()

	user, workplaceID, err := suite.service.RequireOnboarded(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(workplaceID)

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal("WORKPLACE_MISSING", appErr.Kind)
	suite.Equal("/auth/complete-profile", appErr.Redirect)
}

func (suite *AccessServiceTestSuite) TestRequireManager_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	manager := &domain.User{UserID: userID, IsActive: true, IsManager: true, IsApproved: true, WorkplaceID: &workplaceID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(manager, nil).Once()

	user, gotWorkplaceID, err := suite.service.RequireManager(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(manager, user)
	suite.Equal(workplaceID, gotWorkplaceID)
}

func (suite *AccessServiceTestSuite) TestRequireManager_EmployeeForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	employee := &domain.User{UserID: userID, IsActive: true, IsApproved: true, WorkplaceID: &workplaceID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(employee, nil).Once()

	user, _, err := suite.service.RequireManager(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccessServiceTestSuite) TestRequireApprovedEmployee_PendingForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	pending := &domain.User{UserID: userID, IsActive: true, IsApproved: false, WorkplaceID: &workplaceID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(pending, nil).Once()

	user, _, err := suite.service.RequireApprovedEmployee(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccessServiceTestSuite) TestRequireApprovedEmployee_ManagerForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	manager := &domain.User{UserID: userID, IsActive: true, IsManager: true, IsApproved: true, WorkplaceID: &workplaceID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(manager, nil).Once()

	user, gotWorkplaceID, err := suite.service.RequireApprovedEmployee(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Empty(gotWorkplaceID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccessServiceTestSuite) TestRequireApprovedEmployee_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	approved := &domain.User{UserID: userID, IsActive: true, IsApproved: true, WorkplaceID: &workplaceID}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(approved, nil).Once()

	user, gotWorkplaceID, err := suite.service.RequireApprovedEmployee(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(approved, user)
	suite.Equal(workplaceID, gotWorkplaceID)
}

// --- Run Test Suite ---

func TestAccessService(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}
