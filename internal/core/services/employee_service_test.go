package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/core/services"
)

// --- Test Suite Setup ---

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.EmployeeSvcFacade

	workplaceID string
	managerID   string
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewEmployeeService(suite.mockUserRepo)
	suite.workplaceID = uuid.NewString()
	suite.managerID = uuid.NewString()
}

func (suite *EmployeeServiceTestSuite) member(approved bool) domain.User {
	return domain.User{
		UserID:      uuid.NewString(),
		IsActive:    true,
		IsApproved:  approved,
		WorkplaceID: &suite.workplaceID,
	}
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestListEmployees_SplitsAndExcludesManager() {
	ctx := context.Background()
	manager := suite.member(true)
	manager.UserID = suite.managerID
	manager.IsManager = true
	approvedMember := suite.member(true)
	pendingMember := suite.member(false)

	suite.mockUserRepo.On("ListEmployeesByWorkplace", ctx, suite.workplaceID).
		Return([]domain.User{manager, approvedMember, pendingMember}, nil).Once()

	approved, pending, err := suite.service.ListEmployees(ctx, suite.workplaceID, suite.managerID)

	suite.Require().NoError(err)
	suite.Require().Len(approved, 1)
	suite.Require().Len(pending, 1)
	suite.Equal(approvedMember.UserID, approved[0].UserID)
	suite.Equal(pendingMember.UserID, pending[0].UserID)
}

func (suite *EmployeeServiceTestSuite) TestApproveEmployee_Success() {
	ctx := context.Background()
	pending := suite.member(false)

	suite.mockUserRepo.On("FindUserByID", ctx, pending.UserID).Return(&pending, nil).Once()
	suite.mockUserRepo.On("SetUserApproval", ctx, pending.UserID, true).Return(nil).Once()

	employee, err := suite.service.ApproveEmployee(ctx, suite.workplaceID, pending.UserID)

	suite.Require().NoError(err)
	suite.True(employee.IsApproved)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestApproveEmployee_CrossWorkplaceForbidden() {
	ctx := context.Background()
	otherWorkplaceID := uuid.NewString()
	foreign := suite.member(false)
	foreign.WorkplaceID = &otherWorkplaceID

	suite.mockUserRepo.On("FindUserByID", ctx, foreign.UserID).Return(&foreign, nil).Once()

	employee, err := suite.service.ApproveEmployee(ctx, suite.workplaceID, foreign.UserID)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetUserApproval", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestApproveEmployee_ManagerAccountForbidden() {
	ctx := context.Background()
	manager := suite.member(true)
	manager.IsManager = true

	suite.mockUserRepo.On("FindUserByID", ctx, manager.UserID).Return(&manager, nil).Once()

	employee, err := suite.service.ApproveEmployee(ctx, suite.workplaceID, manager.UserID)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *EmployeeServiceTestSuite) TestRejectEmployee_DeletesAccount() {
	ctx := context.Background()
	pending := suite.member(false)

	suite.mockUserRepo.On("FindUserByID", ctx, pending.UserID).Return(&pending, nil).Once()
	suite.mockUserRepo.On("DeleteUser", ctx, pending.UserID).Return(nil).Once()

	err := suite.service.RejectEmployee(ctx, suite.workplaceID, pending.UserID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestRejectEmployee_NotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RejectEmployee(ctx, suite.workplaceID, unknownID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestEmployeeService(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
