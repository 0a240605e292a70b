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

type RequestServiceTestSuite struct {
	suite.Suite
	mockRequestRepo *MockUserRequestRepository
	service         portssvc.RequestSvcFacade
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockUserRequestRepository)
	suite.service = services.NewRequestService(suite.mockRequestRepo)
}

// --- Test Cases ---

func (suite *RequestServiceTestSuite) TestSubmitRequest_TrimsAndStores() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	stored := &domain.UserRequest{UserID: userID, WorkplaceID: workplaceID, Requests: "no mornings next week"}

	suite.mockRequestRepo.On("UpsertRequest", ctx, mock.MatchedBy(func(r domain.UserRequest) bool {
		return r.UserID == userID && r.WorkplaceID == workplaceID && r.Requests == "no mornings next week" && r.RequestID != ""
	})).Return(stored, nil).Once()

	request, err := suite.service.SubmitRequest(ctx, userID, workplaceID, "  no mornings next week \n")

	suite.Require().NoError(err)
	suite.Equal(stored, request)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestSubmitRequest_EmptyText() {
	request, err := suite.service.SubmitRequest(context.Background(), uuid.NewString(), uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.Nil(request)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "UpsertRequest", mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestListUserRequests() {
	ctx := context.Background()
	userID := uuid.NewString()
	workplaceID := uuid.NewString()
	stored := []domain.UserRequest{{UserID: userID, WorkplaceID: workplaceID, Requests: "weekends only"}}

	suite.mockRequestRepo.On("ListRequestsByUser", ctx, userID, workplaceID).Return(stored, nil).Once()

	requests, err := suite.service.ListUserRequests(ctx, userID, workplaceID)

	suite.Require().NoError(err)
	suite.Equal(stored, requests)
}

func (suite *RequestServiceTestSuite) TestListWorkplaceRequests() {
	ctx := context.Background()
	workplaceID := uuid.NewString()
	stored := []domain.UserRequest{
		{UserID: uuid.NewString(), WorkplaceID: workplaceID, Requests: "evenings preferred"},
		{UserID: uuid.NewString(), WorkplaceID: workplaceID, Requests: "off on the 14th"},
	}

	suite.mockRequestRepo.On("ListRequestsByWorkplace", ctx, workplaceID).Return(stored, nil).Once()

	requests, err := suite.service.ListWorkplaceRequests(ctx, workplaceID)

	suite.Require().NoError(err)
	suite.Len(requests, 2)
}

// --- Run Test Suite ---

func TestRequestService(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
