package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
)

// requestService handles free-text availability requests. A worker has at
// most one request per workplace; resubmitting overwrites the previous text.
type requestService struct {
	BaseService
	requestRepo portsrepo.UserRequestRepositoryFacade
}

var _ portssvc.RequestSvcFacade = (*requestService)(nil)

// NewRequestService creates a new request service instance.
func NewRequestService(requestRepo portsrepo.UserRequestRepositoryFacade) portssvc.RequestSvcFacade {
	return &requestService{requestRepo: requestRepo}
}

// SubmitRequest upserts the worker's availability text for their workplace.
func (s *requestService) SubmitRequest(ctx context.Context, userID, workplaceID, requests string) (*domain.UserRequest, error) {
	text := strings.TrimSpace(requests)
	if text == "" {
		return nil, apperrors.NewValidationFailedError("request text must not be empty")
	}

	stored, err := s.requestRepo.UpsertRequest(ctx, domain.UserRequest{
		RequestID:   uuid.NewString(),
		UserID:      userID,
		WorkplaceID: workplaceID,
		Requests:    text,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to submit availability request", slog.String("user_id", userID))
		return nil, err
	}
	return stored, nil
}

// ListUserRequests returns the worker's own submissions, newest first.
func (s *requestService) ListUserRequests(ctx context.Context, userID, workplaceID string) ([]domain.UserRequest, error) {
	return s.requestRepo.ListRequestsByUser(ctx, userID, workplaceID)
}

// ListWorkplaceRequests returns every submission in the workplace, newest
// first.
func (s *requestService) ListWorkplaceRequests(ctx context.Context, workplaceID string) ([]domain.UserRequest, error) {
	return s.requestRepo.ListRequestsByWorkplace(ctx, workplaceID)
}
