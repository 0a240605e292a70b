package repositories

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// ShiftBoardRepositoryFacade defines the shift-board store operations. Boards
// are upserted on the (workplace, week_start) natural key; a full-row upsert
// is the single atomic write backing the publish/unpublish transition.
type ShiftBoardRepositoryFacade interface {
	FindBoard(ctx context.Context, workplaceID string, weekStart time.Time) (*domain.ShiftBoard, error)
	// UpsertBoard writes publish state, preferences, window and content in one
	// statement and returns the stored row.
	UpsertBoard(ctx context.Context, board domain.ShiftBoard) (*domain.ShiftBoard, error)
	// UpsertPreferences writes only the preferences, creating the board row
	// with store defaults when absent.
	UpsertPreferences(ctx context.Context, workplaceID string, weekStart time.Time, prefs domain.BoardPreferences) (*domain.ShiftBoard, error)
	// UpsertRequestWindow writes only the request window, creating the board
	// row with store defaults when absent.
	UpsertRequestWindow(ctx context.Context, workplaceID string, weekStart time.Time, windowStart, windowEnd time.Time) (*domain.ShiftBoard, error)
	// ListPublishedWeeks filters the given week starts down to those whose
	// board is published for the workplace.
	ListPublishedWeeks(ctx context.Context, workplaceID string, weekStarts []time.Time) ([]time.Time, error)
}

// UserRequestRepositoryFacade defines the availability-request store
// operations. Submissions upsert on (account, workplace).
type UserRequestRepositoryFacade interface {
	UpsertRequest(ctx context.Context, request domain.UserRequest) (*domain.UserRequest, error)
	ListRequestsByUser(ctx context.Context, userID, workplaceID string) ([]domain.UserRequest, error)
	ListRequestsByWorkplace(ctx context.Context, workplaceID string) ([]domain.UserRequest, error)
}
