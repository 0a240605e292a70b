package services

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	"github.com/shiftboard/shiftboard_app/internal/dto"
)

// ScheduleSvcFacade manages per-week shift boards: preferences, the request
// submission window, and the publish lifecycle with its content snapshot.
type ScheduleSvcFacade interface {
	GetPreferences(ctx context.Context, workplaceID string, weekStart time.Time) (*dto.GetPreferencesResponse, error)
	SetPreferences(ctx context.Context, workplaceID string, weekStart time.Time, prefs domain.BoardPreferences) (*domain.ShiftBoard, error)
	SetRequestWindow(ctx context.Context, workplaceID string, weekStart, windowStart, windowEnd time.Time) (*domain.ShiftBoard, error)
	// SetPublishState publishes or unpublishes the board for weekStart.
	// Publishing snapshots the week's shifts into the board content;
	// unpublishing discards the snapshot.
	SetPublishState(ctx context.Context, workplaceID, publisherID string, weekStart time.Time, publish bool) (*domain.ShiftBoard, error)
	GetBoard(ctx context.Context, workplaceID string, weekStart time.Time) (*domain.ShiftBoard, error)
	ListWeekAssignments(ctx context.Context, workplaceID string, weekStart time.Time) ([]domain.WeekAssignment, error)
}
