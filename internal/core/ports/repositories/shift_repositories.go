package repositories

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
)

// ShiftRepositoryFacade defines the shift & assignment store operations. All
// writes are keyed by the natural unique constraints, (workplace, date, part)
// for shifts and (shift, account) for assignments, so retried writes are safe.
type ShiftRepositoryFacade interface {
	// CreateShift inserts a single slot. A duplicate (workplace, date, part)
	// surfaces as a conflict wrapping apperrors.ErrDuplicate.
	CreateShift(ctx context.Context, shift domain.Shift) (*domain.Shift, error)
	// UpsertShifts inserts slots, silently skipping ones that already exist,
	// and returns only the rows actually inserted.
	UpsertShifts(ctx context.Context, shifts []domain.Shift) ([]domain.Shift, error)
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)
	// ListShifts returns shifts with nested assignments for a workplace,
	// optionally bounded by [from, to] calendar dates, ascending by date.
	ListShifts(ctx context.Context, workplaceID string, from, to *time.Time) ([]domain.Shift, error)
	// ListShiftSlots returns bare slots (no assignments) in [from, to].
	ListShiftSlots(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.Shift, error)
	UpdateShift(ctx context.Context, shiftID, workplaceID string, date *time.Time, part *domain.ShiftPart) (*domain.Shift, error)
	DeleteShift(ctx context.Context, shiftID, workplaceID string) error

	// AddWorker assigns an account to a shift. A duplicate (shift, account)
	// surfaces as a conflict wrapping apperrors.ErrDuplicate.
	AddWorker(ctx context.Context, assignment domain.ShiftWorker) (*domain.ShiftWorker, error)
	RemoveWorker(ctx context.Context, shiftID, userID string) error
	UpdateWorkerComment(ctx context.Context, shiftID, assignmentID, comment string) (*domain.ShiftWorker, error)
	// ListAssignedShifts returns every assignment of an account joined with
	// its shift, unfiltered; visibility policy is applied by the caller.
	ListAssignedShifts(ctx context.Context, userID string) ([]domain.AssignedShift, error)
}
