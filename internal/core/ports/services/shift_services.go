package services

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	"github.com/shiftboard/shiftboard_app/internal/dto"
)

// CreateShiftResult carries a created shift plus an optional non-fatal
// warning (e.g. the shift was created but the requested worker could not
// be assigned).
type CreateShiftResult struct {
	Shift   *domain.Shift
	Warning string
}

// ShiftSvcFacade manages shift slots and worker assignments for a workplace,
// plus the employee-facing filtered view of them.
type ShiftSvcFacade interface {
	ListShifts(ctx context.Context, workplaceID string, from, to *time.Time) ([]domain.Shift, error)
	CreateShift(ctx context.Context, workplaceID string, req dto.CreateShiftRequest) (*CreateShiftResult, error)
	CreateShifts(ctx context.Context, workplaceID string, reqs []dto.CreateShiftRequest) ([]domain.Shift, error)
	UpdateShift(ctx context.Context, workplaceID, shiftID string, req dto.UpdateShiftRequest) (*domain.Shift, error)
	DeleteShift(ctx context.Context, workplaceID, shiftID string) error
	// GenerateShifts copies the source week's slots onto the target week,
	// skipping slots that already exist. Returns the number created.
	GenerateShifts(ctx context.Context, workplaceID string, sourceWeekStart, targetWeekStart time.Time) (int, error)
	AssignWorker(ctx context.Context, workplaceID, shiftID string, req dto.AssignWorkerRequest) (*domain.Shift, error)
	UpdateAssignmentComment(ctx context.Context, workplaceID, shiftID, assignmentID string, comment *string) error
	// ListEmployeeShifts returns the worker visible view: past shifts always,
	// current and future shifts only from published weeks.
	ListEmployeeShifts(ctx context.Context, workplaceID, userID string, from, to *time.Time) (*dto.ListEmployeeShiftsResponse, error)
}
