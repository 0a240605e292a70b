package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// scheduleService manages the per-week shift boards: preferences, the
// availability-request window, and the publish lifecycle. Publishing freezes
// the week's shifts into a content snapshot in the same write that flips the
// publish flag, so readers never observe a published board without content.
type scheduleService struct {
	BaseService
	boardRepo portsrepo.ShiftBoardRepositoryFacade
	shiftRepo portsrepo.ShiftRepositoryFacade
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// NewScheduleService creates a new schedule service instance.
func NewScheduleService(boardRepo portsrepo.ShiftBoardRepositoryFacade, shiftRepo portsrepo.ShiftRepositoryFacade) portssvc.ScheduleSvcFacade {
	return &scheduleService{boardRepo: boardRepo, shiftRepo: shiftRepo}
}

// validWeekStart normalizes the given date and checks it lands on a Sunday,
// the canonical week boundary for every board key.
func validWeekStart(weekStart time.Time) (time.Time, error) {
	ws := calendar.Normalize(weekStart)
	if !calendar.IsSunday(ws) {
		return time.Time{}, apperrors.NewValidationFailedError(fmt.Sprintf("week start %s is not a Sunday", calendar.FormatDate(ws)))
	}
	return ws, nil
}

// GetPreferences returns the stored board settings for a week, or the
// defaults with exists=false when no board row has been created yet.
func (s *scheduleService) GetPreferences(ctx context.Context, workplaceID string, weekStart time.Time) (*dto.GetPreferencesResponse, error) {
	ws, err := validWeekStart(weekStart)
	if err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindBoard(ctx, workplaceID, ws)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultBoardPreferences()
			return &dto.GetPreferencesResponse{
				Preferences: dto.PreferencesPayload{
					ClosedDays:   defaults.ClosedDays,
					ShiftsPerDay: defaults.ShiftsPerDay,
				},
				Exists: false,
			}, nil
		}
		return nil, err
	}

	return &dto.GetPreferencesResponse{
		Preferences: dto.PreferencesPayload{
			ClosedDays:   board.Preferences.ClosedDays,
			ShiftsPerDay: board.Preferences.ShiftsPerDay,
		},
		IsPublished:         board.IsPublished,
		RequestsWindowStart: board.RequestsWindowStart,
		RequestsWindowEnd:   board.RequestsWindowEnd,
		Exists:              true,
	}, nil
}

// SetPreferences upserts the board preferences for a week.
func (s *scheduleService) SetPreferences(ctx context.Context, workplaceID string, weekStart time.Time, prefs domain.BoardPreferences) (*domain.ShiftBoard, error) {
	ws, err := validWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	if prefs.ShiftsPerDay < 1 || prefs.ShiftsPerDay > 10 {
		return nil, apperrors.NewValidationFailedError("number of shifts per day must be between 1 and 10")
	}
	if prefs.ClosedDays == nil {
		prefs.ClosedDays = []string{}
	}

	board, err := s.boardRepo.UpsertPreferences(ctx, workplaceID, ws, prefs)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert board preferences", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return board, nil
}

// SetRequestWindow upserts the availability-request window for a week.
func (s *scheduleService) SetRequestWindow(ctx context.Context, workplaceID string, weekStart, windowStart, windowEnd time.Time) (*domain.ShiftBoard, error) {
	ws, err := validWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	if !windowEnd.After(windowStart) {
		return nil, apperrors.NewValidationFailedError("request window end must be after its start")
	}

	board, err := s.boardRepo.UpsertRequestWindow(ctx, workplaceID, ws, windowStart, windowEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert request window", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return board, nil
}

// SetPublishState publishes or unpublishes the board for a week. Publishing
// snapshots the week's shifts with their assignments into the board content;
// unpublishing discards the snapshot. Preferences and window survive both
// transitions, falling back to defaults when the board row does not exist
// yet. The whole transition lands in one upsert keyed on
// (workplace, week_start).
func (s *scheduleService) SetPublishState(ctx context.Context, workplaceID, publisherID string, weekStart time.Time, publish bool) (*domain.ShiftBoard, error) {
	ws, err := validWeekStart(weekStart)
	if err != nil {
		return nil, err
	}

	board := domain.ShiftBoard{
		WorkplaceID:   workplaceID,
		WeekStartDate: ws,
		IsPublished:   publish,
		Preferences:   domain.DefaultBoardPreferences(),
	}

	existing, err := s.boardRepo.FindBoard(ctx, workplaceID, ws)
	switch {
	case err == nil:
		board.Preferences = existing.Preferences
		board.RequestsWindowStart = existing.RequestsWindowStart
		board.RequestsWindowEnd = existing.RequestsWindowEnd
	case errors.Is(err, apperrors.ErrNotFound):
		// First touch of this week, defaults apply.
	default:
		return nil, err
	}

	if board.RequestsWindowStart == nil || board.RequestsWindowEnd == nil {
		windowStart := calendar.AddDays(ws, -7)
		windowEnd := calendar.AddDays(ws, -1)
		board.RequestsWindowStart = &windowStart
		board.RequestsWindowEnd = &windowEnd
	}

	if publish {
		content, err := s.buildSnapshot(ctx, workplaceID, publisherID, ws)
		if err != nil {
			return nil, err
		}
		board.Content = content
	}

	stored, err := s.boardRepo.UpsertBoard(ctx, board)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert board publish state",
			slog.String("workplace_id", workplaceID),
			slog.String("week_start", calendar.FormatDate(ws)),
			slog.Bool("publish", publish))
		return nil, err
	}

	s.LogInfo(ctx, "Board publish state changed",
		slog.String("workplace_id", workplaceID),
		slog.String("week_start", calendar.FormatDate(ws)),
		slog.Bool("is_published", publish))
	return stored, nil
}

// buildSnapshot freezes the week's shifts and assignments into board content.
func (s *scheduleService) buildSnapshot(ctx context.Context, workplaceID, publisherID string, weekStart time.Time) (*domain.BoardContent, error) {
	weekEnd := calendar.WeekEnd(weekStart)
	shifts, err := s.shiftRepo.ListShifts(ctx, workplaceID, &weekStart, &weekEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shifts for publish snapshot", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	content := &domain.BoardContent{
		Shifts:      make([]domain.BoardShift, 0, len(shifts)),
		PublishedAt: time.Now().UTC(),
		PublishedBy: publisherID,
		TotalShifts: len(shifts),
	}
	for _, shift := range shifts {
		frozen := domain.BoardShift{
			ShiftID:   shift.ShiftID,
			ShiftDate: calendar.FormatDate(shift.ShiftDate),
			ShiftPart: shift.ShiftPart,
			Workers:   make([]domain.BoardWorker, 0, len(shift.Workers)),
		}
		for _, worker := range shift.Workers {
			frozen.Workers = append(frozen.Workers, domain.BoardWorker{
				AssignmentID: worker.AssignmentID,
				UserID:       worker.UserID,
				AssignedAt:   worker.AssignedAt,
				Comment:      worker.Comment,
				FullName:     worker.FullName,
				Email:        worker.Email,
			})
			content.TotalAssignments++
		}
		content.Shifts = append(content.Shifts, frozen)
	}
	return content, nil
}

// GetBoard returns the stored board for a week.
func (s *scheduleService) GetBoard(ctx context.Context, workplaceID string, weekStart time.Time) (*domain.ShiftBoard, error) {
	ws, err := validWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	board, err := s.boardRepo.FindBoard(ctx, workplaceID, ws)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no board exists for this week")
		}
		return nil, err
	}
	return board, nil
}

// ListWeekAssignments flattens the week's assignments into one row per
// (shift, worker) pair for the manager board view.
func (s *scheduleService) ListWeekAssignments(ctx context.Context, workplaceID string, weekStart time.Time) ([]domain.WeekAssignment, error) {
	ws, err := validWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	weekEnd := calendar.WeekEnd(ws)
	shifts, err := s.shiftRepo.ListShifts(ctx, workplaceID, &ws, &weekEnd)
	if err != nil {
		return nil, err
	}

	assignments := make([]domain.WeekAssignment, 0)
	for _, shift := range shifts {
		for _, worker := range shift.Workers {
			assignments = append(assignments, domain.WeekAssignment{
				ID:        shift.ShiftID + "-" + worker.UserID,
				ShiftID:   shift.ShiftID,
				UserID:    worker.UserID,
				UserName:  worker.FullName,
				Comment:   worker.Comment,
				ShiftDate: shift.ShiftDate,
				ShiftPart: shift.ShiftPart,
			})
		}
	}
	return assignments, nil
}
