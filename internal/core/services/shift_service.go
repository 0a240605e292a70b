package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/dto"
	"github.com/shiftboard/shiftboard_app/internal/utils/calendar"
)

// employeeVisibleDays bounds the default employee listing range.
const employeeVisibleDays = 30

// shiftService manages shift slots and worker assignments, and applies the
// publish-aware visibility policy on the employee-facing listing.
type shiftService struct {
	BaseService
	shiftRepo portsrepo.ShiftRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
	boardRepo portsrepo.ShiftBoardRepositoryFacade
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// NewShiftService creates a new shift service instance.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, boardRepo portsrepo.ShiftBoardRepositoryFacade) portssvc.ShiftSvcFacade {
	return &shiftService{shiftRepo: shiftRepo, userRepo: userRepo, boardRepo: boardRepo}
}

// ListShifts returns the workplace's shifts with nested assignments,
// optionally bounded by a date range.
func (s *shiftService) ListShifts(ctx context.Context, workplaceID string, from, to *time.Time) ([]domain.Shift, error) {
	return s.shiftRepo.ListShifts(ctx, workplaceID, from, to)
}

// CreateShift creates a single slot, optionally assigning a worker in the
// same call. An assignment failure does not undo the created shift; it is
// reported as a warning instead.
func (s *shiftService) CreateShift(ctx context.Context, workplaceID string, req dto.CreateShiftRequest) (*portssvc.CreateShiftResult, error) {
	shiftDate, err := calendar.ParseDate(req.ShiftDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("shift date must be formatted YYYY-MM-DD")
	}

	shift := domain.Shift{
		ShiftID:     uuid.NewString(),
		WorkplaceID: workplaceID,
		ShiftDate:   shiftDate,
		ShiftPart:   domain.ShiftPart(req.ShiftPart),
	}
	created, err := s.shiftRepo.CreateShift(ctx, shift)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a shift already exists for this date and part")
		}
		s.LogError(ctx, err, "Failed to create shift", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	result := &portssvc.CreateShiftResult{Shift: created}
	if req.UserID == "" {
		return result, nil
	}

	if err := s.validateWorker(ctx, workplaceID, req.UserID); err != nil {
		result.Warning = "shift created but worker could not be assigned: " + err.Error()
		return result, nil
	}
	assignment := domain.ShiftWorker{
		AssignmentID: uuid.NewString(),
		ShiftID:      created.ShiftID,
		UserID:       req.UserID,
	}
	if req.Comment != "" {
		comment := req.Comment
		assignment.Comment = &comment
	}
	if _, err := s.shiftRepo.AddWorker(ctx, assignment); err != nil {
		s.LogError(ctx, err, "Failed to assign worker to new shift", slog.String("shift_id", created.ShiftID))
		result.Warning = "shift created but worker could not be assigned"
		return result, nil
	}

	refreshed, err := s.shiftRepo.FindShiftByID(ctx, created.ShiftID)
	if err == nil {
		result.Shift = refreshed
	}
	return result, nil
}

// CreateShifts creates several slots at once, skipping ones that already
// exist, and returns only the slots actually created.
func (s *shiftService) CreateShifts(ctx context.Context, workplaceID string, reqs []dto.CreateShiftRequest) ([]domain.Shift, error) {
	shifts := make([]domain.Shift, 0, len(reqs))
	for _, req := range reqs {
		shiftDate, err := calendar.ParseDate(req.ShiftDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("shift date must be formatted YYYY-MM-DD")
		}
		shifts = append(shifts, domain.Shift{
			ShiftID:     uuid.NewString(),
			WorkplaceID: workplaceID,
			ShiftDate:   shiftDate,
			ShiftPart:   domain.ShiftPart(req.ShiftPart),
		})
	}

	inserted, err := s.shiftRepo.UpsertShifts(ctx, shifts)
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk create shifts", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	return inserted, nil
}

// UpdateShift moves a slot to another date and/or part.
func (s *shiftService) UpdateShift(ctx context.Context, workplaceID, shiftID string, req dto.UpdateShiftRequest) (*domain.Shift, error) {
	if req.ShiftDate == nil && req.ShiftPart == nil {
		return nil, apperrors.NewValidationFailedError("nothing to update")
	}

	var date *time.Time
	if req.ShiftDate != nil {
		parsed, err := calendar.ParseDate(*req.ShiftDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("shift date must be formatted YYYY-MM-DD")
		}
		date = &parsed
	}
	var part *domain.ShiftPart
	if req.ShiftPart != nil {
		p := domain.ShiftPart(*req.ShiftPart)
		if !p.Valid() {
			return nil, apperrors.NewValidationFailedError("unknown shift part")
		}
		part = &p
	}

	updated, err := s.shiftRepo.UpdateShift(ctx, shiftID, workplaceID, date, part)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("shift not found")
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a shift already exists for this date and part")
		}
		return nil, err
	}
	return updated, nil
}

// DeleteShift removes a slot and its assignments.
func (s *shiftService) DeleteShift(ctx context.Context, workplaceID, shiftID string) error {
	if err := s.shiftRepo.DeleteShift(ctx, shiftID, workplaceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("shift not found")
		}
		return err
	}
	return nil
}

// GenerateShifts copies the source week's slots onto the target week by
// shifting each date by the week delta. Assignments are not copied and slots
// that already exist on the target week are left untouched. Returns the
// number of slots created.
func (s *shiftService) GenerateShifts(ctx context.Context, workplaceID string, sourceWeekStart, targetWeekStart time.Time) (int, error) {
	source, err := validWeekStart(sourceWeekStart)
	if err != nil {
		return 0, err
	}
	target, err := validWeekStart(targetWeekStart)
	if err != nil {
		return 0, err
	}
	if source.Equal(target) {
		return 0, apperrors.NewValidationFailedError("source and target weeks must differ")
	}

	slots, err := s.shiftRepo.ListShiftSlots(ctx, workplaceID, source, calendar.WeekEnd(source))
	if err != nil {
		s.LogError(ctx, err, "Failed to load source week slots", slog.String("workplace_id", workplaceID))
		return 0, err
	}
	if len(slots) == 0 {
		return 0, nil
	}

	delta := calendar.DaysBetween(source, target)
	generated := make([]domain.Shift, 0, len(slots))
	for _, slot := range slots {
		generated = append(generated, domain.Shift{
			ShiftID:     uuid.NewString(),
			WorkplaceID: workplaceID,
			ShiftDate:   calendar.AddDays(slot.ShiftDate, delta),
			ShiftPart:   slot.ShiftPart,
		})
	}

	inserted, err := s.shiftRepo.UpsertShifts(ctx, generated)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate target week slots", slog.String("workplace_id", workplaceID))
		return 0, err
	}
	s.LogInfo(ctx, "Generated shifts from template week",
		slog.String("workplace_id", workplaceID),
		slog.String("source_week", calendar.FormatDate(source)),
		slog.String("target_week", calendar.FormatDate(target)),
		slog.Int("created", len(inserted)))
	return len(inserted), nil
}

// AssignWorker adds or removes a worker on a shift and returns the refreshed
// shift.
func (s *shiftService) AssignWorker(ctx context.Context, workplaceID, shiftID string, req dto.AssignWorkerRequest) (*domain.Shift, error) {
	shift, err := s.findWorkplaceShift(ctx, workplaceID, shiftID)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case "add":
		if err := s.validateWorker(ctx, workplaceID, req.UserID); err != nil {
			return nil, err
		}
		assignment := domain.ShiftWorker{
			AssignmentID: uuid.NewString(),
			ShiftID:      shift.ShiftID,
			UserID:       req.UserID,
		}
		if req.Comment != "" {
			comment := req.Comment
			assignment.Comment = &comment
		}
		if _, err := s.shiftRepo.AddWorker(ctx, assignment); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return nil, apperrors.NewConflictError("worker is already assigned to this shift")
			}
			s.LogError(ctx, err, "Failed to assign worker", slog.String("shift_id", shiftID))
			return nil, err
		}
	case "remove":
		if err := s.shiftRepo.RemoveWorker(ctx, shift.ShiftID, req.UserID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("worker is not assigned to this shift")
			}
			return nil, err
		}
	default:
		return nil, apperrors.NewValidationFailedError("action must be add or remove")
	}

	return s.shiftRepo.FindShiftByID(ctx, shift.ShiftID)
}

// UpdateAssignmentComment rewrites the comment on an existing assignment.
func (s *shiftService) UpdateAssignmentComment(ctx context.Context, workplaceID, shiftID, assignmentID string, comment *string) error {
	if _, err := s.findWorkplaceShift(ctx, workplaceID, shiftID); err != nil {
		return err
	}
	text := ""
	if comment != nil {
		text = *comment
	}
	if _, err := s.shiftRepo.UpdateWorkerComment(ctx, shiftID, assignmentID, text); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("assignment not found")
		}
		return err
	}
	return nil
}

// ListEmployeeShifts returns the worker's assignments restricted by the
// visibility policy: shifts before today are always visible, today's and
// future shifts only when their week's board is published. The range defaults
// to the next employeeVisibleDays days.
func (s *shiftService) ListEmployeeShifts(ctx context.Context, workplaceID, userID string, from, to *time.Time) (*dto.ListEmployeeShiftsResponse, error) {
	today := calendar.Today()
	rangeStart := today
	rangeEnd := calendar.AddDays(today, employeeVisibleDays)
	if from != nil {
		rangeStart = calendar.Normalize(*from)
	}
	if to != nil {
		rangeEnd = calendar.Normalize(*to)
	}

	assigned, err := s.shiftRepo.ListAssignedShifts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assignments", slog.String("user_id", userID))
		return nil, err
	}

	// Resolve the published weeks once for every non-past candidate.
	weekSet := map[time.Time]struct{}{}
	for _, a := range assigned {
		if a.ShiftDate.IsZero() || a.WorkplaceID != workplaceID {
			continue
		}
		date := calendar.Normalize(a.ShiftDate)
		if !calendar.InRange(date, rangeStart, rangeEnd) || date.Before(today) {
			continue
		}
		weekSet[calendar.WeekStart(date)] = struct{}{}
	}
	published := map[time.Time]struct{}{}
	if len(weekSet) > 0 {
		weeks := make([]time.Time, 0, len(weekSet))
		for week := range weekSet {
			weeks = append(weeks, week)
		}
		publishedWeeks, err := s.boardRepo.ListPublishedWeeks(ctx, workplaceID, weeks)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve published weeks", slog.String("workplace_id", workplaceID))
			return nil, err
		}
		for _, week := range publishedWeeks {
			published[calendar.Normalize(week)] = struct{}{}
		}
	}

	visible := make([]domain.AssignedShift, 0, len(assigned))
	for _, a := range assigned {
		if a.ShiftDate.IsZero() || a.WorkplaceID != workplaceID {
			continue
		}
		date := calendar.Normalize(a.ShiftDate)
		if !calendar.InRange(date, rangeStart, rangeEnd) {
			continue
		}
		if !date.Before(today) {
			if _, ok := published[calendar.WeekStart(date)]; !ok {
				continue
			}
		}
		a.ShiftDate = date
		visible = append(visible, a)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].ShiftDate.Before(visible[j].ShiftDate)
	})

	resp := dto.ToListEmployeeShiftsResponse(visible)
	return &resp, nil
}

// findWorkplaceShift loads a shift and verifies it belongs to the caller's
// workplace.
func (s *shiftService) findWorkplaceShift(ctx context.Context, workplaceID, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("shift not found")
		}
		return nil, err
	}
	if shift.WorkplaceID != workplaceID {
		return nil, apperrors.NewForbiddenError("shift belongs to another workplace")
	}
	return shift, nil
}

// validateWorker checks that the account can be put on a shift of the given
// workplace.
func (s *shiftService) validateWorker(ctx context.Context, workplaceID, userID string) error {
	worker, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("worker not found")
		}
		return err
	}
	if worker.WorkplaceID == nil || *worker.WorkplaceID != workplaceID {
		return apperrors.NewForbiddenError("worker does not belong to this workplace")
	}
	if !worker.IsApproved {
		return apperrors.NewForbiddenError("worker is not approved yet")
	}
	return nil
}
