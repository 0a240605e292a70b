package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
)

type PgxShiftRepository struct {
	BaseRepository
}

func newPgxShiftRepository(db *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

// shiftWithWorkersQuery joins shifts with their assignments and the assigned
// accounts. Rows come back one per (shift, worker) pair, worker columns NULL
// for unassigned shifts; collectShifts regroups them.
const shiftWithWorkersQuery = `
	SELECT s.shift_id, s.workplace_id, s.shift_date, s.shift_part, s.created_at,
		sw.assignment_id, sw.user_id, sw.comment, sw.assigned_at,
		u.full_name, u.email, u.avatar_url
	FROM shifts s
	LEFT JOIN shift_workers sw ON sw.shift_id = s.shift_id
	LEFT JOIN users u ON u.user_id = sw.user_id
`

// collectShifts regroups joined rows into shifts with nested workers,
// preserving the query's ordering.
func collectShifts(rows pgx.Rows) ([]domain.Shift, error) {
	var shifts []domain.Shift
	index := map[string]int{}
	for rows.Next() {
		var (
			shift        domain.Shift
			assignmentID *string
			userID       *string
			comment      *string
			assignedAt   *time.Time
			fullName     *string
			email        *string
			avatarURL    *string
		)
		err := rows.Scan(
			&shift.ShiftID, &shift.WorkplaceID, &shift.ShiftDate, &shift.ShiftPart, &shift.CreatedAt,
			&assignmentID, &userID, &comment, &assignedAt,
			&fullName, &email, &avatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}

		pos, seen := index[shift.ShiftID]
		if !seen {
			shift.Workers = []domain.ShiftWorker{}
			shifts = append(shifts, shift)
			pos = len(shifts) - 1
			index[shift.ShiftID] = pos
		}
		if assignmentID != nil && userID != nil {
			worker := domain.ShiftWorker{
				AssignmentID: *assignmentID,
				ShiftID:      shift.ShiftID,
				UserID:       *userID,
				Comment:      comment,
				AvatarURL:    avatarURL,
			}
			if assignedAt != nil {
				worker.AssignedAt = *assignedAt
			}
			if fullName != nil {
				worker.FullName = *fullName
			}
			if email != nil {
				worker.Email = *email
			}
			shifts[pos].Workers = append(shifts[pos].Workers, worker)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading shift rows: %w", err)
	}
	return shifts, nil
}

func (r *PgxShiftRepository) CreateShift(ctx context.Context, shift domain.Shift) (*domain.Shift, error) {
	query := `
		INSERT INTO shifts (shift_id, workplace_id, shift_date, shift_part, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		shift.ShiftID,
		shift.WorkplaceID,
		shift.ShiftDate,
		string(shift.ShiftPart),
	).Scan(&shift.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.NewConflictError("shift already exists for this date and part")
		}
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	shift.Workers = []domain.ShiftWorker{}
	return &shift, nil
}

func (r *PgxShiftRepository) UpsertShifts(ctx context.Context, shifts []domain.Shift) ([]domain.Shift, error) {
	query := `
		INSERT INTO shifts (shift_id, workplace_id, shift_date, shift_part, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (workplace_id, shift_date, shift_part) DO NOTHING
		RETURNING created_at;
	`
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	inserted := make([]domain.Shift, 0, len(shifts))
	for _, shift := range shifts {
		err := tx.QueryRow(ctx, query,
			shift.ShiftID,
			shift.WorkplaceID,
			shift.ShiftDate,
			string(shift.ShiftPart),
		).Scan(&shift.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Slot already exists, skip it.
				continue
			}
			return nil, fmt.Errorf("failed to upsert shift: %w", err)
		}
		shift.Workers = []domain.ShiftWorker{}
		inserted = append(inserted, shift)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := shiftWithWorkersQuery + ` WHERE s.shift_id = $1 ORDER BY sw.assigned_at ASC;`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	shifts, err := collectShifts(rows)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &shifts[0], nil
}

func (r *PgxShiftRepository) ListShifts(ctx context.Context, workplaceID string, from, to *time.Time) ([]domain.Shift, error) {
	query := shiftWithWorkersQuery + `
		WHERE s.workplace_id = $1
		AND ($2::date IS NULL OR s.shift_date >= $2)
		AND ($3::date IS NULL OR s.shift_date <= $3)
		ORDER BY s.shift_date ASC, s.shift_part ASC, sw.assigned_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

func (r *PgxShiftRepository) ListShiftSlots(ctx context.Context, workplaceID string, from, to time.Time) ([]domain.Shift, error) {
	query := `
		SELECT shift_id, workplace_id, shift_date, shift_part, created_at
		FROM shifts
		WHERE workplace_id = $1 AND shift_date >= $2 AND shift_date <= $3
		ORDER BY shift_date ASC, shift_part ASC;
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.Shift
	for rows.Next() {
		var slot domain.Shift
		if err := rows.Scan(&slot.ShiftID, &slot.WorkplaceID, &slot.ShiftDate, &slot.ShiftPart, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading shift slots: %w", err)
	}
	return slots, nil
}

func (r *PgxShiftRepository) UpdateShift(ctx context.Context, shiftID, workplaceID string, date *time.Time, part *domain.ShiftPart) (*domain.Shift, error) {
	var partText *string
	if part != nil {
		p := string(*part)
		partText = &p
	}
	query := `
		UPDATE shifts SET
			shift_date = COALESCE($3, shift_date),
			shift_part = COALESCE($4, shift_part)
		WHERE shift_id = $1 AND workplace_id = $2
		RETURNING shift_id;
	`
	var updatedID string
	err := r.Pool.QueryRow(ctx, query, shiftID, workplaceID, date, partText).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.NewConflictError("shift already exists for this date and part")
		}
		return nil, fmt.Errorf("failed to update shift %s: %w", shiftID, err)
	}
	return r.FindShiftByID(ctx, updatedID)
}

func (r *PgxShiftRepository) DeleteShift(ctx context.Context, shiftID, workplaceID string) error {
	query := `DELETE FROM shifts WHERE shift_id = $1 AND workplace_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, shiftID, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShiftRepository) AddWorker(ctx context.Context, assignment domain.ShiftWorker) (*domain.ShiftWorker, error) {
	query := `
		INSERT INTO shift_workers (assignment_id, shift_id, user_id, comment, assigned_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING assigned_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		assignment.AssignmentID,
		assignment.ShiftID,
		assignment.UserID,
		assignment.Comment,
	).Scan(&assignment.AssignedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, apperrors.NewConflictError("worker already assigned to this shift")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return nil, apperrors.ErrNotFound
			}
		}
		return nil, fmt.Errorf("failed to add worker to shift %s: %w", assignment.ShiftID, err)
	}
	return &assignment, nil
}

func (r *PgxShiftRepository) RemoveWorker(ctx context.Context, shiftID, userID string) error {
	query := `DELETE FROM shift_workers WHERE shift_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, shiftID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove worker from shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShiftRepository) UpdateWorkerComment(ctx context.Context, shiftID, assignmentID, comment string) (*domain.ShiftWorker, error) {
	query := `
		UPDATE shift_workers SET comment = NULLIF($3, '')
		WHERE shift_id = $1 AND assignment_id = $2
		RETURNING assignment_id, shift_id, user_id, comment, assigned_at;
	`
	var worker domain.ShiftWorker
	err := r.Pool.QueryRow(ctx, query, shiftID, assignmentID, comment).Scan(
		&worker.AssignmentID, &worker.ShiftID, &worker.UserID, &worker.Comment, &worker.AssignedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update assignment comment: %w", err)
	}
	return &worker, nil
}

func (r *PgxShiftRepository) ListAssignedShifts(ctx context.Context, userID string) ([]domain.AssignedShift, error) {
	query := `
		SELECT sw.assignment_id, sw.assigned_at, sw.comment,
			s.shift_id, s.workplace_id, s.shift_date, s.shift_part
		FROM shift_workers sw
		JOIN shifts s ON s.shift_id = sw.shift_id
		WHERE sw.user_id = $1
		ORDER BY s.shift_date ASC, s.shift_part ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned shifts: %w", err)
	}
	defer rows.Close()

	var assigned []domain.AssignedShift
	for rows.Next() {
		var a domain.AssignedShift
		err := rows.Scan(&a.AssignmentID, &a.AssignedAt, &a.Comment, &a.ShiftID, &a.WorkplaceID, &a.ShiftDate, &a.ShiftPart)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assigned shift: %w", err)
		}
		assigned = append(assigned, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading assigned shifts: %w", err)
	}
	return assigned, nil
}
