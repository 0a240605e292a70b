package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
)

type PgxShiftBoardRepository struct {
	BaseRepository
}

func newPgxShiftBoardRepository(db *pgxpool.Pool) portsrepo.ShiftBoardRepositoryFacade {
	return &PgxShiftBoardRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ShiftBoardRepositoryFacade = (*PgxShiftBoardRepository)(nil)

const boardColumns = `board_id, workplace_id, week_start_date, is_published, preferences,
	requests_window_start, requests_window_end, content, created_at, updated_at`

// emptyContent is the stored content of an unpublished board.
const emptyContent = `{}`

// marshalContent serializes the snapshot; a nil snapshot stores as the empty
// object, which scanBoard maps back to nil.
func marshalContent(content *domain.BoardContent) ([]byte, error) {
	if content == nil {
		return []byte(emptyContent), nil
	}
	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board content: %w", err)
	}
	return data, nil
}

// scanBoard reads one board row in the order of boardColumns.
func scanBoard(row pgx.Row) (*domain.ShiftBoard, error) {
	var (
		b           domain.ShiftBoard
		prefsData   []byte
		contentData []byte
	)
	err := row.Scan(
		&b.BoardID,
		&b.WorkplaceID,
		&b.WeekStartDate,
		&b.IsPublished,
		&prefsData,
		&b.RequestsWindowStart,
		&b.RequestsWindowEnd,
		&contentData,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(prefsData) > 0 {
		if err := json.Unmarshal(prefsData, &b.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode board preferences: %w", err)
		}
	}
	if b.Preferences.ShiftsPerDay == 0 {
		b.Preferences = domain.DefaultBoardPreferences()
	}

	if len(contentData) > 0 && string(contentData) != emptyContent {
		var content domain.BoardContent
		if err := json.Unmarshal(contentData, &content); err != nil {
			return nil, fmt.Errorf("failed to decode board content: %w", err)
		}
		b.Content = &content
	}
	return &b, nil
}

func (r *PgxShiftBoardRepository) FindBoard(ctx context.Context, workplaceID string, weekStart time.Time) (*domain.ShiftBoard, error) {
	query := `SELECT ` + boardColumns + ` FROM shift_boards WHERE workplace_id = $1 AND week_start_date = $2;`
	board, err := scanBoard(r.Pool.QueryRow(ctx, query, workplaceID, weekStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find board: %w", err)
	}
	return board, nil
}

func (r *PgxShiftBoardRepository) UpsertBoard(ctx context.Context, board domain.ShiftBoard) (*domain.ShiftBoard, error) {
	prefsData, err := json.Marshal(board.Preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board preferences: %w", err)
	}
	contentData, err := marshalContent(board.Content)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO shift_boards (board_id, workplace_id, week_start_date, is_published, preferences,
			requests_window_start, requests_window_end, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (workplace_id, week_start_date) DO UPDATE SET
			is_published = EXCLUDED.is_published,
			preferences = EXCLUDED.preferences,
			requests_window_start = EXCLUDED.requests_window_start,
			requests_window_end = EXCLUDED.requests_window_end,
			content = EXCLUDED.content,
			updated_at = now()
		RETURNING ` + boardColumns + `;
	`
	stored, err := scanBoard(r.Pool.QueryRow(ctx, query,
		uuid.NewString(),
		board.WorkplaceID,
		board.WeekStartDate,
		board.IsPublished,
		prefsData,
		board.RequestsWindowStart,
		board.RequestsWindowEnd,
		contentData,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert board: %w", err)
	}
	return stored, nil
}

func (r *PgxShiftBoardRepository) UpsertPreferences(ctx context.Context, workplaceID string, weekStart time.Time, prefs domain.BoardPreferences) (*domain.ShiftBoard, error) {
	prefsData, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board preferences: %w", err)
	}

	query := `
		INSERT INTO shift_boards (board_id, workplace_id, week_start_date, is_published, preferences, content, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, '{}', now(), now())
		ON CONFLICT (workplace_id, week_start_date) DO UPDATE SET
			preferences = EXCLUDED.preferences,
			updated_at = now()
		RETURNING ` + boardColumns + `;
	`
	stored, err := scanBoard(r.Pool.QueryRow(ctx, query, uuid.NewString(), workplaceID, weekStart, prefsData))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert board preferences: %w", err)
	}
	return stored, nil
}

func (r *PgxShiftBoardRepository) UpsertRequestWindow(ctx context.Context, workplaceID string, weekStart time.Time, windowStart, windowEnd time.Time) (*domain.ShiftBoard, error) {
	prefsData, err := json.Marshal(domain.DefaultBoardPreferences())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default preferences: %w", err)
	}

	query := `
		INSERT INTO shift_boards (board_id, workplace_id, week_start_date, is_published, preferences,
			requests_window_start, requests_window_end, content, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, $5, $6, '{}', now(), now())
		ON CONFLICT (workplace_id, week_start_date) DO UPDATE SET
			requests_window_start = EXCLUDED.requests_window_start,
			requests_window_end = EXCLUDED.requests_window_end,
			updated_at = now()
		RETURNING ` + boardColumns + `;
	`
	stored, err := scanBoard(r.Pool.QueryRow(ctx, query, uuid.NewString(), workplaceID, weekStart, prefsData, windowStart, windowEnd))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert request window: %w", err)
	}
	return stored, nil
}

func (r *PgxShiftBoardRepository) ListPublishedWeeks(ctx context.Context, workplaceID string, weekStarts []time.Time) ([]time.Time, error) {
	if len(weekStarts) == 0 {
		return nil, nil
	}
	query := `
		SELECT week_start_date
		FROM shift_boards
		WHERE workplace_id = $1 AND is_published = true AND week_start_date = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, workplaceID, weekStarts)
	if err != nil {
		return nil, fmt.Errorf("failed to list published weeks: %w", err)
	}
	defer rows.Close()

	var published []time.Time
	for rows.Next() {
		var week time.Time
		if err := rows.Scan(&week); err != nil {
			return nil, fmt.Errorf("failed to scan published week: %w", err)
		}
		published = append(published, week)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading published weeks: %w", err)
	}
	return published, nil
}
