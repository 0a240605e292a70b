package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
)

type PgxUserRequestRepository struct {
	BaseRepository
}

func newPgxUserRequestRepository(db *pgxpool.Pool) portsrepo.UserRequestRepositoryFacade {
	return &PgxUserRequestRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRequestRepositoryFacade = (*PgxUserRequestRepository)(nil)

const requestColumns = `request_id, user_id, workplace_id, requests, created_at, updated_at`

func scanRequest(row pgx.Row) (*domain.UserRequest, error) {
	var req domain.UserRequest
	err := row.Scan(&req.RequestID, &req.UserID, &req.WorkplaceID, &req.Requests, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PgxUserRequestRepository) UpsertRequest(ctx context.Context, request domain.UserRequest) (*domain.UserRequest, error) {
	query := `
		INSERT INTO user_requests (request_id, user_id, workplace_id, requests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (user_id, workplace_id) DO UPDATE SET
			requests = EXCLUDED.requests,
			updated_at = now()
		RETURNING ` + requestColumns + `;
	`
	stored, err := scanRequest(r.Pool.QueryRow(ctx, query,
		request.RequestID,
		request.UserID,
		request.WorkplaceID,
		request.Requests,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert availability request: %w", err)
	}
	return stored, nil
}

func (r *PgxUserRequestRepository) ListRequestsByUser(ctx context.Context, userID, workplaceID string) ([]domain.UserRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM user_requests WHERE user_id = $1 AND workplace_id = $2 ORDER BY updated_at DESC;`
	return r.listRequests(ctx, query, userID, workplaceID)
}

func (r *PgxUserRequestRepository) ListRequestsByWorkplace(ctx context.Context, workplaceID string) ([]domain.UserRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM user_requests WHERE workplace_id = $1 ORDER BY updated_at DESC;`
	return r.listRequests(ctx, query, workplaceID)
}

func (r *PgxUserRequestRepository) listRequests(ctx context.Context, query string, args ...any) ([]domain.UserRequest, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.UserRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				break
			}
			return nil, fmt.Errorf("failed to scan availability request: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading availability requests: %w", err)
	}
	return requests, nil
}
