package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
)

type PgxInviteRepository struct {
	BaseRepository
}

func newPgxInviteRepository(db *pgxpool.Pool) portsrepo.InviteRepositoryFacade {
	return &PgxInviteRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InviteRepositoryFacade = (*PgxInviteRepository)(nil)

func (r *PgxInviteRepository) FindUnusedInvite(ctx context.Context, code string) (*domain.Invite, error) {
	query := `SELECT code, is_used, created_at FROM invites WHERE code = $1 AND is_used = false;`
	var invite domain.Invite
	err := r.Pool.QueryRow(ctx, query, code).Scan(&invite.Code, &invite.IsUsed, &invite.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invite: %w", err)
	}
	return &invite, nil
}

func (r *PgxInviteRepository) MarkInviteUsed(ctx context.Context, code string) error {
	query := `UPDATE invites SET is_used = true WHERE code = $1 AND is_used = false;`
	tag, err := r.Pool.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to mark invite used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
