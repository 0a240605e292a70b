package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shiftboard/shiftboard_app/internal/apperrors"
	"github.com/shiftboard/shiftboard_app/internal/core/domain"
	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
)

type PgxWorkplaceRepository struct {
	BaseRepository
}

func newPgxWorkplaceRepository(db *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

const workplaceColumns = `workplace_id, business_name, manager_id, created_at`

// scanWorkplace reads one workplace row in the order of workplaceColumns.
func scanWorkplace(row pgx.Row) (*domain.Workplace, error) {
	var w domain.Workplace
	err := row.Scan(&w.WorkplaceID, &w.BusinessName, &w.ManagerID, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PgxWorkplaceRepository) CreateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	query := `
		INSERT INTO workplaces (` + workplaceColumns + `)
		VALUES ($1, $2, $3, now());
	`
	_, err := r.Pool.Exec(ctx, query,
		workplace.WorkplaceID,
		workplace.BusinessName,
		workplace.ManagerID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("business name " + workplace.BusinessName + " is already taken")
		}
		return fmt.Errorf("failed to create workplace %s: %w", workplace.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	query := `SELECT ` + workplaceColumns + ` FROM workplaces WHERE workplace_id = $1;`
	workplace, err := scanWorkplace(r.Pool.QueryRow(ctx, query, workplaceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workplace %s: %w", workplaceID, err)
	}
	return workplace, nil
}

func (r *PgxWorkplaceRepository) FindWorkplaceByBusinessName(ctx context.Context, businessName string) (*domain.Workplace, error) {
	query := `SELECT ` + workplaceColumns + ` FROM workplaces WHERE business_name = $1;`
	workplace, err := scanWorkplace(r.Pool.QueryRow(ctx, query, businessName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workplace by business name: %w", err)
	}
	return workplace, nil
}

func (r *PgxWorkplaceRepository) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	query := `DELETE FROM workplaces WHERE workplace_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to delete workplace %s: %w", workplaceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
