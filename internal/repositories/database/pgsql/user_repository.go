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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, username, full_name, is_manager, is_active, is_approved,
	workplace_id, google_id, avatar_url, password_hash, refresh_token_hash, refresh_token_expiry_time,
	created_at, updated_at`

// scanUser reads one user row in the order of userColumns.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.Username,
		&u.FullName,
		&u.IsManager,
		&u.IsActive,
		&u.IsApproved,
		&u.WorkplaceID,
		&u.GoogleID,
		&u.AvatarURL,
		&u.PasswordHash,
		&u.RefreshTokenHash,
		&u.RefreshTokenExpiryTime,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username %s: %w", username, err)
	}
	return user, nil
}

func (r *PgxUserRepository) ListEmployeesByWorkplace(ctx context.Context, workplaceID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE workplace_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplace members: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workplace member: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading workplace members: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, email, username, full_name, is_manager, is_active, is_approved,
			workplace_id, google_id, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now());
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.Username,
		user.FullName,
		user.IsManager,
		user.IsActive,
		user.IsApproved,
		user.WorkplaceID,
		user.GoogleID,
		user.AvatarURL,
		user.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("user " + user.UserID + " already exists")
		}
		return fmt.Errorf("failed to create user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpsertUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, email, username, full_name, is_manager, is_active, is_approved,
			workplace_id, google_id, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			is_manager = EXCLUDED.is_manager,
			is_active = EXCLUDED.is_active,
			is_approved = EXCLUDED.is_approved,
			workplace_id = EXCLUDED.workplace_id,
			google_id = EXCLUDED.google_id,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = now();
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.Username,
		user.FullName,
		user.IsManager,
		user.IsActive,
		user.IsApproved,
		user.WorkplaceID,
		user.GoogleID,
		user.AvatarURL,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) SetUserWorkplace(ctx context.Context, userID, workplaceID string) error {
	query := `UPDATE users SET workplace_id = $2, updated_at = now() WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to set workplace for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) SetUserApproval(ctx context.Context, userID string, approved bool) error {
	query := `UPDATE users SET is_approved = $2, updated_at = now() WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, approved)
	if err != nil {
		return fmt.Errorf("failed to set approval for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserProfile(ctx context.Context, userID string, fullName, avatarURL *string) (*domain.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			avatar_url = COALESCE($3, avatar_url),
			updated_at = now()
		WHERE user_id = $1
		RETURNING ` + userColumns + `;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID, fullName, avatarURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	query := `UPDATE users SET refresh_token_hash = $2, refresh_token_expiry_time = $3, updated_at = now() WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, refreshTokenHash, expiry)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = '', refresh_token_expiry_time = NULL, updated_at = now() WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
