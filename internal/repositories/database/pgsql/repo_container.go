package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shiftboard/shiftboard_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		WorkplaceRepo: newPgxWorkplaceRepository(dbPool),
		InviteRepo:    newPgxInviteRepository(dbPool),
		ShiftRepo:     newPgxShiftRepository(dbPool),
		BoardRepo:     newPgxShiftBoardRepository(dbPool),
		RequestRepo:   newPgxUserRequestRepository(dbPool),
	}
}
