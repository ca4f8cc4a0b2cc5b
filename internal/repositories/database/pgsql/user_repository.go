package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	"github.com/deskbook/desk_booking_app/internal/models"
	"github.com/deskbook/desk_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for the user directory.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindUserByCode retrieves a user by access code, case-insensitively.
func (r *PgxUserRepository) FindUserByCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
		SELECT code, name, photo_url
		FROM users
		WHERE lower(code) = lower($1);
	`

	var m models.User
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.Name, &m.PhotoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: unknown access code", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user by code: %w", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}
