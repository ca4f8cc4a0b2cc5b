package repositories

import (
	"context"

	"github.com/deskbook/desk_booking_app/internal/core/domain"
)

// UserReader defines read operations for the user directory.
type UserReader interface {
	// FindUserByCode retrieves the user registered under the given access
	// code, or apperrors.ErrNotFound when the code is unknown.
	FindUserByCode(ctx context.Context, code string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
}
