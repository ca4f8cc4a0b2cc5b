package services

import (
	"context"

	"github.com/deskbook/desk_booking_app/internal/core/domain"
)

// UserReaderSvc defines read operations over the user directory.
type UserReaderSvc interface {
	// GetUserByCode retrieves the user behind an access code, or
	// apperrors.ErrNotFound when the code is not registered.
	GetUserByCode(ctx context.Context, code string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
}
