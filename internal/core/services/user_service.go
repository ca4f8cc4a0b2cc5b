package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/middleware"
)

// UserService handles lookups against the user directory.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: ur}
}

// Ensure UserService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// GetUserByCode retrieves the user behind an access code.
func (s *UserService) GetUserByCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		middleware.GetLoggerFromCtx(ctx).Error("Failed to look up user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
