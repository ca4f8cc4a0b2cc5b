package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
)

// UserDirectory is a fixed in-memory directory of users keyed by access
// code. Codes are matched case-insensitively.
type UserDirectory struct {
	byCode map[string]domain.User
}

// NewUserDirectory creates a directory holding the given users.
func NewUserDirectory(users ...domain.User) *UserDirectory {
	d := &UserDirectory{byCode: make(map[string]domain.User, len(users))}
	for _, u := range users {
		d.byCode[strings.ToLower(u.Code)] = u
	}
	return d
}

// Ensure implementation matches interface
var _ portsrepo.UserRepositoryFacade = (*UserDirectory)(nil)

// DefaultUsers returns the fixture user directory.
func DefaultUsers() []domain.User {
	return []domain.User{
		{Code: "1234", Name: "Alex Petrov", PhotoURL: "https://i.pravatar.cc/150?img=12"},
		{Code: "ab12", Name: "Maria Keller", PhotoURL: "https://i.pravatar.cc/150?img=32"},
		{Code: "qa42", Name: "Sam Reyes", PhotoURL: "https://i.pravatar.cc/150?img=51"},
	}
}

// FindUserByCode returns the user registered under the code.
func (d *UserDirectory) FindUserByCode(ctx context.Context, code string) (*domain.User, error) {
	u, ok := d.byCode[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown access code", apperrors.ErrNotFound)
	}
	return &u, nil
}
