package mapping

import (
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	"github.com/deskbook/desk_booking_app/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		Code:     m.Code,
		Name:     m.Name,
		PhotoURL: m.PhotoURL,
	}
}
