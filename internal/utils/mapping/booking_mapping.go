package mapping

import (
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	"github.com/deskbook/desk_booking_app/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		ID:               d.ID,
		BookingDate:      d.Date,
		PlaceID:          d.Place.ID,
		PlaceName:        d.Place.Name,
		PlaceDescription: d.Place.Description,
		UserCode:         d.UserID,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		ID: m.ID,
		Date: m.BookingDate,
		Place: domain.Place{
			ID:          m.PlaceID,
			Name:        m.PlaceName,
			Description: m.PlaceDescription,
		},
		UserID:    m.UserCode,
		CreatedAt: m.CreatedAt,
	}
}
