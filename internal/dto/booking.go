package dto

import (
	"github.com/deskbook/desk_booking_app/internal/core/domain"
)

// AvailablePlace is one bookable place in the availability response.
type AvailablePlace struct {
	ID    int    `json:"id"`
	Place string `json:"place"`
}

// AvailableBookingsResponse maps a date string (YYYY-MM-DD) to the places
// still free on that date.
type AvailableBookingsResponse map[string][]AvailablePlace

// CreateBookingRequest is the payload for booking a place.
type CreateBookingRequest struct {
	Date    string `json:"date" binding:"required"`
	PlaceID int    `json:"placeId" binding:"required,gt=0"`
}

// CreateBookingResponse reports the outcome of a booking attempt.
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID int64  `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToAvailablePlaces converts domain places to their wire representation.
func ToAvailablePlaces(places []domain.Place) []AvailablePlace {
	out := make([]AvailablePlace, len(places))
	for i, p := range places {
		out[i] = AvailablePlace{ID: p.ID, Place: p.Name}
	}
	return out
}
