package dto

import (
	"github.com/deskbook/desk_booking_app/internal/core/domain"
)

// AuthResponse is the body of a successful auth check.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// BookingInfo is one existing booking in the user info response.
type BookingInfo struct {
	ID    int64  `json:"id"`
	Place string `json:"place"`
}

// UserInfoResponse is the profile payload returned for an access code,
// including the user's bookings keyed by date string.
type UserInfoResponse struct {
	Name     string                 `json:"name"`
	PhotoURL string                 `json:"photoUrl"`
	Booking  map[string]BookingInfo `json:"booking"`
}

// ToUserInfoResponse builds the user info payload. The booking map is
// keyed by date; when a user somehow holds several bookings on one date
// the most recent one wins.
func ToUserInfoResponse(user *domain.User, bookings []domain.Booking) UserInfoResponse {
	bookingMap := make(map[string]BookingInfo, len(bookings))
	for _, b := range bookings {
		bookingMap[domain.DateKey(b.Date)] = BookingInfo{ID: b.ID, Place: b.Place.Name}
	}
	return UserInfoResponse{
		Name:     user.Name,
		PhotoURL: user.PhotoURL,
		Booking:  bookingMap,
	}
}
