package models

import "time"

// Booking represents a committed booking row. Place data is denormalized
// onto the row because catalog places are fixture data, not a table.
type Booking struct {
	ID               int64     `json:"id"`
	BookingDate      time.Time `json:"bookingDate"`
	PlaceID          int       `json:"placeID"`
	PlaceName        string    `json:"placeName"`
	PlaceDescription string    `json:"placeDescription"`
	UserCode         string    `json:"userCode"`
	CreatedAt        time.Time `json:"createdAt"`
}
