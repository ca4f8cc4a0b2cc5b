package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and map-key format for booking dates.
const DateLayout = "2006-01-02"

// DateKey normalizes a timestamp to its calendar-date key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Place is a bookable desk. Immutable once created; the ID is unique
// within a single date's slot only.
type Place struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DateSlot is one calendar date of the catalog window together with the
// places bookable on that date. Created at catalog initialization and
// never modified afterwards.
type DateSlot struct {
	Date   time.Time `json:"date"`
	Places []Place   `json:"places"`
}

// FindPlace returns the place with the given id on this date, if any.
func (s *DateSlot) FindPlace(placeID int) (Place, bool) {
	for _, p := range s.Places {
		if p.ID == placeID {
			return p, true
		}
	}
	return Place{}, false
}

// Booking is a committed reservation of one place on one date. Bookings
// are append-only; ids are assigned monotonically by the ledger and are
// never reused.
type Booking struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Place     Place     `json:"place"`
	UserID    string    `json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateAvailability is a derived view: one date and the places still free
// on it. Dates with nothing free are not represented.
type DateAvailability struct {
	Date   time.Time `json:"date"`
	Places []Place   `json:"places"`
}

// DescribePlace derives a place description from keywords in its name.
func DescribePlace(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "window"):
		return "Natural light"
	case strings.Contains(lower, "premium"):
		return "Spacious desk"
	case strings.Contains(lower, "cooler"):
		return "Next to the water cooler"
	case strings.Contains(lower, "outlet"):
		return "Plenty of power outlets"
	default:
		return "Standard desk"
	}
}
