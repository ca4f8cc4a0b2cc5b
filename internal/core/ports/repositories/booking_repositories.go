package repositories

import (
	"context"
	"time"

	"github.com/deskbook/desk_booking_app/internal/core/domain"
)

// LedgerReader defines read operations over committed bookings.
type LedgerReader interface {
	// IsBooked reports whether a booking exists for the exact (date, placeID) slot.
	IsBooked(ctx context.Context, date time.Time, placeID int) (bool, error)

	// ListBookingsByUser retrieves all bookings of one user, in insertion order.
	ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

// LedgerWriter defines write operations over committed bookings.
type LedgerWriter interface {
	// AppendBooking commits a booking and assigns it a fresh monotonic id.
	// The append is a compare-and-append: if the (date, place) slot is
	// already taken it fails with apperrors.ErrAlreadyBooked and leaves
	// the ledger unchanged.
	AppendBooking(ctx context.Context, booking *domain.Booking) error

	// ClearBookings removes every booking. Test/reset utility only; booking
	// ids are not reused afterwards.
	ClearBookings(ctx context.Context) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// CatalogReader defines read access to the static date/place catalog.
type CatalogReader interface {
	// ListDateSlots retrieves the full catalog window in date order.
	ListDateSlots(ctx context.Context) ([]domain.DateSlot, error)

	// FindDateSlot retrieves the slot for one date, or apperrors.ErrNotFound
	// when the date is outside the catalog window.
	FindDateSlot(ctx context.Context, date time.Time) (*domain.DateSlot, error)
}
