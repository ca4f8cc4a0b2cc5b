package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
)

// Ledger is the in-memory record of committed bookings. Appends are
// compare-and-append under a single mutex, so two callers racing for the
// same (date, place) slot cannot both commit.
type Ledger struct {
	mu       sync.Mutex
	bookings []domain.Booking
	bySlot   map[string]struct{}
	nextID   int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		bySlot: make(map[string]struct{}),
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*Ledger)(nil)

// IsBooked reports whether the exact (date, placeID) slot is taken.
func (l *Ledger) IsBooked(ctx context.Context, date time.Time, placeID int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, booked := l.bySlot[slotKey(date, placeID)]
	return booked, nil
}

// ListBookingsByUser returns the user's bookings in insertion order.
func (l *Ledger) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []domain.Booking
	for _, b := range l.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// AppendBooking commits the booking and assigns its id. The id counter is
// monotonic for the lifetime of the ledger and survives ClearBookings, so
// ids handed out earlier are never reissued.
func (l *Ledger) AppendBooking(ctx context.Context, booking *domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := slotKey(booking.Date, booking.Place.ID)
	if _, taken := l.bySlot[key]; taken {
		return fmt.Errorf("%w: place %d on %s", apperrors.ErrAlreadyBooked, booking.Place.ID, domain.DateKey(booking.Date))
	}

	l.nextID++
	booking.ID = l.nextID
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	l.bookings = append(l.bookings, *booking)
	l.bySlot[key] = struct{}{}
	return nil
}

// ClearBookings removes every booking without resetting the id counter.
func (l *Ledger) ClearBookings(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bookings = nil
	l.bySlot = make(map[string]struct{})
	return nil
}

// Size returns the number of committed bookings.
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

func slotKey(date time.Time, placeID int) string {
	return fmt.Sprintf("%s|%d", domain.DateKey(date), placeID)
}
