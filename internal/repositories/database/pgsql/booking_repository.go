package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	"github.com/deskbook/desk_booking_app/internal/models"
	"github.com/deskbook/desk_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the postgres error code raised by the
// UNIQUE (booking_date, place_id) constraint.
const uniqueViolation = "23505"

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for booking data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendBooking inserts the booking. The unique constraint on
// (booking_date, place_id) makes the commit atomic with respect to
// concurrent writers: the loser of a race gets ErrAlreadyBooked.
func (r *PgxLedgerRepository) AppendBooking(ctx context.Context, booking *domain.Booking) error {
	modelBooking := mapping.ToModelBooking(*booking)

	query := `
		INSERT INTO bookings (booking_date, place_id, place_name, place_description, user_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelBooking.BookingDate,
		modelBooking.PlaceID,
		modelBooking.PlaceName,
		modelBooking.PlaceDescription,
		modelBooking.UserCode,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: place %d on %s", apperrors.ErrAlreadyBooked, booking.Place.ID, domain.DateKey(booking.Date))
		}
		return fmt.Errorf("failed to append booking: %w", err)
	}
	return nil
}

// IsBooked reports whether a booking exists for the exact slot.
func (r *PgxLedgerRepository) IsBooked(ctx context.Context, date time.Time, placeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_date = $1 AND place_id = $2);`

	var booked bool
	if err := r.Pool.QueryRow(ctx, query, date, placeID).Scan(&booked); err != nil {
		return false, fmt.Errorf("failed to check slot %s/%d: %w", domain.DateKey(date), placeID, err)
	}
	return booked, nil
}

// ListBookingsByUser retrieves the user's bookings in insertion order.
func (r *PgxLedgerRepository) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `
		SELECT id, booking_date, place_id, place_name, place_description, user_code, created_at
		FROM bookings
		WHERE user_code = $1
		ORDER BY id;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var m models.Booking
		if err := rows.Scan(&m.ID, &m.BookingDate, &m.PlaceID, &m.PlaceName, &m.PlaceDescription, &m.UserCode, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, mapping.ToDomainBooking(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}

// ClearBookings removes every booking. The id sequence is left alone so
// ids are not reissued.
func (r *PgxLedgerRepository) ClearBookings(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM bookings;`); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}
	return nil
}
