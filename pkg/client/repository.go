package client

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
)

// RemoteBookingRepository answers booking queries by calling a remote
// service for a fixed access code. It implements the same facade as the
// local booking service, so callers can swap between the two.
//
// The remote peer derives the user from the access code, so the userID
// arguments on the facade are ignored here.
type RemoteBookingRepository struct {
	client *Client
	code   string
}

var _ portssvc.BookingSvcFacade = (*RemoteBookingRepository)(nil)

// NewRemoteBookingRepository creates a repository bound to one access code.
func NewRemoteBookingRepository(client *Client, code string) *RemoteBookingRepository {
	return &RemoteBookingRepository{client: client, code: code}
}

// ListAvailableDates implements portssvc.BookingReaderSvc.
func (r *RemoteBookingRepository) ListAvailableDates(ctx context.Context) ([]time.Time, error) {
	availability, err := r.client.AvailableBookings(ctx, r.code)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(availability))
	for key := range availability {
		date, err := time.Parse(domain.DateLayout, key)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in availability response: %w", key, err)
		}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// ListAvailablePlaces implements portssvc.BookingReaderSvc. The wire
// format carries no descriptions, so the returned places have name and
// id only.
func (r *RemoteBookingRepository) ListAvailablePlaces(ctx context.Context, date time.Time) ([]domain.Place, error) {
	availability, err := r.client.AvailableBookings(ctx, r.code)
	if err != nil {
		return nil, err
	}

	entries := availability[domain.DateKey(date)]
	places := make([]domain.Place, 0, len(entries))
	for _, entry := range entries {
		places = append(places, domain.Place{ID: entry.ID, Name: entry.Place})
	}
	return places, nil
}

// ListUserBookings implements portssvc.BookingReaderSvc. Bookings come
// back sorted by id, which matches creation order on the peer.
func (r *RemoteBookingRepository) ListUserBookings(ctx context.Context, _ string) ([]domain.Booking, error) {
	info, err := r.client.UserInfo(ctx, r.code)
	if err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(info.Booking))
	for key, entry := range info.Booking {
		date, err := time.Parse(domain.DateLayout, key)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in info response: %w", key, err)
		}
		bookings = append(bookings, domain.Booking{
			ID:     entry.ID,
			Date:   date,
			Place:  domain.Place{Name: entry.Place},
			UserID: r.code,
		})
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

// Book implements portssvc.BookingWriterSvc by delegating the write to
// the remote peer. The peer enforces slot exclusivity.
func (r *RemoteBookingRepository) Book(ctx context.Context, date time.Time, placeID int, _ string) (*domain.Booking, error) {
	bookingID, err := r.client.CreateBooking(ctx, r.code, domain.DateKey(date), placeID)
	if err != nil {
		return nil, err
	}
	return &domain.Booking{
		ID:     bookingID,
		Date:   date,
		Place:  domain.Place{ID: placeID},
		UserID: r.code,
	}, nil
}
