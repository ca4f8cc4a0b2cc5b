package services

import (
	"context"
	"time"

	"github.com/deskbook/desk_booking_app/internal/core/domain"
)

// BookingReaderSvc defines the read side of the booking façade.
type BookingReaderSvc interface {
	// ListAvailableDates retrieves every catalog date that still has at
	// least one unbooked place, in date order.
	ListAvailableDates(ctx context.Context) ([]time.Time, error)

	// ListAvailablePlaces retrieves the unbooked places of one date in
	// catalog order. An unknown date yields an empty slice, not an error.
	ListAvailablePlaces(ctx context.Context, date time.Time) ([]domain.Place, error)

	// ListUserBookings retrieves all bookings of one user in the order
	// they were created.
	ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error)
}

// BookingWriterSvc defines the write side of the booking façade.
type BookingWriterSvc interface {
	// Book reserves the place for the user on the given date. It fails
	// with apperrors.ErrNotFound when the (date, placeID) pair does not
	// exist in the catalog and with apperrors.ErrAlreadyBooked when the
	// slot is taken; in both cases nothing is persisted.
	Book(ctx context.Context, date time.Time, placeID int, userID string) (*domain.Booking, error)
}

// BookingSvcFacade combines the four public booking operations.
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
