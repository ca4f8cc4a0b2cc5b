package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/middleware"
)

// AvailabilityCache is an optional snapshot cache for the availability
// view. Implemented by cache.RedisCache; a nil cache disables caching.
type AvailabilityCache interface {
	GetAvailability(ctx context.Context) ([]domain.DateAvailability, error)
	SetAvailability(ctx context.Context, snapshot []domain.DateAvailability) error
	InvalidateAvailability(ctx context.Context) error
}

// BookingService implements the booking façade: the availability reads
// derived from catalog minus ledger, and the booking transaction, the
// only write path into the ledger.
type BookingService struct {
	ledger  portsrepo.LedgerRepositoryFacade
	catalog portsrepo.CatalogReader
	cache   AvailabilityCache
}

// NewBookingService creates a new BookingService. cache may be nil.
func NewBookingService(ledger portsrepo.LedgerRepositoryFacade, catalog portsrepo.CatalogReader, cache AvailabilityCache) portssvc.BookingSvcFacade {
	return &BookingService{
		ledger:  ledger,
		catalog: catalog,
		cache:   cache,
	}
}

// Ensure BookingService implements the portssvc.BookingSvcFacade interface
var _ portssvc.BookingSvcFacade = (*BookingService)(nil)

// availability computes the availability snapshot: every catalog date
// that still has free places, with those places in catalog order.
func (s *BookingService) availability(ctx context.Context) ([]domain.DateAvailability, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAvailability(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	slots, err := s.catalog.ListDateSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog dates: %w", err)
	}

	snapshot := make([]domain.DateAvailability, 0, len(slots))
	for _, slot := range slots {
		var free []domain.Place
		for _, place := range slot.Places {
			booked, err := s.ledger.IsBooked(ctx, slot.Date, place.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check slot %s/%d: %w", domain.DateKey(slot.Date), place.ID, err)
			}
			if !booked {
				free = append(free, place)
			}
		}
		if len(free) > 0 {
			snapshot = append(snapshot, domain.DateAvailability{Date: slot.Date, Places: free})
		}
	}

	if s.cache != nil {
		_ = s.cache.SetAvailability(ctx, snapshot)
	}
	return snapshot, nil
}

// ListAvailableDates returns every date with at least one free place.
func (s *BookingService) ListAvailableDates(ctx context.Context) ([]time.Time, error) {
	snapshot, err := s.availability(ctx)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(snapshot))
	for _, entry := range snapshot {
		dates = append(dates, entry.Date)
	}
	return dates, nil
}

// ListAvailablePlaces returns the free places of one date in catalog
// order. A date outside the catalog window yields an empty slice.
func (s *BookingService) ListAvailablePlaces(ctx context.Context, date time.Time) ([]domain.Place, error) {
	snapshot, err := s.availability(ctx)
	if err != nil {
		return nil, err
	}

	key := domain.DateKey(date)
	for _, entry := range snapshot {
		if domain.DateKey(entry.Date) == key {
			return entry.Places, nil
		}
	}
	return []domain.Place{}, nil
}

// ListUserBookings returns the user's bookings in creation order.
func (s *BookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	bookings, err := s.ledger.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// Book validates the (date, placeID) slot against the catalog and the
// ledger, then commits a new booking. The operation either fully commits
// or fully rejects; the ledger append re-checks the slot so a concurrent
// writer cannot slip between the check and the commit.
func (s *BookingService) Book(ctx context.Context, date time.Time, placeID int, userID string) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	slot, err := s.catalog.FindDateSlot(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown place %d for date %s", apperrors.ErrNotFound, placeID, domain.DateKey(date))
		}
		logger.Error("Failed to resolve catalog date", slog.String("error", err.Error()), slog.String("date", domain.DateKey(date)))
		return nil, fmt.Errorf("failed to resolve date %s: %w", domain.DateKey(date), err)
	}

	place, ok := slot.FindPlace(placeID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown place %d for date %s", apperrors.ErrNotFound, placeID, domain.DateKey(date))
	}

	booked, err := s.ledger.IsBooked(ctx, slot.Date, place.ID)
	if err != nil {
		logger.Error("Failed to check slot", slog.String("error", err.Error()), slog.String("date", domain.DateKey(slot.Date)), slog.Int("place_id", place.ID))
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if booked {
		return nil, fmt.Errorf("%w: place %d on %s", apperrors.ErrAlreadyBooked, place.ID, domain.DateKey(slot.Date))
	}

	booking := &domain.Booking{
		Date:   slot.Date,
		Place:  place,
		UserID: userID,
	}
	if err := s.ledger.AppendBooking(ctx, booking); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyBooked) {
			// Lost the race for the slot; surface it as an ordinary conflict.
			return nil, err
		}
		logger.Error("Failed to append booking", slog.String("error", err.Error()), slog.String("date", domain.DateKey(slot.Date)), slog.Int("place_id", place.ID))
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateAvailability(ctx)
	}

	logger.Info("Booking created",
		slog.Int64("booking_id", booking.ID),
		slog.String("date", domain.DateKey(booking.Date)),
		slog.Int("place_id", booking.Place.ID),
		slog.String("user_id", userID),
	)
	return booking, nil
}
