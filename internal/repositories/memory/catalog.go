package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
)

// WindowDays is the size of the rolling catalog window (today + 6 days).
const WindowDays = 7

// Catalog is the static definition of which places exist on which dates.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	slots []domain.DateSlot
	byKey map[string]int // date key -> index into slots
}

// NewCatalog deterministically builds the WindowDays-day catalog starting
// at today. Offset i selects the place-name list keyed by i mod 7; a
// missing key produces a date with zero places. Place ids are derived as
// (i mod 7)*10 + position + 1, unique within a day only.
func NewCatalog(today time.Time, placeNamesByOffset map[int][]string) *Catalog {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	c := &Catalog{
		slots: make([]domain.DateSlot, 0, WindowDays),
		byKey: make(map[string]int, WindowDays),
	}
	for i := 0; i < WindowDays; i++ {
		date := start.AddDate(0, 0, i)
		dayIndex := i % 7

		names := placeNamesByOffset[dayIndex]
		places := make([]domain.Place, 0, len(names))
		for pos, name := range names {
			places = append(places, domain.Place{
				ID:          dayIndex*10 + pos + 1,
				Name:        name,
				Description: domain.DescribePlace(name),
			})
		}

		c.byKey[domain.DateKey(date)] = len(c.slots)
		c.slots = append(c.slots, domain.DateSlot{Date: date, Places: places})
	}
	return c
}

// DefaultPlaceNames returns the fixture place-name lists keyed by day
// offset. Offset 6 is intentionally absent so the last day of the window
// has no places.
func DefaultPlaceNames() map[int][]string {
	return map[int][]string{
		0: {"Desk 1 (window)", "Desk 2 (center)", "Desk 3 (cooler)"},
		1: {"Desk 4 (quiet zone)", "Desk 5 (outlet)"},
		2: {"Desk 1 (window)", "Desk 6 (premium)"},
		3: {"Desk 2 (center)", "Desk 7 (by the elevator)"},
		4: {"Desk 8 (corner)"},
		5: {"Desk 9 (with a view)"},
	}
}

// ListDateSlots returns the full window in date order.
func (c *Catalog) ListDateSlots(ctx context.Context) ([]domain.DateSlot, error) {
	out := make([]domain.DateSlot, len(c.slots))
	copy(out, c.slots)
	return out, nil
}

// FindDateSlot returns the slot for one calendar date.
func (c *Catalog) FindDateSlot(ctx context.Context, date time.Time) (*domain.DateSlot, error) {
	idx, ok := c.byKey[domain.DateKey(date)]
	if !ok {
		return nil, fmt.Errorf("%w: no catalog entry for date %s", apperrors.ErrNotFound, domain.DateKey(date))
	}
	slot := c.slots[idx]
	return &slot, nil
}

// Ensure implementation matches interface
var _ portsrepo.CatalogReader = (*Catalog)(nil)
