package ports

import (
	"context"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
)

// RoomCatalogue exposes the room inventory loaded at startup. Rooms
// returns one entry per type in inventory order; the set never changes
// for the process lifetime.
type RoomCatalogue interface {
	Rooms() []domain.RoomType
}

// ReservationLedger is the persistent reservation list. Append drops
// records whose 5-field key already exists; Cancel removes the first row
// matching the reference and fails without touching the store when no
// row matches.
type ReservationLedger interface {
	ReadAll(ctx context.Context) ([]domain.Reservation, error)
	Append(ctx context.Context, reservations []domain.Reservation) error
	Cancel(ctx context.Context, reference string) error
}
