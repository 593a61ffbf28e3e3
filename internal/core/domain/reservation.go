package domain

import "time"

// DateLayout is the wire format for every date in the system: zero-padded
// day and month with a four-digit year, e.g. "05/01/2025".
const DateLayout = "02/01/2006"

// Reservation is one row of the reservation ledger. Check-in and
// check-out are date-only values (midnight UTC after parsing).
type Reservation struct {
	Reference    string
	CustomerName string
	RoomType     string
	CheckIn      time.Time
	CheckOut     time.Time
	TotalPrice   float64
}

// ReservationKey is the natural key the ledger deduplicates on. The total
// price is deliberately not part of the key.
type ReservationKey struct {
	Reference    string
	CustomerName string
	RoomType     string
	CheckIn      string
	CheckOut     string
}

// Key returns the 5-field dedup key with dates formatted back to the
// ledger layout.
func (r Reservation) Key() ReservationKey {
	return ReservationKey{
		Reference:    r.Reference,
		CustomerName: r.CustomerName,
		RoomType:     r.RoomType,
		CheckIn:      r.CheckIn.Format(DateLayout),
		CheckOut:     r.CheckOut.Format(DateLayout),
	}
}

// Overlaps reports whether the reservation occupies at least one night of
// the requested range. The rule is inclusive on both ends: a stay that
// merely touches the range blocks its room type for the whole request.
func (r Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return !r.CheckIn.After(checkOut) && !r.CheckOut.Before(checkIn)
}

// Nights returns the length of the stay in whole days.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
