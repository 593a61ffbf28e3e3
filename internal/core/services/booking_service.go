package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/ports"
	"github.com/aakritipkh/hotel-booking/internal/core/validator"
)

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 8

	// Flat cancellation policy: 70% of the total price comes back,
	// regardless of notice period.
	refundRate = 0.70
)

// BookingService is the reservation engine. It is the only component
// that creates or removes reservations; front ends hold no reservation
// state beyond a single pending form.
type BookingService struct {
	catalogue ports.RoomCatalogue
	ledger    ports.ReservationLedger
	log       logrus.FieldLogger
}

func NewBookingService(catalogue ports.RoomCatalogue, ledger ports.ReservationLedger, log logrus.FieldLogger) *BookingService {
	return &BookingService{
		catalogue: catalogue,
		ledger:    ledger,
		log:       log,
	}
}

// SearchAvailability returns the room types that can host the party over
// the requested range. Only the date formats are validated here; range
// ordering and past-ness are booking concerns, search is pure overlap
// filtering. A room type is blocked when any stored reservation shares
// at least one night with the requested range. An empty result is not an
// error.
func (s *BookingService) SearchAvailability(ctx context.Context, checkIn, checkOut string, partySize int) ([]domain.AvailableRoom, error) {
	in, err := validator.Date(checkIn)
	if err != nil {
		return nil, err
	}
	out, err := validator.Date(checkOut)
	if err != nil {
		return nil, err
	}

	existing, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]struct{})
	for _, res := range existing {
		if res.Overlaps(in, out) {
			blocked[res.RoomType] = struct{}{}
		}
	}

	var available []domain.AvailableRoom
	for i, room := range s.catalogue.Rooms() {
		if room.MaxPeople < partySize {
			continue
		}
		if _, taken := blocked[room.Name]; taken {
			continue
		}
		available = append(available, domain.AvailableRoom{
			RoomNumber:    i + 1,
			RoomID:        room.RoomID,
			RoomType:      room.Name,
			PricePerNight: room.PricePerNight,
		})
	}
	return available, nil
}

// MakeReservation validates the request, generates a reference, computes
// the total price and persists the new reservation. Checks run in a
// fixed order and the first failure aborts with that specific error.
// Validation and storage errors propagate to the caller untranslated.
func (s *BookingService) MakeReservation(ctx context.Context, customerName, partySize, checkIn, checkOut string, room domain.AvailableRoom) (domain.Reservation, error) {
	if _, err := validator.PartySize(partySize); err != nil {
		return domain.Reservation{}, err
	}
	in, err := validator.Date(checkIn)
	if err != nil {
		return domain.Reservation{}, err
	}
	out, err := validator.Date(checkOut)
	if err != nil {
		return domain.Reservation{}, err
	}
	if err := validator.DateRange(checkIn, checkOut); err != nil {
		return domain.Reservation{}, err
	}
	if err := validator.CheckInNotPast(checkIn); err != nil {
		return domain.Reservation{}, err
	}
	if err := validator.CustomerName(customerName); err != nil {
		return domain.Reservation{}, err
	}

	reservation := domain.Reservation{
		Reference:    newReference(),
		CustomerName: customerName,
		RoomType:     room.RoomType,
		CheckIn:      in,
		CheckOut:     out,
	}
	reservation.TotalPrice = float64(reservation.Nights()) * room.PricePerNight

	if err := s.ledger.Append(ctx, []domain.Reservation{reservation}); err != nil {
		return domain.Reservation{}, err
	}

	s.log.WithFields(logrus.Fields{
		"reference": reservation.Reference,
		"room_type": reservation.RoomType,
		"nights":    reservation.Nights(),
		"total":     reservation.TotalPrice,
	}).Info("reservation created")

	return reservation, nil
}

// FindReservation returns the stored reservation for reference, reading
// the ledger fresh. Unknown references fail with a not-found error.
func (s *BookingService) FindReservation(ctx context.Context, reference string) (domain.Reservation, error) {
	existing, err := s.ledger.ReadAll(ctx)
	if err != nil {
		return domain.Reservation{}, err
	}
	for _, res := range existing {
		if res.Reference == reference {
			return res, nil
		}
	}
	return domain.Reservation{}, domain.NewNotFoundError("Reservation not found.")
}

// CancelReservation removes the reservation with the given reference.
// A not-found failure from the ledger propagates verbatim.
func (s *BookingService) CancelReservation(ctx context.Context, reference string) error {
	if err := s.ledger.Cancel(ctx, reference); err != nil {
		return err
	}
	s.log.WithField("reference", reference).Info("reservation cancelled")
	return nil
}

// Refund returns the amount paid back on cancellation.
func (s *BookingService) Refund(totalPrice float64) float64 {
	return totalPrice * refundRate
}

// Receipt renders the human-readable booking summary. Pure formatting,
// nothing is persisted.
func (s *BookingService) Receipt(res domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference Number: %s\n", res.Reference)
	fmt.Fprintf(&b, "Customer Name: %s\n", res.CustomerName)
	fmt.Fprintf(&b, "Room Type: %s\n", res.RoomType)
	fmt.Fprintf(&b, "Check-in Date: %s\n", res.CheckIn.Format(domain.DateLayout))
	fmt.Fprintf(&b, "Check-out Date: %s\n", res.CheckOut.Format(domain.DateLayout))
	fmt.Fprintf(&b, "Total Price: $%.2f\n", res.TotalPrice)
	return b.String()
}

// newReference draws 8 characters uniformly from A-Z0-9. Collisions with
// a stored reference are not checked; the 36^8 space makes them
// astronomically unlikely.
func newReference() string {
	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = referenceAlphabet[rand.IntN(len(referenceAlphabet))]
	}
	return string(b)
}
