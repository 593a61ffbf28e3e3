package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/ports"
)

var _ ports.ReservationLedger = (*ReservationRepository)(nil)

var reservationHeader = []string{"Reference Number", "Customer Name", "Room Type", "Check In", "Check Out", "Total Price"}

// ReservationRepository persists reservations in a flat delimited-text
// store: a fixed header row followed by one row per reservation. New
// reservations are appended; cancellation rewrites the whole store
// through a temp-file rename. A single mutex serializes every operation,
// so within one process there is exactly one writer at a time.
type ReservationRepository struct {
	path string
	mu   sync.Mutex
}

func NewReservationRepository(path string) *ReservationRepository {
	return &ReservationRepository{path: path}
}

// EnsureStore creates the store with its header row when the file does
// not exist yet. An existing store is left untouched.
func (r *ReservationRepository) EnsureStore() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return domain.NewStorageError(fmt.Sprintf("reservation store %q could not be checked", r.path), err)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return domain.NewStorageError(fmt.Sprintf("reservation store %q could not be created", r.path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(reservationHeader); err != nil {
		f.Close()
		return domain.NewStorageError("failed to write reservation store header", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return domain.NewStorageError("failed to write reservation store header", err)
	}
	if err := f.Close(); err != nil {
		return domain.NewStorageError("failed to write reservation store header", err)
	}
	return nil
}

// ReadAll returns every stored reservation in file order.
func (r *ReservationRepository) ReadAll(ctx context.Context) ([]domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

func (r *ReservationRepository) readAll() ([]domain.Reservation, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("reservation store %q could not be opened", r.path), err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("reservation store %q is malformed", r.path), err)
	}
	if len(records) == 0 {
		return nil, domain.NewStorageError(fmt.Sprintf("reservation store %q is missing its header row", r.path), nil)
	}

	reservations := make([]domain.Reservation, 0, len(records)-1)
	for _, rec := range records[1:] {
		res, err := parseReservationRecord(rec)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// Append writes the given reservations, skipping any whose 5-field key
// is already stored. The stored key set is read fresh on every call and
// extended as rows are written, so a duplicate inside the same batch is
// kept only once. Rows flushed before a failure are not rolled back.
func (r *ReservationRepository) Append(ctx context.Context, reservations []domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.readAll()
	if err != nil {
		return err
	}
	seen := make(map[domain.ReservationKey]struct{}, len(existing))
	for _, res := range existing {
		seen[res.Key()] = struct{}{}
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.NewStorageError(fmt.Sprintf("reservation store %q could not be opened for writing", r.path), err)
	}

	w := csv.NewWriter(f)
	for _, res := range reservations {
		key := res.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		if err := w.Write(reservationRecord(res)); err != nil {
			f.Close()
			return domain.NewStorageError("failed to write reservation row", err)
		}
		seen[key] = struct{}{}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return domain.NewStorageError("failed to write reservation row", err)
	}
	if err := f.Close(); err != nil {
		return domain.NewStorageError("failed to write reservation row", err)
	}
	return nil
}

// Cancel removes the first row matching reference and rewrites the store
// as header plus the remaining rows. When no row matches, the store is
// left byte-for-byte untouched and a not-found error is returned. The
// rewrite goes through a temp file renamed over the store, so a crash
// mid-rewrite never leaves a truncated ledger behind.
func (r *ReservationRepository) Cancel(ctx context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.readAll()
	if err != nil {
		return err
	}

	match := -1
	for i, res := range existing {
		if res.Reference == reference {
			match = i
			break
		}
	}
	if match < 0 {
		return domain.NewNotFoundError("Reservation not found.")
	}
	remaining := append(existing[:match:match], existing[match+1:]...)

	tmp := r.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return domain.NewStorageError(fmt.Sprintf("reservation store %q could not be rewritten", r.path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(reservationHeader); err != nil {
		f.Close()
		return domain.NewStorageError("failed to rewrite reservation store", err)
	}
	for _, res := range remaining {
		if err := w.Write(reservationRecord(res)); err != nil {
			f.Close()
			return domain.NewStorageError("failed to rewrite reservation store", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return domain.NewStorageError("failed to rewrite reservation store", err)
	}
	if err := f.Close(); err != nil {
		return domain.NewStorageError("failed to rewrite reservation store", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return domain.NewStorageError(fmt.Sprintf("reservation store %q could not be replaced", r.path), err)
	}
	return nil
}

func parseReservationRecord(rec []string) (domain.Reservation, error) {
	if len(rec) != len(reservationHeader) {
		return domain.Reservation{}, domain.NewStorageError(
			fmt.Sprintf("reservation row has %d columns, want %d", len(rec), len(reservationHeader)), nil)
	}

	checkIn, err := time.Parse(domain.DateLayout, rec[3])
	if err != nil {
		return domain.Reservation{}, domain.NewStorageError(
			fmt.Sprintf("reservation row has an invalid check-in date %q", rec[3]), err)
	}
	checkOut, err := time.Parse(domain.DateLayout, rec[4])
	if err != nil {
		return domain.Reservation{}, domain.NewStorageError(
			fmt.Sprintf("reservation row has an invalid check-out date %q", rec[4]), err)
	}
	total, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return domain.Reservation{}, domain.NewStorageError(
			fmt.Sprintf("reservation row has a non-numeric total price %q", rec[5]), err)
	}

	return domain.Reservation{
		Reference:    rec[0],
		CustomerName: rec[1],
		RoomType:     rec[2],
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		TotalPrice:   total,
	}, nil
}

func reservationRecord(res domain.Reservation) []string {
	return []string{
		res.Reference,
		res.CustomerName,
		res.RoomType,
		res.CheckIn.Format(domain.DateLayout),
		res.CheckOut.Format(domain.DateLayout),
		strconv.FormatFloat(res.TotalPrice, 'f', 2, 64),
	}
}
