package console_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aakritipkh/hotel-booking/internal/adapter/console"
	"github.com/aakritipkh/hotel-booking/internal/adapter/repository/csvfile"
	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/services"
)

func newShell(t *testing.T, input string) (*console.Console, *bytes.Buffer, *csvfile.ReservationRepository) {
	t.Helper()
	dir := t.TempDir()

	inventory := filepath.Join(dir, "hotel_room.csv")
	require.NoError(t, os.WriteFile(inventory, []byte(
		"room_id,room_type,max_people,price_per_night\n"+
			"1,Single,2,50.00\n"+
			"2,Double,4,80.00\n"), 0o644))
	catalogue, err := csvfile.NewRoomRepository(inventory)
	require.NoError(t, err)

	ledger := csvfile.NewReservationRepository(filepath.Join(dir, "reservations.csv"))
	require.NoError(t, ledger.EnsureStore())

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := services.NewBookingService(catalogue, ledger, logger)

	var out bytes.Buffer
	return console.New(svc, strings.NewReader(input), &out, logger), &out, ledger
}

func TestConsoleBooksARoom(t *testing.T) {
	checkIn := time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)
	checkOut := time.Now().AddDate(0, 1, 2).Format(domain.DateLayout)

	input := strings.Join([]string{
		"1", // make a reservation
		"Aakriti Pokharel",
		"2", // party size
		checkIn,
		checkOut,
		"1",   // pick Single
		"yes", // confirm
		"3",   // exit
	}, "\n") + "\n"

	shell, out, ledger := newShell(t, input)
	shell.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Available Room Options:")
	assert.Contains(t, text, "1. Room Type: Single, Price per Night: $50.00")
	assert.Contains(t, text, "Reservation confirmed.")
	assert.Contains(t, text, "Total Price: $100.00")
	assert.Contains(t, text, "REFUND POLICY")

	stored, err := ledger.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Single", stored[0].RoomType)
}

func TestConsoleRetriesInvalidFields(t *testing.T) {
	checkIn := time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)
	checkOut := time.Now().AddDate(0, 1, 2).Format(domain.DateLayout)

	input := strings.Join([]string{
		"1",
		"", // empty name, re-asked
		"Jo",
		"five", // not a number, re-asked
		"2",
		"1/1/2030", // bad format, re-asked
		checkIn,
		checkOut,
		"1",
		"yes",
		"3",
	}, "\n") + "\n"

	shell, out, _ := newShell(t, input)
	shell.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Name cannot be empty.")
	assert.Contains(t, text, "Invalid input. Please enter a valid number.")
	assert.Contains(t, text, "Invalid date format. Please use the format dd/mm/yyyy.")
	assert.Contains(t, text, "Reservation confirmed.")
}

func TestConsoleDecliningConfirmationKeepsReservation(t *testing.T) {
	checkIn := time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)
	checkOut := time.Now().AddDate(0, 1, 2).Format(domain.DateLayout)

	input := strings.Join([]string{
		"1", "Jo", "2", checkIn, checkOut, "1",
		"no", // decline the confirmation prompt
		"3",
	}, "\n") + "\n"

	shell, out, ledger := newShell(t, input)
	shell.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Confirm reservation (yes/no)?")
	assert.Contains(t, text, "Reservation canceled.")
	assert.NotContains(t, text, "Reservation confirmed.")

	// Declining happens after persistence: the row is already written
	// and stays in the ledger.
	stored, err := ledger.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Jo", stored[0].CustomerName)
}

func TestConsoleCancelUnknownReference(t *testing.T) {
	input := "2\nNOPE1234\n3\n"

	shell, out, _ := newShell(t, input)
	shell.Run(context.Background())

	assert.Contains(t, out.String(), "Reservation not found.")
}

func TestConsoleCancelRefundsSeventyPercent(t *testing.T) {
	checkIn := time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)
	checkOut := time.Now().AddDate(0, 1, 2).Format(domain.DateLayout)

	bookInput := strings.Join([]string{
		"1", "Jo", "2", checkIn, checkOut, "1", "yes", "3",
	}, "\n") + "\n"
	shell, _, ledger := newShell(t, bookInput)
	shell.Run(context.Background())

	stored, err := ledger.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	reference := stored[0].Reference

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	// Reuse the same ledger through a fresh shell for the cancel pass.
	catalogue := mustCatalogue(t)
	svc := services.NewBookingService(catalogue, ledger, logger)
	var out bytes.Buffer
	cancelShell := console.New(svc, strings.NewReader("2\n"+reference+"\nyes\n3\n"), &out, logger)
	cancelShell.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Cancellation successful for "+reference)
	assert.Contains(t, text, "Your refund amount is $70.00")

	stored, err = ledger.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func mustCatalogue(t *testing.T) *csvfile.RoomRepository {
	t.Helper()
	inventory := filepath.Join(t.TempDir(), "hotel_room.csv")
	require.NoError(t, os.WriteFile(inventory, []byte(
		"room_id,room_type,max_people,price_per_night\n"+
			"1,Single,2,50.00\n"), 0o644))
	catalogue, err := csvfile.NewRoomRepository(inventory)
	require.NoError(t, err)
	return catalogue
}
