// hotelctl is the non-interactive front end: one-shot search, book and
// cancel commands over the same booking core the console shell uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aakritipkh/hotel-booking/internal/adapter/repository/csvfile"
	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/services"
	"github.com/aakritipkh/hotel-booking/internal/core/validator"
	"github.com/aakritipkh/hotel-booking/internal/platform/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)

	catalogue, err := csvfile.NewRoomRepository(cfg.RoomsFile)
	if err != nil {
		fail(err)
	}
	ledger := csvfile.NewReservationRepository(cfg.ReservationsFile)
	if err := ledger.EnsureStore(); err != nil {
		fail(err)
	}
	svc := services.NewBookingService(catalogue, ledger, logger)

	ctx := context.Background()
	switch os.Args[1] {
	case "search":
		runSearch(ctx, svc, os.Args[2:])
	case "book":
		runBook(ctx, svc, os.Args[2:])
	case "cancel":
		runCancel(ctx, svc, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func runSearch(ctx context.Context, svc *services.BookingService, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	checkIn := fs.String("check-in", "", "check-in date (DD/MM/YYYY)")
	checkOut := fs.String("check-out", "", "check-out date (DD/MM/YYYY)")
	people := fs.String("people", "", "number of people staying (1-4)")
	fs.Parse(args)

	partySize, err := validator.PartySize(*people)
	if err != nil {
		fail(err)
	}
	available, err := svc.SearchAvailability(ctx, *checkIn, *checkOut, partySize)
	if err != nil {
		fail(err)
	}
	printAvailable(available)
}

func runBook(ctx context.Context, svc *services.BookingService, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	name := fs.String("name", "", "customer full name")
	checkIn := fs.String("check-in", "", "check-in date (DD/MM/YYYY)")
	checkOut := fs.String("check-out", "", "check-out date (DD/MM/YYYY)")
	people := fs.String("people", "", "number of people staying (1-4)")
	room := fs.Int("room", 0, "room option number from the search listing")
	fs.Parse(args)

	partySize, err := validator.PartySize(*people)
	if err != nil {
		fail(err)
	}
	available, err := svc.SearchAvailability(ctx, *checkIn, *checkOut, partySize)
	if err != nil {
		fail(err)
	}
	if len(available) == 0 {
		fail(fmt.Errorf("no rooms are available for the selected dates"))
	}
	if *room < 1 || *room > len(available) {
		fail(fmt.Errorf("room option must be between 1 and %d", len(available)))
	}

	reservation, err := svc.MakeReservation(ctx, *name, *people, *checkIn, *checkOut, available[*room-1])
	if err != nil {
		fail(err)
	}
	fmt.Print(svc.Receipt(reservation))
}

func runCancel(ctx context.Context, svc *services.BookingService, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	reference := fs.String("ref", "", "reservation reference number")
	fs.Parse(args)

	reservation, err := svc.FindReservation(ctx, *reference)
	if err != nil {
		if domain.HasKind(err, domain.KindNotFound) {
			fmt.Fprintln(os.Stderr, "Reservation not found.")
			os.Exit(1)
		}
		fail(err)
	}
	if err := svc.CancelReservation(ctx, *reference); err != nil {
		fail(err)
	}
	fmt.Printf("Cancelled %s. Refund amount: $%.2f\n", reservation.Reference, svc.Refund(reservation.TotalPrice))
}

func printAvailable(available []domain.AvailableRoom) {
	if len(available) == 0 {
		fmt.Println("No rooms are available for the selected dates.")
		return
	}
	for i, room := range available {
		fmt.Printf("%d. Room Type: %s, Price per Night: $%.2f\n", i+1, room.RoomType, room.PricePerNight)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: hotelctl <search|book|cancel> [flags]")
	fmt.Fprintln(os.Stderr, "  search -check-in DD/MM/YYYY -check-out DD/MM/YYYY -people N")
	fmt.Fprintln(os.Stderr, "  book   -name NAME -check-in DD/MM/YYYY -check-out DD/MM/YYYY -people N -room N")
	fmt.Fprintln(os.Stderr, "  cancel -ref REFERENCE")
}
