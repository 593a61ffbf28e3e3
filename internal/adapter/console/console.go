// Package console implements the interactive menu front end. It is a
// thin presentation shell: every decision is delegated to the booking
// service, and validation failures are rendered verbatim before the
// field is asked for again.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/services"
	"github.com/aakritipkh/hotel-booking/internal/core/validator"
)

const divider = "--------------------------------------------------------------"

type Console struct {
	svc *services.BookingService
	in  *bufio.Scanner
	out io.Writer
	log logrus.FieldLogger
}

func New(svc *services.BookingService, in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run drives the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "Thank you for choosing Aakriti's Hotel Booking System.")
		fmt.Fprintln(c.out, divider)
		fmt.Fprintln(c.out, "1. Make a reservation")
		fmt.Fprintln(c.out, "2. Cancel a reservation")
		fmt.Fprintln(c.out, "3. Exit")

		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			if !c.bookRoom(ctx) {
				return
			}
		case "2":
			if !c.cancelRoom(ctx) {
				return
			}
		case "3":
			fmt.Fprintln(c.out, "Thank you for using Aakriti's Hotel Booking System. Have a great day!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

// bookRoom walks the guest through one booking attempt. Each field loops
// until it validates; the whole flow restarts when the guest wants to
// try different dates after an empty search. Returns false only when
// input ends.
func (c *Console) bookRoom(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out, "Booking a room...")

		name, ok := c.promptValid("Enter your full name: ", validator.CustomerName)
		if !ok {
			return false
		}
		fmt.Fprintln(c.out, divider)
		fmt.Fprintf(c.out, "Hello, %s.\n", name)

		partySize, ok := c.promptPartySize()
		if !ok {
			return false
		}

		checkIn, ok := c.promptValid("Enter the check-in date (DD/MM/YYYY): ", func(s string) error {
			if _, err := validator.Date(s); err != nil {
				return err
			}
			return validator.CheckInNotPast(s)
		})
		if !ok {
			return false
		}
		checkOut, ok := c.promptValid("Enter the check-out date (DD/MM/YYYY): ", func(s string) error {
			if _, err := validator.Date(s); err != nil {
				return err
			}
			return validator.DateRange(checkIn, s)
		})
		if !ok {
			return false
		}

		available, err := c.svc.SearchAvailability(ctx, checkIn, checkOut, partySize)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return true
		}
		if len(available) == 0 {
			fmt.Fprintln(c.out, "We apologize, but there are no available rooms for the selected dates.")
			again, ok := c.prompt("Do you want to check availability for another date? (yes/no): ")
			if !ok {
				return false
			}
			if strings.EqualFold(strings.TrimSpace(again), "yes") {
				continue
			}
			return true
		}

		fmt.Fprintln(c.out, "Available Room Options:")
		for i, room := range available {
			fmt.Fprintf(c.out, "%d. Room Type: %s, Price per Night: $%.2f\n", i+1, room.RoomType, room.PricePerNight)
		}
		choice, ok := c.promptChoice("Enter the number of the room you want to book: ", len(available))
		if !ok {
			return false
		}
		selected := available[choice-1]

		reservation, err := c.svc.MakeReservation(ctx, name, strconv.Itoa(partySize), checkIn, checkOut, selected)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintln(c.out, divider)
		fmt.Fprintln(c.out, "Reservation Details:")
		fmt.Fprint(c.out, c.svc.Receipt(reservation))
		fmt.Fprintln(c.out, "REFUND POLICY: Our hotel has a 70% refund policy in case of cancellation.")

		// The reservation is already persisted at this point; declining
		// only skips the confirmation receipt.
		confirm, ok := c.prompt("Confirm reservation (yes/no)? ")
		if !ok {
			return false
		}
		if strings.EqualFold(strings.TrimSpace(confirm), "yes") {
			fmt.Fprintln(c.out, "Reservation confirmed.")
			fmt.Fprint(c.out, c.svc.Receipt(reservation))
		} else {
			fmt.Fprintln(c.out, "Reservation canceled.")
		}
		c.log.WithField("reference", reservation.Reference).Debug("booking flow finished")
		return true
	}
}

// cancelRoom looks the reservation up first so the guest sees the
// receipt and the refund amount before confirming the cancellation.
func (c *Console) cancelRoom(ctx context.Context) bool {
	reference, ok := c.prompt("Enter the reference number of the reservation to cancel: ")
	if !ok {
		return false
	}
	reference = strings.TrimSpace(reference)

	reservation, err := c.svc.FindReservation(ctx, reference)
	if err != nil {
		if domain.HasKind(err, domain.KindNotFound) {
			fmt.Fprintln(c.out, "Reservation not found.")
		} else {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		return true
	}

	refund := c.svc.Refund(reservation.TotalPrice)
	fmt.Fprintln(c.out, "Reservation Details:")
	fmt.Fprint(c.out, c.svc.Receipt(reservation))
	fmt.Fprintf(c.out, "Refund Policy: You are eligible for a 70%% refund of the total price ($%.2f).\n", reservation.TotalPrice)

	confirm, ok := c.prompt("Do you want to cancel this reservation? (yes/no): ")
	if !ok {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), "yes") {
		fmt.Fprintln(c.out, "Cancellation canceled.")
		return true
	}

	if err := c.svc.CancelReservation(ctx, reference); err != nil {
		if domain.HasKind(err, domain.KindNotFound) {
			fmt.Fprintln(c.out, "Reservation not found.")
		} else {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		return true
	}
	fmt.Fprintf(c.out, "Cancellation successful for %s\n", reference)
	fmt.Fprintf(c.out, "Your refund amount is $%.2f\n", refund)
	fmt.Fprintln(c.out, "Hope we see you again!")
	return true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// promptValid re-asks until check accepts the input, printing the
// validation message each time it does not.
func (c *Console) promptValid(label string, check func(string) error) (string, bool) {
	for {
		value, ok := c.prompt(label)
		if !ok {
			return "", false
		}
		if err := check(value); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		return value, true
	}
}

func (c *Console) promptPartySize() (int, bool) {
	for {
		raw, ok := c.prompt("Enter the number of people staying (1-4): ")
		if !ok {
			return 0, false
		}
		n, err := validator.PartySize(raw)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			continue
		}
		return n, true
	}
}

func (c *Console) promptChoice(label string, max int) (int, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintln(c.out, "Error: Please enter a valid number.")
			continue
		}
		if n < 1 || n > max {
			fmt.Fprintln(c.out, "Invalid choice. Please enter a number corresponding to the room.")
			continue
		}
		return n, true
	}
}
