// Package validator holds the stateless input rules shared by every
// front end. Each rule either accepts the raw user input or returns a
// validation-kinded error with the exact message to show the user; no
// rule ever corrects input silently.
package validator

import (
	"strconv"
	"strings"
	"time"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
)

const (
	minPartySize = 1
	maxPartySize = 4
)

// PartySize parses the raw party size and checks it is between 1 and 4.
func PartySize(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewValidationError("Invalid input. Please enter a valid number.")
	}
	if n < minPartySize || n > maxPartySize {
		return 0, domain.NewValidationError("Number of people must be between 1 and 4.")
	}
	return n, nil
}

// Date parses a strict dd/mm/yyyy date: zero-padded day and month,
// four-digit year, and a real calendar date (31/02 is rejected).
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("Invalid date format. Please use the format dd/mm/yyyy.")
	}
	return t, nil
}

// DateRange checks both dates are well formed and that check-out falls
// strictly after check-in. Same-day check-out is rejected.
func DateRange(checkIn, checkOut string) error {
	in, err := Date(checkIn)
	if err != nil {
		return err
	}
	out, err := Date(checkOut)
	if err != nil {
		return err
	}
	if !out.After(in) {
		return domain.NewValidationError("Check-out date must be after the check-in date.")
	}
	return nil
}

// CheckInNotPast rejects a check-in date earlier than today. The
// comparison is date-only; time of day never matters.
func CheckInNotPast(checkIn string) error {
	in, err := Date(checkIn)
	if err != nil {
		return err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(today) {
		return domain.NewValidationError("Check-in date cannot be in the past.")
	}
	return nil
}

// CustomerName rejects names that are empty after trimming whitespace.
func CustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("Name cannot be empty.")
	}
	return nil
}
