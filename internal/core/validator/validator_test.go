package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/validator"
)

func TestPartySize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "one person", raw: "1", want: 1},
		{name: "four people", raw: "4", want: 4},
		{name: "surrounding whitespace", raw: " 2 ", want: 2},
		{name: "zero", raw: "0", wantErr: true},
		{name: "five", raw: "5", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "not a number", raw: "two", wantErr: true},
		{name: "decimal", raw: "2.5", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.PartySize(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.HasKind(err, domain.KindValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartySizeNotANumberMessage(t *testing.T) {
	_, err := validator.PartySize("abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid number")

	_, err = validator.PartySize("7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 4")
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid date", raw: "01/01/2025"},
		{name: "end of year", raw: "31/12/2030"},
		{name: "leap day", raw: "29/02/2028"},
		{name: "invalid calendar date", raw: "31/02/2025", wantErr: true},
		{name: "leap day off year", raw: "29/02/2025", wantErr: true},
		{name: "day not zero padded", raw: "1/01/2025", wantErr: true},
		{name: "month not zero padded", raw: "01/1/2025", wantErr: true},
		{name: "two digit year", raw: "01/01/25", wantErr: true},
		{name: "iso order", raw: "2025/01/01", wantErr: true},
		{name: "dashes", raw: "01-01-2025", wantErr: true},
		{name: "trailing text", raw: "01/01/2025x", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.Date(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.HasKind(err, domain.KindValidation))
				assert.Contains(t, err.Error(), "dd/mm/yyyy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, got.Format(domain.DateLayout))
		})
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{name: "one night", checkIn: "01/01/2025", checkOut: "02/01/2025"},
		{name: "across months", checkIn: "28/02/2025", checkOut: "03/03/2025"},
		{name: "equal dates", checkIn: "05/01/2025", checkOut: "05/01/2025", wantErr: true},
		{name: "check-out before check-in", checkIn: "05/01/2025", checkOut: "03/01/2025", wantErr: true},
		{name: "bad check-in format", checkIn: "5/1/2025", checkOut: "06/01/2025", wantErr: true},
		{name: "bad check-out format", checkIn: "05/01/2025", checkOut: "6/1/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.DateRange(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.HasKind(err, domain.KindValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckInNotPast(t *testing.T) {
	today := time.Now().Format(domain.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)

	assert.NoError(t, validator.CheckInNotPast(today))
	assert.NoError(t, validator.CheckInNotPast(tomorrow))

	err := validator.CheckInNotPast(yesterday)
	require.Error(t, err)
	assert.True(t, domain.HasKind(err, domain.KindValidation))
	assert.Contains(t, err.Error(), "past")

	err = validator.CheckInNotPast("not-a-date")
	require.Error(t, err)
	assert.True(t, domain.HasKind(err, domain.KindValidation))
}

func TestCustomerName(t *testing.T) {
	assert.NoError(t, validator.CustomerName("Aakriti"))
	assert.NoError(t, validator.CustomerName("  Jo  "))

	for _, name := range []string{"", "   ", "\t\n"} {
		err := validator.CustomerName(name)
		require.Error(t, err)
		assert.True(t, domain.HasKind(err, domain.KindValidation))
		assert.Contains(t, err.Error(), "empty")
	}
}
