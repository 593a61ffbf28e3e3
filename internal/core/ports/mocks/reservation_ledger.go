package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
)

// ReservationLedger is a testify mock for ports.ReservationLedger.
type ReservationLedger struct {
	mock.Mock
}

func (m *ReservationLedger) ReadAll(ctx context.Context) ([]domain.Reservation, error) {
	ret := m.Called(ctx)

	var r0 []domain.Reservation
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Reservation); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}

	return r0, ret.Error(1)
}

func (m *ReservationLedger) Append(ctx context.Context, reservations []domain.Reservation) error {
	ret := m.Called(ctx, reservations)
	return ret.Error(0)
}

func (m *ReservationLedger) Cancel(ctx context.Context, reference string) error {
	ret := m.Called(ctx, reference)
	return ret.Error(0)
}

// NewReservationLedger creates a new mock wired to the test's lifecycle:
// expectations are asserted automatically during cleanup.
func NewReservationLedger(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationLedger {
	m := &ReservationLedger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
