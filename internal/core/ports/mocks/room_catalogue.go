package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
)

// RoomCatalogue is a testify mock for ports.RoomCatalogue.
type RoomCatalogue struct {
	mock.Mock
}

func (m *RoomCatalogue) Rooms() []domain.RoomType {
	ret := m.Called()

	var r0 []domain.RoomType
	if rf, ok := ret.Get(0).(func() []domain.RoomType); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RoomType)
	}

	return r0
}

// NewRoomCatalogue creates a new mock wired to the test's lifecycle:
// expectations are asserted automatically during cleanup.
func NewRoomCatalogue(t interface {
	mock.TestingT
	Cleanup(func())
}) *RoomCatalogue {
	m := &RoomCatalogue{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
