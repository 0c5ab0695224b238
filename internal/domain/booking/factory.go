package booking

import (
	"time"

	"frontdesk/internal/pkg/clock"
)

// RoomSpec is the slice of room state the factory needs; the command layer
// reads it inside the booking transaction so capacity is checked against
// committed state.
type RoomSpec struct {
	Number   int
	Capacity int
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// NewBooking builds the active booking to insert. Validation order matches
// the check ladder the front desk expects: guest name, party vs. capacity,
// then the stay window.
func (f *Factory) NewBooking(
	room RoomSpec,
	guestName string,
	persons int,
	children bool,
	checkIn, checkOut time.Time,
) (*Booking, error) {
	guest, err := NewGuestName(guestName)
	if err != nil {
		return nil, err
	}

	party, err := NewParty(persons, children)
	if err != nil {
		return nil, err
	}
	if party.Persons() > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	stay, err := NewStayPeriod(checkIn, checkOut, f.Clock.Today())
	if err != nil {
		return nil, err
	}

	return &Booking{
		roomNumber: room.Number,
		guest:      guest,
		stay:       stay,
		party:      party,
		status:     StatusActive,
	}, nil
}
