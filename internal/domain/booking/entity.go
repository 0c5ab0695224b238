package booking

import (
	"errors"
	"time"
)

var (
	ErrCapacityExceeded = errors.New("party exceeds room capacity")
)

type Booking struct {
	id         int64
	roomNumber int
	guest      GuestName
	stay       StayPeriod
	party      Party
	status     Status
	createdAt  time.Time
}

// ReconstructBooking rebuilds a booking from a stored row.
func ReconstructBooking(
	id int64,
	roomNumber int,
	guest GuestName,
	stay StayPeriod,
	party Party,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		roomNumber: roomNumber,
		guest:      guest,
		stay:       stay,
		party:      party,
		status:     status,
		createdAt:  createdAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) RoomNumber() int      { return b.roomNumber }
func (b *Booking) Guest() GuestName     { return b.guest }
func (b *Booking) Stay() StayPeriod     { return b.stay }
func (b *Booking) Party() Party         { return b.party }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
