//go:build unit || integration

package builder

import (
	"time"

	dombooking "frontdesk/internal/domain/booking"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/shared"
)

// BookingBuilder defaults to a valid two-night stay starting "today" as seen
// by its frozen clock, so tests stay deterministic across wall-clock days.
type BookingBuilder struct {
	RoomNumber   int
	RoomCapacity int
	GuestName    string
	Persons      int
	Children     bool
	CheckIn      time.Time
	CheckOut     time.Time
	Today        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	today := clock.Midnight(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return &BookingBuilder{
		RoomNumber:   101,
		RoomCapacity: 2,
		GuestName:    "Ada Lovelace",
		Persons:      2,
		Children:     false,
		CheckIn:      today,
		CheckOut:     today.AddDate(0, 0, 2),
		Today:        today,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	factory := dombooking.NewFactory(clock.NewMockClock(b.Today))
	return factory.NewBooking(
		dombooking.RoomSpec{Number: b.RoomNumber, Capacity: b.RoomCapacity},
		b.GuestName,
		b.Persons,
		b.Children,
		b.CheckIn,
		b.CheckOut,
	)
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomNumber: b.RoomNumber,
		GuestName:  b.GuestName,
		NumPersons: b.Persons,
		Children:   b.Children,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}

// BuildSnapshotRoom is the room row the booking transaction would lock: an
// available room matching the builder's number and capacity.
func (b *BookingBuilder) BuildSnapshotRoom() *shared.RoomSnapshot {
	return NewRoomBuilder().
		WithNumber(b.RoomNumber).
		WithCapacity(b.RoomCapacity).
		BuildSnapshot()
}

func (b *BookingBuilder) BuildSnapshot(id int64, status string) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         id,
		RoomNumber: b.RoomNumber,
		Status:     status,
		CheckIn:    clock.Midnight(b.CheckIn),
		CheckOut:   clock.Midnight(b.CheckOut),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomNumber(number int) *BookingBuilder {
	b.RoomNumber = number
	return b
}

func (b *BookingBuilder) WithRoomCapacity(capacity int) *BookingBuilder {
	b.RoomCapacity = capacity
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithPersons(persons int) *BookingBuilder {
	b.Persons = persons
	return b
}

func (b *BookingBuilder) WithChildren(children bool) *BookingBuilder {
	b.Children = children
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

// WithToday re-anchors the builder on a different "today" and repositions the
// default stay with it. Integration tests anchor on the real clock.
func (b *BookingBuilder) WithToday(today time.Time) *BookingBuilder {
	b.Today = clock.Midnight(today)
	return b.WithStayOffsets(0, 2)
}

// WithStayOffsets positions the stay relative to the builder's "today":
// check-in today+in days, check-out today+out days.
func (b *BookingBuilder) WithStayOffsets(in, out int) *BookingBuilder {
	b.CheckIn = b.Today.AddDate(0, 0, in)
	b.CheckOut = b.Today.AddDate(0, 0, out)
	return b
}
