package queries

import (
	"context"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/pkg/clock"
)

// AvailabilityReadStore answers the candidate-room search: rooms matching the
// filters, not under maintenance, with no active booking overlapping the
// half-open window. Implementations must order by price then room number.
type AvailabilityReadStore interface {
	FindAvailableRooms(ctx context.Context, criteria AvailabilityCriteria) ([]*RoomView, error)
}

type AvailabilityQueries interface {
	// FindAvailableRooms validates the window and returns candidates. An
	// empty result is not an error.
	FindAvailableRooms(ctx context.Context, roomType string, acType *string, minCapacity *int, maxPriceCents *int64, checkIn, checkOut time.Time) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clock}
}

func (q *availabilityQueriesImpl) FindAvailableRooms(
	ctx context.Context,
	roomType string,
	acType *string,
	minCapacity *int,
	maxPriceCents *int64,
	checkIn, checkOut time.Time,
) ([]*RoomView, error) {
	if !room.Type(roomType).IsValid() {
		return nil, room.ErrUnknownType
	}
	if acType != nil && !room.ACType(*acType).IsValid() {
		return nil, room.ErrUnknownACType
	}

	// Same range policy as booking creation: half-open window, no past
	// check-in dates.
	stay, err := booking.NewStayPeriod(checkIn, checkOut, q.clock.Today())
	if err != nil {
		return nil, err
	}

	return q.store.FindAvailableRooms(ctx, AvailabilityCriteria{
		RoomType:      roomType,
		ACType:        acType,
		MinCapacity:   minCapacity,
		MaxPriceCents: maxPriceCents,
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
	})
}
