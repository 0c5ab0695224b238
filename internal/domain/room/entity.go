package room

import (
	"errors"
	"time"
)

var (
	ErrInvalidNumber = errors.New("room number must be positive")
	ErrUnknownType   = errors.New("unknown room type")
	ErrUnknownACType = errors.New("unknown ac type")
	ErrUnknownStatus = errors.New("unknown room status")
)

type Room struct {
	number    int
	roomType  Type
	acType    ACType
	rate      Rate
	capacity  Capacity
	wifi      bool
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewRoom validates an administrative room registration. Status always starts
// as available; maintenance is a later operator action.
func NewRoom(number int, roomType Type, acType ACType, rateCents int64, capacity int, wifi bool) (*Room, error) {
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	if !roomType.IsValid() {
		return nil, ErrUnknownType
	}
	if !acType.IsValid() {
		return nil, ErrUnknownACType
	}

	rate, err := NewRate(rateCents)
	if err != nil {
		return nil, err
	}
	cap, err := NewCapacity(capacity)
	if err != nil {
		return nil, err
	}

	return &Room{
		number:   number,
		roomType: roomType,
		acType:   acType,
		rate:     rate,
		capacity: cap,
		wifi:     wifi,
		status:   StatusAvailable,
	}, nil
}

func ReconstructRoom(
	number int,
	roomType Type,
	acType ACType,
	rate Rate,
	capacity Capacity,
	wifi bool,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		number:    number,
		roomType:  roomType,
		acType:    acType,
		rate:      rate,
		capacity:  capacity,
		wifi:      wifi,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) UnderMaintenance() bool {
	return r.status == StatusMaintenance
}

func (r *Room) Number() int          { return r.number }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) AC() ACType           { return r.acType }
func (r *Room) Rate() Rate           { return r.rate }
func (r *Room) Capacity() Capacity   { return r.capacity }
func (r *Room) Wifi() bool           { return r.wifi }
func (r *Room) Status() Status       { return r.status }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
