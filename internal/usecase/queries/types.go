package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	RoomNumber int       `json:"room_number"`
	RoomType   string    `json:"room_type"`
	ACType     string    `json:"ac_type"`
	PriceCents int64     `json:"price_cents"`
	Capacity   int       `json:"capacity"`
	Wifi       bool      `json:"wifi"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingView struct {
	BookingID  int64     `json:"booking_id"`
	RoomNumber int       `json:"room_number"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Nights     int       `json:"nights"`
	NumPersons int       `json:"num_persons"`
	Children   bool      `json:"children"`
	Status     string    `json:"status"`
	// TotalCents is nights times the room's nightly rate at read time.
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// GuestStayView backs the active-customers table: one row per active booking
// with the guest and the occupied room.
type GuestStayView struct {
	GuestName  string    `json:"guest_name"`
	RoomNumber int       `json:"room_number"`
	PriceCents int64     `json:"price_cents"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Status     string    `json:"status"`
}

type OperatorView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AvailabilityCriteria filters the availability search. RoomType and the stay
// window are required; the rest narrow the candidate set.
type AvailabilityCriteria struct {
	RoomType      string
	ACType        *string
	MinCapacity   *int
	MaxPriceCents *int64
	CheckIn       time.Time
	CheckOut      time.Time
}
