package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/internal/pkg/clock"
)

var (
	ErrInvalidStayRange = errors.New("check-in must be before check-out")
	ErrStayInPast       = errors.New("check-in cannot be in the past")
	ErrEmptyGuestName   = errors.New("guest name must not be empty")
	ErrGuestNameTooLong = errors.New("guest name too long")
	ErrInvalidPartySize = errors.New("party size must be at least 1")
)

const MaxGuestNameLength = 120

// StayPeriod is a half-open calendar-date interval [checkIn, checkOut).
// Checkout day is not occupied, so back-to-back stays on the same room never
// conflict.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayPeriod normalizes both dates to midnight UTC and enforces the
// ordering invariant. Past check-ins are rejected against the given "today".
func NewStayPeriod(checkIn, checkOut, today time.Time) (StayPeriod, error) {
	in := clock.Midnight(checkIn)
	out := clock.Midnight(checkOut)

	if !in.Before(out) {
		return StayPeriod{}, ErrInvalidStayRange
	}
	if in.Before(clock.Midnight(today)) {
		return StayPeriod{}, ErrStayInPast
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ReconstructStayPeriod rebuilds a period from stored rows without the
// past-date policy; history keeps its original dates.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{
		checkIn:  clock.Midnight(checkIn),
		checkOut: clock.Midnight(checkOut),
	}
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn) / (24 * time.Hour))
}

// Overlaps reports whether two half-open intervals intersect:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.DateOnly), p.checkOut.Format(time.DateOnly))
}

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return GuestName{}, ErrEmptyGuestName
	}
	if len(trimmed) > MaxGuestNameLength {
		return GuestName{}, ErrGuestNameTooLong
	}
	return GuestName{value: trimmed}, nil
}

func (n GuestName) String() string {
	return n.value
}

// Party is the guest count plus the children flag from the booking form.
type Party struct {
	persons  int
	children bool
}

func NewParty(persons int, children bool) (Party, error) {
	if persons < 1 {
		return Party{}, ErrInvalidPartySize
	}
	return Party{persons: persons, children: children}, nil
}

func (p Party) Persons() int {
	return p.persons
}

func (p Party) HasChildren() bool {
	return p.children
}
