package room

import "errors"

var (
	ErrNonPositiveRate = errors.New("nightly rate must be positive")
	ErrInvalidCapacity = errors.New("capacity must be between 1 and 4")
)

const (
	MinCapacity = 1
	MaxCapacity = 4
)

// Rate is a nightly price in integer cents. Stored and computed without
// floating point.
type Rate struct {
	cents int64
}

func NewRate(cents int64) (Rate, error) {
	if cents <= 0 {
		return Rate{}, ErrNonPositiveRate
	}
	return Rate{cents: cents}, nil
}

func (r Rate) Cents() int64 {
	return r.cents
}

// ForNights is the total price of a stay of the given length.
func (r Rate) ForNights(nights int) int64 {
	return r.cents * int64(nights)
}

type Capacity struct {
	value int
}

func NewCapacity(value int) (Capacity, error) {
	if value < MinCapacity || value > MaxCapacity {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: value}, nil
}

func (c Capacity) Value() int {
	return c.value
}

func (c Capacity) Fits(persons int) bool {
	return persons <= c.value
}
