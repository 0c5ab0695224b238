//go:build unit

package booking_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	return booking.ReconstructStayPeriod(checkIn, checkOut)
}

func TestNewStayPeriod(t *testing.T) {
	today := date(2026, 9, 1)

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		errIs    error
	}{
		{
			name:     "single night",
			checkIn:  date(2026, 9, 1),
			checkOut: date(2026, 9, 2),
		},
		{
			name:     "multi night",
			checkIn:  date(2026, 9, 10),
			checkOut: date(2026, 9, 14),
		},
		{
			name:     "check-in equals check-out",
			checkIn:  date(2026, 9, 5),
			checkOut: date(2026, 9, 5),
			errIs:    booking.ErrInvalidStayRange,
		},
		{
			name:     "check-out before check-in",
			checkIn:  date(2026, 9, 5),
			checkOut: date(2026, 9, 3),
			errIs:    booking.ErrInvalidStayRange,
		},
		{
			name:     "check-in in the past",
			checkIn:  date(2026, 8, 31),
			checkOut: date(2026, 9, 2),
			errIs:    booking.ErrStayInPast,
		},
		{
			name:     "check-in today is allowed",
			checkIn:  date(2026, 9, 1),
			checkOut: date(2026, 9, 3),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stay, err := booking.NewStayPeriod(c.checkIn, c.checkOut, today)

			if c.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, clock.Midnight(c.checkIn), stay.CheckIn())
			assert.Equal(t, clock.Midnight(c.checkOut), stay.CheckOut())
		})
	}

	t.Run("time of day is dropped", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(
			time.Date(2026, 9, 3, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
			today,
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 9, 3), stay.CheckIn())
		assert.Equal(t, date(2026, 9, 5), stay.CheckOut())
		assert.Equal(t, 2, stay.Nights())
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := mustStay(t, date(2026, 9, 10), date(2026, 9, 14))

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{
			name:     "identical window",
			checkIn:  date(2026, 9, 10),
			checkOut: date(2026, 9, 14),
			want:     true,
		},
		{
			name:     "contained window",
			checkIn:  date(2026, 9, 11),
			checkOut: date(2026, 9, 13),
			want:     true,
		},
		{
			name:     "containing window",
			checkIn:  date(2026, 9, 8),
			checkOut: date(2026, 9, 20),
			want:     true,
		},
		{
			name:     "overlapping start",
			checkIn:  date(2026, 9, 8),
			checkOut: date(2026, 9, 11),
			want:     true,
		},
		{
			name:     "overlapping end",
			checkIn:  date(2026, 9, 13),
			checkOut: date(2026, 9, 16),
			want:     true,
		},
		{
			name:     "single shared night",
			checkIn:  date(2026, 9, 13),
			checkOut: date(2026, 9, 14),
			want:     true,
		},
		{
			name:     "back-to-back after checkout",
			checkIn:  date(2026, 9, 14),
			checkOut: date(2026, 9, 16),
			want:     false,
		},
		{
			name:     "back-to-back before checkin",
			checkIn:  date(2026, 9, 8),
			checkOut: date(2026, 9, 10),
			want:     false,
		},
		{
			name:     "fully before",
			checkIn:  date(2026, 9, 1),
			checkOut: date(2026, 9, 5),
			want:     false,
		},
		{
			name:     "fully after",
			checkIn:  date(2026, 9, 20),
			checkOut: date(2026, 9, 25),
			want:     false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other := mustStay(t, c.checkIn, c.checkOut)
			assert.Equal(t, c.want, base.Overlaps(other))
			// Overlap is symmetric.
			assert.Equal(t, c.want, other.Overlaps(base))
		})
	}
}

func TestGuestName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := booking.NewGuestName("  Grace Hopper  ")
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", name.String())
	})

	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "single character", value: "X"},
		{name: "maximum length", value: pad('a', booking.MaxGuestNameLength)},
		{name: "empty", value: "", errIs: booking.ErrEmptyGuestName},
		{name: "whitespace only", value: "   ", errIs: booking.ErrEmptyGuestName},
		{name: "too long", value: pad('a', booking.MaxGuestNameLength+1), errIs: booking.ErrGuestNameTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.NewGuestName(c.value)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParty(t *testing.T) {
	cases := []struct {
		name     string
		persons  int
		children bool
		errIs    error
	}{
		{name: "single adult", persons: 1},
		{name: "family with children", persons: 3, children: true},
		{name: "zero persons", persons: 0, errIs: booking.ErrInvalidPartySize},
		{name: "negative persons", persons: -2, errIs: booking.ErrInvalidPartySize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			party, err := booking.NewParty(c.persons, c.children)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.persons, party.Persons())
			assert.Equal(t, c.children, party.HasChildren())
		})
	}
}

func pad(b byte, n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = b
	}
	return string(s)
}
