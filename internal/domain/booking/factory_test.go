//go:build unit

package booking_test

import (
	"testing"

	"frontdesk/internal/domain/booking"
	"frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factoryCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestFactoryNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, 101, actual.RoomNumber())
		assert.Equal(t, "Ada Lovelace", actual.Guest().String())
		assert.Equal(t, 2, actual.Party().Persons())
		assert.Equal(t, 2, actual.Stay().Nights())
		assert.Equal(t, booking.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsCancelled())
	})

	t.Run("guest validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "empty guest name",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestName("") },
				errIs:  booking.ErrEmptyGuestName,
			},
			{
				name:   "whitespace guest name",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestName("   ") },
				errIs:  booking.ErrEmptyGuestName,
			},
		})
	})

	t.Run("party vs capacity", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "party fills the room",
				mutate: func(b *builder.BookingBuilder) { b.WithRoomCapacity(2).WithPersons(2) },
			},
			{
				name:   "party exceeds capacity",
				mutate: func(b *builder.BookingBuilder) { b.WithRoomCapacity(2).WithPersons(3) },
				errIs:  booking.ErrCapacityExceeded,
			},
			{
				name:   "zero persons rejected before capacity",
				mutate: func(b *builder.BookingBuilder) { b.WithPersons(0) },
				errIs:  booking.ErrInvalidPartySize,
			},
		})
	})

	t.Run("stay validation", func(t *testing.T) {
		runFactoryCases(t, []factoryCase{
			{
				name:   "check-in today",
				mutate: func(b *builder.BookingBuilder) { b.WithStayOffsets(0, 1) },
			},
			{
				name:   "zero-night stay",
				mutate: func(b *builder.BookingBuilder) { b.WithStayOffsets(3, 3) },
				errIs:  booking.ErrInvalidStayRange,
			},
			{
				name:   "inverted stay",
				mutate: func(b *builder.BookingBuilder) { b.WithStayOffsets(5, 3) },
				errIs:  booking.ErrInvalidStayRange,
			},
			{
				name:   "check-in yesterday",
				mutate: func(b *builder.BookingBuilder) { b.WithStayOffsets(-1, 1) },
				errIs:  booking.ErrStayInPast,
			},
		})
	})
}

func runFactoryCases(t *testing.T, cases []factoryCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
