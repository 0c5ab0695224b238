//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/domain/booking"
	domroom "frontdesk/internal/domain/room"
	"frontdesk/internal/pkg/clock"
	"frontdesk/tests/common/builder"
	"frontdesk/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailableRooms(t *testing.T) {
	pool, engine := setupEngine(t)
	ctx := context.Background()
	today := clock.Midnight(time.Now())

	require.NoError(t, dbtest.ResetDB(pool))

	// Inventory: three Normal rooms at different rates, one Suite, one room
	// under maintenance.
	dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(101).WithPriceCents(120_00))
	dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(102).WithPriceCents(90_00).WithACType(domroom.WithoutAC.String()))
	dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(103).WithPriceCents(200_00).WithCapacity(4))
	dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(201).AsSuite())
	dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(104).AsMaintenance())

	// Room 101 is taken for days 2..5.
	_, err := engine.Bookings.Create(ctx, builder.NewBookingBuilder().
		WithToday(today).WithRoomNumber(101).WithStayOffsets(2, 5).BuildCreateInput())
	require.NoError(t, err)

	normal := domroom.TypeNormal.String()

	t.Run("overlapping window hides the booked room", func(t *testing.T) {
		got, err := engine.Availability.FindAvailableRooms(ctx, normal, nil, nil, nil,
			today.AddDate(0, 0, 3), today.AddDate(0, 0, 6))
		require.NoError(t, err)

		var nums []int
		for _, v := range got {
			nums = append(nums, v.RoomNumber)
		}
		// Ordered by price, then room number; 104 is under maintenance.
		assert.Equal(t, []int{102, 103}, nums)
	})

	t.Run("back-to-back window includes the booked room", func(t *testing.T) {
		got, err := engine.Availability.FindAvailableRooms(ctx, normal, nil, nil, nil,
			today.AddDate(0, 0, 5), today.AddDate(0, 0, 7))
		require.NoError(t, err)

		var nums []int
		for _, v := range got {
			nums = append(nums, v.RoomNumber)
		}
		assert.Equal(t, []int{102, 101, 103}, nums)
	})

	t.Run("filters narrow the candidate set", func(t *testing.T) {
		ac := domroom.WithAC.String()
		minCap := 3
		maxPrice := int64(250_00)

		got, err := engine.Availability.FindAvailableRooms(ctx, normal, &ac, &minCap, &maxPrice,
			today.AddDate(0, 0, 10), today.AddDate(0, 0, 12))
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, 103, got[0].RoomNumber)
	})

	t.Run("suite search ignores normal rooms", func(t *testing.T) {
		got, err := engine.Availability.FindAvailableRooms(ctx, domroom.TypeSuite.String(), nil, nil, nil,
			today.AddDate(0, 0, 1), today.AddDate(0, 0, 3))
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, 201, got[0].RoomNumber)
	})

	t.Run("no match is an empty result", func(t *testing.T) {
		got, err := engine.Availability.FindAvailableRooms(ctx, domroom.TypePremium.String(), nil, nil, nil,
			today.AddDate(0, 0, 1), today.AddDate(0, 0, 3))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid window is rejected before touching storage", func(t *testing.T) {
		_, err := engine.Availability.FindAvailableRooms(ctx, normal, nil, nil, nil,
			today.AddDate(0, 0, 3), today.AddDate(0, 0, 3))
		require.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})
}
