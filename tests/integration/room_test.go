//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/usecase/commands"
	"frontdesk/tests/common/builder"
	"frontdesk/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoom(t *testing.T) {
	pool, engine := setupEngine(t)
	ctx := context.Background()

	t.Run("new room starts available", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))

		b := builder.NewRoomBuilder().WithNumber(501).AsSuite()
		view, err := engine.Rooms.Register(ctx, b.BuildRegisterInput())
		require.NoError(t, err)

		assert.Equal(t, 501, view.RoomNumber)
		assert.Equal(t, "Suite", view.RoomType)
		assert.Equal(t, int64(450_00), view.PriceCents)
		assert.Equal(t, "available", view.Status)
		assert.False(t, view.CreatedAt.IsZero())
	})

	t.Run("duplicate room number", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))
		b := builder.NewRoomBuilder().WithNumber(502)

		_, err := engine.Rooms.Register(ctx, b.BuildRegisterInput())
		require.NoError(t, err)

		_, err = engine.Rooms.Register(ctx, b.BuildRegisterInput())
		require.ErrorIs(t, err, commands.ErrDuplicateRoom)
	})

	t.Run("list is ordered by room number", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))
		for _, n := range []int{510, 503, 507} {
			_, err := engine.Rooms.Register(ctx, builder.NewRoomBuilder().WithNumber(n).BuildRegisterInput())
			require.NoError(t, err)
		}

		rooms, err := engine.RoomQueries.List(ctx)
		require.NoError(t, err)
		require.Len(t, rooms, 3)
		assert.Equal(t, 503, rooms[0].RoomNumber)
		assert.Equal(t, 507, rooms[1].RoomNumber)
		assert.Equal(t, 510, rooms[2].RoomNumber)
	})
}

func TestSetMaintenance(t *testing.T) {
	pool, engine := setupEngine(t)
	ctx := context.Background()
	today := clock.Midnight(time.Now())

	t.Run("maintenance round trip", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))
		dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(601))

		require.NoError(t, engine.Rooms.SetMaintenance(ctx, 601, true))
		assert.Equal(t, "maintenance", dbtest.RoomStatus(t, pool, 601))

		require.NoError(t, engine.Rooms.SetMaintenance(ctx, 601, false))
		assert.Equal(t, "available", dbtest.RoomStatus(t, pool, 601))
	})

	t.Run("occupied room cannot enter maintenance", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))
		dbtest.CreateTestRoom(t, pool, builder.NewRoomBuilder().WithNumber(602))

		_, err := engine.Bookings.Create(ctx, builder.NewBookingBuilder().
			WithToday(today).WithRoomNumber(602).BuildCreateInput())
		require.NoError(t, err)

		require.ErrorIs(t, engine.Rooms.SetMaintenance(ctx, 602, true), commands.ErrRoomOccupied)
		assert.Equal(t, "booked", dbtest.RoomStatus(t, pool, 602))
	})

	t.Run("clearing maintenance on an unknown room", func(t *testing.T) {
		require.NoError(t, dbtest.ResetDB(pool))
		require.ErrorIs(t, engine.Rooms.SetMaintenance(ctx, 699, false), commands.ErrRoomNotFound)
	})
}
