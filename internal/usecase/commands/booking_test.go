//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"
	queriesmock "frontdesk/tests/mock/queries"
	"frontdesk/internal/usecase/shared"
	sharedmock "frontdesk/tests/mock/shared"
	"frontdesk/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	rooms    *sharedmock.MockRoomRepository
	bookings *sharedmock.MockBookingRepository
	store    *queriesmock.MockBookingReadStore
	cmd      commands.BookingCommands
}

// newBookingFixture wires a pass-through unit of work: Within simply invokes
// the callback against the mocked transaction.
func newBookingFixture(t *testing.T, today builder.BookingBuilder) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		rooms:    sharedmock.NewMockRoomRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		store:    queriesmock.NewMockBookingReadStore(ctrl),
	}

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).
		AnyTimes()

	factory := booking.NewFactory(clock.NewMockClock(today.Today))
	f.cmd = commands.NewBookingCommands(f.uow, factory, f.store)
	return f
}

func TestBookingCommandsCreate(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)

	t.Run("books the room and returns the stored view", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingFixture(t, *b)

		f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(b.BuildSnapshotRoom(), nil)
		f.reads.EXPECT().
			HasOverlappingActiveBooking(gomock.Any(), b.RoomNumber, clock.Midnight(b.CheckIn), clock.Midnight(b.CheckOut)).
			Return(false, nil)
		f.bookings.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entity *booking.Booking) (int64, error) {
				assert.Equal(t, b.RoomNumber, entity.RoomNumber())
				assert.Equal(t, booking.StatusActive, entity.Status())
				return 42, nil
			})
		f.rooms.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b.RoomNumber, room.StatusBooked).Return(nil)

		want := &queries.BookingView{BookingID: 42, RoomNumber: b.RoomNumber, GuestName: b.GuestName, Nights: 2, TotalCents: 240_00}
		f.store.EXPECT().FindByID(gomock.Any(), int64(42)).Return(want, nil)

		view, err := f.cmd.Create(ctx, b.BuildCreateInput())
		require.NoError(t, err)
		assert.Equal(t, want, view)
	})

	t.Run("precondition failures", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*builder.BookingBuilder)
			arrange func(*bookingFixture, *builder.BookingBuilder)
			errIs   error
		}{
			{
				name:    "empty guest name fails before storage",
				mutate:  func(b *builder.BookingBuilder) { b.WithGuestName("  ") },
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {},
				errIs:   commands.ErrValidation,
			},
			{
				name:    "zero persons fails before storage",
				mutate:  func(b *builder.BookingBuilder) { b.WithPersons(0) },
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {},
				errIs:   commands.ErrValidation,
			},
			{
				name:   "unknown room",
				mutate: func(b *builder.BookingBuilder) {},
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(nil, notFound)
				},
				errIs: commands.ErrRoomNotFound,
			},
			{
				name:   "party exceeds capacity",
				mutate: func(b *builder.BookingBuilder) { b.WithPersons(3) },
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(b.BuildSnapshotRoom(), nil)
				},
				errIs: commands.ErrCapacityExceeded,
			},
			{
				name:   "zero-night stay",
				mutate: func(b *builder.BookingBuilder) { b.WithStayOffsets(3, 3) },
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(b.BuildSnapshotRoom(), nil)
				},
				errIs: commands.ErrInvalidStayRange,
			},
			{
				name:   "stay starts in the past",
				mutate: func(b *builder.BookingBuilder) { b.WithStayOffsets(-2, 1) },
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(b.BuildSnapshotRoom(), nil)
				},
				errIs: commands.ErrStayInPast,
			},
			{
				name:   "room under maintenance",
				mutate: func(b *builder.BookingBuilder) {},
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					snap := b.BuildSnapshotRoom()
					snap.Status = room.StatusMaintenance.String()
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(snap, nil)
				},
				errIs: commands.ErrRoomUnavailable,
			},
			{
				name:   "overlapping active booking",
				mutate: func(b *builder.BookingBuilder) {},
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(b.BuildSnapshotRoom(), nil)
					f.reads.EXPECT().
						HasOverlappingActiveBooking(gomock.Any(), b.RoomNumber, gomock.Any(), gomock.Any()).
						Return(true, nil)
				},
				errIs: commands.ErrBookingConflict,
			},
			{
				name:   "exclusion constraint fires on insert",
				mutate: func(b *builder.BookingBuilder) {},
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(b.BuildSnapshotRoom(), nil)
					f.reads.EXPECT().
						HasOverlappingActiveBooking(gomock.Any(), b.RoomNumber, gomock.Any(), gomock.Any()).
						Return(false, nil)
					f.bookings.EXPECT().
						Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(int64(0), infra.WrapRepoErr("insert booking", errors.New("overlapping stay"), infra.KindConflict))
				},
				errIs: commands.ErrBookingConflict,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().With(c.mutate)
				f := newBookingFixture(t, *b)
				c.arrange(f, b)

				view, err := f.cmd.Create(ctx, b.BuildCreateInput())
				require.Nil(t, view)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestBookingCommandsCancel(t *testing.T) {
	ctx := context.Background()
	notFound := infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)

	t.Run("frees the room when last active booking goes", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingFixture(t, *b)

		f.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), int64(7)).Return(b.BuildSnapshot(7, booking.StatusActive.String()), nil)
		roomSnap := b.BuildSnapshotRoom()
		roomSnap.Status = room.StatusBooked.String()
		f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(roomSnap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(7), booking.StatusCancelled).Return(nil)
		f.reads.EXPECT().CountActiveBookings(gomock.Any(), b.RoomNumber).Return(int64(0), nil)
		f.rooms.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b.RoomNumber, room.StatusAvailable).Return(nil)

		require.NoError(t, f.cmd.Cancel(ctx, 7))
	})

	t.Run("keeps the room booked while other stays remain", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingFixture(t, *b)

		f.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), int64(7)).Return(b.BuildSnapshot(7, booking.StatusActive.String()), nil)
		roomSnap := b.BuildSnapshotRoom()
		roomSnap.Status = room.StatusBooked.String()
		f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(roomSnap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(7), booking.StatusCancelled).Return(nil)
		f.reads.EXPECT().CountActiveBookings(gomock.Any(), b.RoomNumber).Return(int64(2), nil)
		f.rooms.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b.RoomNumber, room.StatusBooked).Return(nil)

		require.NoError(t, f.cmd.Cancel(ctx, 7))
	})

	t.Run("maintenance survives cancellation", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newBookingFixture(t, *b)

		f.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), int64(7)).Return(b.BuildSnapshot(7, booking.StatusActive.String()), nil)
		roomSnap := b.BuildSnapshotRoom()
		roomSnap.Status = room.StatusMaintenance.String()
		f.reads.EXPECT().RoomByNumberForUpdate(gomock.Any(), b.RoomNumber).Return(roomSnap, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(7), booking.StatusCancelled).Return(nil)
		f.reads.EXPECT().CountActiveBookings(gomock.Any(), b.RoomNumber).Return(int64(0), nil)
		// No room status update expected.

		require.NoError(t, f.cmd.Cancel(ctx, 7))
	})

	t.Run("status failures", func(t *testing.T) {
		cases := []struct {
			name    string
			arrange func(*bookingFixture, *builder.BookingBuilder)
			errIs   error
		}{
			{
				name: "unknown booking",
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), int64(7)).Return(nil, notFound)
				},
				errIs: commands.ErrBookingNotFound,
			},
			{
				name: "already cancelled",
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), int64(7)).
						Return(b.BuildSnapshot(7, booking.StatusCancelled.String()), nil)
				},
				errIs: commands.ErrBookingAlreadyCancelled,
			},
			{
				name: "completed stay",
				arrange: func(f *bookingFixture, b *builder.BookingBuilder) {
					f.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), int64(7)).
						Return(b.BuildSnapshot(7, booking.StatusCompleted.String()), nil)
				},
				errIs: commands.ErrBookingNotActive,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewBookingBuilder()
				f := newBookingFixture(t, *b)
				c.arrange(f, b)

				require.ErrorIs(t, f.cmd.Cancel(ctx, 7), c.errIs)
			})
		}
	})
}
