package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"
	"frontdesk/internal/usecase/shared"
)

var (
	ErrValidation              = errs.New("validation error")
	ErrCapacityExceeded        = errs.New("capacity exceeded")
	ErrInvalidStayRange        = errs.New("invalid stay range")
	ErrStayInPast              = errs.New("stay starts in the past")
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room unavailable")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingAlreadyCancelled = errs.New("booking already cancelled")
	ErrBookingNotActive        = errs.New("booking not active")
	ErrStorageFailure          = errs.New("storage failure")
)

type CreateBookingInput struct {
	RoomNumber int
	GuestName  string
	NumPersons int
	Children   bool
	CheckIn    time.Time
	CheckOut   time.Time
}

type BookingCommands interface {
	// Create books the room for the window or fails with one precondition
	// error; the insert and the room-status flip commit together.
	Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error)
	// Cancel deactivates the booking and frees the room when no other
	// active booking remains on it.
	Cancel(ctx context.Context, bookingID int64) error
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	factory      *booking.Factory
	bookingReads queries.BookingReadStore
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingReads queries.BookingReadStore,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		factory:      factory,
		bookingReads: bookingReads,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error) {
	// Pure input validation happens before touching storage; the capacity,
	// maintenance and overlap checks need committed room state and run
	// inside the transaction below.
	if _, err := booking.NewGuestName(in.GuestName); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if _, err := booking.NewParty(in.NumPersons, in.Children); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var bookingID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		rm, err := reads.RoomByNumberForUpdate(ctx, in.RoomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		entity, err := c.factory.NewBooking(
			booking.RoomSpec{Number: rm.Number, Capacity: rm.Capacity},
			in.GuestName,
			in.NumPersons,
			in.Children,
			in.CheckIn,
			in.CheckOut,
		)
		if err != nil {
			return mapBookingDomainErr(err)
		}

		if rm.Status == room.StatusMaintenance.String() {
			return ErrRoomUnavailable
		}

		overlaps, err := reads.HasOverlappingActiveBooking(ctx, rm.Number, entity.Stay().CheckIn(), entity.Stay().CheckOut())
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if overlaps {
			return ErrBookingConflict
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			// The exclusion constraint closes the window between the
			// overlap check and the insert for racers outside our
			// room-row lock.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), rm.Number, room.StatusBooked); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view including the computed total.
	view, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		slog.Error("booking committed but view read failed", "booking_id", bookingID, "error", err.Error())
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		b, err := reads.BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		switch booking.Status(b.Status) {
		case booking.StatusActive:
		case booking.StatusCancelled:
			return ErrBookingAlreadyCancelled
		default:
			return ErrBookingNotActive
		}

		// Lock the room row so the status recompute cannot interleave
		// with a concurrent create on the same room.
		rm, err := reads.RoomByNumberForUpdate(ctx, b.RoomNumber)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusCancelled); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		remaining, err := reads.CountActiveBookings(ctx, b.RoomNumber)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		// Operator-set maintenance survives cancellations; otherwise the
		// status is derived from the remaining active set.
		if rm.Status == room.StatusMaintenance.String() {
			return nil
		}
		next := room.StatusAvailable
		if remaining > 0 {
			next = room.StatusBooked
		}
		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), b.RoomNumber, next); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}

func mapBookingDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrCapacityExceeded):
		return errs.Mark(err, ErrCapacityExceeded)
	case errors.Is(err, booking.ErrInvalidStayRange):
		return errs.Mark(err, ErrInvalidStayRange)
	case errors.Is(err, booking.ErrStayInPast):
		return errs.Mark(err, ErrStayInPast)
	default:
		return errs.Mark(err, ErrValidation)
	}
}
