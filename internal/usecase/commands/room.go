package commands

import (
	"context"

	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"
	"frontdesk/internal/usecase/shared"
)

var (
	ErrDuplicateRoom = errs.New("duplicate room")
	ErrRoomOccupied  = errs.New("room has active bookings")
)

type RegisterRoomInput struct {
	RoomNumber int
	RoomType   string
	ACType     string
	PriceCents int64
	Capacity   int
	Wifi       bool
}

type RoomCommands interface {
	// Register adds a room to the inventory. Rooms are permanent once
	// added; there is no delete.
	Register(ctx context.Context, in RegisterRoomInput) (*queries.RoomView, error)
	// SetMaintenance toggles the operator-set maintenance flag. A room
	// with active bookings cannot enter maintenance.
	SetMaintenance(ctx context.Context, roomNumber int, on bool) error
}

type roomCommandsImpl struct {
	uow       shared.UnitOfWork
	roomReads queries.RoomReadStore
}

func NewRoomCommands(uow shared.UnitOfWork, roomReads queries.RoomReadStore) RoomCommands {
	return &roomCommandsImpl{uow: uow, roomReads: roomReads}
}

func (c *roomCommandsImpl) Register(ctx context.Context, in RegisterRoomInput) (*queries.RoomView, error) {
	entity, err := room.NewRoom(
		in.RoomNumber,
		room.Type(in.RoomType),
		room.ACType(in.ACType),
		in.PriceCents,
		in.Capacity,
		in.Wifi,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Create(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoom
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.roomReads.FindByNumber(ctx, entity.Number())
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}

func (c *roomCommandsImpl) SetMaintenance(ctx context.Context, roomNumber int, on bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		rm, err := reads.RoomByNumberForUpdate(ctx, roomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		active, err := reads.CountActiveBookings(ctx, rm.Number)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		var next room.Status
		if on {
			if active > 0 {
				return ErrRoomOccupied
			}
			next = room.StatusMaintenance
		} else {
			next = room.StatusAvailable
			if active > 0 {
				next = room.StatusBooked
			}
		}

		if rm.Status == next.String() {
			return nil
		}
		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), rm.Number, next); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}
