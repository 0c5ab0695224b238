package repository

import (
	"context"

	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, dbtx db.DBTX, rm *room.Room) error {
	const q = `
		INSERT INTO rooms (room_number, room_type, ac_type, price_cents, capacity, wifi, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := dbtx.Exec(ctx, q,
		rm.Number(),
		rm.Type().String(),
		rm.AC().String(),
		rm.Rate().Cents(),
		rm.Capacity().Value(),
		rm.Wifi(),
		rm.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, number int, status room.Status) error {
	const q = `UPDATE rooms SET status = $2, updated_at = now() WHERE room_number = $1`

	tag, err := dbtx.Exec(ctx, q, number, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
