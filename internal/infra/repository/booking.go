package repository

import (
	"context"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts an active booking and returns the assigned id. An exclusion
// violation on the active-overlap constraint comes back as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	const q = `
		INSERT INTO bookings (room_number, person_name, check_in_date, check_out_date, num_persons, children, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING booking_id`

	var id int64
	err := dbtx.QueryRow(ctx, q,
		b.RoomNumber(),
		b.Guest().String(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Party().Persons(),
		b.Party().HasChildren(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status booking.Status) error {
	const q = `UPDATE bookings SET status = $2 WHERE booking_id = $1`

	tag, err := dbtx.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
