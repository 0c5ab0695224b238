package readstore

import (
	"context"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/usecase/shared"
)

// CommandReadStore serves the validation reads of the mutation paths. Bound
// to whatever DBTX the caller holds, so inside a transaction the FOR UPDATE
// variants pin rows until commit.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

const roomSnapshotColumns = `room_number, room_type, ac_type, price_cents, capacity, wifi, status`

func (r *CommandReadStore) RoomByNumber(ctx context.Context, number int) (*shared.RoomSnapshot, error) {
	const q = `SELECT ` + roomSnapshotColumns + ` FROM rooms WHERE room_number = $1`
	return r.scanRoomSnapshot(ctx, q, number)
}

func (r *CommandReadStore) RoomByNumberForUpdate(ctx context.Context, number int) (*shared.RoomSnapshot, error) {
	const q = `SELECT ` + roomSnapshotColumns + ` FROM rooms WHERE room_number = $1 FOR UPDATE`
	return r.scanRoomSnapshot(ctx, q, number)
}

func (r *CommandReadStore) scanRoomSnapshot(ctx context.Context, q string, number int) (*shared.RoomSnapshot, error) {
	var snap shared.RoomSnapshot
	err := r.db.QueryRow(ctx, q, number).Scan(
		&snap.Number,
		&snap.RoomType,
		&snap.ACType,
		&snap.PriceCents,
		&snap.Capacity,
		&snap.Wifi,
		&snap.Status,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read room", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) BookingByIDForUpdate(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	const q = `
		SELECT booking_id, room_number, status, check_in_date, check_out_date
		FROM bookings
		WHERE booking_id = $1
		FOR UPDATE`

	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID,
		&snap.RoomNumber,
		&snap.Status,
		&snap.CheckIn,
		&snap.CheckOut,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read booking", err)
	}
	return &snap, nil
}

// HasOverlappingActiveBooking applies the half-open overlap predicate:
// [a,b) and [c,d) overlap iff a < d and c < b.
func (r *CommandReadStore) HasOverlappingActiveBooking(ctx context.Context, roomNumber int, checkIn, checkOut time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE room_number = $1
			  AND status = 'active'
			  AND check_in_date < $3
			  AND $2 < check_out_date
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, roomNumber, checkIn, checkOut).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *CommandReadStore) CountActiveBookings(ctx context.Context, roomNumber int) (int64, error) {
	const q = `SELECT count(*) FROM bookings WHERE room_number = $1 AND status = 'active'`

	var count int64
	if err := r.db.QueryRow(ctx, q, roomNumber).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return count, nil
}

func (r *CommandReadStore) OperatorByUsername(ctx context.Context, username string) (*shared.OperatorSnapshot, error) {
	const q = `SELECT id, username, password_hash FROM operators WHERE username = $1`

	var snap shared.OperatorSnapshot
	err := r.db.QueryRow(ctx, q, username).Scan(&snap.ID, &snap.Username, &snap.PasswordHash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read operator", err)
	}
	return &snap, nil
}
