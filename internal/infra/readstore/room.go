package readstore

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/converter"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/usecase/queries"
)

const roomColumns = `room_number, room_type, ac_type, price_cents, capacity, wifi, status, created_at, updated_at`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByNumber(ctx context.Context, number int) (*queries.RoomView, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

	row, err := scanRoomRow(r.db.QueryRow(ctx, q, number))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by number", err)
	}
	return converter.RoomViewFromRow(row)
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return collectRoomViews(rows)
}

// FindAvailableRooms returns rooms matching the criteria with no overlapping
// active booking in the half-open window. Ordering is price then room number
// so results are deterministic.
func (r *RoomReadStore) FindAvailableRooms(ctx context.Context, criteria queries.AvailabilityCriteria) ([]*queries.RoomView, error) {
	const q = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE r.room_type = $1
		  AND r.status <> 'maintenance'
		  AND ($2::text IS NULL OR r.ac_type = $2)
		  AND ($3::int IS NULL OR r.capacity >= $3)
		  AND ($4::bigint IS NULL OR r.price_cents <= $4)
		  AND NOT EXISTS (
		      SELECT 1
		      FROM bookings b
		      WHERE b.room_number = r.room_number
		        AND b.status = 'active'
		        AND b.check_in_date < $6
		        AND $5 < b.check_out_date
		  )
		ORDER BY r.price_cents, r.room_number`

	rows, err := r.db.Query(ctx, q,
		criteria.RoomType,
		criteria.ACType,
		criteria.MinCapacity,
		criteria.MaxPriceCents,
		criteria.CheckIn,
		criteria.CheckOut,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available rooms", err)
	}
	defer rows.Close()

	return collectRoomViews(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomRow(s rowScanner) (converter.RoomRow, error) {
	var row converter.RoomRow
	err := s.Scan(
		&row.RoomNumber,
		&row.RoomType,
		&row.ACType,
		&row.PriceCents,
		&row.Capacity,
		&row.Wifi,
		&row.Status,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

func collectRoomViews(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*queries.RoomView, error) {
	result := make([]*queries.RoomView, 0)
	for rows.Next() {
		row, err := scanRoomRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		view, err := converter.RoomViewFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}
