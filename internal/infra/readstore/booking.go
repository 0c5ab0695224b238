package readstore

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/converter"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/usecase/queries"
)

// bookingColumns joins the nightly rate so views carry the computed stay
// total alongside the booking row.
const bookingColumns = `
	b.booking_id,
	b.room_number,
	b.person_name,
	b.check_in_date,
	b.check_out_date,
	(b.check_out_date - b.check_in_date) AS nights,
	b.num_persons,
	b.children,
	b.status,
	((b.check_out_date - b.check_in_date)::bigint * r.price_cents) AS total_cents,
	b.created_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN rooms r ON b.room_number = r.room_number
		WHERE b.booking_id = $1`

	row, err := scanBookingRow(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return converter.BookingViewFromRow(row)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN rooms r ON b.room_number = r.room_number
		ORDER BY b.created_at DESC, b.booking_id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		row, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		view, err := converter.BookingViewFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

// FindActiveGuests backs the active-customers table, ordered by check-in.
func (r *BookingReadStore) FindActiveGuests(ctx context.Context) ([]*queries.GuestStayView, error) {
	const q = `
		SELECT b.person_name, b.room_number, r.price_cents, b.check_in_date, b.check_out_date, b.status
		FROM bookings b
		JOIN rooms r ON b.room_number = r.room_number
		WHERE b.status = 'active'
		ORDER BY b.check_in_date, b.booking_id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active guests", err)
	}
	defer rows.Close()

	result := make([]*queries.GuestStayView, 0)
	for rows.Next() {
		var row converter.GuestStayRow
		if err := rows.Scan(
			&row.GuestName,
			&row.RoomNumber,
			&row.PriceCents,
			&row.CheckIn,
			&row.CheckOut,
			&row.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		view, err := converter.GuestStayViewFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map guest row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guest rows", err)
	}
	return result, nil
}

func scanBookingRow(s rowScanner) (converter.BookingRow, error) {
	var row converter.BookingRow
	err := s.Scan(
		&row.BookingID,
		&row.RoomNumber,
		&row.GuestName,
		&row.CheckIn,
		&row.CheckOut,
		&row.Nights,
		&row.NumPersons,
		&row.Children,
		&row.Status,
		&row.TotalCents,
		&row.CreatedAt,
	)
	return row, err
}
