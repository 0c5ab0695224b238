package queries

import (
	"context"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindActiveGuests(ctx context.Context) ([]*GuestStayView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	// ListAll returns the booking history newest first, for the bookings
	// table.
	ListAll(ctx context.Context) ([]*BookingView, error)
	// ListActiveGuests returns one row per active booking ordered by
	// check-in date, for the customer-info table.
	ListActiveGuests(ctx context.Context) ([]*GuestStayView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.store.FindAll(ctx)
}

func (q *bookingQueriesImpl) ListActiveGuests(ctx context.Context) ([]*GuestStayView, error) {
	return q.store.FindActiveGuests(ctx)
}
