package queries

import (
	"context"
)

type RoomReadStore interface {
	FindByNumber(ctx context.Context, number int) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByNumber(ctx context.Context, number int) (*RoomView, error)
	// List returns every registered room ordered by room number, for the
	// room-overview table.
	List(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByNumber(ctx context.Context, number int) (*RoomView, error) {
	return q.store.FindByNumber(ctx, number)
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAll(ctx)
}
