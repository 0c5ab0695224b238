//go:build unit || integration

package builder

import (
	"time"

	domroom "frontdesk/internal/domain/room"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"
	"frontdesk/internal/usecase/shared"
)

type RoomBuilder struct {
	Number     int
	RoomType   string
	ACType     string
	PriceCents int64
	Capacity   int
	Wifi       bool
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		Number:     101,
		RoomType:   domroom.TypeNormal.String(),
		ACType:     domroom.WithAC.String(),
		PriceCents: 120_00,
		Capacity:   2,
		Wifi:       true,
		Status:     domroom.StatusAvailable.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(r.Number, domroom.Type(r.RoomType), domroom.ACType(r.ACType), r.PriceCents, r.Capacity, r.Wifi)
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		Number:     r.Number,
		RoomType:   r.RoomType,
		ACType:     r.ACType,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
		Wifi:       r.Wifi,
		Status:     r.Status,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		RoomNumber: r.Number,
		RoomType:   r.RoomType,
		ACType:     r.ACType,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
		Wifi:       r.Wifi,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildRegisterInput() commands.RegisterRoomInput {
	return commands.RegisterRoomInput{
		RoomNumber: r.Number,
		RoomType:   r.RoomType,
		ACType:     r.ACType,
		PriceCents: r.PriceCents,
		Capacity:   r.Capacity,
		Wifi:       r.Wifi,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithNumber(number int) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithRoomType(roomType string) *RoomBuilder {
	r.RoomType = roomType
	return r
}

func (r *RoomBuilder) WithACType(acType string) *RoomBuilder {
	r.ACType = acType
	return r
}

func (r *RoomBuilder) WithPriceCents(cents int64) *RoomBuilder {
	r.PriceCents = cents
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}

func (r *RoomBuilder) WithWifi(wifi bool) *RoomBuilder {
	r.Wifi = wifi
	return r
}

func (r *RoomBuilder) WithStatus(status string) *RoomBuilder {
	r.Status = status
	return r
}

func (r *RoomBuilder) AsMaintenance() *RoomBuilder {
	r.Status = domroom.StatusMaintenance.String()
	return r
}

func (r *RoomBuilder) AsSuite() *RoomBuilder {
	r.RoomType = domroom.TypeSuite.String()
	r.PriceCents = 450_00
	r.Capacity = 4
	return r
}
