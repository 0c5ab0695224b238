package shared

import (
	"context"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/room"
	"frontdesk/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Operators() OperatorRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByNumber(ctx context.Context, number int) (*RoomSnapshot, error)
	// RoomByNumberForUpdate locks the room row for the rest of the
	// transaction; mutations take it before re-validating preconditions so
	// the overlap check and the insert form one critical section per room.
	RoomByNumberForUpdate(ctx context.Context, number int) (*RoomSnapshot, error)
	BookingByIDForUpdate(ctx context.Context, id int64) (*BookingSnapshot, error)
	HasOverlappingActiveBooking(ctx context.Context, roomNumber int, checkIn, checkOut time.Time) (bool, error)
	CountActiveBookings(ctx context.Context, roomNumber int) (int64, error)
	OperatorByUsername(ctx context.Context, username string) (*OperatorSnapshot, error)
}

// Minimal snapshots for command read operations
type RoomSnapshot struct {
	Number     int
	RoomType   string
	ACType     string
	PriceCents int64
	Capacity   int
	Wifi       bool
	Status     string
}

type BookingSnapshot struct {
	ID         int64
	RoomNumber int
	Status     string
	CheckIn    time.Time
	CheckOut   time.Time
}

type OperatorSnapshot struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

type RoomRepository interface {
	Create(ctx context.Context, db db.DBTX, r *room.Room) error
	UpdateStatus(ctx context.Context, db db.DBTX, number int, status room.Status) error
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id int64, status booking.Status) error
}

type OperatorRepository interface {
	Create(ctx context.Context, db db.DBTX, username, passwordHash string) (uuid.UUID, error)
}
