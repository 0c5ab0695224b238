//go:build unit || integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom inserts the builder's room directly, bypassing the command
// layer, and returns its number. Re-inserting the same number is a no-op so
// fixtures can be shared across subtests.
func CreateTestRoom(t *testing.T, db DBLike, b *builder.RoomBuilder) int {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO rooms (room_number, room_type, ac_type, price_cents, capacity, wifi, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (room_number) DO NOTHING`,
		b.Number, b.RoomType, b.ACType, b.PriceCents, b.Capacity, b.Wifi, b.Status)
	require.NoError(t, err)

	return b.Number
}

// CreateTestBooking inserts an active booking row and returns its id.
func CreateTestBooking(t *testing.T, db DBLike, b *builder.BookingBuilder) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (room_number, person_name, num_persons, children, check_in_date, check_out_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'active')
		RETURNING booking_id`,
		b.RoomNumber, b.GuestName, b.Persons, b.Children, b.CheckIn, b.CheckOut).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestOperator(t *testing.T, db DBLike, username, passwordHash string) uuid.UUID {
	t.Helper()

	operatorID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO operators (id, username, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`,
		operatorID, username, passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM operators WHERE username = $1", username).Scan(&operatorID)
	}

	return operatorID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each test starts from an empty inventory
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

// RoomStatus reads the current derived status of a room.
func RoomStatus(t *testing.T, db DBLike, number int) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM rooms WHERE room_number = $1", number).Scan(&status)
	require.NoError(t, err)
	return status
}

// BookingStatus reads the current status of a booking.
func BookingStatus(t *testing.T, db DBLike, id int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE booking_id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}
