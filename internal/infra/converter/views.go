package converter

import (
	"time"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Row structs mirror the scanned columns; field names line up with the view
// types so copier does the mapping.

type RoomRow struct {
	RoomNumber int
	RoomType   string
	ACType     string
	PriceCents int64
	Capacity   int
	Wifi       bool
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func RoomViewFromRow(row RoomRow) (*queries.RoomView, error) {
	var view queries.RoomView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, errs.Wrap(err, "failed to map room row")
	}
	return &view, nil
}

type BookingRow struct {
	BookingID  int64
	RoomNumber int
	GuestName  string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	NumPersons int
	Children   bool
	Status     string
	TotalCents int64
	CreatedAt  time.Time
}

func BookingViewFromRow(row BookingRow) (*queries.BookingView, error) {
	var view queries.BookingView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, errs.Wrap(err, "failed to map booking row")
	}
	return &view, nil
}

type GuestStayRow struct {
	GuestName  string
	RoomNumber int
	PriceCents int64
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
}

func GuestStayViewFromRow(row GuestStayRow) (*queries.GuestStayView, error) {
	var view queries.GuestStayView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, errs.Wrap(err, "failed to map guest stay row")
	}
	return &view, nil
}
