package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID         int
	CustomerID int
	ShowID     int
	Date       time.Time
	TotalPrice decimal.Decimal
}

// GeneratedBooking pairs a booking with the seats it owns so that both can
// be persisted inside the same batch transaction.
type GeneratedBooking struct {
	Booking Booking
	Seats   []Seat
}

// BookingFilter is a sparse set of search criteria. Zero values mean the
// criterion is absent and contributes no clause to the compiled query.
type BookingFilter struct {
	BookingID    int
	CustomerID   int
	ShowID       int
	NameFragment string
	Date         *time.Time
	Category     Category `validate:"omitempty,category"`
}

// BookingRow is one row of the booking/customer/show join returned by a
// search. Date values carry whatever encoding the store handed back; display
// formatting is the caller's concern.
type BookingRow struct {
	BookingID    int
	CustomerID   int
	CustomerName string
	Category     Category
	ShowID       int
	ShowTitle    string
	Venue        string
	ShowDate     any
	BookingDate  any
	TotalPrice   decimal.Decimal
	SeatCount    int
}

type BookingDetail struct {
	BookingID    int
	BookingDate  any
	CustomerID   int
	CustomerName string
	Category     Category
	ShowTitle    string
	Venue        string
	ShowDate     any
	Seats        []Seat
	TotalPrice   decimal.Decimal
}

type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []GeneratedBooking) error
	Search(ctx context.Context, filter BookingFilter) ([]BookingRow, error)
	GetDetail(ctx context.Context, bookingID int) (*BookingDetail, error)
}
