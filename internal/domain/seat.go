package domain

import "github.com/shopspring/decimal"

type SeatStatus string

const (
	SeatStatusBooked    SeatStatus = "Booked"
	SeatStatusAvailable SeatStatus = "Available"
	SeatStatusBlocked   SeatStatus = "Blocked"
)

type Seat struct {
	ID        int
	BookingID int
	Label     string
	Price     decimal.Decimal
	Status    SeatStatus
}
