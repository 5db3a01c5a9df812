// Package report assembles single-booking reports from joined store records
// and normalizes the heterogeneous date encodings found in them.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"boxoffice/internal/domain"
	"boxoffice/internal/pricing"
)

type Assembler struct {
	bookings domain.BookingRepository
}

func NewAssembler(bookings domain.BookingRepository) *Assembler {
	return &Assembler{bookings: bookings}
}

// Build assembles the report for one booking. It returns
// domain.ErrRecordNotFound unchanged when the id resolves to nothing; a
// partial report is never produced.
func (a *Assembler) Build(ctx context.Context, bookingID int) (*domain.Report, error) {
	detail, err := a.bookings.GetDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	seats := make([]string, len(detail.Seats))
	for i, seat := range detail.Seats {
		seats[i] = seat.Label
	}

	return &domain.Report{
		BookingID:        detail.BookingID,
		BookingDate:      FormatDate(detail.BookingDate),
		CustomerName:     detail.CustomerName,
		CustomerID:       detail.CustomerID,
		PriceExplanation: pricing.Explanation(detail.Category),
		ShowTitle:        detail.ShowTitle,
		Venue:            detail.Venue,
		ShowDate:         FormatDate(detail.ShowDate),
		Seats:            seats,
		TotalPrice:       FormatPrice(detail.TotalPrice),
	}, nil
}

// FormatPrice renders a price as a two-decimal sterling amount.
func FormatPrice(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}
