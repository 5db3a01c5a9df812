package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/domain"
	"boxoffice/internal/mocks"
)

func TestRunReport(t *testing.T) {
	t.Run("renders the report for an existing booking", func(t *testing.T) {
		app, out := newTestApplication(func(a *application) {
			a.bookingRepo = &mocks.MockBookingRepo{
				GetDetailFunc: func(ctx context.Context, bookingID int) (*domain.BookingDetail, error) {
					return &domain.BookingDetail{
						BookingID:    42,
						BookingDate:  "2023-05-20",
						CustomerName: "Eleanor Rigby",
						Category:     domain.CategoryVIP,
						ShowTitle:    "The Gala",
						Venue:        "Royal Albert Hall",
						ShowDate:     "2023-06-01",
						Seats:        []domain.Seat{{Label: "C5"}, {Label: "C6"}},
						TotalPrice:   decimal.Zero,
					}, nil
				},
			}
		})

		err := app.runReport(context.Background(), 42)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "=== Booking Report ===")
		assert.Contains(t, out.String(), "Seats: C5, C6")
		assert.Contains(t, out.String(), "Total Price: £0.00")
	})

	t.Run("reports not found as a normal outcome", func(t *testing.T) {
		app, out := newTestApplication(func(a *application) {
			a.bookingRepo = &mocks.MockBookingRepo{
				GetDetailFunc: func(ctx context.Context, bookingID int) (*domain.BookingDetail, error) {
					return nil, domain.ErrRecordNotFound
				},
			}
		})

		err := app.runReport(context.Background(), 404)
		require.NoError(t, err)
		assert.Equal(t, "Booking 404 not found.\n", out.String())
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		app, _ := newTestApplication(func(a *application) {
			a.bookingRepo = &mocks.MockBookingRepo{
				GetDetailFunc: func(ctx context.Context, bookingID int) (*domain.BookingDetail, error) {
					return nil, fmt.Errorf("database error")
				},
			}
		})

		err := app.runReport(context.Background(), 1)
		assert.Error(t, err)
	})
}
