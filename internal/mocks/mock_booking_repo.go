package mocks

import (
	"context"

	"boxoffice/internal/domain"
)

type MockBookingRepo struct {
	CreateBatchFunc func(ctx context.Context, bookings []domain.GeneratedBooking) error
	SearchFunc      func(ctx context.Context, filter domain.BookingFilter) ([]domain.BookingRow, error)
	GetDetailFunc   func(ctx context.Context, bookingID int) (*domain.BookingDetail, error)
}

func (m *MockBookingRepo) CreateBatch(ctx context.Context, bookings []domain.GeneratedBooking) error {
	return m.CreateBatchFunc(ctx, bookings)
}

func (m *MockBookingRepo) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.BookingRow, error) {
	return m.SearchFunc(ctx, filter)
}

func (m *MockBookingRepo) GetDetail(ctx context.Context, bookingID int) (*domain.BookingDetail, error) {
	return m.GetDetailFunc(ctx, bookingID)
}
