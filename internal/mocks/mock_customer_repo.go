package mocks

import (
	"context"

	"boxoffice/internal/domain"
)

type MockCustomerRepo struct {
	CreateBatchFunc func(ctx context.Context, customers []domain.Customer) error
	CountFunc       func(ctx context.Context) (int, error)
	GetAllFunc      func(ctx context.Context) ([]domain.Customer, error)
	SearchFunc      func(ctx context.Context, filter domain.BookingFilter) ([]domain.Customer, error)
}

func (m *MockCustomerRepo) CreateBatch(ctx context.Context, customers []domain.Customer) error {
	return m.CreateBatchFunc(ctx, customers)
}

func (m *MockCustomerRepo) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *MockCustomerRepo) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCustomerRepo) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Customer, error) {
	return m.SearchFunc(ctx, filter)
}
