package mocks

import (
	"context"

	"boxoffice/internal/domain"
)

type MockShowRepo struct {
	CreateBatchFunc func(ctx context.Context, shows []domain.Show) error
	CountFunc       func(ctx context.Context) (int, error)
	GetAllFunc      func(ctx context.Context) ([]domain.Show, error)
}

func (m *MockShowRepo) CreateBatch(ctx context.Context, shows []domain.Show) error {
	return m.CreateBatchFunc(ctx, shows)
}

func (m *MockShowRepo) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}

func (m *MockShowRepo) GetAll(ctx context.Context) ([]domain.Show, error) {
	return m.GetAllFunc(ctx)
}
