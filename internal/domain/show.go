package domain

import (
	"context"
	"time"
)

type Show struct {
	ID    int
	Title string
	Date  time.Time
	Venue string
}

type ShowRepository interface {
	CreateBatch(ctx context.Context, shows []Show) error
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Show, error)
}
