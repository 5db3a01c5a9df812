package domain

import "context"

type Category string

const (
	CategoryChild  Category = "Child"
	CategoryAdult  Category = "Adult"
	CategorySenior Category = "Senior"
	CategoryVIP    Category = "VIP"
)

// Categories lists every valid customer category, in the order they are
// drawn from during generation.
var Categories = []Category{CategoryAdult, CategoryChild, CategorySenior, CategoryVIP}

func (c Category) Valid() bool {
	switch c {
	case CategoryChild, CategoryAdult, CategorySenior, CategoryVIP:
		return true
	}

	return false
}

type Customer struct {
	ID       int
	Name     string
	Phone    string
	Category Category
}

type CustomerRepository interface {
	CreateBatch(ctx context.Context, customers []Customer) error
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]Customer, error)
	Search(ctx context.Context, filter BookingFilter) ([]Customer, error)
}
