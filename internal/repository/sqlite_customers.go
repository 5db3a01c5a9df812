package repository

import (
	"context"
	"database/sql"
	"fmt"

	"boxoffice/internal/domain"
)

type SQLiteCustomerRepository struct {
	store *Store
}

func NewSQLiteCustomerRepository(store *Store) *SQLiteCustomerRepository {
	return &SQLiteCustomerRepository{store: store}
}

func (r *SQLiteCustomerRepository) CreateBatch(ctx context.Context, customers []domain.Customer) error {
	return runInTx(ctx, r.store.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO customers (name, phone, type) VALUES (?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, c := range customers {
			if _, err := stmt.ExecContext(ctx, c.Name, c.Phone, string(c.Category)); err != nil {
				return fmt.Errorf("insert customer %q: %w", c.Name, err)
			}
		}

		return nil
	})
}

func (r *SQLiteCustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)

	return count, err
}

func (r *SQLiteCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return r.queryCustomers(ctx, "SELECT customers_id, name, phone, type FROM customers")
}

// Search filters customers on the customer-relevant criteria. No explicit
// order is imposed; rows come back in insertion order.
func (r *SQLiteCustomerRepository) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Customer, error) {
	query, args := customerPredicates(filter).compile(
		"SELECT c.customers_id, c.name, c.phone, c.type\nFROM customers c\nWHERE 1 = 1", "")

	return r.queryCustomers(ctx, query, args...)
}

func (r *SQLiteCustomerRepository) queryCustomers(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}

	for rows.Next() {
		var c domain.Customer

		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Category); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}

		customers = append(customers, c)
	}

	return customers, rows.Err()
}
