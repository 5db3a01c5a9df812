// Package repository implements the SQLite persistence layer for the
// booking domain: schema management, batch generation writes, and the
// dynamic booking search.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"boxoffice/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	customers_id INTEGER PRIMARY KEY,
	name TEXT,
	phone TEXT,
	type TEXT CHECK(type IN ('Child', 'Adult', 'Senior', 'VIP'))
);

CREATE TABLE IF NOT EXISTS shows (
	shows_id INTEGER PRIMARY KEY,
	title TEXT,
	date DATETIME,
	venue TEXT
);

CREATE TABLE IF NOT EXISTS bookings (
	bookings_id INTEGER PRIMARY KEY,
	customer_id INTEGER,
	show_id INTEGER,
	booking_date DATETIME,
	total_price DECIMAL(10, 2),
	FOREIGN KEY (customer_id) REFERENCES customers (customers_id),
	FOREIGN KEY (show_id) REFERENCES shows (shows_id)
);

CREATE TABLE IF NOT EXISTS seats (
	seats_id INTEGER PRIMARY KEY,
	booking_id INTEGER,
	seat_number TEXT,
	price DECIMAL(10, 2),
	status TEXT CHECK(status IN ('Booked', 'Available', 'Blocked')),
	FOREIGN KEY (booking_id) REFERENCES bookings (bookings_id)
);
`

// dateLayout is how calendar dates are stored: date only, no time of day.
const dateLayout = "2006-01-02"

// Store owns the database handle shared by the repositories. Use ":memory:"
// as the path for an in-memory database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path and ensures the four domain tables
// exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// The domain is single-operator and every operation runs to completion
	// before the next begins; one connection also keeps ":memory:"
	// databases stable across the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Counts returns the per-table row counts reported after a generation run.
func (s *Store) Counts(ctx context.Context) (domain.RowCounts, error) {
	var counts domain.RowCounts

	for _, t := range []struct {
		table string
		dest  *int
	}{
		{"customers", &counts.Customers},
		{"shows", &counts.Shows},
		{"bookings", &counts.Bookings},
		{"seats", &counts.Seats},
	} {
		err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dest)
		if err != nil {
			return domain.RowCounts{}, fmt.Errorf("count %s: %w", t.table, err)
		}
	}

	return counts, nil
}

func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit()
	}

	rollbackErr := tx.Rollback()
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
