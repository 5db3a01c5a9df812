package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boxoffice/internal/domain"
)

// searchBase joins bookings to their customer and show. The seat count is a
// scalar subquery keyed on the booking row alone, so the outer filter
// predicates cannot distort it.
const searchBase = `SELECT b.bookings_id, b.customer_id, c.name, c.type,
  b.show_id, s.title, s.venue, s.date, b.booking_date, b.total_price,
  (SELECT COUNT(*) FROM seats WHERE seats.booking_id = b.bookings_id) AS seat_count
FROM bookings b
JOIN customers c ON c.customers_id = b.customer_id
JOIN shows s ON s.shows_id = b.show_id
WHERE 1 = 1`

const searchOrder = "ORDER BY b.booking_date DESC, b.bookings_id DESC"

type SQLiteBookingRepository struct {
	store *Store
}

func NewSQLiteBookingRepository(store *Store) *SQLiteBookingRepository {
	return &SQLiteBookingRepository{store: store}
}

// CreateBatch persists the bookings and their owned seats in one
// transaction: either the whole batch lands or none of it does.
func (r *SQLiteBookingRepository) CreateBatch(ctx context.Context, bookings []domain.GeneratedBooking) error {
	return runInTx(ctx, r.store.db, func(tx *sql.Tx) error {
		bookingStmt, err := tx.PrepareContext(ctx,
			"INSERT INTO bookings (customer_id, show_id, booking_date, total_price) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer bookingStmt.Close()

		seatStmt, err := tx.PrepareContext(ctx,
			"INSERT INTO seats (booking_id, seat_number, price, status) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer seatStmt.Close()

		for _, gb := range bookings {
			b := gb.Booking

			res, err := bookingStmt.ExecContext(ctx,
				b.CustomerID, b.ShowID, b.Date.Format(dateLayout), b.TotalPrice)
			if err != nil {
				return fmt.Errorf("insert booking: %w", err)
			}

			bookingID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("booking id: %w", err)
			}

			for _, seat := range gb.Seats {
				_, err := seatStmt.ExecContext(ctx,
					bookingID, seat.Label, seat.Price, string(seat.Status))
				if err != nil {
					return fmt.Errorf("insert seat %s: %w", seat.Label, err)
				}
			}
		}

		return nil
	})
}

// Search compiles the sparse filter into one parameterized statement and
// returns the matching joined rows, most recent booking date first. An empty
// result is not an error.
func (r *SQLiteBookingRepository) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.BookingRow, error) {
	query, args := bookingPredicates(filter).compile(searchBase, searchOrder)

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search bookings: %w", err)
	}
	defer rows.Close()

	results := []domain.BookingRow{}

	for rows.Next() {
		var row domain.BookingRow

		err := rows.Scan(
			&row.BookingID,
			&row.CustomerID,
			&row.CustomerName,
			&row.Category,
			&row.ShowID,
			&row.ShowTitle,
			&row.Venue,
			&row.ShowDate,
			&row.BookingDate,
			&row.TotalPrice,
			&row.SeatCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		results = append(results, row)
	}

	return results, rows.Err()
}

// GetDetail returns the booking joined to its customer, show, and seats.
// Returns domain.ErrRecordNotFound when the id resolves to no booking.
func (r *SQLiteBookingRepository) GetDetail(ctx context.Context, bookingID int) (*domain.BookingDetail, error) {
	query := `SELECT b.bookings_id, b.booking_date, b.total_price,
  c.customers_id, c.name, c.type, s.title, s.venue, s.date
FROM bookings b
JOIN customers c ON c.customers_id = b.customer_id
JOIN shows s ON s.shows_id = b.show_id
WHERE b.bookings_id = ?`

	var detail domain.BookingDetail

	err := r.store.db.QueryRowContext(ctx, query, bookingID).Scan(
		&detail.BookingID,
		&detail.BookingDate,
		&detail.TotalPrice,
		&detail.CustomerID,
		&detail.CustomerName,
		&detail.Category,
		&detail.ShowTitle,
		&detail.Venue,
		&detail.ShowDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}

	seats, err := r.seatsForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	detail.Seats = seats

	return &detail, nil
}

func (r *SQLiteBookingRepository) seatsForBooking(ctx context.Context, bookingID int) ([]domain.Seat, error) {
	rows, err := r.store.db.QueryContext(ctx,
		"SELECT seats_id, booking_id, seat_number, price, status FROM seats WHERE booking_id = ? ORDER BY seat_number",
		bookingID)
	if err != nil {
		return nil, fmt.Errorf("query seats: %w", err)
	}
	defer rows.Close()

	seats := []domain.Seat{}

	for rows.Next() {
		var seat domain.Seat

		if err := rows.Scan(&seat.ID, &seat.BookingID, &seat.Label, &seat.Price, &seat.Status); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}
