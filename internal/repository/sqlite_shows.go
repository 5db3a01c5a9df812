package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"boxoffice/internal/domain"
)

type SQLiteShowRepository struct {
	store *Store
}

func NewSQLiteShowRepository(store *Store) *SQLiteShowRepository {
	return &SQLiteShowRepository{store: store}
}

func (r *SQLiteShowRepository) CreateBatch(ctx context.Context, shows []domain.Show) error {
	return runInTx(ctx, r.store.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO shows (title, date, venue) VALUES (?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range shows {
			if _, err := stmt.ExecContext(ctx, s.Title, s.Date.Format(dateLayout), s.Venue); err != nil {
				return fmt.Errorf("insert show %q: %w", s.Title, err)
			}
		}

		return nil
	})
}

func (r *SQLiteShowRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM shows").Scan(&count)

	return count, err
}

func (r *SQLiteShowRepository) GetAll(ctx context.Context) ([]domain.Show, error) {
	rows, err := r.store.db.QueryContext(ctx, "SELECT shows_id, title, date, venue FROM shows")
	if err != nil {
		return nil, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	shows := []domain.Show{}

	for rows.Next() {
		var (
			s    domain.Show
			date time.Time
		)

		if err := rows.Scan(&s.ID, &s.Title, &date, &s.Venue); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}

		s.Date = date
		shows = append(shows, s)
	}

	return shows, rows.Err()
}
