package database

import (
	"context"
	"fmt"
	"time"

	"alafaq/internal/models"
)

// InsertBooking adds one mirrored record. The mirror is append-only like
// the journal it copies.
func (d *DB) InsertBooking(ctx context.Context, record models.BookingRecord) error {
	query := `INSERT INTO bookings (
				name, phone, age, kind, date, time, service, notes, status, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := d.db.ExecContext(ctx, query,
		record.Name,
		record.Phone,
		record.Age,
		string(record.Kind),
		record.Date,
		record.Time,
		record.Service,
		record.Notes,
		record.Status,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// ListBookings returns all mirrored bookings in insertion order.
func (d *DB) ListBookings(ctx context.Context) ([]models.BookingRecord, error) {
	query := `SELECT name, phone, age, kind, date, time, service, notes, status, created_at
              FROM bookings ORDER BY id ASC`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListBookingsByDateRange returns mirrored bookings whose booking date
// falls within [start, end], ordered by date then insertion.
func (d *DB) ListBookingsByDateRange(ctx context.Context, start, end time.Time) ([]models.BookingRecord, error) {
	query := `SELECT name, phone, age, kind, date, time, service, notes, status, created_at
              FROM bookings WHERE date >= ? AND date <= ? ORDER BY date ASC, id ASC`

	rows, err := d.db.QueryContext(ctx, query,
		start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by date range: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountByKind returns how many bookings each kind has accumulated.
func (d *DB) CountByKind(ctx context.Context) (map[models.Kind]int, error) {
	query := `SELECT kind, COUNT(*) FROM bookings GROUP BY kind`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Kind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[models.Kind(kind)] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookings(rows rowScanner) ([]models.BookingRecord, error) {
	var records []models.BookingRecord
	for rows.Next() {
		var r models.BookingRecord
		var kind string
		err := rows.Scan(
			&r.Name, &r.Phone, &r.Age, &kind, &r.Date, &r.Time,
			&r.Service, &r.Notes, &r.Status, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		r.Kind = models.Kind(kind)
		records = append(records, r)
	}
	return records, rows.Err()
}
