package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"phillymounting/internal/db"
	"phillymounting/internal/entities"
)

// BookingStore is the durable persistence contract for bookings. The store
// generates ids and timestamps; a nil record with a nil error means not found.
type BookingStore interface {
	CreateBooking(req *entities.BookingRequest) (*db.Booking, error)
	ListBookings() ([]db.Booking, error)
	GetBookingByID(id string) (*db.Booking, error)
	UpdateBookingStatus(id, status string) (*db.Booking, error)
	ListConfirmedBookingsByDate(date string) ([]db.Booking, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(database *sql.DB) BookingStore {
	return &bookingRepository{db: database}
}

const bookingColumns = `id, name, email, phone, address, city, zip_code, date, time_slot, services, estimated_total, notes, status, created_at, updated_at`

func (r *bookingRepository) CreateBooking(req *entities.BookingRequest) (*db.Booking, error) {
	now := time.Now().UTC()
	booking := &db.Booking{
		ID:             NewID("booking"),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		ZipCode:        req.ZipCode,
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		Services:       req.Services,
		EstimatedTotal: req.EstimatedTotal,
		Notes:          req.Notes,
		Status:         db.BookingStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(query,
		booking.ID, booking.Name, booking.Email, booking.Phone,
		booking.Address, booking.City, booking.ZipCode,
		booking.Date, booking.TimeSlot, booking.Services, booking.EstimatedTotal, booking.Notes,
		booking.Status, booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting booking: %w", err)
	}
	return booking, nil
}

func (r *bookingRepository) ListBookings() ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) GetBookingByID(id string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	booking, err := scanBookingRow(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return booking, nil
}

func (r *bookingRepository) UpdateBookingStatus(id, status string) (*db.Booking, error) {
	query := `
		UPDATE bookings SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + bookingColumns
	booking, err := scanBookingRow(r.db.QueryRow(query, id, status, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating booking status: %w", err)
	}
	return booking, nil
}

func (r *bookingRepository) ListConfirmedBookingsByDate(date string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND date = $2 ORDER BY time_slot`
	rows, err := r.db.Query(query, db.BookingStatusConfirmed, date)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed bookings for %s: %w", date, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingRow(row rowScanner) (*db.Booking, error) {
	var b db.Booking
	err := row.Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone,
		&b.Address, &b.City, &b.ZipCode,
		&b.Date, &b.TimeSlot, &b.Services, &b.EstimatedTotal, &b.Notes,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]db.Booking, error) {
	bookings := []db.Booking{}
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating bookings: %w", err)
	}
	return bookings, nil
}
