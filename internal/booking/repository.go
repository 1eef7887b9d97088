package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrStatusUnchanged is returned by UpdateStatus when no row was updated,
// either because the booking does not exist or because it already has the
// requested status. Callers re-read to tell the two apart.
var ErrStatusUnchanged = errors.New("booking not found or status unchanged")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `booking_id, product_id, customer_email, reseller_id, start_date, end_date, total_price, status, access_token, created_at`

func (r *repository) CreateBooking(ctx context.Context, dto *BookingDTO, accessToken string) (*Booking, error) {
	query := `
		INSERT INTO bookings (product_id, customer_email, reseller_id, start_date, end_date, total_price, status, access_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query,
		dto.ProductID,
		dto.CustomerEmail,
		dto.ResellerID,
		dto.StartDate,
		dto.EndDate,
		dto.TotalPrice,
		StatusPending,
		accessToken,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBookingByToken(ctx context.Context, token string) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE access_token = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, token)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetBookingsByEmail(ctx context.Context, email string) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_email = $1
		ORDER BY created_at DESC
	`

	bookings := []Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, email)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus is a single-row atomic transition: the status predicate makes
// concurrent updates of the same booking converge without a lost write.
func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE booking_id = $1 AND status <> $2
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusUnchanged
		}
		return nil, err
	}

	return &b, nil
}
