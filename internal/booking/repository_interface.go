package booking

import "context"

type Repository interface {
	CreateBooking(ctx context.Context, dto *BookingDTO, accessToken string) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	GetBookingByToken(ctx context.Context, token string) (*Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int, status Status) (*Booking, error)
}
