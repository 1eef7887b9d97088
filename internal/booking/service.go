package booking

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotImplemented  = errors.New("booking update is not implemented")
)

type Service interface {
	CreateBooking(ctx context.Context, dto *BookingDTO) (*Booking, error)
	GetBooking(ctx context.Context, id int) (*Booking, error)
	GetBookingByToken(ctx context.Context, token string) (*Booking, error)
	GetBookings(ctx context.Context, customerEmail string) ([]Booking, error)
	CancelBooking(ctx context.Context, id int) (*Booking, error)
	UpdateBooking(ctx context.Context, id int, dto *BookingDTO) (*Booking, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// newAccessToken generates the opaque per-booking secret used for
// unauthenticated lookup. Generated once at creation, never regenerated.
func newAccessToken() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *service) CreateBooking(ctx context.Context, dto *BookingDTO) (*Booking, error) {
	token, err := newAccessToken()
	if err != nil {
		return nil, err
	}

	return s.repo.CreateBooking(ctx, dto, token)
}

func (s *service) GetBooking(ctx context.Context, id int) (*Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) GetBookingByToken(ctx context.Context, token string) (*Booking, error) {
	b, err := s.repo.GetBookingByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) GetBookings(ctx context.Context, customerEmail string) ([]Booking, error) {
	return s.repo.GetBookingsByEmail(ctx, customerEmail)
}

// CancelBooking transitions a booking to Cancelled. Cancelling an already
// cancelled booking is a no-op that returns the current record unchanged.
func (s *service) CancelBooking(ctx context.Context, id int) (*Booking, error) {
	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Status == StatusCancelled {
		return current, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, StatusCancelled)
	if err != nil {
		if errors.Is(err, ErrStatusUnchanged) {
			// A concurrent cancel won the race; the stored row is already
			// cancelled, so return it.
			return s.GetBooking(ctx, id)
		}
		return nil, err
	}

	return updated, nil
}

// UpdateBooking has no agreed field-level semantics yet. The input still runs
// through the validation gate at the handler, but the write is rejected.
func (s *service) UpdateBooking(ctx context.Context, id int, dto *BookingDTO) (*Booking, error) {
	return nil, ErrNotImplemented
}
