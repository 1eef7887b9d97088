package email

import (
	"context"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02 15:04"

// BookingMailFields carries the template substitutions shared by the booking
// lifecycle emails.
type BookingMailFields struct {
	BookingID    int
	ResellerName string
	StartDate    time.Time
	EndDate      time.Time
	AccessToken  string
}

func (s *Service) SendBookingConfirmation(ctx context.Context, to string, f BookingMailFields) error {
	subject := "Your booking is confirmed"
	body := fmt.Sprintf(`Hi,

Your booking #%d is confirmed!

Reseller: %s
From: %s
To: %s

You can look up your booking at any time with this reference:
%s

- The %s Team (%d)`,
		f.BookingID,
		f.ResellerName,
		f.StartDate.Format(dateLayout),
		f.EndDate.Format(dateLayout),
		f.AccessToken,
		s.fromName,
		time.Now().Year(),
	)

	return s.Send(ctx, to, subject, body)
}

func (s *Service) SendBookingCancellation(ctx context.Context, to string, f BookingMailFields) error {
	subject := "Your booking has been cancelled"
	body := fmt.Sprintf(`Hi,

Your booking #%d has been cancelled.

Reseller: %s
From: %s
To: %s

- The %s Team (%d)`,
		f.BookingID,
		f.ResellerName,
		f.StartDate.Format(dateLayout),
		f.EndDate.Format(dateLayout),
		s.fromName,
		time.Now().Year(),
	)

	return s.Send(ctx, to, subject, body)
}
