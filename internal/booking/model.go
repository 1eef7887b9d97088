package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a booking. Values are stored as integers.
type Status int

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusCancelled
	StatusRefunded
)

func (s Status) IsValid() bool {
	return s >= StatusPending && s <= StatusRefunded
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	case StatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

type Booking struct {
	BookingID     int             `db:"booking_id" json:"booking_id"`
	ProductID     int             `db:"product_id" json:"product_id"`
	CustomerEmail string          `db:"customer_email" json:"customer_email"`
	ResellerID    int             `db:"reseller_id" json:"reseller_id"`
	StartDate     time.Time       `db:"start_date" json:"start_date"`
	EndDate       time.Time       `db:"end_date" json:"end_date"`
	TotalPrice    decimal.Decimal `db:"total_price" json:"total_price"`
	Status        Status          `db:"status" json:"status"`
	AccessToken   string          `db:"access_token" json:"-"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
