package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks errors produced by the DTO validation gate.
var ErrInvalidInput = errors.New("invalid booking input")

// CreateBookingRequest is the raw JSON payload for creating or updating a
// booking. Numeric fields accept both JSON numbers and strings; all parsing
// happens in NewBookingDTO.
type CreateBookingRequest struct {
	ProductID     json.Number `json:"product_id"`
	CustomerEmail string      `json:"customer_email"`
	ResellerID    json.Number `json:"reseller_id"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	TotalPrice    json.Number `json:"total_price"`
}

// BookingDTO is a validated bundle of fields required to create a booking.
type BookingDTO struct {
	ProductID     int
	CustomerEmail string
	ResellerID    int
	StartDate     time.Time
	EndDate       time.Time
	TotalPrice    decimal.Decimal
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODate(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO-8601 date-time: %q", value)
}

// NewBookingDTO is the single validation gate for booking input. It only
// checks that fields parse; date ordering and price sign are deliberately
// not validated.
func NewBookingDTO(req CreateBookingRequest) (*BookingDTO, error) {
	productID, err := toInt(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id must be an integer", ErrInvalidInput)
	}

	resellerID, err := toInt(req.ResellerID)
	if err != nil {
		return nil, fmt.Errorf("%w: reseller_id must be an integer", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return nil, fmt.Errorf("%w: customer_email is required", ErrInvalidInput)
	}

	startDate, err := parseISODate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be an ISO-8601 date-time", ErrInvalidInput)
	}

	endDate, err := parseISODate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be an ISO-8601 date-time", ErrInvalidInput)
	}

	totalPrice, err := decimal.NewFromString(req.TotalPrice.String())
	if err != nil {
		return nil, fmt.Errorf("%w: total_price must be a decimal number", ErrInvalidInput)
	}

	return &BookingDTO{
		ProductID:     productID,
		CustomerEmail: req.CustomerEmail,
		ResellerID:    resellerID,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalPrice:    totalPrice,
	}, nil
}

func toInt(n json.Number) (int, error) {
	v, err := n.Int64()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
