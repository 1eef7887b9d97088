package product

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   int                 `db:"product_id" json:"product_id"`
	ResellerID  int                 `db:"reseller_id" json:"reseller_id"`
	Name        string              `db:"name" json:"name"`
	Type        string              `db:"type" json:"type"`
	PricePerDay decimal.Decimal     `db:"price_per_day" json:"price_per_day"`
	Rating      decimal.NullDecimal `db:"rating" json:"rating"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
}

type CreateProductRequest struct {
	ResellerID  int         `json:"reseller_id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Type        string      `json:"type" validate:"required"`
	PricePerDay json.Number `json:"price_per_day" validate:"required"`
	Rating      json.Number `json:"rating"`
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}
