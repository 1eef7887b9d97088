package product

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreateProduct(ctx context.Context, resellerID int, name, productType string, pricePerDay decimal.Decimal, rating decimal.NullDecimal) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context, minRating decimal.Decimal, offset, limit int) ([]Product, int, error)
}
