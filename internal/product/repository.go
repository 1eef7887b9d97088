package product

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const productColumns = `product_id, reseller_id, name, type, price_per_day, rating, created_at`

func (r *repository) CreateProduct(ctx context.Context, resellerID int, name, productType string, pricePerDay decimal.Decimal, rating decimal.NullDecimal) (*Product, error) {
	query := `
		INSERT INTO products (reseller_id, name, type, price_per_day, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	var p Product
	err := r.db.GetContext(ctx, &p, query, resellerID, name, productType, pricePerDay, rating)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1
	`

	var p Product
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// ListProducts returns one page plus the filtered total. Rows with a NULL
// rating never match the filter, matching the stored behavior of the rating
// comparison.
func (r *repository) ListProducts(ctx context.Context, minRating decimal.Decimal, offset, limit int) ([]Product, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM products
		WHERE rating >= $1
	`

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, minRating); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE rating >= $1
		ORDER BY product_id ASC
		LIMIT $2 OFFSET $3
	`

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, query, minRating, limit, offset); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
