package product

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

var productCols = []string{"product_id", "reseller_id", "name", "type", "price_per_day", "rating", "created_at"}

func TestCreateProduct(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows(productCols).
		AddRow(1, 5, "Kayak", "equipment", "15.00", "4.5", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products (reseller_id, name, type, price_per_day, rating)")).
		WithArgs(5, "Kayak", "equipment", decimal.RequireFromString("15.00"), decimal.NewNullDecimal(decimal.RequireFromString("4.5"))).
		WillReturnRows(rows)

	p, err := repo.CreateProduct(context.Background(), 5, "Kayak", "equipment",
		decimal.RequireFromString("15.00"), decimal.NewNullDecimal(decimal.RequireFromString("4.5")))
	require.NoError(t, err)
	require.Equal(t, 1, p.ProductID)
	require.True(t, p.Rating.Valid)
}

func TestGetProductByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	rows := sqlmock.NewRows(productCols).
		AddRow(1, 5, "Kayak", "equipment", "15.00", nil, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE product_id = $1")).
		WithArgs(1).
		WillReturnRows(rows)

	p, err := repo.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Kayak", p.Name)
	require.False(t, p.Rating.Valid)
}

func TestListProducts(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE rating >= $1")).
		WithArgs(decimal.Zero).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(60))

	rows := sqlmock.NewRows(productCols).
		AddRow(26, 5, "Kayak", "equipment", "15.00", "4.5", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE rating >= $1 ORDER BY product_id ASC LIMIT $2 OFFSET $3")).
		WithArgs(decimal.Zero, 25, 25).
		WillReturnRows(rows)

	items, total, err := repo.ListProducts(context.Background(), decimal.Zero, 25, 25)
	require.NoError(t, err)
	require.Equal(t, 60, total)
	require.Len(t, items, 1)
	require.Equal(t, 26, items[0].ProductID)
}
