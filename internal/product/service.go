package product

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price_per_day must be a decimal number")
	ErrInvalidRating   = errors.New("rating must be a decimal number")
)

// PageSize is the fixed number of products per listing page.
const PageSize = 25

var (
	minRatingFloor = decimal.Zero
	minRatingCeil  = decimal.NewFromInt(5)
)

type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context, pageParam, minRatingParam string) (*ProductPage, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	pricePerDay, err := decimal.NewFromString(req.PricePerDay.String())
	if err != nil {
		return nil, ErrInvalidPrice
	}

	var rating decimal.NullDecimal
	if req.Rating != "" {
		parsed, err := decimal.NewFromString(req.Rating.String())
		if err != nil {
			return nil, ErrInvalidRating
		}
		rating = decimal.NewNullDecimal(parsed)
	}

	return s.repo.CreateProduct(ctx, req.ResellerID, req.Name, req.Type, pricePerDay, rating)
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListProducts parses the raw query parameters itself so every caller gets
// the same defaults: page numbers below 1 or non-numeric fall back to 1, and
// min_rating is clamped to [0, 5] with invalid values treated as 0.
func (s *service) ListProducts(ctx context.Context, pageParam, minRatingParam string) (*ProductPage, error) {
	page := ParsePage(pageParam)
	minRating := ClampMinRating(minRatingParam)

	offset := (page - 1) * PageSize
	items, total, err := s.repo.ListProducts(ctx, minRating, offset, PageSize)
	if err != nil {
		return nil, err
	}

	return &ProductPage{Total: total, Items: items}, nil
}

func ParsePage(param string) int {
	page, err := strconv.Atoi(param)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func ClampMinRating(param string) decimal.Decimal {
	rating, err := decimal.NewFromString(param)
	if err != nil {
		return minRatingFloor
	}
	if rating.LessThan(minRatingFloor) {
		return minRatingFloor
	}
	if rating.GreaterThan(minRatingCeil) {
		return minRatingCeil
	}
	return rating
}
