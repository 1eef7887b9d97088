package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductService) GetProduct(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, pageParam, minRatingParam string) (*ProductPage, error) {
	args := m.Called(ctx, pageParam, minRatingParam)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductPage), args.Error(1)
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/products", h.CreateProduct)
	r.GET("/api/products", h.ListProducts)
	r.GET("/api/products/:productID", h.GetProduct)
	return r
}

func TestCreateProductHandler(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	created := &Product{ProductID: 1, ResellerID: 5, Name: "Kayak", Type: "equipment", PricePerDay: decimal.RequireFromString("15.00")}
	svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req CreateProductRequest) bool {
		return req.Name == "Kayak" && req.ResellerID == 5
	})).Return(created, nil)

	body := `{"reseller_id": 5, "name": "Kayak", "type": "equipment", "price_per_day": "15.00", "rating": 4.5}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"product_id":1`)
}

func TestCreateProductHandler_InvalidPrice(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	svc.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, ErrInvalidPrice)

	body := `{"reseller_id": 5, "name": "Kayak", "type": "equipment", "price_per_day": "15.00"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductHandler_MissingFields(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name": "Kayak"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	assert.Contains(t, w.Body.String(), "PricePerDay is required")
	svc.AssertNotCalled(t, "CreateProduct")
}

func TestGetProductHandler_NotFound(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	svc.On("GetProduct", mock.Anything, 404).Return(nil, ErrProductNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/404", nil)
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestGetProductHandler_StorageError(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	svc.On("GetProduct", mock.Anything, 1).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestListProductsHandler(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	page := &ProductPage{Total: 60, Items: []Product{{ProductID: 26, Name: "Kayak"}}}
	svc.On("ListProducts", mock.Anything, "2", "4.5").Return(page, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&min_rating=4.5", nil)
	setupRouter(h).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, float64(60), payload["total"])
	assert.Len(t, payload["items"], 1)
}

func TestListProductsHandler_DefaultPage(t *testing.T) {
	svc := new(MockProductService)
	h := NewHandler(svc)

	svc.On("ListProducts", mock.Anything, "1", "").Return(&ProductPage{Total: 0, Items: []Product{}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
