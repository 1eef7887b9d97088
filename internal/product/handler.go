package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentdesk/internal/api"
	"rentdesk/internal/metrics"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateProduct godoc
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      CreateProductRequest  true  "Product fields"
// @Success      201      {object}  Product
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPrice) || errors.Is(err, ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RecordProductCreated()

	c.JSON(http.StatusCreated, product)
}

// GetProduct godoc
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        productID  path      int  true  "Product ID"
// @Success      200        {object}  Product
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /api/products/{productID} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts godoc
// @Summary      List products
// @Description  Paginated listing, 25 items per page, optionally filtered by minimum rating.
// @Tags         products
// @Produce      json
// @Param        page        query     int     false  "1-indexed page, defaults to 1"
// @Param        min_rating  query     string  false  "Minimum rating, clamped to [0, 5]"
// @Success      200         {object}  ProductPage
// @Failure      500         {object}  gin.H
// @Router       /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	page, err := h.service.ListProducts(c.Request.Context(), c.DefaultQuery("page", "1"), c.Query("min_rating"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}
