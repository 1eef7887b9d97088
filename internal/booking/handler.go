package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentdesk/internal/email"
	"rentdesk/internal/logger"
	"rentdesk/internal/metrics"
	"rentdesk/internal/reseller"
)

// notifyTimeout bounds the synchronous notification call so a slow queue can
// never leave a booking response pending.
const notifyTimeout = 2 * time.Second

// Notifier is the outbound mail contract the handler depends on. Failures are
// swallowed at the call site and never change the HTTP outcome.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to string, f email.BookingMailFields) error
	SendBookingCancellation(ctx context.Context, to string, f email.BookingMailFields) error
}

type Handler struct {
	service   Service
	resellers reseller.Repository
	notifier  Notifier
}

func NewHandler(service Service, resellers reseller.Repository, notifier Notifier) *Handler {
	return &Handler{
		service:   service,
		resellers: resellers,
		notifier:  notifier,
	}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Creates a booking with status pending and queues a confirmation email.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      CreateBookingRequest  true  "Booking fields"
// @Success      201      {object}  Booking
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /api/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	dto, err := NewBookingDTO(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RecordBookingCreated()
	h.notifyConfirmation(booking)

	c.JSON(http.StatusCreated, booking)
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /api/bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookingByToken godoc
// @Summary      Get booking by access token
// @Description  Token-based lookup for holders of the opaque booking reference.
// @Tags         bookings
// @Produce      json
// @Param        token  path      string  true  "Access token"
// @Success      200    {object}  Booking
// @Failure      404    {object}  gin.H
// @Router       /api/bookings/token/{token} [get]
func (h *Handler) GetBookingByToken(c *gin.Context) {
	token := c.Param("token")

	booking, err := h.service.GetBookingByToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookings godoc
// @Summary      List bookings for a customer
// @Tags         bookings
// @Produce      json
// @Param        customer_email  query     string  true  "Customer email"
// @Success      200             {array}   Booking
// @Failure      400             {object}  gin.H
// @Failure      500             {object}  gin.H
// @Router       /api/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	customerEmail := c.Query("customer_email")
	if customerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_email query parameter is required"})
		return
	}

	bookings, err := h.service.GetBookings(c.Request.Context(), customerEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Transitions the booking to cancelled. Idempotent: cancelling an already cancelled booking returns the current record.
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "Booking ID"
// @Success      200        {object}  Booking
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /api/bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	booking, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.RecordBookingCancellation()
	h.notifyCancellation(booking)

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking godoc
// @Summary      Update booking
// @Description  Not implemented yet; the payload is validated and rejected.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int                   true  "Booking ID"
// @Param        booking    body      CreateBookingRequest  true  "Booking fields"
// @Failure      400        {object}  gin.H
// @Failure      501        {object}  gin.H
// @Router       /api/bookings/{bookingID} [put]
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	dto, err := NewBookingDTO(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.UpdateBooking(c.Request.Context(), id, dto); err != nil {
		if errors.Is(err, ErrNotImplemented) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "Booking update is not implemented"})
			return
		}
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking_id": id})
}

func (h *Handler) notifyConfirmation(b *Booking) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.notifier.SendBookingConfirmation(ctx, b.CustomerEmail, h.mailFields(ctx, b)); err != nil {
		logger.Errorf("Failed to queue confirmation email for booking %d: %v", b.BookingID, err)
		metrics.RecordEmail("confirmation", "failed")
		return
	}
	metrics.RecordEmail("confirmation", "queued")
}

func (h *Handler) notifyCancellation(b *Booking) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := h.notifier.SendBookingCancellation(ctx, b.CustomerEmail, h.mailFields(ctx, b)); err != nil {
		logger.Errorf("Failed to queue cancellation email for booking %d: %v", b.BookingID, err)
		metrics.RecordEmail("cancellation", "failed")
		return
	}
	metrics.RecordEmail("cancellation", "queued")
}

// mailFields assembles the template substitutions. The reseller lookup is
// best effort: a missing record means an empty display name, never a skipped
// notification.
func (h *Handler) mailFields(ctx context.Context, b *Booking) email.BookingMailFields {
	resellerName := ""
	if h.resellers != nil {
		if r, err := h.resellers.GetResellerByID(ctx, b.ResellerID); err == nil {
			resellerName = r.Name
		}
	}

	return email.BookingMailFields{
		BookingID:    b.BookingID,
		ResellerName: resellerName,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		AccessToken:  b.AccessToken,
	}
}
