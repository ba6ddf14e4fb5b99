package handlers

import (
	"net/http"

	"bookportal/parseserver"
	"bookportal/services/payment"
	"bookportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler hosts the write-operation gateways. Each gateway
// deserializes the inbound body into the operation's fixed request shape,
// forwards it to the RPC client and returns the {data, error} envelope
// verbatim.
type BookingHandler struct {
	client   *parseserver.Client
	guard    *redis.Client // nil disables the in-flight guard
	payments payment.Verifier
	logger   *zap.Logger
}

// NewBookingHandler builds the gateway handler. guard and payments may be
// nil; the gateways are then pure pass-throughs.
func NewBookingHandler(client *parseserver.Client, guard *redis.Client, payments payment.Verifier, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{client: client, guard: guard, payments: payments, logger: logger}
}

func envelope(c *gin.Context, data any, rpcErr *parseserver.Error) {
	if rpcErr != nil {
		c.JSON(http.StatusOK, gin.H{"data": nil, "error": rpcErr})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "error": nil})
}

// ListAvailableSlots proxies portal-list-available-slots.
func (h *BookingHandler) ListAvailableSlots(c *gin.Context) {
	var req parseserver.ListAvailableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	data, rpcErr := h.client.ListAvailableSlots(c.Request.Context(), req)
	envelope(c, data, rpcErr)
}

// BookAppointment proxies portal-book-appointment. While a booking call for
// a hash is in flight, further submissions for the same hash are rejected
// so a double-click cannot double-book.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req parseserver.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.guard != nil && req.Hash != "" {
		key := utils.BookingGuardPrefix + req.Hash
		ok, err := h.guard.SetNX(ctx, key, 1, utils.BookingGuardTTL).Result()
		if err != nil {
			// the guard is best-effort; a Redis outage must not block bookings
			h.logger.Warn("booking guard unavailable", zap.Error(err))
		} else if !ok {
			c.JSON(http.StatusConflict, gin.H{"data": nil, "error": &parseserver.Error{
				Endpoint:   parseserver.EndpointBookAppointment,
				Status:     http.StatusConflict,
				StatusText: http.StatusText(http.StatusConflict),
				Message:    "A booking for this session is already in progress",
			}})
			return
		} else {
			defer h.guard.Del(ctx, key)
		}
	}

	data, rpcErr := h.client.BookAppointment(ctx, req)
	envelope(c, data, rpcErr)
}

// CompleteBooking proxies portal-complete-booking. When a Stripe verifier
// is configured the referenced PaymentIntent must be confirmed first.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	var req parseserver.CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.payments != nil && req.PaymentIntentID != "" {
		if err := h.payments.VerifyIntent(ctx, req.PaymentIntentID); err != nil {
			h.logger.Warn("refusing to complete unpaid booking", zap.Error(err))
			c.JSON(http.StatusPaymentRequired, gin.H{"data": nil, "error": &parseserver.Error{
				Endpoint:   parseserver.EndpointCompleteBooking,
				Status:     http.StatusPaymentRequired,
				StatusText: http.StatusText(http.StatusPaymentRequired),
				Message:    "Payment has not been confirmed",
			}})
			return
		}
	}

	data, rpcErr := h.client.CompleteBooking(ctx, req)
	envelope(c, data, rpcErr)
}

// CancelBooking proxies portal-cancel-booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req parseserver.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	data, rpcErr := h.client.CancelBooking(c.Request.Context(), req.Hash)
	envelope(c, data, rpcErr)
}

// GetBookingFromHash proxies portal-get-booking-from-hash for the cancel/
// manage page.
func (h *BookingHandler) GetBookingFromHash(c *gin.Context) {
	var req parseserver.GetBookingFromHashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	data, rpcErr := h.client.GetBookingFromHash(c.Request.Context(), req.Hash)
	envelope(c, data, rpcErr)
}
