package parseserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"bookportal/models"

	"go.uber.org/zap"
)

// Client is the single choke point for backend communication. Every logical
// operation is one POST against {baseURL}/functions/{endpoint}; there are no
// retries, no timeouts beyond the caller's context and no caching.
type Client struct {
	baseURL       string
	applicationID string
	httpClient    *http.Client
	logger        *zap.Logger
}

// NewClient builds a backend client.
func NewClient(baseURL, applicationID string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		applicationID: applicationID,
		httpClient:    http.DefaultClient,
		logger:        logger,
	}
}

// call performs one RPC attempt and unwraps the {result} success envelope.
// Failures of any kind (transport, status, malformed body) come back as an
// *Error value so callers always receive a discriminated result.
func call[Resp any](ctx context.Context, c *Client, endpoint Endpoint, request any) (*Resp, *Error) {
	url := fmt.Sprintf("%s/functions/%s", c.baseURL, endpoint)
	c.logger.Debug("parse call", zap.String("url", url), zap.String("endpoint", string(endpoint)))

	body, err := json.Marshal(request)
	if err != nil {
		c.logger.Error("failed to encode request", zap.String("endpoint", string(endpoint)), zap.Error(err))
		return nil, &Error{Endpoint: endpoint, Message: FallbackMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Message: FallbackMessage}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Parse-Application-Id", c.applicationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("fetch error", zap.String("endpoint", string(endpoint)), zap.Error(err))
		return nil, &Error{Endpoint: endpoint, Message: FallbackMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Endpoint: endpoint, Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode), Message: FallbackMessage}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := FallbackMessage
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err == nil && eb.Error != "" && eb.Code != 0 {
			message = eb.Error
		} else {
			c.logger.Debug("not a parse error body", zap.String("endpoint", string(endpoint)))
		}
		return nil, &Error{
			Endpoint:   endpoint,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    message,
		}
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Warn("malformed success envelope", zap.String("endpoint", string(endpoint)), zap.Error(err))
		return nil, &Error{Endpoint: endpoint, Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode), Message: FallbackMessage}
	}

	var out Resp
	if len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, &out); err != nil {
			c.logger.Warn("malformed result payload", zap.String("endpoint", string(endpoint)), zap.Error(err))
			return nil, &Error{Endpoint: endpoint, Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode), Message: FallbackMessage}
		}
	}
	return &out, nil
}

// GetBookingData resolves the booking session bundle for a hash.
func (c *Client) GetBookingData(ctx context.Context, hash string) (*models.PortalData, *Error) {
	return call[models.PortalData](ctx, c, EndpointGetBookingData, GetBookingDataRequest{Hash: hash})
}

// GetBookingFromHash fetches the full appointment record for a hash.
func (c *Client) GetBookingFromHash(ctx context.Context, hash string) (*models.Appointment, *Error) {
	return call[models.Appointment](ctx, c, EndpointGetBookingFromHash, GetBookingFromHashRequest{Hash: hash})
}

// ListAvailableSlots returns day-grouped bookable slots for a date window.
func (c *Client) ListAvailableSlots(ctx context.Context, req ListAvailableSlotsRequest) (*ListAvailableSlotsResponse, *Error) {
	return call[ListAvailableSlotsResponse](ctx, c, EndpointListAvailableSlots, req)
}

// BookAppointment reserves a slot and returns the created ids plus the
// PaymentIntent the client must confirm.
func (c *Client) BookAppointment(ctx context.Context, req BookAppointmentRequest) (*BookAppointmentResponse, *Error) {
	return call[BookAppointmentResponse](ctx, c, EndpointBookAppointment, req)
}

// CompleteBooking finalizes a booking after payment confirmation.
func (c *Client) CompleteBooking(ctx context.Context, req CompleteBookingRequest) (*CompleteBookingResponse, *Error) {
	return call[CompleteBookingResponse](ctx, c, EndpointCompleteBooking, req)
}

// CancelBooking cancels the appointment behind a hash.
func (c *Client) CancelBooking(ctx context.Context, hash string) (*CancelBookingResponse, *Error) {
	return call[CancelBookingResponse](ctx, c, EndpointCancelBooking, CancelBookingRequest{Hash: hash})
}

// Ping checks backend reachability via the Parse health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Parse-Application-Id", c.applicationID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("parseserver: health check returned %d", resp.StatusCode)
	}
	return nil
}
