package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookportal/models"
	"bookportal/parseserver"
	"bookportal/services/portal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingDataClient struct {
	calls int
	data  *models.PortalData
	err   *parseserver.Error
}

func (s *stubBookingDataClient) GetBookingData(ctx context.Context, hash string) (*models.PortalData, *parseserver.Error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func newPortalRouter(client *stubBookingDataClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPortalHandler(portal.NewService(client, nil, zap.NewNop()), zap.NewNop())
	r := gin.New()
	r.GET("/invalid-request", h.InvalidRequest)
	r.GET("/:hash", h.GetBookingPage)
	return r
}

func TestGetBookingPageRedirectsShortHash(t *testing.T) {
	client := &stubBookingDataClient{}
	r := newPortalRouter(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abc12", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/invalid-request", w.Header().Get("Location"))
	assert.Equal(t, 0, client.calls, "short hashes must not hit the backend")
}

func TestGetBookingPageSurfacesBackendStatus(t *testing.T) {
	client := &stubBookingDataClient{err: &parseserver.Error{
		Endpoint: parseserver.EndpointGetBookingData,
		Status:   http.StatusNotFound,
		Message:  "Booking not found",
	}}
	r := newPortalRouter(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abcdefghij", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}

func TestGetBookingPageReturnsSessionWithHash(t *testing.T) {
	client := &stubBookingDataClient{data: &models.PortalData{
		AppointmentTypes: []models.AppointmentType{{ObjectID: "t1"}},
		Stripe:           models.StripeConfig{Currency: "usd"},
	}}
	r := newPortalRouter(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/abcdefghij?appointmentTypeId=t1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var session portal.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "abcdefghij", session.Data.Hash)
	require.NotNil(t, session.Wizard.AppointmentType)
	assert.Equal(t, "t1", session.Wizard.AppointmentType.ObjectID)
	assert.Equal(t, "usd", session.Wizard.Currency)
}

func TestInvalidRequestPage(t *testing.T) {
	r := newPortalRouter(&stubBookingDataClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invalid-request", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not valid")
}
