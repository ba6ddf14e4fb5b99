package portal

import (
	"context"
	"net/url"
	"testing"

	"bookportal/models"
	"bookportal/parseserver"
	"bookportal/services/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	calls int
	data  *models.PortalData
	err   *parseserver.Error
}

func (s *stubClient) GetBookingData(ctx context.Context, hash string) (*models.PortalData, *parseserver.Error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func TestBootstrapRejectsShortHashWithoutNetworkCall(t *testing.T) {
	client := &stubClient{}
	svc := NewService(client, nil, zap.NewNop())

	session, err := svc.Bootstrap(context.Background(), "abc12", url.Values{})

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrInvalidHash)
	assert.Equal(t, 0, client.calls)
}

func TestBootstrapSurfacesBackendError(t *testing.T) {
	client := &stubClient{err: &parseserver.Error{
		Endpoint: parseserver.EndpointGetBookingData,
		Status:   404,
		Message:  "Booking not found",
	}}
	svc := NewService(client, nil, zap.NewNop())

	session, err := svc.Bootstrap(context.Background(), "abcdefghij", url.Values{})

	assert.Nil(t, session)
	var rpcErr *parseserver.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 404, rpcErr.Status)
	assert.Equal(t, "Booking not found", rpcErr.Message)
	assert.Equal(t, 1, client.calls)
}

func TestBootstrapMergesHashAndHydratesWizard(t *testing.T) {
	client := &stubClient{data: &models.PortalData{
		AppointmentTypes: []models.AppointmentType{{ObjectID: "t1", Name: "Consultation"}},
		User:             models.Practitioner{ObjectID: "p1"},
		Stripe:           models.StripeConfig{PublicKey: "pk_test", Currency: "usd"},
	}}
	svc := NewService(client, nil, zap.NewNop())

	query := url.Values{}
	query.Set(wizard.AppointmentTypeIDParam, "t1")
	session, err := svc.Bootstrap(context.Background(), "abcdefghij", query)

	require.NoError(t, err)
	assert.Equal(t, "abcdefghij", session.Data.Hash)
	require.NotNil(t, session.Wizard.AppointmentType)
	assert.Equal(t, "t1", session.Wizard.AppointmentType.ObjectID)
	assert.Equal(t, "usd", session.Wizard.Currency)
	assert.Equal(t, wizard.StepSelectAppointmentType, session.Wizard.Step)
}
