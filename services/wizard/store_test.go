package wizard

import (
	"testing"
	"time"

	"bookportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapParams struct {
	values map[string]string
}

func newMapParams() *mapParams {
	return &mapParams{values: map[string]string{}}
}

func (p *mapParams) Get(key string) string { return p.values[key] }
func (p *mapParams) Set(key, value string) { p.values[key] = value }

func newTestStore() (*Store, *mapParams) {
	params := newMapParams()
	return NewStore(params, nil, zap.NewNop()), params
}

func appointmentType(id string) models.AppointmentType {
	return models.AppointmentType{ObjectID: id, Name: "Consultation", Duration: 30, Price: 50}
}

func practitioner(id string) models.Practitioner {
	return models.Practitioner{ObjectID: id, FirstName: "Alex", LastName: "Reid"}
}

func selectSlot(s *Store) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.SelectSlot(start, start.Add(30*time.Minute))
}

func TestSelectAppointmentTypeClearsSlot(t *testing.T) {
	s, params := newTestStore()

	s.SelectAppointmentType(appointmentType("t1"))
	s.SelectPractitioner(practitioner("p1"))
	selectSlot(s)
	require.True(t, s.Snapshot().Slot.IsSet())

	s.SelectAppointmentType(appointmentType("t2"))

	snap := s.Snapshot()
	assert.Nil(t, snap.Slot.Start)
	assert.Nil(t, snap.Slot.End)
	assert.Equal(t, "t2", snap.AppointmentType.ObjectID)
	assert.Equal(t, "t2", params.Get(AppointmentTypeIDParam))
}

func TestReselectingSameAppointmentTypeKeepsSlot(t *testing.T) {
	s, _ := newTestStore()

	s.SelectAppointmentType(appointmentType("t1"))
	selectSlot(s)

	s.SelectAppointmentType(appointmentType("t1"))

	assert.True(t, s.Snapshot().Slot.IsSet())
}

func TestSelectPractitionerClearsSlot(t *testing.T) {
	s, _ := newTestStore()

	s.SelectPractitioner(practitioner("p1"))
	selectSlot(s)

	s.SelectPractitioner(practitioner("p2"))
	assert.False(t, s.Snapshot().Slot.IsSet())

	// same practitioner again is a no-op
	selectSlot(s)
	s.SelectPractitioner(practitioner("p2"))
	assert.True(t, s.Snapshot().Slot.IsSet())
}

func TestNextPreviousRoundTrip(t *testing.T) {
	for i := 0; i < len(Steps)-1; i++ {
		s, _ := newTestStore()
		for j := 0; j < i; j++ {
			s.Next()
		}
		origin := s.CurrentStep()

		s.Next()
		s.Previous()

		assert.Equal(t, origin, s.CurrentStep(), "round trip from step %d", i)
	}
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	s, _ := newTestStore()

	s.Previous()
	assert.Equal(t, StepSelectAppointmentType, s.CurrentStep())

	for i := 0; i < len(Steps)+3; i++ {
		s.Next()
	}
	assert.Equal(t, StepConfirmationAndPayment, s.CurrentStep())
}

func TestCanGoBack(t *testing.T) {
	s, _ := newTestStore()
	assert.False(t, s.CanGoBack())

	s.Next()
	assert.True(t, s.CanGoBack())
}

func TestCanGoNextPerStep(t *testing.T) {
	s, _ := newTestStore()

	// select-appointment-type: gated on a selected type
	assert.False(t, s.CanGoNext())
	s.SelectAppointmentType(appointmentType("t1"))
	assert.True(t, s.CanGoNext())

	// select-practitioner
	s.Next()
	assert.False(t, s.CanGoNext())
	s.SelectPractitioner(practitioner("p1"))
	assert.True(t, s.CanGoNext())

	// select-date-time: both bounds must be present
	s.Next()
	assert.False(t, s.CanGoNext())
	selectSlot(s)
	assert.True(t, s.CanGoNext())

	// fillin-client-details: gated on form validity
	s.Next()
	s.SelectClientDetails(models.ClientForm{IsValid: false})
	assert.False(t, s.CanGoNext())
	s.SelectClientDetails(models.ClientForm{IsValid: true})
	assert.True(t, s.CanGoNext())

	// confirmation-and-payment is terminal
	s.Next()
	assert.Equal(t, StepConfirmationAndPayment, s.CurrentStep())
	assert.False(t, s.CanGoNext())
}

func TestInitRequiresPortalData(t *testing.T) {
	s, _ := newTestStore()
	assert.ErrorIs(t, s.Init(nil), ErrNoPortalData)
}

func TestInitHydratesFromQueryParam(t *testing.T) {
	params := newMapParams()
	params.Set(AppointmentTypeIDParam, "t1")
	s := NewStore(params, nil, zap.NewNop())

	err := s.Init(&models.PortalData{
		Hash:             "abc",
		AppointmentTypes: []models.AppointmentType{appointmentType("t1"), appointmentType("t2")},
		Stripe:           models.StripeConfig{Currency: "usd"},
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.NotNil(t, snap.AppointmentType)
	assert.Equal(t, "t1", snap.AppointmentType.ObjectID)
	assert.Equal(t, "usd", snap.Currency)
	assert.Equal(t, "$", snap.CurrencySymbol)
}

func TestInitIgnoresUnknownQueryParam(t *testing.T) {
	params := newMapParams()
	params.Set(AppointmentTypeIDParam, "nope")
	s := NewStore(params, nil, zap.NewNop())

	err := s.Init(&models.PortalData{
		AppointmentTypes: []models.AppointmentType{appointmentType("t1")},
	})
	require.NoError(t, err)
	assert.Nil(t, s.Snapshot().AppointmentType)
}

func TestInitDefaultsCurrencyAndTheme(t *testing.T) {
	s, _ := newTestStore()

	err := s.Init(&models.PortalData{
		AppointmentTypes: []models.AppointmentType{},
		PortalStyles:     &models.PortalStyles{Logo: "logo.png"},
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, "gbp", snap.Currency)
	assert.Equal(t, "£", snap.CurrencySymbol)
	assert.Equal(t, DefaultPrimaryColor, snap.Theme.PrimaryColor)
	assert.Equal(t, "logo.png", snap.Theme.Logo)
}

func TestStepMetadata(t *testing.T) {
	assert.Equal(t, "Select an appointment type", StepSelectAppointmentType.Title())
	assert.Equal(t, 0, StepSelectAppointmentType.Index())
	assert.Equal(t, 4, StepConfirmationAndPayment.Index())
	assert.Equal(t, -1, Step("bogus").Index())
}

func TestAppointmentDateAndTime(t *testing.T) {
	s, _ := newTestStore()
	assert.Equal(t, "", s.AppointmentDateAndTime())

	start := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	s.SelectSlot(start, start.Add(time.Hour))
	assert.Equal(t, "Mar 10, 2026 9:30 AM", s.AppointmentDateAndTime())
}
