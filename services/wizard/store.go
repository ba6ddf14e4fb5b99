package wizard

import (
	"errors"
	"net/url"
	"sync"
	"time"

	"bookportal/models"
	"bookportal/utils"

	"go.uber.org/zap"
)

// DefaultPrimaryColor is applied when the portal styles carry no primary.
const DefaultPrimaryColor = "#d97626"

// AppointmentTypeIDParam is the single query parameter the portal persists
// selections into, so a deep link restores the appointment type.
const AppointmentTypeIDParam = "appointmentTypeId"

// ErrNoPortalData is returned by Init when no session bundle is supplied.
var ErrNoPortalData = errors.New("wizard: no portal data provided")

// ParamStore abstracts the query-string the wizard syncs selections into.
type ParamStore interface {
	Get(key string) string
	Set(key, value string)
}

// URLParams adapts url.Values to ParamStore.
type URLParams struct {
	Values url.Values
}

func (p *URLParams) Get(key string) string { return p.Values.Get(key) }
func (p *URLParams) Set(key, value string) { p.Values.Set(key, value) }

// Snapshot is the read-only view handed to the presentation layer. Derived
// fields are recomputed from current state on every call, never stored.
type Snapshot struct {
	Step            Step                    `json:"step"`
	StepTitle       string                  `json:"stepTitle"`
	StepIndex       int                     `json:"stepIndex"`
	CanGoNext       bool                    `json:"canGoNext"`
	CanGoBack       bool                    `json:"canGoBack"`
	AppointmentType *models.AppointmentType `json:"appointmentType"`
	Practitioner    *models.Practitioner    `json:"practitioner"`
	Slot            models.SlotRange        `json:"slot"`
	ClientForm      models.ClientForm       `json:"clientForm"`
	Theme           models.Theme            `json:"theme"`
	Currency        string                  `json:"currency"`
	CurrencySymbol  string                  `json:"currencySymbol"`
	TimeZone        string                  `json:"timeZone"`
}

// Store is the booking wizard state machine. It owns the step sequence and
// all user selections; everything derived (navigability, titles) is a pure
// function of the current state. Construct one per booking session and pass
// it explicitly; there is no package-level instance.
type Store struct {
	mu sync.Mutex

	portalData *models.PortalData
	params     ParamStore
	images     *utils.ImageResolver
	logger     *zap.Logger

	timeZone       string
	currency       string
	currencySymbol string
	theme          models.Theme

	appointmentType *models.AppointmentType
	practitioner    *models.Practitioner
	slot            models.SlotRange
	clientForm      models.ClientForm

	currentStep Step
}

// DefaultClientDetails mirrors the empty form the UI starts from.
func DefaultClientDetails() models.ClientDetails {
	return models.ClientDetails{
		PhoneNumber: models.PhoneNumber{
			CountryCode:        "GB",
			CountryCallingCode: "44",
		},
		ConfirmationItems: []string{},
	}
}

// NewStore builds an empty wizard positioned on the first step.
func NewStore(params ParamStore, images *utils.ImageResolver, logger *zap.Logger) *Store {
	return &Store{
		params:         params,
		images:         images,
		logger:         logger,
		timeZone:       utils.UserTimeZone(),
		currency:       utils.DefaultCurrency,
		currencySymbol: utils.DefaultCurrencySymbol,
		clientForm: models.ClientForm{
			Data:    DefaultClientDetails(),
			Errors:  map[string][]string{},
			IsValid: true,
		},
		currentStep: StepSelectAppointmentType,
	}
}

// Init hydrates the wizard from the backend session bundle: restores an
// appointment-type selection from the query string when it names a known
// type, resolves the theme and picks up the charging currency.
func (s *Store) Init(portalData *models.PortalData) error {
	if portalData == nil {
		return ErrNoPortalData
	}
	s.mu.Lock()
	s.portalData = portalData
	s.mu.Unlock()

	if id := s.params.Get(AppointmentTypeIDParam); id != "" {
		for i := range portalData.AppointmentTypes {
			if portalData.AppointmentTypes[i].ObjectID == id {
				s.logger.Debug("restoring appointment type from query", zap.String("appointmentTypeId", id))
				s.SelectAppointmentType(portalData.AppointmentTypes[i])
				break
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if portalData.PortalStyles != nil {
		logo := portalData.PortalStyles.Logo
		if s.images != nil {
			logo = s.images.ExternalImageURL(logo)
		}
		primary := portalData.PortalStyles.StyleMap.Primary
		if primary == "" {
			primary = DefaultPrimaryColor
		}
		s.theme = models.Theme{Logo: logo, PrimaryColor: primary}
	}

	// TODO select time slot from query params, needs validation from backend.
	if portalData.Stripe.Currency != "" {
		s.currency = portalData.Stripe.Currency
		s.currencySymbol = utils.CurrencySymbol(portalData.Stripe.Currency)
	}
	return nil
}

// SelectAppointmentType records the chosen type, mirrors it into the query
// string and invalidates the selected slot. Re-selecting the current type is
// a no-op so the slot survives.
func (s *Store) SelectAppointmentType(appointmentType models.AppointmentType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.appointmentType != nil && s.appointmentType.ObjectID == appointmentType.ObjectID {
		return
	}
	s.appointmentType = &appointmentType
	s.params.Set(AppointmentTypeIDParam, appointmentType.ObjectID)
	// invalidate the selected slot
	s.slot = models.SlotRange{}
}

// SelectPractitioner records the chosen practitioner and invalidates the
// selected slot; idempotent on the practitioner id.
func (s *Store) SelectPractitioner(practitioner models.Practitioner) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.practitioner != nil && s.practitioner.ObjectID == practitioner.ObjectID {
		return
	}
	s.practitioner = &practitioner
	// invalidate the selected slot
	s.slot = models.SlotRange{}
}

// SelectClientDetails replaces the client form wholesale; the caller is
// responsible for having validated it.
func (s *Store) SelectClientDetails(form models.ClientForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientForm = form
}

// SelectSlot sets both slot bounds together.
func (s *Store) SelectSlot(start, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = models.SlotRange{Start: &start, End: &end}
}

// Next advances one step; at the last step it stays put.
func (s *Store) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = stepAt(s.currentStep.Index() + 1)
}

// Previous moves one step back; at the first step it stays put.
func (s *Store) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = stepAt(s.currentStep.Index() - 1)
}

// CurrentStep returns the step the wizard is on.
func (s *Store) CurrentStep() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// CanGoBack is true everywhere except the first step.
func (s *Store) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep != StepSelectAppointmentType
}

// CanGoNext derives forward navigability from the current selections only.
func (s *Store) CanGoNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canGoNext()
}

func (s *Store) canGoNext() bool {
	switch s.currentStep {
	case StepSelectAppointmentType:
		return s.appointmentType != nil
	case StepSelectPractitioner:
		return s.practitioner != nil
	case StepSelectDateTime:
		return s.slot.IsSet()
	case StepFillInClientDetails:
		return s.clientForm.IsValid
	default:
		// confirmation-and-payment is terminal
		return false
	}
}

// AppointmentDateAndTime formats the selected start for display, empty when
// no slot is selected.
func (s *Store) AppointmentDateAndTime() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot.Start == nil {
		return ""
	}
	return s.slot.Start.Format("Jan 2, 2006 3:04 PM")
}

// Snapshot returns an immutable view of the wizard for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Step:            s.currentStep,
		StepTitle:       s.currentStep.Title(),
		StepIndex:       s.currentStep.Index(),
		CanGoNext:       s.canGoNext(),
		CanGoBack:       s.currentStep != StepSelectAppointmentType,
		AppointmentType: s.appointmentType,
		Practitioner:    s.practitioner,
		Slot:            s.slot,
		ClientForm:      s.clientForm,
		Theme:           s.theme,
		Currency:        s.currency,
		CurrencySymbol:  s.currencySymbol,
		TimeZone:        s.timeZone,
	}
}
