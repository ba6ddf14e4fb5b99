package parseserver

import "bookportal/models"

// Endpoint names the closed set of backend cloud functions the portal may
// call. Each endpoint has exactly one request and one response shape,
// enforced by the typed methods on Client.
type Endpoint string

const (
	EndpointBookAppointment    Endpoint = "portal-book-appointment"
	EndpointCancelBooking      Endpoint = "portal-cancel-booking"
	EndpointCompleteBooking    Endpoint = "portal-complete-booking"
	EndpointGetBookingData     Endpoint = "portal-get-booking-data"
	EndpointGetBookingFromHash Endpoint = "portal-get-booking-from-hash"
	EndpointListAvailableSlots Endpoint = "portal-list-available-slots"
)

// PhoneNumber is the flattened phone shape book-appointment expects on the
// wire. It is narrower than the form widget's models.PhoneNumber.
type PhoneNumber struct {
	CountryCode         string `json:"countryCode"`
	DialCode            string `json:"dialCode"`
	E164Number          string `json:"e164Number"`
	InternationalNumber string `json:"internationalNumber"`
	NationalNumber      string `json:"nationalNumber"`
	Number              string `json:"number"`
}

type BookAppointmentRequest struct {
	Hash              string      `json:"hash"`
	AppointmentTypeID string      `json:"appointmentTypeId"`
	StartDate         string      `json:"startDate"`
	EndDate           string      `json:"endDate"`
	TimeZone          string      `json:"timeZone"`
	Email             string      `json:"email"`
	Name              string      `json:"name"`
	PhoneNumber       PhoneNumber `json:"phoneNumber"`
}

// ListAvailableSlotsRequest asks for bookable slots in a date window. Hash
// may be empty when the caller is not a portal session; the backend then
// resolves the practitioner another way.
type ListAvailableSlotsRequest struct {
	Hash              *string `json:"hash"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	AppointmentTypeID string  `json:"appointmentTypeId"`
	UserTimeZone      string  `json:"userTimeZone"`
}

type CancelBookingRequest struct {
	Hash string `json:"hash"`
}

type CompleteBookingRequest struct {
	ClientID        string `json:"clientId"`
	AppointmentID   string `json:"appointmentId"`
	PaymentIntentID string `json:"paymentIntentId"`
	Hash            string `json:"hash"`
}

type GetBookingDataRequest struct {
	Hash string `json:"hash"`
}

type GetBookingFromHashRequest struct {
	Hash string `json:"hash"`
}

// PaymentIntent is the slice of the Stripe PaymentIntent the backend
// forwards after creating one for the booking.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type BookAppointmentResponse struct {
	ClientID      string         `json:"clientId"`
	AppointmentID string         `json:"appointmentId"`
	PaymentIntent *PaymentIntent `json:"paymentIntent"`
}

type CancelBookingResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

type CompleteBookingResponse struct {
	Message string `json:"message"`
}

// ListAvailableSlotsResponse is day-grouped availability.
type ListAvailableSlotsResponse = []models.DayAvailability
