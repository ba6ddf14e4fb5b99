package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// PhoneNumber is the structured, carrier-validated phone value produced by
// the phone input widget. IsValid reflects the carrier-level check; the
// schema requires it.
type PhoneNumber struct {
	CountryCode         string `json:"countryCode"`
	IsValid             bool   `json:"isValid"`
	IsPossible          bool   `json:"isPossible,omitempty"`
	Number              string `json:"phoneNumber"`
	CountryCallingCode  string `json:"countryCallingCode"`
	FormattedNumber     string `json:"formattedNumber"`
	NationalNumber      string `json:"nationalNumber"`
	FormatInternational string `json:"formatInternational"`
	FormatOriginal      string `json:"formatOriginal"`
	FormatNational      string `json:"formatNational"`
	URI                 string `json:"uri"`
	E164                string `json:"e164"`
}

// ClientDetails is the fill-in-your-details step payload.
type ClientDetails struct {
	FirstName         string      `json:"firstName" validate:"required"`
	LastName          string      `json:"lastName" validate:"required"`
	Email             string      `json:"email" validate:"required,email"`
	PhoneNumber       PhoneNumber `json:"phoneNumber"`
	ConfirmationItems []string    `json:"confirmationItems" validate:"min=1"`
}

// ClientForm bundles the form data with its validation outcome. Validity is
// derived by Validate, never set independently.
type ClientForm struct {
	Data    ClientDetails       `json:"data"`
	Errors  map[string][]string `json:"errors"`
	IsValid bool                `json:"isValid"`
}

var clientValidate = validator.New(validator.WithRequiredStructEnabled())

var clientFieldMessages = map[string]string{
	"FirstName":         "First name is missing",
	"LastName":          "Last name is missing",
	"Email":             "Please enter a valid email address",
	"ConfirmationItems": "You need to accept the terms",
}

// jsonField maps struct field names to their wire names for error keying.
var clientFieldNames = map[string]string{
	"FirstName":         "firstName",
	"LastName":          "lastName",
	"Email":             "email",
	"ConfirmationItems": "confirmationItems",
	"PhoneNumber":       "phoneNumber",
}

// ValidateClientDetails runs the form schema and returns a populated form
// whose IsValid/Errors reflect the outcome.
func ValidateClientDetails(details ClientDetails) ClientForm {
	form := ClientForm{Data: details, Errors: map[string][]string{}, IsValid: true}

	if err := clientValidate.Struct(details); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := clientFieldNames[fe.StructField()]
				msg := clientFieldMessages[fe.StructField()]
				if msg == "" {
					msg = "Invalid value"
				}
				form.Errors[field] = append(form.Errors[field], msg)
			}
		} else {
			form.Errors["form"] = append(form.Errors["form"], "Invalid form data")
		}
	}

	if !details.PhoneNumber.IsValid {
		form.Errors["phoneNumber"] = append(form.Errors["phoneNumber"], "Please enter a valid phone number")
	}

	form.IsValid = len(form.Errors) == 0
	return form
}
