package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDetails() ClientDetails {
	return ClientDetails{
		FirstName: "Jo",
		LastName:  "Smith",
		Email:     "jo@example.com",
		PhoneNumber: PhoneNumber{
			CountryCode: "GB",
			IsValid:     true,
			E164:        "+447700900123",
		},
		ConfirmationItems: []string{"terms"},
	}
}

func TestValidateClientDetails(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ClientDetails)
		errField string
	}{
		{"missing first name", func(d *ClientDetails) { d.FirstName = "" }, "firstName"},
		{"missing last name", func(d *ClientDetails) { d.LastName = "" }, "lastName"},
		{"bad email", func(d *ClientDetails) { d.Email = "not-an-email" }, "email"},
		{"terms not accepted", func(d *ClientDetails) { d.ConfirmationItems = nil }, "confirmationItems"},
		{"invalid phone", func(d *ClientDetails) { d.PhoneNumber.IsValid = false }, "phoneNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.mutate(&d)

			form := ValidateClientDetails(d)

			assert.False(t, form.IsValid)
			assert.NotEmpty(t, form.Errors[tt.errField])
		})
	}
}

func TestValidateClientDetailsAccepted(t *testing.T) {
	form := ValidateClientDetails(validDetails())

	assert.True(t, form.IsValid)
	assert.Empty(t, form.Errors)
}

func TestSlotRangeIsSet(t *testing.T) {
	var s SlotRange
	assert.False(t, s.IsSet())
}
