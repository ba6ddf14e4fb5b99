package models

// StyleMap carries the portal's configurable colors.
type StyleMap struct {
	HeaderBackground string `json:"headerBackground,omitempty"`
	TitleColor       string `json:"titleColor,omitempty"`
	Accent           string `json:"accent,omitempty"`
	TextColor        string `json:"textColor,omitempty"`
	Primary          string `json:"primary,omitempty"`
}

// PortalStyles is the backend-managed theming block.
type PortalStyles struct {
	CSS      string   `json:"css,omitempty"`
	Logo     string   `json:"logo,omitempty"`
	StyleMap StyleMap `json:"styleMap"`
}

// StripeConfig is the publishable half of the Stripe wiring plus the
// currency appointments are charged in.
type StripeConfig struct {
	PublicKey string `json:"publicKey"`
	Currency  string `json:"currency"`
}

// PortalData is the session bundle resolved from an opaque hash by
// get-booking-data. The hash itself is re-attached by the bootstrap since
// the backend does not echo it.
type PortalData struct {
	AppointmentTypes []AppointmentType `json:"appointmentTypes"`
	User             Practitioner      `json:"user"`
	Hash             string            `json:"hash"`
	PortalStyles     *PortalStyles     `json:"portalStyles,omitempty"`
	Stripe           StripeConfig      `json:"stripe"`
}

// Theme is the resolved presentation state applied on wizard init.
type Theme struct {
	Logo         string `json:"logo"`
	PrimaryColor string `json:"primaryColor"`
}
