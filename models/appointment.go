package models

import "time"

// AppointmentType is immutable reference data resolved from the backend.
type AppointmentType struct {
	ObjectID          string  `json:"objectId"`
	Name              string  `json:"name"`
	Duration          int     `json:"duration"`
	MeetingType       string  `json:"meetingType,omitempty"`
	Gap               int     `json:"gap,omitempty"`
	Price             float64 `json:"price"`
	ShowInPortal      bool    `json:"showInPortal"`
	AllowDeposit      bool    `json:"allowDeposit"`
	Deposit           float64 `json:"deposit"`
	RefundableDeposit bool    `json:"refundableDeposit"`
	Description       string  `json:"description,omitempty"`
	UserID            string  `json:"userId,omitempty"`
	Color             string  `json:"color,omitempty"`
}

// Practitioner is the backend user the portal books against.
type Practitioner struct {
	ObjectID  string `json:"objectId"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Biography string `json:"biography,omitempty"`
}

// ClientRef is the minimal client projection embedded in an appointment.
type ClientRef struct {
	ObjectID string `json:"objectId"`
	Name     string `json:"name"`
}

// Appointment is the full booking record returned by get-booking-from-hash.
type Appointment struct {
	ObjectID        string          `json:"objectId"`
	UserID          string          `json:"userId"`
	ClientID        string          `json:"clientId"`
	User            Practitioner    `json:"user"`
	Client          ClientRef       `json:"client"`
	AppointmentType AppointmentType `json:"appointmentType"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	Canceled        bool            `json:"canceled"`
	TimeZone        string          `json:"timeZone"`
	ChargeID        string          `json:"chargeId,omitempty"`
	RefundID        string          `json:"refundId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`

	// Telehealth appointments carry a meeting; MeetingID set means telehealth.
	MeetingID          string     `json:"meetingId,omitempty"`
	MeetingJoinURL     string     `json:"meetingJoinUrl,omitempty"`
	MeetingStartURL    string     `json:"meetingStartUrl,omitempty"`
	MeetingAttended    bool       `json:"meetingAttended,omitempty"`
	MeetingCompleted   bool       `json:"meetingCompleted,omitempty"`
	MeetingCompletedAt *time.Time `json:"meetingCompletedAt,omitempty"`

	// Custom appointments bypass the availability rules.
	IsCustom bool `json:"isCustom,omitempty"`
}
