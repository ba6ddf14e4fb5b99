package models

import "time"

// SlotRange is the currently selected appointment interval. Both bounds are
// set and cleared together; a half-set range is not representable through
// the wizard API.
type SlotRange struct {
	Start *time.Time `json:"startDate"`
	End   *time.Time `json:"endDate"`
}

// IsSet reports whether both bounds are present.
func (s SlotRange) IsSet() bool {
	return s.Start != nil && s.End != nil
}

// Slot is one bookable interval as reported by list-available-slots, with
// both UTC and practitioner-local renditions.
type Slot struct {
	From      string `json:"from"`
	To        string `json:"to"`
	FromLocal string `json:"fromLocal"`
	ToLocal   string `json:"toLocal"`
}

// DayAvailability groups the bookable slots of a single calendar day.
type DayAvailability struct {
	Date     string `json:"date"`
	TimeZone string `json:"timeZone"`
	Slots    []Slot `json:"slots"`
}
