package utils

import (
	"fmt"
	"strings"
	"time"
)

// TimeZone is a display-ready timezone entry.
type TimeZone struct {
	Group        string `json:"group"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	OffsetString string `json:"offsetString"`
}

// zoneCatalog lists the zones offered in the date/time picker.
var zoneCatalog = []struct{ name, description string }{
	{"Europe/London", "London, Edinburgh"},
	{"Europe/Dublin", "Dublin"},
	{"Europe/Paris", "Paris, Brussels, Madrid"},
	{"Europe/Berlin", "Berlin, Amsterdam, Rome"},
	{"Europe/Lisbon", "Lisbon"},
	{"Europe/Athens", "Athens, Helsinki"},
	{"Europe/Moscow", "Moscow"},
	{"America/New_York", "New York, Toronto"},
	{"America/Chicago", "Chicago, Mexico City"},
	{"America/Denver", "Denver"},
	{"America/Los_Angeles", "Los Angeles, Vancouver"},
	{"America/Sao_Paulo", "São Paulo"},
	{"Africa/Johannesburg", "Johannesburg"},
	{"Africa/Lagos", "Lagos"},
	{"Africa/Nairobi", "Nairobi"},
	{"Asia/Dubai", "Dubai"},
	{"Asia/Kolkata", "Mumbai, New Delhi"},
	{"Asia/Singapore", "Singapore, Kuala Lumpur"},
	{"Asia/Hong_Kong", "Hong Kong"},
	{"Asia/Tokyo", "Tokyo"},
	{"Asia/Shanghai", "Beijing, Shanghai"},
	{"Australia/Sydney", "Sydney, Melbourne"},
	{"Australia/Perth", "Perth"},
	{"Pacific/Auckland", "Auckland"},
}

// UserTimeZone reports the server's IANA zone name, falling back to UTC
// when the host zone cannot be named.
func UserTimeZone() string {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

// ZoneOffsetString renders the current UTC offset of a zone, e.g. "GMT+1:00".
func ZoneOffsetString(name string) (string, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return "", fmt.Errorf("utils.ZoneOffsetString: unknown zone %q: %w", name, err)
	}
	_, offset := time.Now().In(loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes), nil
}

func timeZoneFrom(name, description string) TimeZone {
	group := name
	if i := strings.Index(name, "/"); i >= 0 {
		group = name[:i]
	}
	offset, err := ZoneOffsetString(name)
	if err != nil {
		offset = "GMT+0:00"
	}
	return TimeZone{
		Group:        group,
		Name:         name,
		Description:  description,
		OffsetString: offset,
	}
}

// Timezones returns the zone catalog with the server's own zone first.
func Timezones() []TimeZone {
	zones := make([]TimeZone, 0, len(zoneCatalog)+1)

	user := timeZoneFrom(UserTimeZone(), "User TimeZone")
	user.Group = "User TimeZone"
	zones = append(zones, user)

	for _, z := range zoneCatalog {
		zones = append(zones, timeZoneFrom(z.name, z.description))
	}
	return zones
}
