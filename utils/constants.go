// File: utils/constants.go
package utils

import "time"

// BookingGuardPrefix is the prefix used for Redis in-flight booking keys.
const BookingGuardPrefix = "booking:inflight:"

// BookingGuardTTL bounds how long a stuck in-flight marker can block a hash.
const BookingGuardTTL = 30 * time.Second

// DefaultCurrency is used when the backend does not report one.
const DefaultCurrency = "gbp"

// DefaultCurrencySymbol matches DefaultCurrency.
const DefaultCurrencySymbol = "£"

// CurrencySymbols maps ISO currency codes to their display symbols.
var CurrencySymbols = map[string]string{
	"gbp": "£",
	"usd": "$",
	"eur": "€",
	"aud": "$",
	"cad": "$",
	"nzd": "$",
	"jpy": "¥",
	"inr": "₹",
	"zar": "R",
	"chf": "CHF",
}

// CurrencySymbol returns the symbol for a currency code, falling back to
// the default symbol for unknown codes.
func CurrencySymbol(currency string) string {
	if sym, ok := CurrencySymbols[currency]; ok {
		return sym
	}
	return DefaultCurrencySymbol
}
