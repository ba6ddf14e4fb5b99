package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneOffsetString(t *testing.T) {
	offset, err := ZoneOffsetString("Europe/London")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(offset, "GMT"))

	_, err = ZoneOffsetString("Not/AZone")
	assert.Error(t, err)
}

func TestTimezonesCatalog(t *testing.T) {
	zones := Timezones()
	require.NotEmpty(t, zones)

	assert.Equal(t, "User TimeZone", zones[0].Group)
	assert.Equal(t, "User TimeZone", zones[0].Description)

	var london *TimeZone
	for i := range zones {
		if zones[i].Name == "Europe/London" {
			london = &zones[i]
			break
		}
	}
	require.NotNil(t, london)
	assert.Equal(t, "Europe", london.Group)
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("usd"))
	assert.Equal(t, "£", CurrencySymbol("gbp"))
	assert.Equal(t, "£", CurrencySymbol("xyz"))
}
