package handlers

import (
	"net/http"

	"bookportal/utils"

	"github.com/gin-gonic/gin"
)

// Timezones returns the zone catalog for the date/time picker.
func Timezones(c *gin.Context) {
	c.JSON(http.StatusOK, utils.Timezones())
}

// Health reports service liveness plus the latest dependency snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"services": utils.GetHealthStatus(),
	})
}
