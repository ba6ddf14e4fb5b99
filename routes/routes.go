package routes

import (
	"bookportal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the portal's full route surface.
func RegisterRoutes(r *gin.Engine, portalHandler *handlers.PortalHandler, bookingHandler *handlers.BookingHandler) {
	r.GET("/health", handlers.Health)
	r.GET("/invalid-request", portalHandler.InvalidRequest)

	api := r.Group("/api")
	{
		api.POST("/portal-book-appointment", bookingHandler.BookAppointment)
		api.POST("/portal-complete-booking", bookingHandler.CompleteBooking)
		api.POST("/portal-cancel-booking", bookingHandler.CancelBooking)
		api.POST("/portal-get-booking-from-hash", bookingHandler.GetBookingFromHash)
		api.POST("/list-available-time-slots", bookingHandler.ListAvailableSlots)
		api.GET("/timezones", handlers.Timezones)
	}

	// Dynamic booking page, keyed by the opaque session hash. Registered
	// last so the fixed routes above take precedence.
	r.GET("/:hash", portalHandler.GetBookingPage)
}
