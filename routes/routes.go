package routes

import (
	"github.com/gin-gonic/gin"

	"courtside/handlers"
)

// RegisterRoutes wires the full route table.
func RegisterRoutes(router *gin.Engine, h *handlers.HandlerBundle) {
	router.GET("/health", handlers.HealthHandler)

	coaches := router.Group("/coaches")
	{
		coaches.POST("", h.CreateCoachHandler)
		coaches.GET("/:coachID", h.GetCoachHandler)
		coaches.DELETE("/:coachID", h.DeleteCoachHandler)

		// Service catalogue.
		coaches.POST("/:coachID/services", h.AddServiceHandler)
		coaches.DELETE("/:coachID/services/:serviceName", h.RemoveServiceHandler)

		// Availability rules.
		coaches.POST("/:coachID/rules", h.CreateRuleHandler)
		coaches.GET("/:coachID/rules", h.ListRulesHandler)
		coaches.DELETE("/:coachID/rules/:ruleID", h.DeleteRuleHandler)

		// Slot engine reads.
		coaches.GET("/:coachID/slots", h.GetSlotsHandler)
		coaches.GET("/:coachID/availability", h.GetMonthAvailabilityHandler)
		coaches.GET("/:coachID/bookings", h.GetCoachBookingsHandler)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("", h.ReserveHandler)
		bookings.POST("/:bookingID/cancel", h.CancelBookingHandler)
	}

	router.GET("/players/:playerID/bookings", h.GetPlayerBookingsHandler)
}
