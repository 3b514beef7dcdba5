package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every route handler so routes.RegisterRoutes can wire
// the router without importing service packages.
type HandlerBundle struct {
	// Availability endpoints.
	GetSlotsHandler             gin.HandlerFunc
	GetMonthAvailabilityHandler gin.HandlerFunc

	// Booking endpoints.
	ReserveHandler           gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	GetCoachBookingsHandler  gin.HandlerFunc
	GetPlayerBookingsHandler gin.HandlerFunc

	// Coach self-service endpoints.
	CreateCoachHandler   gin.HandlerFunc
	GetCoachHandler      gin.HandlerFunc
	DeleteCoachHandler   gin.HandlerFunc
	AddServiceHandler    gin.HandlerFunc
	RemoveServiceHandler gin.HandlerFunc
	CreateRuleHandler    gin.HandlerFunc
	ListRulesHandler     gin.HandlerFunc
	DeleteRuleHandler    gin.HandlerFunc
}
