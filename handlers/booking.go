package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "courtside/database/repository/booking"
	"courtside/models"
	"courtside/services/schedule"
	"courtside/utils"
)

// BookingHandler serves the reservation command and booking lookups.
type BookingHandler struct {
	Engine *schedule.Engine
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

func NewBookingHandler(engine *schedule.Engine, repo bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Repo: repo, Logger: logger}
}

// ReserveHandler creates a booking. POST /bookings
func (h *BookingHandler) ReserveHandler(c *gin.Context) {
	var req models.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Engine.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNoLongerAvailable):
			// The one error that must reach the requester untouched: retrying
			// without re-querying availability would likely fail again.
			utils.JSONError(c, http.StatusConflict, "slot no longer available", "please choose another time")
		case errors.Is(err, schedule.ErrOutsideAvailability):
			utils.JSONError(c, http.StatusUnprocessableEntity, "no such slot", err.Error())
		case errors.Is(err, schedule.ErrCoachNotFound):
			utils.JSONError(c, http.StatusNotFound, "coach not found", err.Error())
		case errors.Is(err, utils.ErrInvalidTimeFormat), errors.Is(err, utils.ErrInvalidDate):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		default:
			h.Logger.Error("reservation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "reservation failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelBookingHandler marks a booking cancelled. POST /bookings/:bookingID/cancel
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")

	booking, err := h.Engine.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, schedule.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", "no confirmed booking with that ID")
			return
		}
		h.Logger.Error("cancellation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "cancellation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetCoachBookingsHandler lists a coach's bookings for a date, cancelled ones
// included. GET /coaches/:coachID/bookings?date=YYYY-MM-DD
func (h *BookingHandler) GetCoachBookingsHandler(c *gin.Context) {
	coachID := c.Param("coachID")
	date := c.Query("date")
	if _, err := utils.ParseDate(date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	bookings, err := h.Repo.GetByCoachAndDate(c.Request.Context(), coachID, date)
	if err != nil {
		h.Logger.Error("booking lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking lookup failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetPlayerBookingsHandler lists every booking for a player.
// GET /players/:playerID/bookings
func (h *BookingHandler) GetPlayerBookingsHandler(c *gin.Context) {
	playerID := c.Param("playerID")

	bookings, err := h.Repo.GetByPlayer(c.Request.Context(), playerID)
	if err != nil {
		h.Logger.Error("booking lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking lookup failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
