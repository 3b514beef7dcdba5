package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtside/services/schedule"
	"courtside/utils"
)

// AvailabilityHandler serves the read side of the slot engine: day slot lists
// for booking forms and month availability for calendar grids.
type AvailabilityHandler struct {
	Engine *schedule.Engine
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine *schedule.Engine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// GetSlotsHandler returns every candidate slot for a coach on a date, with
// taken slots flagged. GET /coaches/:coachID/slots?date=YYYY-MM-DD
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	coachID := c.Param("coachID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	slots, err := h.Engine.ListBookableSlots(c.Request.Context(), coachID, date)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coachId": coachID,
		"date":    date,
		"slots":   slots,
	})
}

// GetMonthAvailabilityHandler returns one availability cell per day of a
// month. GET /coaches/:coachID/availability?month=YYYY-MM
func (h *AvailabilityHandler) GetMonthAvailabilityHandler(c *gin.Context) {
	coachID := c.Param("coachID")
	month := c.Query("month")
	if month == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing month", "query parameter 'month' is required (YYYY-MM)")
		return
	}

	days, err := h.Engine.MonthAvailability(c.Request.Context(), coachID, month)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coachId": coachID,
		"month":   month,
		"days":    days,
	})
}

func (h *AvailabilityHandler) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidDate), errors.Is(err, utils.ErrInvalidTimeFormat):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, schedule.ErrCoachNotFound):
		utils.JSONError(c, http.StatusNotFound, "coach not found", err.Error())
	default:
		h.Logger.Error("availability query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability query failed", err.Error())
	}
}
