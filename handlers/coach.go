package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/coach"
	"courtside/services/schedule"
	"courtside/utils"
)

// CoachHandler serves the coach self-service surface: profile, service
// catalogue, and availability rules.
type CoachHandler struct {
	Service coach.CoachService
	Logger  *zap.Logger
}

func NewCoachHandler(service coach.CoachService, logger *zap.Logger) *CoachHandler {
	return &CoachHandler{Service: service, Logger: logger}
}

// CreateCoachHandler registers a coach. POST /coaches
func (h *CoachHandler) CreateCoachHandler(c *gin.Context) {
	var input models.Coach
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateCoach(c.Request.Context(), &input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create coach", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"coach": created})
}

// GetCoachHandler returns a coach profile with its catalogue. GET /coaches/:coachID
func (h *CoachHandler) GetCoachHandler(c *gin.Context) {
	found, err := h.Service.GetCoach(c.Request.Context(), c.Param("coachID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": found})
}

// DeleteCoachHandler removes a coach. DELETE /coaches/:coachID
func (h *CoachHandler) DeleteCoachHandler(c *gin.Context) {
	if err := h.Service.DeleteCoach(c.Request.Context(), c.Param("coachID")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddServiceHandler adds a catalogue entry. POST /coaches/:coachID/services
func (h *CoachHandler) AddServiceHandler(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.AddService(c.Request.Context(), c.Param("coachID"), req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": updated})
}

// RemoveServiceHandler drops a catalogue entry. DELETE /coaches/:coachID/services/:serviceName
func (h *CoachHandler) RemoveServiceHandler(c *gin.Context) {
	updated, err := h.Service.RemoveService(c.Request.Context(), c.Param("coachID"), c.Param("serviceName"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": updated})
}

// CreateRuleHandler declares availability. POST /coaches/:coachID/rules
func (h *CoachHandler) CreateRuleHandler(c *gin.Context) {
	var req models.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rule, err := h.Service.CreateRule(c.Request.Context(), c.Param("coachID"), req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

// ListRulesHandler returns a coach's availability rules. GET /coaches/:coachID/rules
func (h *CoachHandler) ListRulesHandler(c *gin.Context) {
	rules, err := h.Service.ListRules(c.Request.Context(), c.Param("coachID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// DeleteRuleHandler removes an availability rule. DELETE /coaches/:coachID/rules/:ruleID
func (h *CoachHandler) DeleteRuleHandler(c *gin.Context) {
	if err := h.Service.DeleteRule(c.Request.Context(), c.Param("coachID"), c.Param("ruleID")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *CoachHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrCoachNotFound):
		utils.JSONError(c, http.StatusNotFound, "coach not found", err.Error())
	case errors.Is(err, schedule.ErrInvalidRule):
		utils.JSONError(c, http.StatusBadRequest, "invalid availability rule", err.Error())
	default:
		h.Logger.Error("coach operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
	}
}
