package handlers

import (
	"net/http"
	"strconv"

	appointmentRepo "vetchat/database/repository/appointment"
	"vetchat/models"
	"vetchat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes appointment administration endpoints.
type AppointmentHandler struct {
	Repo   appointmentRepo.AppointmentRepository
	Logger *zap.Logger
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Logger: logger}
}

// GetAll handles GET /api/appointments with page/limit pagination.
func (h *AppointmentHandler) GetAll(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 1 {
		limit = 20
	}

	appts, total, err := h.Repo.GetAll(page, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"appointments": appts,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
				"pages": pages,
			},
		},
	})
}

// GetBySession handles GET /api/appointments/session/:sessionId.
func (h *AppointmentHandler) GetBySession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	appts, err := h.Repo.FindBySession(sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointments", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": appts})
}

// UpdateStatus handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status update request", err.Error())
		return
	}
	if !models.IsValidStatus(input.Status) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid status", input.Status)
		return
	}

	appt, err := h.Repo.UpdateStatus(id, input.Status)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		return
	}

	h.Logger.Info("appointment status updated",
		zap.String("appointmentId", id), zap.String("status", input.Status))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": appt})
}

// GetStats handles GET /api/appointments/stats.
func (h *AppointmentHandler) GetStats(c *gin.Context) {
	stats, err := h.Repo.Stats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
