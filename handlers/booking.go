// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookify/middleware"
	"bookify/services/booking"
	"bookify/utils"
)

// BookingHandler exposes the booking ledger over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateHandler places a new booking for the authenticated user.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, _ := middleware.Principal(c)

	var req struct {
		ServiceID string `json:"service_id" binding:"required"`
		Date      string `json:"date" binding:"required"`
		Time      string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	bk, err := h.Service.Create(c.Request.Context(), userID, req.ServiceID, req.Date, req.Time)
	if err != nil {
		logger.Warn("Booking create failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": bk})
}

// GetHandler returns one booking visible to the caller.
func (h *BookingHandler) GetHandler(c *gin.Context) {
	actorID, role := middleware.Principal(c)
	bk, err := h.Service.GetByID(c.Request.Context(), actorID, role, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ListHandler returns the caller's bookings, optionally filtered by status.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	actorID, role := middleware.Principal(c)
	bookings, err := h.Service.ListForActor(c.Request.Context(), actorID, role, c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// StatsHandler returns per-status booking counts for the caller.
func (h *BookingHandler) StatsHandler(c *gin.Context) {
	actorID, role := middleware.Principal(c)
	stats, err := h.Service.Stats(c.Request.Context(), actorID, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// CalendarHandler groups the provider's bookings by date over a range.
func (h *BookingHandler) CalendarHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}

	cal, err := h.Service.Calendar(c.Request.Context(), providerID, from, to)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": cal})
}

// AcceptHandler confirms a pending booking.
func (h *BookingHandler) AcceptHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)
	bk, err := h.Service.Accept(c.Request.Context(), providerID, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// RejectHandler declines a pending booking with a reason.
func (h *BookingHandler) RejectHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)

	var req struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	bk, err := h.Service.Reject(c.Request.Context(), providerID, c.Param("id"), req.Reason, req.Message)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// CancelHandler cancels an active booking from either side.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	actorID, role := middleware.Principal(c)
	bk, err := h.Service.Cancel(c.Request.Context(), actorID, role, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// UpdateStatusHandler is the generic transition endpoint.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	actorID, role := middleware.Principal(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	bk, err := h.Service.UpdateStatus(c.Request.Context(), actorID, role, c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// DeleteHandler permanently removes a completed booking.
func (h *BookingHandler) DeleteHandler(c *gin.Context) {
	actorID, role := middleware.Principal(c)
	if err := h.Service.PermanentDelete(c.Request.Context(), actorID, role, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking permanently deleted"})
}
