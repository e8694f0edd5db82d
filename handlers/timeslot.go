// File: handlers/timeslot.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookify/middleware"
	"bookify/models"
	"bookify/services/availability"
	"bookify/utils"
)

// TimeSlotHandler exposes provider availability management over HTTP.
type TimeSlotHandler struct {
	Service availability.AvailabilityService
}

func NewTimeSlotHandler(svc availability.AvailabilityService) *TimeSlotHandler {
	return &TimeSlotHandler{Service: svc}
}

// UpsertSlotHandler writes a single availability row for the provider.
func (h *TimeSlotHandler) UpsertSlotHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)

	var entry models.SlotEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.UpsertSlot(c.Request.Context(), providerID, entry)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// BulkUpsertHandler applies a batch of availability rows in order.
func (h *TimeSlotHandler) BulkUpsertHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID, _ := middleware.Principal(c)

	var req struct {
		Slots []models.SlotEntry `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.BulkUpsert(c.Request.Context(), providerID, req.Slots)
	if err != nil {
		logger.Warn("Bulk slot upsert failed", zap.String("providerID", providerID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// QueryRangeHandler lists the provider's slot rows over a date range.
func (h *TimeSlotHandler) QueryRangeHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}

	slots, err := h.Service.QueryRange(c.Request.Context(), providerID, from, to)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// DeleteSlotHandler removes one slot row unless an active booking holds it.
func (h *TimeSlotHandler) DeleteSlotHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)
	date := c.Query("date")
	clock := c.Query("time")
	if date == "" || clock == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date/time query parameters"})
		return
	}

	if err := h.Service.DeleteSlot(c.Request.Context(), providerID, date, clock); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

// AvailableTimesHandler derives the bookable times for one provider date.
// It is the only timeslot endpoint open to users.
func (h *TimeSlotHandler) AvailableTimesHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	day, err := h.Service.AvailableTimes(c.Request.Context(), providerID, date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": day})
}

// SlotBookingHandler reports which active booking occupies a slot.
func (h *TimeSlotHandler) SlotBookingHandler(c *gin.Context) {
	providerID, _ := middleware.Principal(c)
	date := c.Query("date")
	clock := c.Query("time")
	if date == "" || clock == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date/time query parameters"})
		return
	}

	bk, err := h.Service.BookingForSlot(c.Request.Context(), providerID, date, clock)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ApplyPatternHandler bulk-generates slots from a recurring weekday rule.
func (h *TimeSlotHandler) ApplyPatternHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID, _ := middleware.Principal(c)

	var pattern models.WorkingPattern
	if err := c.ShouldBindJSON(&pattern); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.ApplyPattern(c.Request.Context(), providerID, pattern)
	if err != nil {
		logger.Warn("Pattern apply failed", zap.String("providerID", providerID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
