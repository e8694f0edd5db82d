// File: handlers/notification.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notificationRepo "bookify/database/repository/notification"
	"bookify/middleware"
	"bookify/utils"
)

// NotificationHandler exposes the caller's notification feed.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	unreadOnly := c.Query("unread") == "true"

	notifs, err := h.Repo.ListByUser(c.Request.Context(), principalID, unreadOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs, "count": len(notifs)})
}

// MarkReadHandler marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)

	if err := h.Repo.MarkRead(c.Request.Context(), principalID, c.Param("id")); err != nil {
		if err == notificationRepo.ErrNotFound {
			utils.RespondError(c, utils.NotFoundf("notification %s not found", c.Param("id")))
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
