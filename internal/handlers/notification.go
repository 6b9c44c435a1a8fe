// internal/handlers/notification.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/soundsmarket/sounds-backend/internal/services"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GET /artists/:id/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"notifications": notifications})
}

// DELETE /artists/:id/notifications/:notificationId
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notificationService.DeleteOne(c.Param("id"), c.Param("notificationId")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Notification deleted"})
}

// DELETE /artists/:id/notifications
func (h *NotificationHandler) DeleteAllNotifications(c *gin.Context) {
	if err := h.notificationService.DeleteAll(c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Notifications cleared"})
}
