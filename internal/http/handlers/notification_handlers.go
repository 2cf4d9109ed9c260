package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/runmate/domain"
)

// NotificationHandlers handles notification HTTP requests
type NotificationHandlers struct {
	notificationSvc domain.NotificationService
}

// NewNotificationHandlers creates new notification handlers
func NewNotificationHandlers(notificationSvc domain.NotificationService) *NotificationHandlers {
	return &NotificationHandlers{notificationSvc: notificationSvc}
}

func notificationJSON(n *domain.Notification) gin.H {
	return gin.H{
		"id":         n.ID,
		"user_id":    n.UserID,
		"message":    n.Message,
		"ref_type":   n.RefType,
		"ref_id":     n.RefID,
		"is_read":    n.IsRead,
		"created_at": n.CreatedAt,
	}
}

// ListMine returns the caller's notifications, newest first
func (h *NotificationHandlers) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, size := pageParams(c)
	notifications, total, err := h.notificationSvc.ListForUser(c.Request.Context(), userID, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}

	items := make([]gin.H, 0, len(notifications))
	for i := range notifications {
		items = append(items, notificationJSON(&notifications[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"items": items, "total": total}})
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandlers) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationSvc.MarkRead(c.Request.Context(), userID, notificationID)
	if err != nil {
		switch err {
		case domain.ErrNotificationNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		case domain.ErrNotOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not the notification addressee"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": notificationJSON(notification)})
}
