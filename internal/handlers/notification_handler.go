package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutqueue/booking-api/internal/httpresp"
	"github.com/cutqueue/booking-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// scoped returns notifications addressed to the current user, resolved
// through the appointment they belong to.
func (h *NotificationHandler) scoped(c *gin.Context) *gorm.DB {
	userID := currentUserID(c)
	role := currentUserRole(c)

	ownerColumn := "appointments.customer_id"
	if role == models.RoleBarber {
		ownerColumn = "appointments.barber_id"
	}

	return h.db.Model(&models.Notification{}).
		Select("notifications.*").
		Joins("JOIN appointments ON appointments.id = notifications.appointment_id").
		Where(ownerColumn+" = ?", userID).
		Where("notifications.recipient = ?", role)
}

func (h *NotificationHandler) List(c *gin.Context) {
	q := h.scoped(c)

	if c.Query("unread") == "true" {
		q = q.Where("notifications.read_at IS NULL")
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var notifications []models.Notification
	if err := q.Order("notifications.created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_notification_id"})
		return
	}

	// Resolve ownership with a SELECT first; gorm drops Joins clauses
	// when building UPDATE statements, so the scoped query cannot be
	// reused for the write itself.
	var n models.Notification
	if err := h.scoped(c).
		Where("notifications.id = ?", notificationID).
		First(&n).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "notification_not_found"})
		return
	}

	if n.ReadAt == nil {
		now := time.Now()
		if err := h.db.Model(&models.Notification{}).
			Where("id = ?", n.ID).
			Update("read_at", now).Error; err != nil {

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_mark_read"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
