package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cutqueue/booking-api/internal/middleware"
	"github.com/cutqueue/booking-api/internal/models"
)

func notificationTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := db.Create(&models.Appointment{
		ID: 1, BarberID: 10, CustomerID: 20,
		Date: "2026-03-10", StartTime: "3:00 PM", DurationMin: 30,
		Status: "pending",
	}).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	if err := db.Create(&models.Notification{
		ID: 1, AppointmentID: 1,
		Recipient: models.RoleBarber, Action: "appointment_requested",
	}).Error; err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	return db
}

func notificationCtx(userID uint, role, notificationID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: notificationID}}
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextUserRole, role)
	return c, w
}

// The ownership scope joins through appointments; the write must go
// through the notification's primary key or the UPDATE loses the join.
func TestNotificationMarkRead_UpdatesRow(t *testing.T) {
	db := notificationTestDB(t)
	h := NewNotificationHandler(db)

	c, w := notificationCtx(10, models.RoleBarber, "1")
	h.MarkRead(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var n models.Notification
	if err := db.First(&n, 1).Error; err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if n.ReadAt == nil {
		t.Fatalf("read_at not stamped")
	}

	// Marking an already-read notification stays 200 and keeps the
	// original timestamp.
	stamped := *n.ReadAt
	c, w = notificationCtx(10, models.RoleBarber, "1")
	h.MarkRead(c)
	if w.Code != http.StatusOK {
		t.Fatalf("second mark-read: expected 200, got %d", w.Code)
	}
	if err := db.First(&n, 1).Error; err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if n.ReadAt == nil || !n.ReadAt.Equal(stamped) {
		t.Fatalf("read_at changed on repeat mark-read")
	}
}

func TestNotificationMarkRead_OtherUsersCannotTouchIt(t *testing.T) {
	db := notificationTestDB(t)
	h := NewNotificationHandler(db)

	// Wrong barber.
	c, w := notificationCtx(99, models.RoleBarber, "1")
	h.MarkRead(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign barber: expected 404, got %d", w.Code)
	}

	// The appointment's customer is not the recipient either.
	c, w = notificationCtx(20, models.RoleCustomer, "1")
	h.MarkRead(c)
	if w.Code != http.StatusNotFound {
		t.Fatalf("customer on a barber notification: expected 404, got %d", w.Code)
	}

	var n models.Notification
	if err := db.First(&n, 1).Error; err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if n.ReadAt != nil {
		t.Fatalf("read_at must stay null")
	}
}

func TestNotificationList_ScopedToRecipient(t *testing.T) {
	db := notificationTestDB(t)
	h := NewNotificationHandler(db)

	c, w := notificationCtx(10, models.RoleBarber, "")
	c.Request = httptest.NewRequest(http.MethodGet, "/?unread=true", nil)
	h.List(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	c, w = notificationCtx(20, models.RoleCustomer, "")
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.List(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected list envelope, got %s", body)
	}
}
