package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cutqueue/booking-api/internal/httperr"
)

func TestBusinessErrorTablesAgree(t *testing.T) {
	for code := range businessErrorStatus {
		if _, ok := businessErrorMessage[code]; !ok {
			t.Fatalf("code %q has a status but no message", code)
		}
	}
	for code := range businessErrorMessage {
		if _, ok := businessErrorStatus[code]; !ok {
			t.Fatalf("code %q has a message but no status", code)
		}
	}
}

func TestWriteBusinessError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeBusinessError(c, httperr.ErrBusiness("slot_taken"))
	if w.Code != http.StatusConflict {
		t.Fatalf("slot_taken: expected 409, got %d", w.Code)
	}

	// The one-a-day rule spans all barbers, so the message must not
	// suggest trying a different one.
	msg := businessErrorMessage["duplicate_daily_booking"]
	if strings.Contains(msg, "barber") {
		t.Fatalf("duplicate_daily_booking message names a barber: %q", msg)
	}
}
