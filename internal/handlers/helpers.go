package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/middleware"
)

// ======================================================
// CONTEXT HELPERS
// ======================================================

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func currentUserRole(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextUserRole)
	role, _ := v.(string)
	return role
}

// ======================================================
// DATE PARAMS
// ======================================================

func parseDateQuery(c *gin.Context, key string) (string, bool) {
	raw := c.Query(key)
	if raw == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter '"+key+"' is required (YYYY-MM-DD).")
		return "", false
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
		return "", false
	}
	return raw, true
}

// ======================================================
// BUSINESS ERROR MAPPING
// ======================================================

// businessErrorStatus and businessErrorMessage translate the use-case
// error codes into HTTP responses. Messages tell the caller what to do
// next, not just what went wrong.
var businessErrorStatus = map[string]int{
	"slot_taken":              http.StatusConflict,
	"duplicate_daily_booking": http.StatusConflict,
	"invalid_state":           http.StatusConflict,

	"barber_not_found":      http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,

	"barber_unavailable":    http.StatusBadRequest,
	"outside_working_hours": http.StatusBadRequest,
	"time_blocked":          http.StatusBadRequest,
	"time_in_past":          http.StatusBadRequest,
	"invalid_date_or_time":  http.StatusBadRequest,
	"invalid_duration":      http.StatusBadRequest,
	"appointment_in_future": http.StatusBadRequest,
}

var businessErrorMessage = map[string]string{
	"slot_taken":              "That time was just booked by someone else. Refresh availability and pick another slot.",
	"duplicate_daily_booking": "You already have an appointment booked on that day. Cancel it first or pick another day.",
	"invalid_state":           "This appointment can no longer be changed.",

	"barber_not_found":      "Barber not found.",
	"appointment_not_found": "Appointment not found.",
	"service_not_found":     "One or more of the requested services do not exist.",

	"barber_unavailable":    "This barber is not taking bookings right now.",
	"outside_working_hours": "The requested time falls outside the barber's working hours.",
	"time_blocked":          "The barber has blocked that time. Pick another slot.",
	"time_in_past":          "The requested time is in the past.",
	"invalid_date_or_time":  "Date must be YYYY-MM-DD and time must look like '3:00 PM'.",
	"invalid_duration":      "The selected services have no bookable duration.",
	"appointment_in_future": "The appointment has not finished yet.",
}

// writeBusinessError writes a mapped response for a BusinessError, or a
// generic 500 for anything else. Returns after writing; callers just
// `return` after calling it.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong. Try again.")
		return
	}

	status, ok := businessErrorStatus[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}
	msg, ok := businessErrorMessage[be.Code]
	if !ok {
		msg = be.Code
	}
	httperr.Write(c, status, be.Code, msg)
}
