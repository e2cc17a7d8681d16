package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/httpresp"
	"github.com/cutqueue/booking-api/internal/models"
	ucAppointment "github.com/cutqueue/booking-api/internal/usecase/appointment"
)

// AppointmentHandler is the barber-side agenda: listing, the day summary
// and every status transition the barber can trigger.
type AppointmentHandler struct {
	confirmUC    *ucAppointment.ConfirmAppointment
	cancelUC     *ucAppointment.CancelAppointment
	completeUC   *ucAppointment.CompleteAppointment
	noShowUC     *ucAppointment.MarkNoShow
	rescheduleUC *ucAppointment.Reschedule

	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
	daySummaryUC  *ucAppointment.DaySummary
}

func NewAppointmentHandler(
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	noShowUC *ucAppointment.MarkNoShow,
	rescheduleUC *ucAppointment.Reschedule,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	daySummaryUC *ucAppointment.DaySummary,
) *AppointmentHandler {
	return &AppointmentHandler{
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		noShowUC:      noShowUC,
		rescheduleUC:  rescheduleUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		daySummaryUC:  daySummaryUC,
	}
}

// ======================================================
// LISTING
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := currentUserID(c)

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID := currentUserID(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2200 {
		httperr.BadRequest(c, "invalid_year", "Query parameter 'year' is required.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Query parameter 'month' must be 1-12.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) DaySummary(c *gin.Context) {
	barberID := currentUserID(c)

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	out, err := h.daySummaryUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), models.RoleBarber, barberID, appointmentID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.noShowUC.Execute(c.Request.Context(), barberID, appointmentID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

type RescheduleRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // "3:00 PM"
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	barberID := currentUserID(c)

	appointmentID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: appointmentID,
		ActorRole:     models.RoleBarber,
		ActorID:       barberID,
		Date:          req.Date,
		StartTime:     req.StartTime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}
