package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/models"
	ucAppointment "github.com/cutqueue/booking-api/internal/usecase/appointment"
)

// BookingHandler is the customer side: booking an appointment and
// managing the ones they already have.
type BookingHandler struct {
	db *gorm.DB

	createUC     *ucAppointment.CreateAppointment
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.Reschedule
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.Reschedule,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		createUC:     createUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
	}
}

type BookingServiceItem struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type CreateBookingRequest struct {
	BarberID  uint                 `json:"barber_id" binding:"required"`
	Services  []BookingServiceItem `json:"services" binding:"required,min=1"`
	Date      string               `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string               `json:"start_time" binding:"required"` // "3:00 PM"
	Notes     string               `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	items := make([]domain.ServiceItem, 0, len(req.Services))
	for _, s := range req.Services {
		items = append(items, domain.ServiceItem{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
		})
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		Services:   items,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	customerID := currentUserID(c)

	q := h.db.
		Preload("Services").
		Preload("Barber").
		Where("customer_id = ?", customerID)

	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := q.Order("date ASC, start_time ASC").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	customerID := currentUserID(c)

	appointmentID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), models.RoleCustomer, customerID, appointmentID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	customerID := currentUserID(c)

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
		ActorRole:     models.RoleCustomer,
		ActorID:       customerID,
		Date:          req.Date,
		StartTime:     req.StartTime,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
