package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/timezone"
	ucAppointment "github.com/cutqueue/booking-api/internal/usecase/appointment"
)

// PublicHandler serves the unauthenticated browse-and-check flow: find a
// barber, see their services, check free slots for a day.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// BARBERS
// ======================================================

type PublicBarberDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	MinutesInterval int    `json:"minutes_interval"`
	IsAvailable     bool   `json:"is_available"`
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Model(&models.User{}).Where("role = ?", models.RoleBarber)
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var barbers []models.User
	if err := q.Order("name ASC").Find(&barbers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	out := make([]PublicBarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, PublicBarberDTO{
			ID:              b.ID,
			Name:            b.Name,
			Bio:             b.Bio,
			MinutesInterval: b.MinutesInterval,
			IsAvailable:     b.IsAvailable,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) ListBarberServices(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var services []models.BarberService
	if err := h.db.
		Where("barber_id = ? AND active = ?", barberID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

// GetAvailability answers "which slots are free for these services on
// this day". Query: date=YYYY-MM-DD, services=1,2,3.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	barberID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_barber_id"})
		return
	}

	dateRaw, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateRaw, timezone.DefaultLocation())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
		return
	}

	items, ok := parseServiceItems(c)
	if !ok {
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID: uint(barberID),
		Services: items,
		Date:     date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateRaw,
		"slots": slots,
	})
}

// parseServiceItems reads services=1,2x2,3 where an optional xN suffix
// is a quantity.
func parseServiceItems(c *gin.Context) ([]domain.ServiceItem, bool) {
	raw := strings.TrimSpace(c.Query("services"))
	if raw == "" {
		httperr.BadRequest(c, "missing_services", "Query parameter 'services' is required, e.g. services=1,2.")
		return nil, false
	}

	parts := strings.Split(raw, ",")
	items := make([]domain.ServiceItem, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		qty := 1

		if idx := strings.IndexByte(p, 'x'); idx >= 0 {
			q, err := strconv.Atoi(p[idx+1:])
			if err != nil || q < 1 {
				httperr.BadRequest(c, "invalid_services", "Service quantity must be a positive integer.")
				return nil, false
			}
			qty = q
			p = p[:idx]
		}

		id, err := strconv.Atoi(p)
		if err != nil || id <= 0 {
			httperr.BadRequest(c, "invalid_services", "Service ids must be positive integers.")
			return nil, false
		}

		items = append(items, domain.ServiceItem{
			ServiceID: uint(id),
			Quantity:  qty,
		})
	}

	return items, true
}
