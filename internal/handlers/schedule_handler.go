package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

// ScheduleHandler manages the barber's recurring weekly pattern.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

var weekdayOrder = map[string]int{
	"Sun": 0, "Mon": 1, "Tue": 2, "Wed": 3, "Thu": 4, "Fri": 5, "Sat": 6,
}

type ScheduleDayConfig struct {
	Weekday    string `json:"weekday" binding:"required"` // "Sun".."Sat"
	IsOff      bool   `json:"is_off"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := currentUserID(c)

	var days []models.ScheduleDay
	if err := h.db.
		Where("barber_id = ?", barberID).
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	// Stable Sun..Sat order for the settings screen.
	for i := 0; i < len(days); i++ {
		for j := i + 1; j < len(days); j++ {
			if weekdayOrder[days[j].Weekday] < weekdayOrder[days[i].Weekday] {
				days[i], days[j] = days[j], days[i]
			}
		}
	}

	c.JSON(http.StatusOK, days)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := currentUserID(c)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[string]bool{}
	for _, d := range req.Days {
		if _, ok := weekdayOrder[d.Weekday]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_weekday"})
			return
		}
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true

		if d.IsOff {
			continue
		}
		if err := validateWorkingDay(d); err != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   err,
				"weekday": d.Weekday,
			})
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).
			Delete(&models.ScheduleDay{}).Error; err != nil {
			return err
		}

		toCreate := make([]models.ScheduleDay, 0, len(req.Days))
		for _, d := range req.Days {
			day := models.ScheduleDay{
				BarberID: barberID,
				Weekday:  d.Weekday,
				IsOff:    d.IsOff,
			}
			if !d.IsOff {
				day.StartTime = d.StartTime
				day.EndTime = d.EndTime
				day.LunchStart = d.LunchStart
				day.LunchEnd = d.LunchEnd
			}
			toCreate = append(toCreate, day)
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validateWorkingDay checks the wall-clock fields of a non-off day.
// Returns an error code, or "" when the day is valid.
func validateWorkingDay(d ScheduleDayConfig) string {
	start, err := wallclock.Parse(d.StartTime)
	if err != nil {
		return "invalid_start_time"
	}
	end, err := wallclock.Parse(d.EndTime)
	if err != nil {
		return "invalid_end_time"
	}
	if start.MinuteOfDay() >= end.MinuteOfDay() {
		return "start_after_end"
	}

	hasLunch := d.LunchStart != "" || d.LunchEnd != ""
	if !hasLunch {
		return ""
	}
	if d.LunchStart == "" || d.LunchEnd == "" {
		return "incomplete_lunch"
	}

	ls, err := wallclock.Parse(d.LunchStart)
	if err != nil {
		return "invalid_lunch_start"
	}
	le, err := wallclock.Parse(d.LunchEnd)
	if err != nil {
		return "invalid_lunch_end"
	}
	if ls.MinuteOfDay() >= le.MinuteOfDay() {
		return "lunch_start_after_end"
	}
	if ls.MinuteOfDay() < start.MinuteOfDay() || le.MinuteOfDay() > end.MinuteOfDay() {
		return "lunch_outside_working_hours"
	}
	return ""
}
