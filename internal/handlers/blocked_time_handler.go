package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

// BlockedTimeHandler manages one-off calendar exceptions (vacation days,
// partial-day blocks) that sit on top of the weekly schedule.
type BlockedTimeHandler struct {
	db *gorm.DB
}

func NewBlockedTimeHandler(db *gorm.DB) *BlockedTimeHandler {
	return &BlockedTimeHandler{db: db}
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	barberID := currentUserID(c)

	q := h.db.Where("barber_id = ?", barberID)
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var blocks []models.BlockedTime
	if err := q.Order("date ASC").Find(&blocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocked_times"})
		return
	}

	c.JSON(http.StatusOK, blocks)
}

type CreateBlockedTimeRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	AllDay    bool   `json:"all_day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	barberID := currentUserID(c)

	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	block := models.BlockedTime{
		BarberID: barberID,
		Date:     req.Date,
		AllDay:   req.AllDay,
		Reason:   req.Reason,
	}

	if !req.AllDay {
		start, err := wallclock.Parse(req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_start_time"})
			return
		}
		end, err := wallclock.Parse(req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_end_time"})
			return
		}
		if start.MinuteOfDay() >= end.MinuteOfDay() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_after_end"})
			return
		}
		block.StartTime = start.String()
		block.EndTime = end.String()
	}

	if err := h.db.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blocked_time"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	barberID := currentUserID(c)

	blockID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_blocked_time_id"})
		return
	}

	res := h.db.Where("id = ? AND barber_id = ?", blockID, barberID).
		Delete(&models.BlockedTime{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_time"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "blocked_time_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
