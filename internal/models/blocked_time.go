package models

import "time"

// BlockedTime is a barber-declared exception for one calendar date,
// either the whole day or a specific wall-clock range. Consulted the same
// way as lunch breaks during slot generation, but scoped to a date.
type BlockedTime struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Date   string `gorm:"size:10;index" json:"date"` // "2006-01-02"
	AllDay bool   `json:"all_day"`

	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
