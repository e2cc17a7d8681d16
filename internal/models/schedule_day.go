package models

import "time"

// ScheduleDay is one weekday of a barber's recurring working pattern.
// Times are 12-hour wall-clock strings ("9:00 AM"); lunch fields may be
// empty when the barber takes no break.
type ScheduleDay struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_schedule_barber_weekday,unique" json:"barber_id"`

	Weekday string `gorm:"size:3;index:idx_schedule_barber_weekday,unique" json:"weekday"` // "Sun".."Sat"

	IsOff      bool   `json:"is_off"`
	StartTime  string `gorm:"size:8" json:"start_time"`
	EndTime    string `gorm:"size:8" json:"end_time"`
	LunchStart string `gorm:"size:8" json:"lunch_start"`
	LunchEnd   string `gorm:"size:8" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
