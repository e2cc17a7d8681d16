package models

import "time"

// Notification is the persisted side of the notification collaborator:
// each status transition records who should be told, based on which side
// made the change.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint   `gorm:"index" json:"appointment_id"`
	Recipient     string `gorm:"size:20;not null" json:"recipient"` // barber | customer
	Action        string `gorm:"size:50;not null" json:"action"`
	Metadata      string `gorm:"type:text" json:"metadata"`

	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}
