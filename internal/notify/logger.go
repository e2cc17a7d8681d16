package notify

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/cutqueue/booking-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	appointmentID uint,
	recipient string,
	action string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	n := models.Notification{
		AppointmentID: appointmentID,
		Recipient:     recipient,
		Action:        action,
		Metadata:      metaJSON,
	}

	return l.db.Create(&n).Error
}
