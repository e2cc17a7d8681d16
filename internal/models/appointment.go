package models

import "time"

type Appointment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	BarberID uint `gorm:"index:idx_appointment_barber_date" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// Calendar day + wall-clock start; duration is the sum over line items.
	Date        string `gorm:"size:10;index:idx_appointment_barber_date" json:"date"` // "2006-01-02"
	StartTime   string `gorm:"size:8" json:"start_time"`                              // "2:30 PM"
	DurationMin int    `json:"duration_min"`

	Services []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	UpdatedCount  int    `gorm:"default:0" json:"updated_count"`
	ChangesMadeBy string `gorm:"size:20" json:"changes_made_by"` // barber | customer

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService is a booked line item. Duration is copied from the
// catalog at booking time so later edits to the catalog never change the
// length of an existing appointment.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	BarberServiceID uint    `json:"barber_service_id"`
	Name            string  `gorm:"size:100" json:"name"`
	DurationMin     int     `json:"duration_min"`
	Quantity        int     `gorm:"default:1" json:"quantity"`
	Price           float64 `json:"price"`
}
