package appointment

import (
	"context"

	"github.com/cutqueue/booking-api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	ListServicesByIDs(
		ctx context.Context,
		barberID uint,
		ids []uint,
	) ([]models.BarberService, error)

	// -------- Schedule --------
	GetScheduleDay(
		ctx context.Context,
		barberID uint,
		weekday string,
	) (*models.ScheduleDay, error)

	ListBlockedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.BlockedTime, error)

	// -------- Appointments (read) --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForCustomerDay(
		ctx context.Context,
		customerID uint,
		date string,
	) ([]models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentForCustomer(
		ctx context.Context,
		appointmentID uint,
		customerID uint,
	) (*models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	// -------- Appointments (write, conflict-guarded) --------
	//
	// Both writers re-read the barber's day under a row lock inside a
	// transaction and re-run the overlap check before touching the table;
	// the slot list a client rendered may be stale by commit time.
	CreateAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
