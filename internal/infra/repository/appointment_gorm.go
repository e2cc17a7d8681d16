package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/domain/booking"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleBarber).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) ListServicesByIDs(
	ctx context.Context,
	barberID uint,
	ids []uint,
) ([]models.BarberService, error) {

	if len(ids) == 0 {
		return []models.BarberService{}, nil
	}

	var services []models.BarberService
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND active = true AND id IN ?", barberID, ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleDay(
	ctx context.Context,
	barberID uint,
	weekday string,
) (*models.ScheduleDay, error) {

	var day models.ScheduleDay
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *AppointmentGormRepository) ListBlockedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.BlockedTime, error) {

	var blocked []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&blocked).Error; err != nil {
		return nil, err
	}
	return blocked, nil
}

// --------------------------------------------------
// Appointments (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, "cancelled",
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForCustomerDay(
	ctx context.Context,
	customerID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"customer_id = ? AND date = ? AND status <> ?",
			customerID, date, "cancelled",
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForCustomer(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ? AND customer_id = ?", appointmentID, customerID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Customer").
		Preload("Barber").
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, fromDate, toDate,
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointments (write, conflict-guarded)
// --------------------------------------------------

// assertSlotFree re-reads the barber's day under a row lock and re-runs
// the overlap check. Runs inside the caller's transaction so the slot the
// client rendered minutes ago cannot be double-committed.
func assertSlotFree(
	tx *gorm.DB,
	ap *models.Appointment,
	excludeID uint,
) error {

	var day []models.Appointment
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			ap.BarberID, ap.Date, "cancelled",
		).
		Find(&day).Error; err != nil {
		return err
	}

	refs := make([]booking.AppointmentRef, 0, len(day))
	for _, other := range day {
		refs = append(refs, booking.AppointmentRef{
			ID:          other.ID,
			BarberID:    other.BarberID,
			CustomerID:  other.CustomerID,
			Date:        other.Date,
			StartTime:   other.StartTime,
			DurationMin: other.DurationMin,
			Status:      other.Status,
		})
	}

	if booking.SlotTaken(refs, ap.BarberID, ap.Date, ap.StartTime, excludeID) {
		return httperr.ErrBusiness("slot_taken")
	}

	conflict, err := booking.OverlapConflict(
		refs,
		ap.BarberID, ap.Date, ap.StartTime, ap.DurationMin,
		excludeID,
	)
	if err != nil {
		return err
	}
	if conflict {
		return httperr.ErrBusiness("slot_taken")
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, 0); err != nil {
			return err
		}
		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}
		return nil
	})
}

func (r *AppointmentGormRepository) SaveAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, ap.ID); err != nil {
			return err
		}
		if err := tx.Save(ap).Error; err != nil {
			if httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}
		return nil
	})
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
