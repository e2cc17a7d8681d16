package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/domain/booking"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/notify"
	"github.com/cutqueue/booking-api/internal/timezone"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	BarberID   uint

	Services []domain.ServiceItem

	Date      string // "2006-01-02"
	StartTime string // "3:00 PM"
	Notes     string
}

// SlotLocker is the optional redis advisory lock taken around the booking
// transaction. Nil disables it.
type SlotLocker interface {
	Acquire(ctx context.Context, barberID uint, date, startTime string) (bool, error)
	Release(ctx context.Context, barberID uint, date, startTime string)
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	notify Notifier
	locks  SlotLocker
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	notify Notifier,
	locks SlotLocker,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		notify: notify,
		locks:  locks,
		now:    timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.IsAvailable {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	now := uc.now()

	day, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := wallclock.Parse(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	startsAt := time.Date(
		day.Year(), day.Month(), day.Day(),
		start.Hour, start.Minute, 0, 0,
		now.Location(),
	)
	if !startsAt.After(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	duration, items, err := uc.resolveServices(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := checkBookingWindow(
		ctx, uc.repo,
		in.BarberID, in.Date, domain.WeekdayAbbrev(day),
		start, duration,
	); err != nil {
		return nil, err
	}

	// One active appointment per customer per day, regardless of barber.
	customerDay, err := uc.repo.ListAppointmentsForCustomerDay(ctx, in.CustomerID, in.Date)
	if err != nil {
		return nil, err
	}
	dup, err := booking.HasDailyBooking(domain.Refs(customerDay), in.CustomerID, in.Date, now)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, httperr.ErrBusiness("duplicate_daily_booking")
	}

	ap := &models.Appointment{
		Code:          uuid.NewString(),
		BarberID:      in.BarberID,
		CustomerID:    in.CustomerID,
		Date:          in.Date,
		StartTime:     start.String(), // normalized form
		DurationMin:   duration,
		Services:      items,
		Status:        string(domain.InitialStatus()),
		ChangesMadeBy: models.RoleCustomer,
		Notes:         in.Notes,
	}

	if uc.locks != nil {
		ok, err := uc.locks.Acquire(ctx, in.BarberID, in.Date, ap.StartTime)
		if err == nil && !ok {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		defer uc.locks.Release(ctx, in.BarberID, in.Date, ap.StartTime)
	}

	// Re-checks the slot against a locked re-read of the barber's day
	// inside the transaction; the list the client rendered may be stale.
	if err := uc.repo.CreateAppointmentChecked(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		Action:        "appointment_requested",
		ChangesMadeBy: models.RoleCustomer,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveServices(
	ctx context.Context,
	in CreateAppointmentInput,
) (int, []models.AppointmentService, error) {

	ids := make([]uint, 0, len(in.Services))
	for _, item := range in.Services {
		ids = append(ids, item.ServiceID)
	}

	services, err := uc.repo.ListServicesByIDs(ctx, in.BarberID, ids)
	if err != nil || len(services) != len(ids) {
		return 0, nil, httperr.ErrBusiness("service_not_found")
	}

	byID := make(map[uint]models.BarberService, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	total := 0
	items := make([]models.AppointmentService, 0, len(in.Services))
	for _, item := range in.Services {
		svc := byID[item.ServiceID]
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += svc.DurationMin * qty
		items = append(items, models.AppointmentService{
			BarberServiceID: svc.ID,
			Name:            svc.Name,
			DurationMin:     svc.DurationMin,
			Quantity:        qty,
			Price:           svc.Price,
		})
	}

	if total <= 0 {
		return 0, nil, httperr.ErrBusiness("invalid_duration")
	}
	return total, items, nil
}
