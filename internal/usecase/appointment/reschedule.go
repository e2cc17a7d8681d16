package appointment

import (
	"context"
	"time"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/notify"
	"github.com/cutqueue/booking-api/internal/timezone"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

type RescheduleInput struct {
	AppointmentID uint
	ActorRole     string // barber | customer
	ActorID       uint

	Date      string
	StartTime string
}

type Reschedule struct {
	repo   domain.Repository
	notify Notifier
	now    func() time.Time
}

func NewReschedule(
	repo domain.Repository,
	notify Notifier,
) *Reschedule {
	return &Reschedule{
		repo:   repo,
		notify: notify,
		now:    timezone.Now,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.loadForActor(ctx, in)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanModify(domain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness("invalid_state")
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

	if err := checkBookingWindow(
		ctx, uc.repo,
		ap.BarberID, in.Date, domain.WeekdayAbbrev(day),
		start, ap.DurationMin,
	); err != nil {
		return nil, err
	}

	ap.Date = in.Date
	ap.StartTime = start.String()
	ap.UpdatedCount++
	ap.ChangesMadeBy = in.ActorRole

	// Re-check excludes the appointment's own row, so moving onto an
	// adjacent slot (or back onto itself) is legal.
	if err := uc.repo.SaveAppointmentChecked(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		Action:        "appointment_rescheduled",
		ChangesMadeBy: in.ActorRole,
	})

	return ap, nil
}

func (uc *Reschedule) loadForActor(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {
	if in.ActorRole == models.RoleBarber {
		return uc.repo.GetAppointmentForBarber(ctx, in.AppointmentID, in.ActorID)
	}
	return uc.repo.GetAppointmentForCustomer(ctx, in.AppointmentID, in.ActorID)
}
