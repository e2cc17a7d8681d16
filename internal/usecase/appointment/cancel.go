package appointment

import (
	"context"
	"time"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/notify"
	"github.com/cutqueue/booking-api/internal/timezone"
)

type CancelAppointment struct {
	repo   domain.Repository
	notify Notifier
	now    func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	notify Notifier,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		notify: notify,
		now:    timezone.Now,
	}
}

// Either side may cancel a non-terminal appointment.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorRole string,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap *models.Appointment
	var err error
	if actorRole == models.RoleBarber {
		ap, err = uc.repo.GetAppointmentForBarber(ctx, appointmentID, actorID)
	} else {
		ap, err = uc.repo.GetAppointmentForCustomer(ctx, appointmentID, actorID)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, actorRole, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		Action:        "appointment_cancelled",
		ChangesMadeBy: actorRole,
	})

	return ap, nil
}
