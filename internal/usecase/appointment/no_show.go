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

type MarkNoShow struct {
	repo   domain.Repository
	notify Notifier
	now    func() time.Time
}

func NewMarkNoShow(
	repo domain.Repository,
	notify Notifier,
) *MarkNoShow {
	return &MarkNoShow{
		repo:   repo,
		notify: notify,
		now:    timezone.Now,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.NoShow(ap, models.RoleBarber, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		Action:        "appointment_no_show",
		ChangesMadeBy: models.RoleBarber,
	})

	return ap, nil
}
