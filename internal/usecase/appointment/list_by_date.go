package appointment

import (
	"context"
	"strings"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/dto"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, date, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, toListDTO(&appointments[i]))
	}

	return out, nil
}

func toListDTO(ap *models.Appointment) dto.AppointmentListDTO {
	endTime := ""
	if start, err := wallclock.Parse(ap.StartTime); err == nil {
		endTime = start.Add(ap.DurationMin).String()
	}

	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}

	return dto.AppointmentListDTO{
		ID:           ap.ID,
		Code:         ap.Code,
		Date:         ap.Date,
		StartTime:    ap.StartTime,
		EndTime:      endTime,
		DurationMin:  ap.DurationMin,
		Status:       ap.Status,
		CustomerName: ap.Customer.Name,
		BarberName:   ap.Barber.Name,
		Services:     strings.Join(names, ", "),
	}
}
