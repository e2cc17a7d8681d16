package appointment

import (
	"context"
	"time"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/domain/booking"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]booking.TimeSlot, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.IsAvailable {
		return []booking.TimeSlot{}, nil
	}

	day, err := uc.repo.GetScheduleDay(ctx, in.BarberID, domain.WeekdayAbbrev(in.Date))
	if err != nil || day.IsOff || day.StartTime == "" || day.EndTime == "" {
		return []booking.TimeSlot{}, nil
	}

	duration, err := uc.totalDuration(ctx, in)
	if err != nil {
		return nil, err
	}

	dateStr := in.Date.Format("2006-01-02")

	// Dated exceptions: an all-day block closes the calendar outright;
	// timed ones feed the generator.
	blockedTimes, err := uc.repo.ListBlockedTimes(ctx, in.BarberID, dateStr)
	if err != nil {
		return nil, err
	}

	var blocked *booking.Interval
	var blockedIntervals []booking.Interval
	for i := range blockedTimes {
		if blockedTimes[i].AllDay {
			return []booking.TimeSlot{}, nil
		}
		iv, err := domain.BlockedInterval(&blockedTimes[i])
		if err != nil {
			return nil, err
		}
		if iv == nil {
			continue
		}
		if blocked == nil {
			blocked = iv
		}
		blockedIntervals = append(blockedIntervals, *iv)
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, dateStr)
	if err != nil {
		return nil, err
	}

	occupied, err := domain.OccupiedIntervals(appointments)
	if err != nil {
		return nil, err
	}
	// Blocked ranges ride the occupied list too: a slot whose service
	// would run into a block must not be offered, mirroring the overlap
	// check the booking write path applies.
	occupied = append(occupied, blockedIntervals...)

	// Lunch rides the same occupied list as real bookings: one overlap
	// algorithm, multiple interval sources.
	lunch, err := domain.LunchInterval(day)
	if err != nil {
		return nil, err
	}
	if lunch != nil {
		occupied = append(occupied, *lunch)
	}

	return booking.GenerateTimeSlots(booking.SlotRequest{
		DayStart:     day.StartTime,
		DayEnd:       day.EndTime,
		IncrementMin: barber.MinutesInterval,
		DurationMin:  duration,
		Occupied:     occupied,
		Lunch:        lunch,
		Blocked:      blocked,
		Date:         in.Date,
		Now:          uc.now(),
	})
}

func (uc *GetAvailability) totalDuration(
	ctx context.Context,
	in domain.AvailabilityInput,
) (int, error) {

	ids := make([]uint, 0, len(in.Services))
	for _, item := range in.Services {
		ids = append(ids, item.ServiceID)
	}

	services, err := uc.repo.ListServicesByIDs(ctx, in.BarberID, ids)
	if err != nil || len(services) != len(ids) {
		return 0, httperr.ErrBusiness("service_not_found")
	}

	byID := make(map[uint]int, len(services))
	for _, s := range services {
		byID[s.ID] = s.DurationMin
	}

	total := 0
	for _, item := range in.Services {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += byID[item.ServiceID] * qty
	}

	if total <= 0 {
		return 0, httperr.ErrBusiness("invalid_duration")
	}
	return total, nil
}
