package appointment

import (
	"context"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/domain/booking"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

// checkBookingWindow validates that [start, start+duration) sits inside the
// barber's working window for that weekday and clears lunch and any dated
// block. Shared by the create and reschedule paths.
func checkBookingWindow(
	ctx context.Context,
	repo domain.Repository,
	barberID uint,
	date string,
	weekday string,
	start wallclock.Time,
	durationMin int,
) error {

	day, err := repo.GetScheduleDay(ctx, barberID, weekday)
	if err != nil || day.IsOff || day.StartTime == "" || day.EndTime == "" {
		return httperr.ErrBusiness("outside_working_hours")
	}

	open, err := wallclock.Parse(day.StartTime)
	if err != nil {
		return err
	}
	closing, err := wallclock.Parse(day.EndTime)
	if err != nil {
		return err
	}

	candidate := booking.Interval{
		Start: start.MinuteOfDay(),
		End:   start.MinuteOfDay() + durationMin,
	}

	if candidate.Start < open.MinuteOfDay() || candidate.End > closing.MinuteOfDay() {
		return httperr.ErrBusiness("outside_working_hours")
	}

	lunch, err := domain.LunchInterval(day)
	if err != nil {
		return err
	}
	if lunch != nil && booking.Overlaps(candidate, *lunch) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	blockedTimes, err := repo.ListBlockedTimes(ctx, barberID, date)
	if err != nil {
		return err
	}
	for i := range blockedTimes {
		if blockedTimes[i].AllDay {
			return httperr.ErrBusiness("time_blocked")
		}
		iv, err := domain.BlockedInterval(&blockedTimes[i])
		if err != nil {
			return err
		}
		if iv != nil && booking.Overlaps(candidate, *iv) {
			return httperr.ErrBusiness("time_blocked")
		}
	}

	return nil
}
