package appointment

import (
	"time"

	"github.com/cutqueue/booking-api/internal/domain/booking"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

// WeekdayAbbrev keys ScheduleDay rows ("Sun".."Sat").
func WeekdayAbbrev(t time.Time) string {
	return t.Weekday().String()[:3]
}

// LunchInterval returns the schedule day's lunch break as an occupied
// interval, or nil when the barber takes none.
func LunchInterval(day *models.ScheduleDay) (*booking.Interval, error) {
	if day.LunchStart == "" || day.LunchEnd == "" {
		return nil, nil
	}

	start, err := wallclock.Parse(day.LunchStart)
	if err != nil {
		return nil, err
	}
	end, err := wallclock.Parse(day.LunchEnd)
	if err != nil {
		return nil, err
	}

	return &booking.Interval{
		Start: start.MinuteOfDay(),
		End:   end.MinuteOfDay(),
	}, nil
}

// BlockedInterval maps a dated exception onto the generator's input.
// All-day blocks are handled by the caller before slot generation runs.
func BlockedInterval(bt *models.BlockedTime) (*booking.Interval, error) {
	if bt == nil || bt.AllDay {
		return nil, nil
	}

	start, err := wallclock.Parse(bt.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := wallclock.Parse(bt.EndTime)
	if err != nil {
		return nil, err
	}

	return &booking.Interval{
		Start: start.MinuteOfDay(),
		End:   end.MinuteOfDay(),
	}, nil
}

// OccupiedIntervals folds the day's non-cancelled appointments into
// [start, end) spans. Lunch is appended by the caller so the generator
// runs one overlap algorithm over every interval source.
func OccupiedIntervals(appointments []models.Appointment) ([]booking.Interval, error) {
	out := make([]booking.Interval, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Status == string(StatusCancelled) {
			continue
		}
		start, err := wallclock.Parse(ap.StartTime)
		if err != nil {
			return nil, err
		}
		out = append(out, booking.Interval{
			Start: start.MinuteOfDay(),
			End:   start.MinuteOfDay() + ap.DurationMin,
		})
	}
	return out, nil
}

// Refs maps rows into the conflict detector's snapshot view.
func Refs(appointments []models.Appointment) []booking.AppointmentRef {
	out := make([]booking.AppointmentRef, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, booking.AppointmentRef{
			ID:          ap.ID,
			BarberID:    ap.BarberID,
			CustomerID:  ap.CustomerID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			DurationMin: ap.DurationMin,
			Status:      ap.Status,
		})
	}
	return out
}
