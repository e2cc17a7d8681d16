package booking

import (
	"time"

	"github.com/cutqueue/booking-api/internal/wallclock"
)

// AppointmentRef is the snapshot view the conflict detector works on.
// The repository maps its rows into this shape so the checks stay pure.
type AppointmentRef struct {
	ID          uint
	BarberID    uint
	CustomerID  uint
	Date        string // "2006-01-02"
	StartTime   string // wall-clock string
	DurationMin int
	Status      string
}

const statusCancelled = "cancelled"

// SlotTaken re-validates a specific (barber, date, start) triple against the
// live appointment set. Two customers can render the same open slot before
// either commits; this is the check that breaks the tie at write time.
// excludeID skips the appointment being rescheduled (0 = none).
func SlotTaken(
	existing []AppointmentRef,
	barberID uint,
	date string,
	startTime string,
	excludeID uint,
) bool {
	for _, ap := range existing {
		if ap.ID == excludeID && excludeID != 0 {
			continue
		}
		if ap.Status == statusCancelled {
			continue
		}
		if ap.BarberID == barberID && ap.Date == date && ap.StartTime == startTime {
			return true
		}
	}
	return false
}

// OverlapConflict is the stronger write-time guard: true when the candidate
// [start, start+duration) interval overlaps any non-cancelled appointment of
// the barber on that date. Enforces the no-double-booking invariant even
// when two bookings would start at different minutes.
func OverlapConflict(
	existing []AppointmentRef,
	barberID uint,
	date string,
	startTime string,
	durationMin int,
	excludeID uint,
) (bool, error) {
	start, err := wallclock.Parse(startTime)
	if err != nil {
		return false, err
	}
	candidate := Interval{
		Start: start.MinuteOfDay(),
		End:   start.MinuteOfDay() + durationMin,
	}

	for _, ap := range existing {
		if ap.ID == excludeID && excludeID != 0 {
			continue
		}
		if ap.Status == statusCancelled || ap.BarberID != barberID || ap.Date != date {
			continue
		}

		apStart, err := wallclock.Parse(ap.StartTime)
		if err != nil {
			return false, err
		}
		iv := Interval{
			Start: apStart.MinuteOfDay(),
			End:   apStart.MinuteOfDay() + ap.DurationMin,
		}
		if Overlaps(candidate, iv) {
			return true, nil
		}
	}

	return false, nil
}

// HasDailyBooking enforces the one-active-appointment-per-customer-per-day
// policy, independent of barber. Only future, non-cancelled appointments
// count.
func HasDailyBooking(
	existing []AppointmentRef,
	customerID uint,
	date string,
	now time.Time,
) (bool, error) {
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false, err
	}

	for _, ap := range existing {
		if ap.CustomerID != customerID || ap.Status == statusCancelled || ap.Date != date {
			continue
		}

		start, err := wallclock.Parse(ap.StartTime)
		if err != nil {
			return false, err
		}

		at := time.Date(
			day.Year(), day.Month(), day.Day(),
			start.Hour, start.Minute, 0, 0,
			now.Location(),
		)
		if at.After(now) {
			return true, nil
		}
	}

	return false, nil
}
