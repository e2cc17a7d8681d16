package booking

import (
	"sort"
	"time"

	"github.com/cutqueue/booking-api/internal/wallclock"
)

// Interval is a half-open [Start, End) span in minutes from midnight.
// Lunch breaks, existing bookings and blocked ranges all become Intervals
// before the generator runs, so one overlap test covers every source.
type Interval struct {
	Start int
	End   int
}

// Overlaps uses the open comparison on purpose: a booking that starts
// exactly when another ends is legal (back-to-back).
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Contains reports whether the minute falls inside the half-open span.
func (iv Interval) Contains(minute int) bool {
	return minute >= iv.Start && minute < iv.End
}

// TimeSlot is a candidate start time. Derived on every query, never stored.
type TimeSlot struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked"`
}

// SlotRequest carries everything the generator needs. Occupied already
// includes the day's non-cancelled bookings plus the lunch break and any
// blocked ranges appended by the caller; Lunch and Blocked are kept
// separately for the cursor-containment checks.
type SlotRequest struct {
	DayStart     string // working window, wall-clock strings
	DayEnd       string
	IncrementMin int // slot granularity (15/30/45)
	DurationMin  int // total minutes the new appointment occupies

	Occupied []Interval
	Lunch    *Interval
	Blocked  *Interval // barber-declared exception for this date only

	Date time.Time // target calendar day
	Now  time.Time // injected for testability
}

// GenerateTimeSlots walks the working window in IncrementMin steps and
// returns every start time where a DurationMin appointment fits without
// touching lunch, the blocked range or an occupied interval.
//
// Pure function: identical inputs yield the identical ordered sequence.
func GenerateTimeSlots(req SlotRequest) ([]TimeSlot, error) {
	open, err := wallclock.Parse(req.DayStart)
	if err != nil {
		return nil, err
	}
	closing, err := wallclock.Parse(req.DayEnd)
	if err != nil {
		return nil, err
	}

	cursor := open.MinuteOfDay()

	// Today: never offer a slot in the past. Advance to "now" and round
	// the minute up to the next increment, carrying into the hour.
	if sameDay(req.Date, req.Now) {
		nowMinute := req.Now.Hour()*60 + req.Now.Minute()
		if nowMinute > cursor {
			cursor = wallclock.CeilToIncrement(nowMinute, req.IncrementMin)
		}
	}

	// A slot whose service would run past closing is invalid.
	latestStart := closing.MinuteOfDay() - req.DurationMin

	// Not required by the overlap test, but keeps output deterministic.
	occupied := make([]Interval, len(req.Occupied))
	copy(occupied, req.Occupied)
	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].Start < occupied[j].Start
	})

	slots := []TimeSlot{}

	if req.IncrementMin <= 0 || req.DurationMin <= 0 {
		return slots, nil
	}

	for ; cursor <= latestStart; cursor += req.IncrementMin {
		if req.Lunch != nil && req.Lunch.Contains(cursor) {
			continue
		}
		if req.Blocked != nil && req.Blocked.Contains(cursor) {
			continue
		}

		candidate := Interval{Start: cursor, End: cursor + req.DurationMin}

		conflict := false
		for _, iv := range occupied {
			if Overlaps(candidate, iv) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, TimeSlot{
			Time:     wallclock.Format(cursor),
			IsBooked: false,
		})
	}

	return slots, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
