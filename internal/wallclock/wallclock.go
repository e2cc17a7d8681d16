package wallclock

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat means a schedule entry is corrupted. Never guess a
// default here: a bad schedule string must not silently produce wrong slots.
var ErrInvalidTimeFormat = fmt.Errorf("invalid time format")

// Time is a time-of-day in 24-hour form. Schedule strings ("9:00 AM") only
// exist at the API boundary; everything inside works on Time / minute-of-day.
type Time struct {
	Hour   int
	Minute int
}

// Parse converts a 12-hour "H:MM AM|PM" string.
func Parse(s string) (Time, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if meridiem == "AM" {
		if hour == 12 {
			hour = 0
		}
	} else if hour < 12 {
		hour += 12
	}

	return Time{Hour: hour, Minute: minute}, nil
}

// String renders the 12-hour form, e.g. {13,5} -> "1:05 PM".
func (t Time) String() string {
	meridiem := "AM"
	if t.Hour >= 12 {
		meridiem = "PM"
	}

	hour := t.Hour
	if hour == 0 {
		hour = 12
	} else if hour > 12 {
		hour -= 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, meridiem)
}

// Add moves the clock forward by delta minutes, carrying into the hour.
// Callers bound results against a same-day closing time, so there is no
// day rollover.
func (t Time) Add(delta int) Time {
	return FromMinuteOfDay(t.MinuteOfDay() + delta)
}

func (t Time) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

func FromMinuteOfDay(m int) Time {
	return Time{Hour: m / 60, Minute: m % 60}
}

// Format is the minute-of-day shortcut for slot emission.
func Format(minuteOfDay int) string {
	return FromMinuteOfDay(minuteOfDay).String()
}

// CeilToIncrement rounds the minute component up to the next multiple of
// inc, carrying through the hour (10:50 @ 15 -> 11:00, never 10:60).
func CeilToIncrement(minuteOfDay, inc int) int {
	if inc <= 0 {
		return minuteOfDay
	}
	t := FromMinuteOfDay(minuteOfDay)
	if rem := t.Minute % inc; rem != 0 {
		return minuteOfDay + inc - rem
	}
	return minuteOfDay
}
