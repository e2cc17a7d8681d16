package timezone

import "time"

const DefaultTimezone = "America/New_York"

// defaultName is set once at startup from DEFAULT_TIMEZONE; all
// appointment times are interpreted in this zone.
var defaultName = DefaultTimezone

// SetDefault switches the process-wide zone. Invalid names are ignored
// and the previous default stays in effect.
func SetDefault(tz string) {
	if IsValid(tz) {
		defaultName = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func DefaultLocation() *time.Location {
	return Location(defaultName)
}

func Now() time.Time {
	return time.Now().In(DefaultLocation())
}
