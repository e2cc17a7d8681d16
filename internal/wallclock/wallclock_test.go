package wallclock

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"12:00 AM", 0, 0},
		{"12:30 AM", 0, 30},
		{"1:05 AM", 1, 5},
		{"11:59 AM", 11, 59},
		{"12:00 PM", 12, 0},
		{"1:00 PM", 13, 0},
		{"11:45 PM", 23, 45},
		{"  9:15 am ", 9, 15},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tc.in, err)
		}
		if got.Hour != tc.hour || got.Minute != tc.minute {
			t.Fatalf("Parse(%q) = %d:%d, want %d:%d", tc.in, got.Hour, got.Minute, tc.hour, tc.minute)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"10:00",
		"AM",
		"10 AM",
		"10:xx AM",
		"xx:00 PM",
		"13:00 PM",
		"0:30 AM",
		"10:60 AM",
		"10:00 XM",
		"10:00 AM PM",
	}

	for _, in := range cases {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("Parse(%q): expected ErrInvalidTimeFormat, got %v", in, err)
		}
	}
}

// P5: parse(format(h,m)) == (h,m) for every valid 24-hour pair.
func TestRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := Time{Hour: h, Minute: m}.String()
			got, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q): %v", s, err)
			}
			if got.Hour != h || got.Minute != m {
				t.Fatalf("round trip %d:%d -> %q -> %d:%d", h, m, s, got.Hour, got.Minute)
			}
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		t    Time
		want string
	}{
		{Time{0, 0}, "12:00 AM"},
		{Time{0, 5}, "12:05 AM"},
		{Time{12, 0}, "12:00 PM"},
		{Time{13, 30}, "1:30 PM"},
		{Time{23, 59}, "11:59 PM"},
	}

	for _, tc := range cases {
		if got := tc.t.String(); got != tc.want {
			t.Fatalf("String(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestAdd_HourCarry(t *testing.T) {
	got := Time{10, 50}.Add(40)
	if got.Hour != 11 || got.Minute != 30 {
		t.Fatalf("10:50 + 40min = %d:%02d, want 11:30", got.Hour, got.Minute)
	}
}

func TestCeilToIncrement(t *testing.T) {
	cases := []struct {
		minute, inc, want int
	}{
		{10*60 + 7, 15, 10*60 + 15},
		{10 * 60, 15, 10 * 60},
		{10*60 + 50, 15, 11 * 60}, // carries through the hour
		{10*60 + 1, 30, 10*60 + 30},
		{10*60 + 31, 45, 10*60 + 45}, // minute component rounds, not minute-of-day
	}

	for _, tc := range cases {
		if got := CeilToIncrement(tc.minute, tc.inc); got != tc.want {
			t.Fatalf("CeilToIncrement(%d, %d) = %d, want %d", tc.minute, tc.inc, got, tc.want)
		}
	}
}
