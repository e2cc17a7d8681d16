package appointment

import (
	"testing"
	"time"

	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
)

func pastAppointment(status string) *models.Appointment {
	return &models.Appointment{
		ID:          1,
		BarberID:    7,
		CustomerID:  42,
		Date:        "2026-03-10",
		StartTime:   "9:00 AM",
		DurationMin: 30,
		Status:      status,
	}
}

func TestConfirm(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	ap := pastAppointment("pending")
	if err := Confirm(ap, models.RoleBarber, now); err != nil {
		t.Fatalf("confirming a pending appointment: %v", err)
	}
	if ap.Status != "confirmed" || ap.ChangesMadeBy != models.RoleBarber {
		t.Fatalf("got status=%s changesMadeBy=%s", ap.Status, ap.ChangesMadeBy)
	}
	if ap.UpdatedCount != 1 {
		t.Fatalf("every transition bumps UpdatedCount, got %d", ap.UpdatedCount)
	}

	// Already confirmed, completed etc. cannot be confirmed again.
	for _, s := range []string{"confirmed", "cancelled", "completed", "no-show"} {
		ap := pastAppointment(s)
		if err := Confirm(ap, models.RoleBarber, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("Confirm(%s): expected invalid_state, got %v", s, err)
		}
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	for _, s := range []string{"pending", "confirmed"} {
		ap := pastAppointment(s)
		if err := Cancel(ap, models.RoleCustomer, now); err != nil {
			t.Fatalf("Cancel(%s): %v", s, err)
		}
		if ap.Status != "cancelled" || ap.CancelledAt == nil {
			t.Fatalf("Cancel(%s): status=%s cancelledAt=%v", s, ap.Status, ap.CancelledAt)
		}
		if ap.ChangesMadeBy != models.RoleCustomer {
			t.Fatalf("cancel must stamp the acting role")
		}
		if ap.UpdatedCount != 1 {
			t.Fatalf("Cancel(%s): UpdatedCount = %d, want 1", s, ap.UpdatedCount)
		}
	}

	for _, s := range []string{"cancelled", "completed", "no-show"} {
		ap := pastAppointment(s)
		if err := Cancel(ap, models.RoleBarber, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("Cancel(%s): expected invalid_state, got %v", s, err)
		}
	}
}

// A confirmed appointment still hours away must not be completable.
func TestComplete_RejectsFutureAppointment(t *testing.T) {
	// Appointment ends 9:30 AM; "now" is three hours earlier.
	now := time.Date(2026, 3, 10, 6, 30, 0, 0, time.UTC)

	ap := pastAppointment("confirmed")
	if err := Complete(ap, models.RoleBarber, now); !httperr.IsBusiness(err, "appointment_in_future") {
		t.Fatalf("expected appointment_in_future, got %v", err)
	}
	if ap.Status != "confirmed" {
		t.Fatalf("rejected transition must leave state unchanged, got %s", ap.Status)
	}
	if ap.UpdatedCount != 0 {
		t.Fatalf("rejected transition must not bump UpdatedCount, got %d", ap.UpdatedCount)
	}

	// Once the end time has passed it goes through.
	later := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	if err := Complete(ap, models.RoleBarber, later); err != nil {
		t.Fatalf("completing a past appointment: %v", err)
	}
	if ap.Status != "completed" || ap.CompletedAt == nil {
		t.Fatalf("got status=%s completedAt=%v", ap.Status, ap.CompletedAt)
	}
}

func TestNoShow(t *testing.T) {
	later := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	ap := pastAppointment("confirmed")
	if err := NoShow(ap, models.RoleBarber, earlier); !httperr.IsBusiness(err, "appointment_in_future") {
		t.Fatalf("expected appointment_in_future, got %v", err)
	}
	if err := NoShow(ap, models.RoleBarber, later); err != nil {
		t.Fatalf("no-show on a past confirmed appointment: %v", err)
	}
	if ap.Status != "no-show" {
		t.Fatalf("got status=%s", ap.Status)
	}

	pending := pastAppointment("pending")
	if err := NoShow(pending, models.RoleBarber, later); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("pending cannot go straight to no-show, got %v", err)
	}
}

// Regression pin: the modify action shows for pending regardless of
// anything else, and for confirmed until a terminal transition.
func TestCanModify(t *testing.T) {
	cases := map[Status]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
		StatusNoShow:    false,
	}
	for s, want := range cases {
		if got := CanModify(s); got != want {
			t.Fatalf("CanModify(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestEndsAt_BadDataIsHardFailure(t *testing.T) {
	ap := pastAppointment("confirmed")
	ap.StartTime = "9 o'clock"
	if _, err := EndsAt(ap, time.UTC); err == nil {
		t.Fatalf("corrupted start time must fail, not default")
	}
}
