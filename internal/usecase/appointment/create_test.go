package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
)

func createAt(repo *fakeRepo, now time.Time) (*CreateAppointment, *noopNotifier) {
	n := &noopNotifier{}
	uc := NewCreateAppointment(repo, n, nil)
	uc.now = func() time.Time { return now }
	return uc, n
}

func validInput(customerID uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		CustomerID: customerID,
		BarberID:   7,
		Services:   []domain.ServiceItem{{ServiceID: 1, Quantity: 1}},
		Date:       "2026-03-10",
		StartTime:  "3:00 PM",
	}
}

func TestCreateAppointment_Succeeds(t *testing.T) {
	repo := seededRepo()
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	uc, n := createAt(repo, now)
	ap, err := uc.Execute(context.Background(), validInput(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "pending" {
		t.Fatalf("new appointments start pending, got %s", ap.Status)
	}
	if ap.ChangesMadeBy != models.RoleCustomer {
		t.Fatalf("creation is a customer action, got %s", ap.ChangesMadeBy)
	}
	if ap.Code == "" || ap.ID == 0 {
		t.Fatalf("expected assigned code and id, got %+v", ap)
	}
	if ap.DurationMin != 30 {
		t.Fatalf("expected 30 min duration, got %d", ap.DurationMin)
	}
	if len(n.events) != 1 || n.events[0].Action != "appointment_requested" {
		t.Fatalf("expected one appointment_requested event, got %+v", n.events)
	}
}

// Scenario: two customers both rendered 3:00 PM as open; X commits first,
// Y must get slot_taken even though Y's client-side list showed it free.
func TestCreateAppointment_RaceLoserGetsSlotTaken(t *testing.T) {
	repo := seededRepo()
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	uc, _ := createAt(repo, now)

	if _, err := uc.Execute(context.Background(), validInput(42)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := uc.Execute(context.Background(), validInput(43))
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken for the race loser, got %v", err)
	}
}

// Overlap counts too, not just an identical start minute.
func TestCreateAppointment_OverlapRejected(t *testing.T) {
	repo := seededRepo()
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	uc, _ := createAt(repo, now)

	if _, err := uc.Execute(context.Background(), validInput(42)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := validInput(43)
	in.StartTime = "3:15 PM" // inside [3:00, 3:30)
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken for overlap, got %v", err)
	}

	in.StartTime = "3:30 PM" // back-to-back is fine
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}
}

func TestCreateAppointment_DuplicateDailyBooking(t *testing.T) {
	repo := seededRepo()
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	uc, _ := createAt(repo, now)

	if _, err := uc.Execute(context.Background(), validInput(42)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := validInput(42)
	in.StartTime = "5:00 PM"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "duplicate_daily_booking") {
		t.Fatalf("expected duplicate_daily_booking, got %v", err)
	}
}

func TestCreateAppointment_Rejections(t *testing.T) {
	repo := seededRepo()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC) // 4:00 PM same day

	uc, _ := createAt(repo, now)

	in := validInput(42) // 3:00 PM today: already gone
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "time_in_past") {
		t.Fatalf("expected time_in_past, got %v", err)
	}

	in = validInput(42)
	in.StartTime = "6:45 PM" // ends 7:15 PM, past closing
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "outside_working_hours") {
		t.Fatalf("expected outside_working_hours, got %v", err)
	}

	in = validInput(42)
	in.StartTime = "not a time"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}

	repo.barbers[7].IsAvailable = false
	in = validInput(42)
	in.StartTime = "5:00 PM"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "barber_unavailable") {
		t.Fatalf("expected barber_unavailable, got %v", err)
	}
}

func TestReschedule(t *testing.T) {
	repo := seededRepo()
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	createUC, _ := createAt(repo, now)
	ap, err := createUC.Execute(context.Background(), validInput(42))
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	other := validInput(43)
	other.StartTime = "5:00 PM"
	if _, err := createUC.Execute(context.Background(), other); err != nil {
		t.Fatalf("seed second booking: %v", err)
	}

	n := &noopNotifier{}
	uc := NewReschedule(repo, n)
	uc.now = func() time.Time { return now }

	// Moving onto the other customer's slot must fail.
	_, err = uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID, ActorRole: models.RoleCustomer, ActorID: 42,
		Date: "2026-03-10", StartTime: "5:00 PM",
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("expected slot_taken, got %v", err)
	}

	// Moving within its own span is legal: the check excludes its own row.
	moved, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID, ActorRole: models.RoleCustomer, ActorID: 42,
		Date: "2026-03-10", StartTime: "3:15 PM",
	})
	if err != nil {
		t.Fatalf("reschedule onto own span: %v", err)
	}
	if moved.UpdatedCount != 1 || moved.ChangesMadeBy != models.RoleCustomer {
		t.Fatalf("got updatedCount=%d changesMadeBy=%s", moved.UpdatedCount, moved.ChangesMadeBy)
	}

	// Terminal appointments cannot be moved.
	stored, _ := repo.GetAppointmentForCustomer(context.Background(), ap.ID, 42)
	stored.Status = "completed"
	_ = repo.UpdateAppointment(context.Background(), stored)

	_, err = uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: ap.ID, ActorRole: models.RoleCustomer, ActorID: 42,
		Date: "2026-03-10", StartTime: "6:00 PM",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestDaySummary_ZeroAppointmentsIsZeroPercent(t *testing.T) {
	repo := seededRepo()

	uc := NewDaySummary(repo)
	sum, err := uc.Execute(context.Background(), 7, "2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Total != 0 || sum.DonePercentage != 0 {
		t.Fatalf("empty day must read 0%%, got %+v", sum)
	}
}

func TestDaySummary_Percentage(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments,
		&models.Appointment{ID: 1, BarberID: 7, Date: "2026-03-10", StartTime: "10:00 AM", DurationMin: 30, Status: "completed"},
		&models.Appointment{ID: 2, BarberID: 7, Date: "2026-03-10", StartTime: "11:00 AM", DurationMin: 30, Status: "completed"},
		&models.Appointment{ID: 3, BarberID: 7, Date: "2026-03-10", StartTime: "2:00 PM", DurationMin: 30, Status: "confirmed"},
		&models.Appointment{ID: 4, BarberID: 7, Date: "2026-03-10", StartTime: "4:00 PM", DurationMin: 30, Status: "pending"},
	)

	uc := NewDaySummary(repo)
	sum, err := uc.Execute(context.Background(), 7, "2026-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Total != 4 || sum.Completed != 2 || sum.DonePercentage != 50 {
		t.Fatalf("got %+v, want total=4 completed=2 done=50", sum)
	}
}
