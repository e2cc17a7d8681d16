package appointment

import (
	"context"
	"errors"
	"sync"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/domain/booking"
	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/notify"
)

// fakeRepo is an in-memory domain.Repository. Its checked writers run the
// same conflict detector as the gorm implementation so the race tests
// exercise the real guard.
type fakeRepo struct {
	mu sync.Mutex

	barbers      map[uint]*models.User
	services     map[uint]models.BarberService
	schedule     map[uint]map[string]*models.ScheduleDay
	blocked      []models.BlockedTime
	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:  map[uint]*models.User{},
		services: map[uint]models.BarberService{},
		schedule: map[uint]map[string]*models.ScheduleDay{},
		nextID:   1,
	}
}

func (f *fakeRepo) addBarber(b models.User) {
	f.barbers[b.ID] = &b
}

func (f *fakeRepo) addService(s models.BarberService) {
	f.services[s.ID] = s
}

func (f *fakeRepo) setScheduleDay(barberID uint, d models.ScheduleDay) {
	if f.schedule[barberID] == nil {
		f.schedule[barberID] = map[string]*models.ScheduleDay{}
	}
	f.schedule[barberID][d.Weekday] = &d
}

var errNotFound = errors.New("not found")

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.User, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListServicesByIDs(_ context.Context, barberID uint, ids []uint) ([]models.BarberService, error) {
	out := []models.BarberService{}
	for _, id := range ids {
		if s, ok := f.services[id]; ok && s.BarberID == barberID && s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetScheduleDay(_ context.Context, barberID uint, weekday string) (*models.ScheduleDay, error) {
	if days, ok := f.schedule[barberID]; ok {
		if d, ok := days[weekday]; ok {
			return d, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListBlockedTimes(_ context.Context, barberID uint, date string) ([]models.BlockedTime, error) {
	out := []models.BlockedTime{}
	for _, bt := range f.blocked {
		if bt.BarberID == barberID && bt.Date == date {
			out = append(out, bt)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForCustomerDay(_ context.Context, customerID uint, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID && ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, id, barberID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id && ap.BarberID == barberID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetAppointmentForCustomer(_ context.Context, id, customerID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id && ap.CustomerID == customerID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, fromDate, toDate string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date >= fromDate && ap.Date <= toDate {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) checkConflict(ap *models.Appointment, excludeID uint) error {
	refs := make([]booking.AppointmentRef, 0, len(f.appointments))
	for _, other := range f.appointments {
		refs = append(refs, booking.AppointmentRef{
			ID:          other.ID,
			BarberID:    other.BarberID,
			CustomerID:  other.CustomerID,
			Date:        other.Date,
			StartTime:   other.StartTime,
			DurationMin: other.DurationMin,
			Status:      other.Status,
		})
	}

	if booking.SlotTaken(refs, ap.BarberID, ap.Date, ap.StartTime, excludeID) {
		return httperr.ErrBusiness("slot_taken")
	}
	conflict, err := booking.OverlapConflict(refs, ap.BarberID, ap.Date, ap.StartTime, ap.DurationMin, excludeID)
	if err != nil {
		return err
	}
	if conflict {
		return httperr.ErrBusiness("slot_taken")
	}
	return nil
}

func (f *fakeRepo) CreateAppointmentChecked(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkConflict(ap, 0); err != nil {
		return err
	}

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.appointments = append(f.appointments, &cp)
	return nil
}

func (f *fakeRepo) SaveAppointmentChecked(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkConflict(ap, ap.ID); err != nil {
		return err
	}
	return f.save(ap)
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(ap)
}

func (f *fakeRepo) save(ap *models.Appointment) error {
	for i, other := range f.appointments {
		if other.ID == ap.ID {
			cp := *ap
			f.appointments[i] = &cp
			return nil
		}
	}
	return errNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

// noopNotifier keeps tests synchronous.
type noopNotifier struct {
	events []notify.Event
}

func (n *noopNotifier) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}
