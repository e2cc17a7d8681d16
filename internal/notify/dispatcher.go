package notify

import (
	"log"

	"github.com/cutqueue/booking-api/internal/models"
)

// Event describes a status transition. Recipient is derived from who made
// the change: the other party is the one that needs to hear about it.
type Event struct {
	AppointmentID uint
	Action        string
	ChangesMadeBy string
	Metadata      any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func recipientFor(changesMadeBy string) string {
	if changesMadeBy == models.RoleBarber {
		return models.RoleCustomer
	}
	return models.RoleBarber
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.AppointmentID,
			recipientFor(ev.ChangesMadeBy),
			ev.Action,
			ev.Metadata,
		); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop rather than block a booking response
		log.Println("notify queue full, dropping event")
	}
}
