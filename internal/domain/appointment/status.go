package appointment

import "github.com/cutqueue/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

// completed, cancelled and no-show are terminal.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusNoShow
}

// ===============================
// Validations
// ===============================

// CanConfirm: only a pending request can be accepted by the barber.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: any non-terminal appointment can still be called off.
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: barber closes out a confirmed appointment.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanNoShow: same gate as complete, different outcome.
func CanNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanModify gates the cancel/reschedule flow. Pending requests are always
// modifiable; confirmed ones stay modifiable until a terminal transition.
func CanModify(current Status) bool {
	return current == StatusPending || current == StatusConfirmed
}

func InitialStatus() Status {
	return StatusPending
}
