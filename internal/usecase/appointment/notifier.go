package appointment

import "github.com/cutqueue/booking-api/internal/notify"

// Notifier decouples use cases from the dispatcher; satisfied by
// *notify.Dispatcher.
type Notifier interface {
	Dispatch(ev notify.Event)
}
