package appointment

import "time"

// ServiceItem is one selected catalog service with its quantity; the
// appointment duration is the sum of duration*quantity over all items.
type ServiceItem struct {
	ServiceID uint `json:"service_id"`
	Quantity  int  `json:"quantity"`
}

type AvailabilityInput struct {
	BarberID uint
	Services []ServiceItem
	Date     time.Time
}
