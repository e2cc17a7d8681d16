package dto

type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Code         string `json:"code"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	DurationMin  int    `json:"duration_min"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
	BarberName   string `json:"barber_name"`
	Services     string `json:"services"`
}

type DaySummaryDTO struct {
	Date           string `json:"date"`
	Total          int    `json:"total"`
	Pending        int    `json:"pending"`
	Confirmed      int    `json:"confirmed"`
	Completed      int    `json:"completed"`
	Cancelled      int    `json:"cancelled"`
	NoShow         int    `json:"no_show"`
	DonePercentage int    `json:"done_percentage"`
}
