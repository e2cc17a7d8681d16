package appointment

import (
	"context"

	domain "github.com/cutqueue/booking-api/internal/domain/appointment"
	"github.com/cutqueue/booking-api/internal/dto"
)

type DaySummary struct {
	repo domain.Repository
}

func NewDaySummary(repo domain.Repository) *DaySummary {
	return &DaySummary{repo: repo}
}

// Execute aggregates the barber's day for the dashboard header.
//
// DonePercentage rule: a day with zero appointments reads as 0%, never a
// division-by-zero artifact.
func (uc *DaySummary) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) (*dto.DaySummaryDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, date, date)
	if err != nil {
		return nil, err
	}

	out := &dto.DaySummaryDTO{Date: date}
	for _, ap := range appointments {
		out.Total++
		switch domain.Status(ap.Status) {
		case domain.StatusPending:
			out.Pending++
		case domain.StatusConfirmed:
			out.Confirmed++
		case domain.StatusCompleted:
			out.Completed++
		case domain.StatusCancelled:
			out.Cancelled++
		case domain.StatusNoShow:
			out.NoShow++
		}
	}

	if out.Total > 0 {
		out.DonePercentage = out.Completed * 100 / out.Total
	}

	return out, nil
}
