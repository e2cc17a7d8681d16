package appointment

import (
	"time"

	"github.com/cutqueue/booking-api/internal/httperr"
	"github.com/cutqueue/booking-api/internal/models"
	"github.com/cutqueue/booking-api/internal/wallclock"
)

// ===============================
// Domain Actions
// ===============================
//
// Every transition stamps ChangesMadeBy with the acting role and bumps
// UpdatedCount; the notify collaborator uses ChangesMadeBy to decide which
// party to tell.

func Confirm(ap *models.Appointment, actor string, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ChangesMadeBy = actor
	ap.UpdatedCount++
	return nil
}

func Cancel(ap *models.Appointment, actor string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.ChangesMadeBy = actor
	ap.UpdatedCount++
	ap.CancelledAt = &now
	return nil
}

// Complete is only legal once the appointment's end time has passed;
// a barber cannot close out a future booking.
func Complete(ap *models.Appointment, actor string, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	past, err := endsBefore(ap, now)
	if err != nil {
		return err
	}
	if !past {
		return httperr.ErrBusiness("appointment_in_future")
	}

	ap.Status = string(StatusCompleted)
	ap.ChangesMadeBy = actor
	ap.UpdatedCount++
	ap.CompletedAt = &now
	return nil
}

// NoShow has the same past-only constraint as Complete.
func NoShow(ap *models.Appointment, actor string, now time.Time) error {
	if err := CanNoShow(Status(ap.Status)); err != nil {
		return err
	}

	past, err := endsBefore(ap, now)
	if err != nil {
		return err
	}
	if !past {
		return httperr.ErrBusiness("appointment_in_future")
	}

	ap.Status = string(StatusNoShow)
	ap.ChangesMadeBy = actor
	ap.UpdatedCount++
	return nil
}

// EndsAt resolves the appointment's wall-clock end on its calendar day.
func EndsAt(ap *models.Appointment, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", ap.Date, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}

	start, err := wallclock.Parse(ap.StartTime)
	if err != nil {
		return time.Time{}, err
	}

	end := start.Add(ap.DurationMin)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		end.Hour, end.Minute, 0, 0,
		loc,
	), nil
}

func endsBefore(ap *models.Appointment, now time.Time) (bool, error) {
	end, err := EndsAt(ap, now.Location())
	if err != nil {
		return false, err
	}
	return end.Before(now), nil
}
