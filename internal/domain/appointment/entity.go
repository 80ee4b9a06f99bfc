package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusScheduled)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	at := timefmt.FormatDateTime(now)
	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &at
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	at := timefmt.FormatDateTime(now)
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &at
	return nil
}
