package booking

import (
	"time"

	"github.com/graindock/grain-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(ap *models.Appointment) error {
	if err := CanAccept(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusAccepted)
	return nil
}

func Refuse(ap *models.Appointment) error {
	if err := CanRefuse(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRefused)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func ConfirmAttendance(ap *models.Appointment, now time.Time) error {
	if err := CanConfirmAttendance(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
