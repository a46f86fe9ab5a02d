package booking

import "github.com/graindock/grain-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRefused   Status = "refused"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrForbidden("invalid_state")
	}
	return nil
}

func CanRefuse(current Status) error {
	if current != StatusPending {
		return httperr.ErrForbidden("invalid_state")
	}
	return nil
}

// CanCancel allows cancellation from any pre-completion state.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusAccepted {
		return httperr.ErrForbidden("invalid_state")
	}
	return nil
}

// CanConfirmAttendance: attendance is confirmed only for accepted bookings.
func CanConfirmAttendance(current Status) error {
	if current != StatusAccepted {
		return httperr.ErrForbidden("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// ReleasesSlot reports whether entering this status frees the reserved
// time slot and the zone capacity held by the appointment.
func ReleasesSlot(next Status) bool {
	return next == StatusRefused || next == StatusCancelled
}
