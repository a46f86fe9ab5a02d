package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Kind classifies a business failure so handlers can map it onto a
// response status without inspecting individual codes.
type Kind int

const (
	KindForbidden Kind = iota
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var messages = map[string]string{
	"farmer_not_found":      "Farmer not found.",
	"zone_not_found":        "Storage zone not found.",
	"grain_not_found":       "Grain type not found.",
	"timeslot_not_found":    "Time slot not found.",
	"warehouse_not_found":   "Warehouse not found.",
	"appointment_not_found": "Appointment not found.",
	"slot_not_usable":       "Cannot use this time slot.",
	"capacity_insufficient": "Storage capacity not sufficient.",
	"slot_already_booked":   "Time slot already booked.",
	"invalid_state":         "Appointment cannot change to that state.",
	"not_owner":             "Only the owning farmer may do this.",
	"not_zone_admin":        "Only the managing warehouse admin may do this.",
}

// WriteBusiness writes a business error as the matching HTTP response.
// Returns false when err is not a BusinessError so callers can fall
// through to an internal error response.
func WriteBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	msg, ok := messages[be.Code]
	if !ok {
		msg = "Request rejected."
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, msg)
	case KindConflict:
		Conflict(c, be.Code, msg)
	default:
		Forbidden(c, be.Code, msg)
	}
	return true
}
