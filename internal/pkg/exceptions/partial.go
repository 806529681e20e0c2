package exceptions

import (
	"citamed-service/internal/pkg/constvars"
	"fmt"
)

// PartialUpdateError is returned when an appointment status write and its
// paired agenda availability write diverge: one half committed on the clinic
// backend and the other did not, and compensation also failed. It carries
// enough context for a manual or scheduled repair.
type PartialUpdateError struct {
	AppointmentID   string
	AgendaID        string
	StatusUpdated   bool
	AvailabilitySet bool
	Cause           error
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf(
		"partial update: appointment=%s agenda=%s status_updated=%t availability_set=%t: %v",
		e.AppointmentID, e.AgendaID, e.StatusUpdated, e.AvailabilitySet, e.Cause,
	)
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Cause
}

// ErrPartialUpdate builds the client-facing wrapper around a PartialUpdateError.
func ErrPartialUpdate(partial *PartialUpdateError) *CustomError {
	return BuildNewCustomError(partial, constvars.StatusBadGateway, constvars.ErrClientAppointmentPartialUpdate, partial.Error())
}
