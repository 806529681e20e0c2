package responses

import "citamed-service/internal/pkg/clinic_dto"

// RecurringAgendaOutcome reports what happened to each generated slot of a
// recurring agenda request.
type RecurringAgendaOutcome struct {
	Created          []clinic_dto.Agenda `json:"created"`
	SkippedOverlap   int                 `json:"skippedOverlap"`
	SkippedDuplicate int                 `json:"skippedDuplicate"`
}
