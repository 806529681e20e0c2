package requests

// CreateAgendaRequest creates one agenda on one explicit date.
type CreateAgendaRequest struct {
	DoctorID  string `json:"uidMedico" validate:"required"`
	Date      string `json:"fecha" validate:"required,civil_date"`
	StartTime string `json:"horaInicio" validate:"required,clock_time"`
	EndTime   string `json:"horaFin" validate:"required,clock_time"`
	Available *bool  `json:"disponible,omitempty"`
}

// CreateRecurringAgendaRequest expands a recurrence into agendas, one per
// matching date, all carrying the same time block.
type CreateRecurringAgendaRequest struct {
	DoctorID   string   `json:"uidMedico" validate:"required"`
	RangeStart string   `json:"fechaInicio" validate:"required,civil_date"`
	RangeEnd   string   `json:"fechaFin" validate:"required,civil_date"`
	Weekdays   []string `json:"diasSemana" validate:"required,min=1"`
	BlockStart string   `json:"horaInicio" validate:"required,clock_time"`
	BlockEnd   string   `json:"horaFin" validate:"required,clock_time"`
	Available  *bool    `json:"disponible,omitempty"`
}

type UpdateAgendaRequest struct {
	Date      string `json:"fecha" validate:"required,civil_date"`
	StartTime string `json:"horaInicio" validate:"required,clock_time"`
	EndTime   string `json:"horaFin" validate:"required,clock_time"`
	Available *bool  `json:"disponible,omitempty"`
}

type UpdateAgendaAvailabilityRequest struct {
	Available *bool `json:"disponible" validate:"required"`
}
