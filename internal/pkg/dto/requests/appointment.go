package requests

// CreateAppointmentRequest is a patient's booking claim against one agenda.
// The ten character minimum on the reason mirrors the booking form rule.
type CreateAppointmentRequest struct {
	AgendaID string `json:"agendaId" validate:"required"`
	Reason   string `json:"motivo" validate:"required,min=10"`
}
