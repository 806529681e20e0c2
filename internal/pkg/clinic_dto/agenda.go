package clinic_dto

// Agenda is a doctor-published time window eligible for booking, as exposed
// by the clinic backend. Dates are YYYY-MM-DD, times are HH:MM (24-hour),
// both in the backend's local civil time.
type Agenda struct {
	ID         string `json:"id,omitempty"`
	DoctorID   string `json:"uidMedico"`
	Date       string `json:"fecha"`
	StartTime  string `json:"horaInicio"`
	EndTime    string `json:"horaFin"`
	Available  bool   `json:"disponible"`
	DoctorName string `json:"medicoNombre,omitempty"`
}
