package clinic_dto

import "fmt"

// AppointmentStatus is the lifecycle state of an appointment request.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pendiente"
	AppointmentStatusConfirmed AppointmentStatus = "confirmada"
	AppointmentStatusRejected  AppointmentStatus = "rechazada"
)

// ParseAppointmentStatus validates a raw status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusRejected:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// Appointment is a patient's claim against one Agenda, as exposed by the
// clinic backend. Date and the time pair are denormalized from the agenda at
// creation time for reporting.
type Appointment struct {
	ID          string            `json:"id,omitempty"`
	PatientID   string            `json:"pacienteId"`
	DoctorID    string            `json:"medicoId"`
	AgendaID    string            `json:"agendaId"`
	Reason      string            `json:"motivo"`
	Status      AppointmentStatus `json:"estado"`
	Date        string            `json:"fecha"`
	StartTime   string            `json:"horaInicio"`
	EndTime     string            `json:"horaFin"`
	PatientName string            `json:"pacienteNombre,omitempty"`
	DoctorName  string            `json:"medicoNombre,omitempty"`
}
