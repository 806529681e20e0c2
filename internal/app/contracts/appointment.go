package contracts

import (
	"context"

	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/dto/requests"
)

type AppointmentBackendClient interface {
	FindAppointmentByID(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error)
	FindAppointmentsByStatus(ctx context.Context, status clinic_dto.AppointmentStatus) ([]clinic_dto.Appointment, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *clinic_dto.Appointment) (*clinic_dto.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status clinic_dto.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
}

type BookingUsecase interface {
	RequestAppointment(ctx context.Context, patientID string, request *requests.CreateAppointmentRequest) (*clinic_dto.Appointment, error)
	ConfirmAppointment(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error)
	RejectAppointment(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error)
	CancelAppointment(ctx context.Context, patientID, appointmentID string) error
	FindPendingAppointments(ctx context.Context) ([]clinic_dto.Appointment, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error)
}
