package backend

import (
	"context"
	"fmt"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

type appointmentBackendClient struct {
	restClient
}

func NewAppointmentBackendClient(baseUrl string) contracts.AppointmentBackendClient {
	return &appointmentBackendClient{restClient: newRestClient(baseUrl)}
}

func (c *appointmentBackendClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error) {
	var appointment clinic_dto.Appointment
	url := fmt.Sprintf("%s/citas/%s", c.baseUrl, appointmentID)
	if err := c.getJSON(ctx, url, constvars.ResourceAppointment, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (c *appointmentBackendClient) FindAppointmentsByStatus(ctx context.Context, status clinic_dto.AppointmentStatus) ([]clinic_dto.Appointment, error) {
	// estado goes straight into the query string, so reject anything that is
	// not one of the three known states before issuing the request.
	if _, err := clinic_dto.ParseAppointmentStatus(string(status)); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	var appointments []clinic_dto.Appointment
	url := fmt.Sprintf("%s/citas?estado=%s", c.baseUrl, status)
	if err := c.getJSON(ctx, url, constvars.ResourceAppointment, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentBackendClient) FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error) {
	var appointments []clinic_dto.Appointment
	url := fmt.Sprintf("%s/citas/paciente/%s", c.baseUrl, patientID)
	if err := c.getJSON(ctx, url, constvars.ResourceAppointment, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentBackendClient) CreateAppointment(ctx context.Context, appointment *clinic_dto.Appointment) (*clinic_dto.Appointment, error) {
	var created clinic_dto.Appointment
	url := fmt.Sprintf("%s/citas/solicitar/%s", c.baseUrl, appointment.AgendaID)
	err := c.doJSON(ctx, constvars.MethodPost, url, appointment, constvars.ResourceAppointment, exceptions.ErrBackendCreateResource, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *appointmentBackendClient) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status clinic_dto.AppointmentStatus) error {
	if _, err := clinic_dto.ParseAppointmentStatus(string(status)); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	url := fmt.Sprintf("%s/citas/%s/estado", c.baseUrl, appointmentID)
	payload := map[string]clinic_dto.AppointmentStatus{"estado": status}
	return c.doJSON(ctx, constvars.MethodPatch, url, payload, constvars.ResourceAppointment, exceptions.ErrBackendUpdateResource, nil)
}

func (c *appointmentBackendClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	url := fmt.Sprintf("%s/citas/%s", c.baseUrl, appointmentID)
	return c.doJSON(ctx, constvars.MethodDelete, url, nil, constvars.ResourceAppointment, exceptions.ErrBackendDeleteResource, nil)
}
