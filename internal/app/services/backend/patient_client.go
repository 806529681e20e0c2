package backend

import (
	"context"
	"fmt"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

type patientBackendClient struct {
	restClient
}

func NewPatientBackendClient(baseUrl string) contracts.PatientBackendClient {
	return &patientBackendClient{restClient: newRestClient(baseUrl)}
}

func (c *patientBackendClient) FindPatientByID(ctx context.Context, patientID string) (*clinic_dto.Patient, error) {
	var patient clinic_dto.Patient
	url := fmt.Sprintf("%s/pacientes/%s", c.baseUrl, patientID)
	if err := c.getJSON(ctx, url, constvars.ResourcePatient, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *patientBackendClient) FindPatientByUID(ctx context.Context, uid string) (*clinic_dto.Patient, error) {
	var patient clinic_dto.Patient
	url := fmt.Sprintf("%s/pacientes/uid/%s", c.baseUrl, uid)
	if err := c.getJSON(ctx, url, constvars.ResourcePatient, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (c *patientBackendClient) FindAllPatients(ctx context.Context) ([]clinic_dto.Patient, error) {
	var patients []clinic_dto.Patient
	url := fmt.Sprintf("%s/pacientes", c.baseUrl)
	if err := c.getJSON(ctx, url, constvars.ResourcePatient, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *patientBackendClient) CreatePatient(ctx context.Context, patient *clinic_dto.Patient) (*clinic_dto.Patient, error) {
	var created clinic_dto.Patient
	url := fmt.Sprintf("%s/pacientes", c.baseUrl)
	err := c.doJSON(ctx, constvars.MethodPost, url, patient, constvars.ResourcePatient, exceptions.ErrBackendCreateResource, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *patientBackendClient) UpdatePatient(ctx context.Context, patient *clinic_dto.Patient) (*clinic_dto.Patient, error) {
	var updated clinic_dto.Patient
	url := fmt.Sprintf("%s/pacientes/%s", c.baseUrl, patient.ID)
	err := c.doJSON(ctx, constvars.MethodPut, url, patient, constvars.ResourcePatient, exceptions.ErrBackendUpdateResource, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *patientBackendClient) DeletePatient(ctx context.Context, patientID string) error {
	url := fmt.Sprintf("%s/pacientes/%s", c.baseUrl, patientID)
	return c.doJSON(ctx, constvars.MethodDelete, url, nil, constvars.ResourcePatient, exceptions.ErrBackendDeleteResource, nil)
}
