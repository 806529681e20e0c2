package backend

import (
	"context"
	"fmt"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

type doctorBackendClient struct {
	restClient
}

func NewDoctorBackendClient(baseUrl string) contracts.DoctorBackendClient {
	return &doctorBackendClient{restClient: newRestClient(baseUrl)}
}

func (c *doctorBackendClient) FindDoctorByID(ctx context.Context, doctorID string) (*clinic_dto.Doctor, error) {
	var doctor clinic_dto.Doctor
	url := fmt.Sprintf("%s/medicos/%s", c.baseUrl, doctorID)
	if err := c.getJSON(ctx, url, constvars.ResourceDoctor, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (c *doctorBackendClient) FindAllDoctors(ctx context.Context) ([]clinic_dto.Doctor, error) {
	var doctors []clinic_dto.Doctor
	url := fmt.Sprintf("%s/medicos", c.baseUrl)
	if err := c.getJSON(ctx, url, constvars.ResourceDoctor, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *doctorBackendClient) CreateDoctor(ctx context.Context, doctor *clinic_dto.Doctor) (*clinic_dto.Doctor, error) {
	var created clinic_dto.Doctor
	url := fmt.Sprintf("%s/medicos", c.baseUrl)
	err := c.doJSON(ctx, constvars.MethodPost, url, doctor, constvars.ResourceDoctor, exceptions.ErrBackendCreateResource, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *doctorBackendClient) UpdateDoctor(ctx context.Context, doctor *clinic_dto.Doctor) (*clinic_dto.Doctor, error) {
	var updated clinic_dto.Doctor
	url := fmt.Sprintf("%s/medicos/%s", c.baseUrl, doctor.ID)
	err := c.doJSON(ctx, constvars.MethodPut, url, doctor, constvars.ResourceDoctor, exceptions.ErrBackendUpdateResource, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *doctorBackendClient) DeleteDoctor(ctx context.Context, doctorID string) error {
	url := fmt.Sprintf("%s/medicos/%s", c.baseUrl, doctorID)
	return c.doJSON(ctx, constvars.MethodDelete, url, nil, constvars.ResourceDoctor, exceptions.ErrBackendDeleteResource, nil)
}
