package backend

import (
	"context"
	"fmt"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

type adminBackendClient struct {
	restClient
}

func NewAdministratorBackendClient(baseUrl string) contracts.AdministratorBackendClient {
	return &adminBackendClient{restClient: newRestClient(baseUrl)}
}

func (c *adminBackendClient) FindAdministratorByID(ctx context.Context, adminID string) (*clinic_dto.Administrator, error) {
	var admin clinic_dto.Administrator
	url := fmt.Sprintf("%s/admins/%s", c.baseUrl, adminID)
	if err := c.getJSON(ctx, url, constvars.ResourceAdmin, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *adminBackendClient) FindAllAdministrators(ctx context.Context) ([]clinic_dto.Administrator, error) {
	var admins []clinic_dto.Administrator
	url := fmt.Sprintf("%s/admins", c.baseUrl)
	if err := c.getJSON(ctx, url, constvars.ResourceAdmin, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *adminBackendClient) CreateAdministrator(ctx context.Context, admin *clinic_dto.Administrator) (*clinic_dto.Administrator, error) {
	var created clinic_dto.Administrator
	url := fmt.Sprintf("%s/admins", c.baseUrl)
	err := c.doJSON(ctx, constvars.MethodPost, url, admin, constvars.ResourceAdmin, exceptions.ErrBackendCreateResource, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *adminBackendClient) UpdateAdministrator(ctx context.Context, admin *clinic_dto.Administrator) (*clinic_dto.Administrator, error) {
	var updated clinic_dto.Administrator
	url := fmt.Sprintf("%s/admins/%s", c.baseUrl, admin.ID)
	err := c.doJSON(ctx, constvars.MethodPut, url, admin, constvars.ResourceAdmin, exceptions.ErrBackendUpdateResource, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *adminBackendClient) DeleteAdministrator(ctx context.Context, adminID string) error {
	url := fmt.Sprintf("%s/admins/%s", c.baseUrl, adminID)
	return c.doJSON(ctx, constvars.MethodDelete, url, nil, constvars.ResourceAdmin, exceptions.ErrBackendDeleteResource, nil)
}
