package backend

import (
	"context"
	"fmt"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

type agendaBackendClient struct {
	restClient
}

func NewAgendaBackendClient(baseUrl string) contracts.AgendaBackendClient {
	return &agendaBackendClient{restClient: newRestClient(baseUrl)}
}

func (c *agendaBackendClient) FindAgendaByID(ctx context.Context, agendaID string) (*clinic_dto.Agenda, error) {
	var agenda clinic_dto.Agenda
	url := fmt.Sprintf("%s/agendas/%s", c.baseUrl, agendaID)
	if err := c.getJSON(ctx, url, constvars.ResourceAgenda, &agenda); err != nil {
		return nil, err
	}
	return &agenda, nil
}

func (c *agendaBackendClient) FindAgendasByDoctorID(ctx context.Context, doctorID string) ([]clinic_dto.Agenda, error) {
	var agendas []clinic_dto.Agenda
	url := fmt.Sprintf("%s/agendas/medico/%s", c.baseUrl, doctorID)
	if err := c.getJSON(ctx, url, constvars.ResourceAgenda, &agendas); err != nil {
		return nil, err
	}
	return agendas, nil
}

func (c *agendaBackendClient) FindAvailableAgendas(ctx context.Context) ([]clinic_dto.Agenda, error) {
	var agendas []clinic_dto.Agenda
	url := fmt.Sprintf("%s/agendas/disponibles", c.baseUrl)
	if err := c.getJSON(ctx, url, constvars.ResourceAgenda, &agendas); err != nil {
		return nil, err
	}
	return agendas, nil
}

func (c *agendaBackendClient) CreateAgenda(ctx context.Context, agenda *clinic_dto.Agenda) (*clinic_dto.Agenda, error) {
	var created clinic_dto.Agenda
	url := fmt.Sprintf("%s/agendas", c.baseUrl)
	err := c.doJSON(ctx, constvars.MethodPost, url, agenda, constvars.ResourceAgenda, exceptions.ErrBackendCreateResource, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *agendaBackendClient) UpdateAgenda(ctx context.Context, agenda *clinic_dto.Agenda) (*clinic_dto.Agenda, error) {
	var updated clinic_dto.Agenda
	url := fmt.Sprintf("%s/agendas/%s", c.baseUrl, agenda.ID)
	err := c.doJSON(ctx, constvars.MethodPut, url, agenda, constvars.ResourceAgenda, exceptions.ErrBackendUpdateResource, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *agendaBackendClient) UpdateAgendaAvailability(ctx context.Context, agendaID string, available bool) error {
	url := fmt.Sprintf("%s/agendas/%s/disponibilidad", c.baseUrl, agendaID)
	payload := map[string]bool{"disponible": available}
	return c.doJSON(ctx, constvars.MethodPatch, url, payload, constvars.ResourceAgenda, exceptions.ErrBackendUpdateResource, nil)
}

func (c *agendaBackendClient) DeleteAgenda(ctx context.Context, agendaID string) error {
	url := fmt.Sprintf("%s/agendas/%s", c.baseUrl, agendaID)
	return c.doJSON(ctx, constvars.MethodDelete, url, nil, constvars.ResourceAgenda, exceptions.ErrBackendDeleteResource, nil)
}
