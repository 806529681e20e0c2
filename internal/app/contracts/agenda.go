package contracts

import (
	"context"

	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
)

type AgendaBackendClient interface {
	FindAgendaByID(ctx context.Context, agendaID string) (*clinic_dto.Agenda, error)
	FindAgendasByDoctorID(ctx context.Context, doctorID string) ([]clinic_dto.Agenda, error)
	FindAvailableAgendas(ctx context.Context) ([]clinic_dto.Agenda, error)
	CreateAgenda(ctx context.Context, agenda *clinic_dto.Agenda) (*clinic_dto.Agenda, error)
	UpdateAgenda(ctx context.Context, agenda *clinic_dto.Agenda) (*clinic_dto.Agenda, error)
	UpdateAgendaAvailability(ctx context.Context, agendaID string, available bool) error
	DeleteAgenda(ctx context.Context, agendaID string) error
}

type AgendaUsecase interface {
	CreateAgenda(ctx context.Context, request *requests.CreateAgendaRequest) (*clinic_dto.Agenda, error)
	CreateRecurringAgendas(ctx context.Context, request *requests.CreateRecurringAgendaRequest) (*responses.RecurringAgendaOutcome, error)
	FindAgendasByDoctorID(ctx context.Context, doctorID string) ([]clinic_dto.Agenda, error)
	FindAvailableAgendas(ctx context.Context) ([]clinic_dto.Agenda, error)
	UpdateAgenda(ctx context.Context, agendaID string, request *requests.UpdateAgendaRequest) (*clinic_dto.Agenda, error)
	UpdateAgendaAvailability(ctx context.Context, agendaID string, request *requests.UpdateAgendaAvailabilityRequest) error
	DeleteAgenda(ctx context.Context, agendaID string) error
}
