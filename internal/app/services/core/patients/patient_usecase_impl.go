package patients

import (
	"context"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PatientUsecase struct {
	patients contracts.PatientBackendClient
	config   *config.InternalConfig
	logger   *zap.Logger
}

func NewPatientUsecase(patients contracts.PatientBackendClient, internalConfig *config.InternalConfig, logger *zap.Logger) *PatientUsecase {
	return &PatientUsecase{patients: patients, config: internalConfig, logger: logger}
}

func (u *PatientUsecase) FindPatientByID(ctx context.Context, patientID string) (*clinic_dto.Patient, error) {
	return u.patients.FindPatientByID(ctx, patientID)
}

// FindAllPatients pages the roster locally, the same way the doctor listing
// does: the backend hands back everything and the window is cut here.
func (u *PatientUsecase) FindAllPatients(ctx context.Context, page, pageSize int) ([]clinic_dto.Patient, *responses.Pagination, error) {
	patients, err := u.patients.FindAllPatients(ctx)
	if err != nil {
		return nil, nil, err
	}

	total := len(patients)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, u.config.App.EndpointPrefix+"/pacientes")

	start := (page - 1) * pageSize
	if start >= total {
		return []clinic_dto.Patient{}, pagination, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return patients[start:end], pagination, nil
}

func (u *PatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatientRequest) (*clinic_dto.Patient, error) {
	current, err := u.patients.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	current.Name = request.Name
	current.Email = request.Email
	current.Phone = request.Phone
	current.Address = request.Address
	current.BirthDate = request.BirthDate
	return u.patients.UpdatePatient(ctx, current)
}

func (u *PatientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	return u.patients.DeletePatient(ctx, patientID)
}
