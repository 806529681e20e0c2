package doctors

import (
	"context"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DoctorUsecase struct {
	doctors contracts.DoctorBackendClient
	config  *config.InternalConfig
	logger  *zap.Logger
}

func NewDoctorUsecase(doctors contracts.DoctorBackendClient, internalConfig *config.InternalConfig, logger *zap.Logger) *DoctorUsecase {
	return &DoctorUsecase{doctors: doctors, config: internalConfig, logger: logger}
}

func (u *DoctorUsecase) FindDoctorByID(ctx context.Context, doctorID string) (*clinic_dto.Doctor, error) {
	return u.doctors.FindDoctorByID(ctx, doctorID)
}

// FindAllDoctors pages the roster locally. The clinic backend returns the
// whole collection, so the page window is cut here and the links are built
// against this service's own endpoint.
func (u *DoctorUsecase) FindAllDoctors(ctx context.Context, page, pageSize int) ([]clinic_dto.Doctor, *responses.Pagination, error) {
	doctors, err := u.doctors.FindAllDoctors(ctx)
	if err != nil {
		return nil, nil, err
	}

	total := len(doctors)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, u.config.App.EndpointPrefix+"/medicos")

	start := (page - 1) * pageSize
	if start >= total {
		return []clinic_dto.Doctor{}, pagination, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return doctors[start:end], pagination, nil
}

func (u *DoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*clinic_dto.Doctor, error) {
	doctor := &clinic_dto.Doctor{
		Name:      request.Name,
		Specialty: request.Specialty,
		Email:     request.Email,
		Phone:     request.Phone,
	}
	created, err := u.doctors.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	u.logger.Info("doctor created", zap.String(constvars.LoggingDoctorIDKey, created.ID))
	return created, nil
}

func (u *DoctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctorRequest) (*clinic_dto.Doctor, error) {
	current, err := u.doctors.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	current.Name = request.Name
	current.Specialty = request.Specialty
	current.Email = request.Email
	current.Phone = request.Phone
	return u.doctors.UpdateDoctor(ctx, current)
}

func (u *DoctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	return u.doctors.DeleteDoctor(ctx, doctorID)
}
