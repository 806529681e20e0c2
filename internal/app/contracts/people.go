package contracts

import (
	"context"

	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
)

type DoctorBackendClient interface {
	FindDoctorByID(ctx context.Context, doctorID string) (*clinic_dto.Doctor, error)
	FindAllDoctors(ctx context.Context) ([]clinic_dto.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *clinic_dto.Doctor) (*clinic_dto.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *clinic_dto.Doctor) (*clinic_dto.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}

type PatientBackendClient interface {
	FindPatientByID(ctx context.Context, patientID string) (*clinic_dto.Patient, error)
	FindPatientByUID(ctx context.Context, uid string) (*clinic_dto.Patient, error)
	FindAllPatients(ctx context.Context) ([]clinic_dto.Patient, error)
	CreatePatient(ctx context.Context, patient *clinic_dto.Patient) (*clinic_dto.Patient, error)
	UpdatePatient(ctx context.Context, patient *clinic_dto.Patient) (*clinic_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type AdministratorBackendClient interface {
	FindAdministratorByID(ctx context.Context, adminID string) (*clinic_dto.Administrator, error)
	FindAllAdministrators(ctx context.Context) ([]clinic_dto.Administrator, error)
	CreateAdministrator(ctx context.Context, admin *clinic_dto.Administrator) (*clinic_dto.Administrator, error)
	UpdateAdministrator(ctx context.Context, admin *clinic_dto.Administrator) (*clinic_dto.Administrator, error)
	DeleteAdministrator(ctx context.Context, adminID string) error
}

type DoctorUsecase interface {
	FindDoctorByID(ctx context.Context, doctorID string) (*clinic_dto.Doctor, error)
	FindAllDoctors(ctx context.Context, page, pageSize int) ([]clinic_dto.Doctor, *responses.Pagination, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*clinic_dto.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctorRequest) (*clinic_dto.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}

type PatientUsecase interface {
	FindPatientByID(ctx context.Context, patientID string) (*clinic_dto.Patient, error)
	FindAllPatients(ctx context.Context, page, pageSize int) ([]clinic_dto.Patient, *responses.Pagination, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatientRequest) (*clinic_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type AdministratorUsecase interface {
	FindAllAdministrators(ctx context.Context) ([]clinic_dto.Administrator, error)
	CreateAdministrator(ctx context.Context, request *requests.CreateAdministratorRequest) (*clinic_dto.Administrator, error)
	UpdateAdministrator(ctx context.Context, adminID string, request *requests.UpdateAdministratorRequest) (*clinic_dto.Administrator, error)
	DeleteAdministrator(ctx context.Context, adminID string) error
}
