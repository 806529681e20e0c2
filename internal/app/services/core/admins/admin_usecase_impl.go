package admins

import (
	"context"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// AdministratorUsecase keeps the admin roster on the clinic backend while
// credentials live in the local user directory.
type AdministratorUsecase struct {
	admins contracts.AdministratorBackendClient
	users  contracts.UserRepository
	logger *zap.Logger
}

func NewAdministratorUsecase(admins contracts.AdministratorBackendClient, users contracts.UserRepository, logger *zap.Logger) *AdministratorUsecase {
	return &AdministratorUsecase{admins: admins, users: users, logger: logger}
}

func (u *AdministratorUsecase) FindAllAdministrators(ctx context.Context) ([]clinic_dto.Administrator, error) {
	return u.admins.FindAllAdministrators(ctx)
}

func (u *AdministratorUsecase) CreateAdministrator(ctx context.Context, request *requests.CreateAdministratorRequest) (*clinic_dto.Administrator, error) {
	existing, err := u.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	created, err := u.admins.CreateAdministrator(ctx, &clinic_dto.Administrator{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	})
	if err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}
	_, err = u.users.CreateUser(ctx, &models.User{
		Email:    request.Email,
		Password: hashed,
		Role:     constvars.RoleAdministrator,
		PersonID: created.ID,
		Name:     request.Name,
	})
	if err != nil {
		// roll the roster entry back so a failed credential write does not
		// leave an admin nobody can log in as
		if delErr := u.admins.DeleteAdministrator(ctx, created.ID); delErr != nil {
			u.logger.With(zap.Error(delErr)).Error("failed to roll back administrator after credential write failure")
		}
		return nil, err
	}
	return created, nil
}

func (u *AdministratorUsecase) UpdateAdministrator(ctx context.Context, adminID string, request *requests.UpdateAdministratorRequest) (*clinic_dto.Administrator, error) {
	current, err := u.admins.FindAdministratorByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	// CreateAdministrator always writes a credential row, so a missing one
	// means the roster and the user directory have drifted apart.
	user, err := u.users.FindByEmail(ctx, current.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	current.Name = request.Name
	current.Email = request.Email
	current.Phone = request.Phone
	updated, err := u.admins.UpdateAdministrator(ctx, current)
	if err != nil {
		return nil, err
	}

	user.Name = request.Name
	user.Email = request.Email
	if err := u.users.UpdateUser(ctx, user); err != nil {
		u.logger.With(zap.Error(err)).Error("administrator updated on backend but credential sync failed",
			zap.String(constvars.LoggingAdminIDKey, adminID))
		return nil, err
	}
	return updated, nil
}

func (u *AdministratorUsecase) DeleteAdministrator(ctx context.Context, adminID string) error {
	current, err := u.admins.FindAdministratorByID(ctx, adminID)
	if err != nil {
		return err
	}
	if err := u.admins.DeleteAdministrator(ctx, adminID); err != nil {
		return err
	}

	// The credential row may already be gone; removing the roster entry is
	// the part that matters, so a missing local user is not an error here.
	user, err := u.users.FindByEmail(ctx, current.Email)
	if err != nil {
		return err
	}
	if user != nil {
		if err := u.users.DeleteByID(ctx, user.ID); err != nil {
			return err
		}
	}
	return nil
}
