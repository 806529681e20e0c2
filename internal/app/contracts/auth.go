package contracts

import (
	"context"

	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
)

// IdentityProvider is the external account service used for patient
// self-registration and sign-in.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (uid string, err error)
	SignUp(ctx context.Context, email, password string) (uid string, err error)
	CurrentUser(ctx context.Context, token string) (uid string, email string, err error)
	ResetPassword(ctx context.Context, email string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.LoginResponse, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.RegisterPatientResponse, error)
	ResetPassword(ctx context.Context, request *requests.ResetPasswordRequest) error
	FindSessionByToken(ctx context.Context, token string) (*models.Session, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
