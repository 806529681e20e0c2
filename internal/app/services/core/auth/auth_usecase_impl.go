package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/app/models"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const sessionKeyFormat = "session:%s"

// AuthUsecase signs users in two ways: administrators hold local credentials
// (mongo + bcrypt), patients authenticate against the external identity
// provider. Both end up with a redis-backed session and a signed JWT.
type AuthUsecase struct {
	users    contracts.UserRepository
	identity contracts.IdentityProvider
	patients contracts.PatientBackendClient
	sessions contracts.RedisRepository
	config   *config.InternalConfig
	logger   *zap.Logger
}

func NewAuthUsecase(
	users contracts.UserRepository,
	identity contracts.IdentityProvider,
	patients contracts.PatientBackendClient,
	sessions contracts.RedisRepository,
	config *config.InternalConfig,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		identity: identity,
		patients: patients,
		sessions: sessions,
		config:   config,
		logger:   logger,
	}
}

func (u *AuthUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.LoginResponse, error) {
	user, err := u.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if !utils.CheckPasswordHash(request.Password, user.Password) {
			return nil, exceptions.ErrInvalidEmailOrPassword(nil)
		}
		return u.openSession(ctx, user.PersonID, user.Role, user.Name)
	}

	// not a local account: delegate to the identity provider
	uid, err := u.identity.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}
	name := ""
	if patient, err := u.patients.FindPatientByUID(ctx, uid); err == nil {
		name = patient.Name
	}
	return u.openSession(ctx, uid, constvars.RolePatient, name)
}

func (u *AuthUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) (*responses.RegisterPatientResponse, error) {
	uid, err := u.identity.SignUp(ctx, request.Email, request.Password)
	if err != nil {
		return nil, exceptions.ErrEmailAlreadyExist(err)
	}

	patient := &clinic_dto.Patient{
		UID:       uid,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Address:   request.Address,
		BirthDate: request.BirthDate,
	}
	if _, err := u.patients.CreatePatient(ctx, patient); err != nil {
		u.logger.With(zap.Error(err)).Error("patient record creation failed after sign up",
			zap.String("uid", uid),
		)
		return nil, err
	}
	return &responses.RegisterPatientResponse{UID: uid, Email: request.Email}, nil
}

func (u *AuthUsecase) ResetPassword(ctx context.Context, request *requests.ResetPasswordRequest) error {
	return u.identity.ResetPassword(ctx, request.Email)
}

// FindSessionByToken resolves a bearer token into its live session.
func (u *AuthUsecase) FindSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, u.config.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	raw, err := u.sessions.Get(ctx, fmt.Sprintf(sessionKeyFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("session expired or revoked"))
	}
	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (u *AuthUsecase) openSession(ctx context.Context, uid, role, name string) (*responses.LoginResponse, error) {
	session := &models.Session{
		SessionID: utils.GenerateRequestID(),
		UID:       uid,
		Role:      role,
		Name:      name,
	}
	exp := time.Duration(u.config.JWT.ExpTimeInHour) * time.Hour
	if err := u.sessions.Set(ctx, fmt.Sprintf(sessionKeyFormat, session.SessionID), session, exp); err != nil {
		return nil, err
	}
	token, err := utils.GenerateSessionJWT(session.SessionID, u.config.JWT.Secret, u.config.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	u.logger.Info("session opened", zap.String("role", role))
	return &responses.LoginResponse{Token: token, UID: uid, Role: role, Name: name}, nil
}
