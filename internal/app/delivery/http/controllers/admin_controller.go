package controllers

import (
	"context"
	"net/http"
	"time"

	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"
	"citamed-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdministratorController struct {
	Log                  *zap.Logger
	AdministratorUsecase contracts.AdministratorUsecase
}

func NewAdministratorController(logger *zap.Logger, administratorUsecase contracts.AdministratorUsecase) *AdministratorController {
	return &AdministratorController{
		Log:                  logger,
		AdministratorUsecase: administratorUsecase,
	}
}

func (ctrl *AdministratorController) GetAllAdministrators(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	admins, err := ctrl.AdministratorUsecase.FindAllAdministrators(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAdministratorsSuccessMessage, admins)
}

func (ctrl *AdministratorController) CreateAdministrator(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAdministratorRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	admin, err := ctrl.AdministratorUsecase.CreateAdministrator(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAdministratorSuccessMessage, admin)
}

func (ctrl *AdministratorController) UpdateAdministrator(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, constvars.URLParamAdminID)
	if adminID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAdminID))
		return
	}

	request := new(requests.UpdateAdministratorRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	admin, err := ctrl.AdministratorUsecase.UpdateAdministrator(ctx, adminID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAdministratorSuccessMessage, admin)
}

func (ctrl *AdministratorController) DeleteAdministrator(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, constvars.URLParamAdminID)
	if adminID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAdminID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AdministratorUsecase.DeleteAdministrator(ctx, adminID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAdministratorSuccessMessage, nil)
}
