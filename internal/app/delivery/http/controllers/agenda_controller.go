package controllers

import (
	"context"
	"errors"
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

type AgendaController struct {
	Log           *zap.Logger
	AgendaUsecase contracts.AgendaUsecase
}

func NewAgendaController(logger *zap.Logger, agendaUsecase contracts.AgendaUsecase) *AgendaController {
	return &AgendaController{
		Log:           logger,
		AgendaUsecase: agendaUsecase,
	}
}

func (ctrl *AgendaController) CreateAgenda(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAgendaRequest)
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

	agenda, err := ctrl.AgendaUsecase.CreateAgenda(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAgendaSuccessMessage, agenda)
}

func (ctrl *AgendaController) CreateRecurringAgendas(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateRecurringAgendaRequest)
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

	// one call may create dozens of agendas against the backend
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	outcome, err := ctrl.AgendaUsecase.CreateRecurringAgendas(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRecurringAgendaSuccessMessage, outcome)
}

func (ctrl *AgendaController) GetAgendasByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	agendas, err := ctrl.AgendaUsecase.FindAgendasByDoctorID(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAgendasSuccessMessage, agendas)
}

func (ctrl *AgendaController) GetAvailableAgendas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	agendas, err := ctrl.AgendaUsecase.FindAvailableAgendas(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAgendasSuccessMessage, agendas)
}

func (ctrl *AgendaController) UpdateAgenda(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, constvars.URLParamAgendaID)
	if agendaID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAgendaID))
		return
	}

	request := new(requests.UpdateAgendaRequest)
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

	agenda, err := ctrl.AgendaUsecase.UpdateAgenda(ctx, agendaID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAgendaSuccessMessage, agenda)
}

func (ctrl *AgendaController) UpdateAgendaAvailability(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, constvars.URLParamAgendaID)
	if agendaID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAgendaID))
		return
	}

	request := new(requests.UpdateAgendaAvailabilityRequest)
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

	err = ctrl.AgendaUsecase.UpdateAgendaAvailability(ctx, agendaID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAgendaSuccessMessage, nil)
}

func (ctrl *AgendaController) DeleteAgenda(w http.ResponseWriter, r *http.Request) {
	agendaID := chi.URLParam(r, constvars.URLParamAgendaID)
	if agendaID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAgendaID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AgendaUsecase.DeleteAgenda(ctx, agendaID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAgendaSuccessMessage, nil)
}
