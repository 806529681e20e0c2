package routers

import (
	"fmt"

	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAgendaRoutes(router chi.Router, middlewares *middlewares.Middlewares, agendaController *controllers.AgendaController) {
	router.Get("/disponibles", agendaController.GetAvailableAgendas)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleAdministrator))

		r.Post("/", agendaController.CreateAgenda)
		r.Post("/recurrentes", agendaController.CreateRecurringAgendas)
		r.Get(fmt.Sprintf("/medico/{%s}", constvars.URLParamDoctorID), agendaController.GetAgendasByDoctor)
		r.Put(fmt.Sprintf("/{%s}", constvars.URLParamAgendaID), agendaController.UpdateAgenda)
		r.Patch(fmt.Sprintf("/{%s}/disponibilidad", constvars.URLParamAgendaID), agendaController.UpdateAgendaAvailability)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamAgendaID), agendaController.DeleteAgenda)
	})
}
