package routers

import (
	"fmt"

	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RolePatient))

		r.Post("/", appointmentController.RequestAppointment)
		r.Get("/mias", appointmentController.GetOwnAppointments)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.CancelAppointment)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleAdministrator))

		r.Get("/pendientes", appointmentController.GetPendingAppointments)
		r.Patch(fmt.Sprintf("/{%s}/confirmar", constvars.URLParamAppointmentID), appointmentController.ConfirmAppointment)
		r.Patch(fmt.Sprintf("/{%s}/rechazar", constvars.URLParamAppointmentID), appointmentController.RejectAppointment)
	})
}
