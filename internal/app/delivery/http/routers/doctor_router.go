package routers

import (
	"fmt"

	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.GetAllDoctors)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamDoctorID), doctorController.GetDoctorByID)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleAdministrator))

		r.Post("/", doctorController.CreateDoctor)
		r.Put(fmt.Sprintf("/{%s}", constvars.URLParamDoctorID), doctorController.UpdateDoctor)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamDoctorID), doctorController.DeleteDoctor)
	})
}
