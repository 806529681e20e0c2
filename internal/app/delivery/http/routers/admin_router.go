package routers

import (
	"fmt"

	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAdministratorRoutes(router chi.Router, middlewares *middlewares.Middlewares, administratorController *controllers.AdministratorController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleAdministrator))

		r.Get("/", administratorController.GetAllAdministrators)
		r.Post("/", administratorController.CreateAdministrator)
		r.Put(fmt.Sprintf("/{%s}", constvars.URLParamAdminID), administratorController.UpdateAdministrator)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamAdminID), administratorController.DeleteAdministrator)
	})
}
