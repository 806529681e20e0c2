package routers

import (
	"fmt"

	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController, documentController *controllers.DocumentController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RolePatient))

		r.Post("/documentos", documentController.UploadDocument)
		r.Get(fmt.Sprintf("/documentos/{%s}", constvars.URLParamObjectName), documentController.GetDocumentURL)
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(constvars.RoleAdministrator))

		r.Get("/", patientController.GetAllPatients)
		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.GetPatientByID)
		r.Put(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.UpdatePatient)
		r.Delete(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.DeletePatient)
	})
}
