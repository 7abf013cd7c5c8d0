package routers

import (
	"medirisk-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.Home)
	router.Get("/about", patientController.About)
	router.Get("/view", patientController.View)
	router.Get("/patient/{patient_id}", patientController.FindByID)
	router.Get("/sort", patientController.Sort)
	router.Post("/create", patientController.Create)
	router.Delete("/delete/{patient_id}", patientController.Delete)
}
