package constvars

const (
	ResponseUnknown = "unknown"

	HomeMessage  = "Patient Management System API"
	AboutMessage = "A fully functional API to manage your patient records"

	PredictHomeMessage   = "Insurance Premium Prediction API"
	PredictHealthMessage = "OK"

	CreatePatientSuccessMessage = "Patient created successfully"
	DeletePatientSuccessMessage = "Patient %s deleted successfully"
)
