package constvars

const (
	LoginSuccessMessage           = "login successful"
	RegisterPatientSuccessMessage = "patient registered successfully"
	ResetPasswordSuccessMessage   = "password reset email sent"

	CreateAgendaSuccessMessage          = "agenda created successfully"
	CreateRecurringAgendaSuccessMessage = "recurring agendas processed"
	GetAgendasSuccessMessage            = "get agendas successfully"
	UpdateAgendaSuccessMessage          = "agenda updated successfully"
	DeleteAgendaSuccessMessage          = "agenda deleted successfully"

	RequestAppointmentSuccessMessage = "appointment requested successfully"
	ConfirmAppointmentSuccessMessage = "appointment confirmed"
	RejectAppointmentSuccessMessage  = "appointment rejected"
	CancelAppointmentSuccessMessage  = "appointment cancelled"
	GetAppointmentsSuccessMessage    = "get appointments successfully"

	CreateDoctorSuccessMessage = "doctor created successfully"
	GetDoctorsSuccessMessage   = "get doctors successfully"
	UpdateDoctorSuccessMessage = "doctor updated successfully"
	DeleteDoctorSuccessMessage = "doctor deleted successfully"

	GetPatientsSuccessMessage   = "get patients successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	CreateAdministratorSuccessMessage = "administrator created successfully"
	GetAdministratorsSuccessMessage   = "get administrators successfully"
	UpdateAdministratorSuccessMessage = "administrator updated successfully"
	DeleteAdministratorSuccessMessage = "administrator deleted successfully"

	UploadDocumentSuccessMessage = "document uploaded successfully"
	GetDocumentURLSuccessMessage = "get document URL successfully"
)
