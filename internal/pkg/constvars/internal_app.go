package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_UID                      ContextKey = "uid"
	CONTEXT_ROLE                     ContextKey = "role"
)

const (
	ResourceAgenda      = "Agenda"
	ResourceAppointment = "Appointment"
	ResourceDoctor      = "Doctor"
	ResourcePatient     = "Patient"
	ResourceAdmin       = "Administrator"
	ResourceUser        = "User"
)

const (
	RoleAdministrator = "administrador"
	RolePatient       = "paciente"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	MongoCollectionUsers = "users"
)

const (
	URLParamAgendaID      = "agendaID"
	URLParamAppointmentID = "appointmentID"
	URLParamDoctorID      = "doctorID"
	URLParamPatientID     = "patientID"
	URLParamAdminID       = "adminID"
	URLParamObjectName    = "objectName"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
