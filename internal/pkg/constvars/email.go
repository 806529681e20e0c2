package constvars

const (
	EmailResetPasswordSubject       = "[CITAMED] Password Reset"
	EmailAppointmentPendingSubject  = "[CITAMED] Appointment Request Received"
	EmailNewRequestForAdminsSubject = "[CITAMED] New Appointment Request Pending"

	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"

	EmailBodyResetPassword       = "Click this link to reset your password: %s"
	EmailBodyAppointmentPending  = "Your appointment request for %s at %s is pending confirmation."
	EmailBodyNewRequestForAdmins = "A new appointment request is pending confirmation for patient %s."
)

const (
	WhatsAppBodyAppointmentPending = "Your appointment has been requested for %s at %s."
)

const (
	RegexEmail = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
)
