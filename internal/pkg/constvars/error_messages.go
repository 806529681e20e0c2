package constvars

// Client-facing messages. Kept intentionally vague so internals never leak.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientSlotNoLongerAvailable         = "slot no longer available, choose another"
	ErrClientStaleData                     = "stale data, please refresh"
	ErrClientAgendaOverlaps                = "the agenda overlaps an existing one for this doctor"
	ErrClientAgendaDuplicateDate           = "the doctor already has an agenda on this date"
	ErrClientAppointmentPartialUpdate      = "the appointment was updated but its agenda could not be synchronized"
	ErrClientInvalidDocumentFormat         = "the document you uploaded does not meet the specified standards"
)

// Developer messages for logs and non-production responses.
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "request payload validation failed"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate           = "cannot parse the requested date"
	ErrDevCannotParseTime           = "cannot parse time into the given format"
	ErrDevInvalidFormat             = "invalid %s format"
	ErrDevURLParamIDValidation      = "failed to validate URL param %s"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevDecodeResponse            = "failed to decode %s response body"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevUserNotExists             = "user not exists in our system"
	ErrDevRoleForbidden             = "session role is not allowed to perform this operation"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate session token"

	ErrDevBackendCreateResource   = "failed to create %s on clinic backend"
	ErrDevBackendUpdateResource   = "failed to update %s on clinic backend"
	ErrDevBackendGetResource      = "failed to get %s from clinic backend"
	ErrDevBackendDeleteResource   = "failed to delete %s on clinic backend"
	ErrDevBackendResourceNotFound = "%s not found on clinic backend"
	ErrDevBackendResourceConflict = "clinic backend reported a conflict on %s"

	ErrDevSMTPSendEmail          = "failed to send email via SMTP client hostname %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRedisUnlock            = "failed to release redis lock"
	ErrDevRedisSet               = "failed to set value in redis"
	ErrDevRedisGet               = "failed to get value from redis"
	ErrDevRedisDelete            = "failed to delete key from redis"
	ErrDevMongoDBFindDocument    = "failed to find document in mongo database"
	ErrDevMongoDBInsertDocument  = "failed to insert document into mongo database"
	ErrDevMongoDBUpdateDocument  = "failed to update document in mongo database"
	ErrDevMinioUploadObject      = "failed to upload object to minio bucket %s"

	ErrDevIdentitySignIn        = "identity provider rejected the sign in request"
	ErrDevIdentitySignUp        = "identity provider rejected the sign up request"
	ErrDevIdentityCurrentUser   = "identity provider could not resolve the current user"
	ErrDevIdentityResetPassword = "identity provider rejected the reset password request"
)

const ResponseUnknown = "unknown"
