package responses

type LoginResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
}

type RegisterPatientResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
