package requests

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterPatientRequest struct {
	Name      string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"contacto,omitempty"`
	Address   string `json:"direccion,omitempty"`
	BirthDate string `json:"fecha_nacimiento,omitempty" validate:"omitempty,civil_date"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}
