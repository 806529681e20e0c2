package requests

type CreateDoctorRequest struct {
	Name      string `json:"nombre" validate:"required"`
	Specialty string `json:"especialidad" validate:"required"`
	Email     string `json:"correo" validate:"required,email"`
	Phone     string `json:"telefono,omitempty"`
}

type UpdateDoctorRequest = CreateDoctorRequest

type CreatePatientRequest struct {
	Name      string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"contacto,omitempty"`
	Address   string `json:"direccion,omitempty"`
	BirthDate string `json:"fecha_nacimiento,omitempty" validate:"omitempty,civil_date"`
}

type UpdatePatientRequest = CreatePatientRequest

type CreateAdministratorRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"contacto,omitempty"`
}

type UpdateAdministratorRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"contacto,omitempty"`
}
