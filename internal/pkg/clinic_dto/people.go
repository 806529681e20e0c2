package clinic_dto

// Doctor is a reference entity used for name resolution and existence checks.
type Doctor struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"nombre"`
	Specialty string `json:"especialidad"`
	Email     string `json:"correo"`
	Phone     string `json:"telefono"`
}

type Patient struct {
	ID        string `json:"id,omitempty"`
	UID       string `json:"uid,omitempty"`
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	Phone     string `json:"contacto,omitempty"`
	Address   string `json:"direccion,omitempty"`
	BirthDate string `json:"fecha_nacimiento,omitempty"`
}

type Administrator struct {
	ID    string `json:"id,omitempty"`
	UID   string `json:"uid,omitempty"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"contacto,omitempty"`
}
