package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// User is the local account record. Clinical data (doctors, patients,
// agendas, appointments) lives on the clinic backend; this collection only
// holds credentials and the link to the backend person resource.
type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	PersonID  string `bson:"personId,omitempty"`
	Name      string `bson:"name,omitempty"`
	TimeModel `bson:",inline"`
}
