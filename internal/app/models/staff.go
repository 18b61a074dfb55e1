package models

import (
	"time"
)

// Staff defines a staff member based on the 'staff' table. Every active
// staff member can be assigned as a teacher of groups and students.
type Staff struct {
	ID            int64      `json:"id" db:"id"`
	InstitutionID *int64     `json:"institutionId" db:"institution_id"`
	FullName      string     `json:"fullName" db:"full_name"`
	RFC           *string    `json:"rfc" db:"rfc"`
	CURP          *string    `json:"curp" db:"curp"`
	Position      *string    `json:"position" db:"position"`
	Specialty     *string    `json:"specialty" db:"specialty"`
	Phone         *string    `json:"phone" db:"phone"`
	Email         *string    `json:"email" db:"email"`
	HiredOn       *time.Time `json:"hiredOn" db:"hired_on"`
	Active        bool       `json:"active" db:"active"`
}

// StaffDetail is a staff member with its institution name
type StaffDetail struct {
	Staff
	InstitutionName *string `json:"institution" db:"institution_name"`
}
