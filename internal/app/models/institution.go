package models

import (
	"time"
)

// Institution defines a school based on the 'institutions' table
type Institution struct {
	ID        int64      `json:"id" db:"id"`
	TypeID    *int64     `json:"typeId" db:"type_id"`
	Name      string     `json:"name" db:"name"`
	CCT       *string    `json:"cct" db:"cct"`
	Zone      *string    `json:"zone" db:"zone"`
	Sector    *string    `json:"sector" db:"sector"`
	Address   *string    `json:"address" db:"address"`
	Phone     *string    `json:"phone" db:"phone"`
	Email     *string    `json:"email" db:"email"`
	Principal *string    `json:"principal" db:"principal"`
	FoundedOn *time.Time `json:"foundedOn" db:"founded_on"`
	Active    bool       `json:"active" db:"active"`
}

// InstitutionDetail is an institution with its type
type InstitutionDetail struct {
	Institution
	TypeCode        *string `json:"type" db:"type_code"`
	TypeDescription *string `json:"typeDescription" db:"type_description"`
}

// InstitutionType is an entry of the institution type catalog
type InstitutionType struct {
	ID          int64   `json:"id" db:"id"`
	Code        string  `json:"code" db:"code"`
	Description *string `json:"description" db:"description"`
}
