package dto

import "github.com/yigit/schooladmin/internal/app/models"

// StaffRequest is the allow-listed body for creating or replacing a staff member
type StaffRequest struct {
	InstitutionID NullableID `json:"institutionId" validate:"omitempty,gt=0"`
	FullName      string     `json:"fullName" validate:"required,max=200"`
	RFC           *string    `json:"rfc" validate:"omitempty,rfc"`
	CURP          *string    `json:"curp" validate:"omitempty,curp"`
	Position      *string    `json:"position" validate:"omitempty,max=100"`
	Specialty     *string    `json:"specialty" validate:"omitempty,max=100"`
	Phone         *string    `json:"phone" validate:"omitempty,max=30"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	HiredOn       *string    `json:"hiredOn" validate:"omitempty,datetime=2006-01-02"`
	Active        *bool      `json:"active"`
}

// ToModel maps the request onto a staff row
func (r *StaffRequest) ToModel() *models.Staff {
	return &models.Staff{
		InstitutionID: r.InstitutionID.Ptr(),
		FullName:      r.FullName,
		RFC:           emptyToNil(r.RFC),
		CURP:          emptyToNil(r.CURP),
		Position:      emptyToNil(r.Position),
		Specialty:     emptyToNil(r.Specialty),
		Phone:         emptyToNil(r.Phone),
		Email:         emptyToNil(r.Email),
		HiredOn:       parseDate(r.HiredOn),
		Active:        boolOr(r.Active, true),
	}
}
