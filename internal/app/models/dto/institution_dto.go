package dto

import "github.com/yigit/schooladmin/internal/app/models"

// InstitutionRequest is the allow-listed body for creating or replacing an institution
type InstitutionRequest struct {
	TypeID    NullableID `json:"typeId" validate:"omitempty,gt=0"`
	Name      string     `json:"name" validate:"required,max=200"`
	CCT       *string    `json:"cct" validate:"omitempty,max=20"`
	Zone      *string    `json:"zone" validate:"omitempty,max=20"`
	Sector    *string    `json:"sector" validate:"omitempty,max=20"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone" validate:"omitempty,max=30"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Principal *string    `json:"principal" validate:"omitempty,max=150"`
	FoundedOn *string    `json:"foundedOn" validate:"omitempty,datetime=2006-01-02"`
	Active    *bool      `json:"active"`
}

// ToModel maps the request onto an institution row
func (r *InstitutionRequest) ToModel() *models.Institution {
	return &models.Institution{
		TypeID:    r.TypeID.Ptr(),
		Name:      r.Name,
		CCT:       emptyToNil(r.CCT),
		Zone:      emptyToNil(r.Zone),
		Sector:    emptyToNil(r.Sector),
		Address:   emptyToNil(r.Address),
		Phone:     emptyToNil(r.Phone),
		Email:     emptyToNil(r.Email),
		Principal: emptyToNil(r.Principal),
		FoundedOn: parseDate(r.FoundedOn),
		Active:    boolOr(r.Active, true),
	}
}
