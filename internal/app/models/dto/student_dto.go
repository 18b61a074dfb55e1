package dto

import "github.com/yigit/schooladmin/internal/app/models"

// StudentRequest is the allow-listed body for creating or replacing a student
type StudentRequest struct {
	InstitutionID    NullableID `json:"institutionId" validate:"omitempty,gt=0"`
	GenderID         NullableID `json:"genderId" validate:"omitempty,gt=0"`
	GradeID          NullableID `json:"gradeId" validate:"omitempty,gt=0"`
	GroupID          NullableID `json:"groupId" validate:"omitempty,gt=0"`
	TeacherID        NullableID `json:"teacherId" validate:"omitempty,gt=0"`
	FullName         string     `json:"fullName" validate:"required,max=200"`
	CURP             *string    `json:"curp" validate:"omitempty,curp"`
	BirthDate        *string    `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Guardian         *string    `json:"guardian" validate:"omitempty,max=200"`
	EmergencyContact *string    `json:"emergencyContact" validate:"omitempty,max=200"`
	Address          *string    `json:"address"`
	MedicalDiagnosis *string    `json:"medicalDiagnosis"`
	Medications      *string    `json:"medications"`
	Allergies        *string    `json:"allergies"`
	Promoted         *bool      `json:"promoted"`
	NotPromoted      *bool      `json:"notPromoted"`
	Notes            *string    `json:"notes"`
	EnrolledOn       *string    `json:"enrolledOn" validate:"omitempty,datetime=2006-01-02"`
	Active           *bool      `json:"active"`
}

// ToModel maps the request onto a student row
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		InstitutionID:    r.InstitutionID.Ptr(),
		GenderID:         r.GenderID.Ptr(),
		GradeID:          r.GradeID.Ptr(),
		GroupID:          r.GroupID.Ptr(),
		TeacherID:        r.TeacherID.Ptr(),
		FullName:         r.FullName,
		CURP:             emptyToNil(r.CURP),
		BirthDate:        parseDate(r.BirthDate),
		Guardian:         emptyToNil(r.Guardian),
		EmergencyContact: emptyToNil(r.EmergencyContact),
		Address:          emptyToNil(r.Address),
		MedicalDiagnosis: emptyToNil(r.MedicalDiagnosis),
		Medications:      emptyToNil(r.Medications),
		Allergies:        emptyToNil(r.Allergies),
		Promoted:         boolOr(r.Promoted, false),
		NotPromoted:      boolOr(r.NotPromoted, false),
		Notes:            emptyToNil(r.Notes),
		EnrolledOn:       parseDate(r.EnrolledOn),
		Active:           boolOr(r.Active, true),
	}
}

// AssignGroupRequest moves a student to another group
type AssignGroupRequest struct {
	GroupID NullableID `json:"groupId" validate:"required,gt=0"`
}
