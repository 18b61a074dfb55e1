package dto

import "github.com/yigit/schooladmin/internal/app/models"

// GroupRequest is the allow-listed body for creating or replacing a group.
// Name and grade are mandatory.
type GroupRequest struct {
	Name       string     `json:"name" validate:"required,max=50"`
	GradeID    NullableID `json:"gradeId" validate:"required,gt=0"`
	TeacherID  NullableID `json:"teacherId" validate:"omitempty,gt=0"`
	SchoolYear *string    `json:"schoolYear" validate:"omitempty,max=20"`
}

// ToModel maps the request onto a group row
func (r *GroupRequest) ToModel() *models.Group {
	group := &models.Group{
		Name:       r.Name,
		TeacherID:  r.TeacherID.Ptr(),
		SchoolYear: emptyToNil(r.SchoolYear),
	}
	if id := r.GradeID.Ptr(); id != nil {
		group.GradeID = *id
	}
	return group
}
