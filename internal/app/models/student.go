package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// Owned rows in student_disabilities, student_special_needs and
// specialist_attentions are removed together with the student.
type Student struct {
	ID               int64      `json:"id" db:"id"`
	InstitutionID    *int64     `json:"institutionId" db:"institution_id"`
	GenderID         *int64     `json:"genderId" db:"gender_id"`
	GradeID          *int64     `json:"gradeId" db:"grade_id"`
	GroupID          *int64     `json:"groupId" db:"group_id"`
	TeacherID        *int64     `json:"teacherId" db:"teacher_id"`
	FullName         string     `json:"fullName" db:"full_name"`
	CURP             *string    `json:"curp" db:"curp"`
	BirthDate        *time.Time `json:"birthDate" db:"birth_date"`
	Age              *int32     `json:"age" db:"age"` // computed from birth_date
	Guardian         *string    `json:"guardian" db:"guardian"`
	EmergencyContact *string    `json:"emergencyContact" db:"emergency_contact"`
	Address          *string    `json:"address" db:"address"`
	MedicalDiagnosis *string    `json:"medicalDiagnosis" db:"medical_diagnosis"`
	Medications      *string    `json:"medications" db:"medications"`
	Allergies        *string    `json:"allergies" db:"allergies"`
	Promoted         bool       `json:"promoted" db:"promoted"`
	NotPromoted      bool       `json:"notPromoted" db:"not_promoted"`
	Notes            *string    `json:"notes" db:"notes"`
	EnrolledOn       *time.Time `json:"enrolledOn" db:"enrolled_on"`
	Active           bool       `json:"active" db:"active"`
}

// StudentDetail is a student with the labels of everything it points at
type StudentDetail struct {
	Student
	InstitutionName  *string `json:"institution" db:"institution_name"`
	GenderName       *string `json:"gender" db:"gender_name"`
	GradeDescription *string `json:"grade" db:"grade_description"`
	GroupName        *string `json:"group" db:"group_name"`
	GroupGrade       *string `json:"groupGrade" db:"group_grade"`
	GroupTeacherName *string `json:"groupTeacher" db:"group_teacher_name"`
	TeacherName      *string `json:"teacher" db:"teacher_name"`
}
