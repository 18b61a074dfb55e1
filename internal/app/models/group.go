package models

// Group defines a class group based on the 'groups' table
type Group struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	GradeID    int64   `json:"gradeId" db:"grade_id"`
	TeacherID  *int64  `json:"teacherId" db:"teacher_id"`
	SchoolYear *string `json:"schoolYear" db:"school_year"`
}

// GroupDetail is a group with its grade and teacher labels
type GroupDetail struct {
	Group
	GradeDescription *string `json:"grade" db:"grade_description"`
	TeacherName      *string `json:"teacher" db:"teacher_name"`
}
