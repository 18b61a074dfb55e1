package models

// Role defines the user role
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Option is a value/label pair used to fill form selects
type Option struct {
	Value int64  `json:"value" db:"value"`
	Label string `json:"label" db:"label"`
}
