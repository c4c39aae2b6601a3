package models

import (
	"gorm.io/gorm"
)

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleNone       Role = "none"
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// HasRole reports whether the stored role satisfies the required one.
// A user record missing entirely is represented as RoleNone by callers.
func (r Role) HasRole(required Role) bool {
	return r == required
}

type User struct {
	gorm.Model
	Name  string `json:"name" gorm:"default:''"`
	Email string `json:"email" gorm:"unique;not null"`
	Photo string `json:"photo" gorm:"default:''"`
	Role  Role   `json:"role" gorm:"default:'none'"`
}
