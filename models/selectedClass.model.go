package models

import (
	"gorm.io/gorm"
)

// SelectedClass is a cart entry: a snapshot of a class a user picked
// before paying. Deleted when purchased or removed from the cart.
type SelectedClass struct {
	gorm.Model
	Email           string  `json:"email" gorm:"index;not null"`
	ClassID         uint    `json:"classId" gorm:"index;not null"`
	ClassName       string  `json:"className"`
	Image           string  `json:"image" gorm:"default:''"`
	Price           float64 `json:"price"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail"`
}
