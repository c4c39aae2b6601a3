package models

import (
	"gorm.io/gorm"
)

// ClassStatus tracks a class through admin review.
type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

type Class struct {
	gorm.Model
	Name            string      `json:"name"`
	Image           string      `json:"image" gorm:"default:''"`
	InstructorName  string      `json:"instructorName"`
	InstructorEmail string      `json:"instructorEmail" gorm:"index;not null"`
	Price           float64     `json:"price"`
	TotalSeats      int         `json:"totalSeats"`
	AvailableSeats  int         `json:"availableSeats"`
	Enrolled        int         `json:"enrolled" gorm:"default:0"`
	Status          ClassStatus `json:"status" gorm:"default:'pending'"`
	Feedback        string      `json:"feedback" gorm:"default:''"`
}
