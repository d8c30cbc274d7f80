package model

import (
	"time"

	"gorm.io/datatypes"
)

// Doctor is a practitioner attached to exactly one hospital and one department.
type Doctor struct {
	ID           uint      `json:"id" gorm:"primaryKey" example:"1"`
	RegNo        uint      `json:"reg_no" gorm:"not null" example:"10234"`
	UserID       uint      `json:"user_id" gorm:"not null;index" example:"42"`
	FullName     string    `json:"full_name" gorm:"size:100;not null" example:"Dr. Sita Sharma"`
	EmailAddress string    `json:"email_address" gorm:"size:100;uniqueIndex;not null" example:"sita@birhospital.org"`
	MobileNumber string    `json:"mobile_number" gorm:"size:15;not null" example:"9801234567"`
	HospitalID   uint      `json:"hospital_id" gorm:"not null;index" example:"1"`
	DepartmentID uint      `json:"department_id" gorm:"not null;index" example:"2"`
	Degree       string    `json:"degree" gorm:"size:50;not null" example:"MBBS, MD"`
	Speciality   string    `json:"speciality" gorm:"size:50;not null" example:"Cardiology"`
	OnCall       bool      `json:"on_call" gorm:"not null"`
	Status       bool      `json:"status" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DoctorHour is the sub-interval of a weekday a doctor is available.
// It always lies inside the hospital's opd hour for the same day.
type DoctorHour struct {
	ID            uint           `json:"id" gorm:"primaryKey" example:"1"`
	DoctorID      uint           `json:"doctor_id" gorm:"not null;uniqueIndex:idx_doctor_hours_doctor_day" example:"1"`
	Day           Weekday        `json:"day" gorm:"size:9;not null;uniqueIndex:idx_doctor_hours_doctor_day" example:"Monday"`
	AvailableFrom datatypes.Time `json:"available_from" gorm:"type:time;not null" example:"09:00:00"`
	AvailableTo   datatypes.Time `json:"available_to" gorm:"type:time;not null" example:"13:00:00"`
	IsAvailable   bool           `json:"is_available" gorm:"not null"`
}
