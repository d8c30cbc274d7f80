package model

import "time"

// Department is shared between hospitals. NoOfBeds always equals the number
// of DepartmentBed rows; LastBedNo is the highest bed number ever issued.
type Department struct {
	ID         uint      `json:"id" gorm:"primaryKey" example:"1"`
	Name       string    `json:"name" gorm:"size:191;uniqueIndex;not null" example:"Cardiology"`
	NepaliName string    `json:"nepali_name" gorm:"size:191;uniqueIndex;not null" example:"मुटु रोग"`
	NoOfBeds   uint      `json:"no_of_beds" gorm:"not null" example:"12"`
	LastBedNo  uint      `json:"-" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DepartmentDetail is a department together with its treatments.
type DepartmentDetail struct {
	Department
	Treatments []Treatment `json:"treatments"`
}

// DepartmentBed is one numbered bed of a department inside a hospital.
type DepartmentBed struct {
	ID           uint    `json:"id" gorm:"primaryKey" example:"1"`
	HospitalID   uint    `json:"hospital_id" gorm:"not null;index" example:"1"`
	DepartmentID uint    `json:"department_id" gorm:"not null;uniqueIndex:idx_department_beds_department_bed_no" example:"1"`
	BedNo        uint    `json:"bed_no" gorm:"not null;uniqueIndex:idx_department_beds_department_bed_no" example:"1"`
	Availability bool    `json:"availability" gorm:"not null" example:"true"`
	PricePerDay  float64 `json:"price_per_day" gorm:"type:decimal(9,2);not null" example:"500.00"`
}
