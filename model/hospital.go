package model

import "time"

// Hospital represents a facility that owns opd hours, rooms, doctors and
// (through department_hospital) departments.
type Hospital struct {
	ID           uint      `json:"id" gorm:"primaryKey" example:"1"`
	Name         string    `json:"name" gorm:"size:191;not null" example:"Bir Hospital"`
	ProvinceID   uint      `json:"province_id" gorm:"not null" example:"3"`
	DistrictID   uint      `json:"district_id" gorm:"not null" example:"27"`
	CityID       uint      `json:"city_id" gorm:"not null" example:"301"`
	PhoneNo      string    `json:"phone_no" gorm:"size:15;not null" example:"014221119"`
	MobileNo     string    `json:"mobile_no" gorm:"size:15" example:"9801234567"`
	EmailAddress string    `json:"email_address" gorm:"size:191;uniqueIndex;not null" example:"info@birhospital.org"`
	Website      string    `json:"website" gorm:"size:191;uniqueIndex;not null" example:"https://birhospital.org"`
	NoOfBeds     uint      `json:"no_of_beds" gorm:"not null" example:"350"`
	Status       bool      `json:"status" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HospitalDetail is a hospital together with its opd hours and associations.
type HospitalDetail struct {
	Hospital
	OpdHours    []OpdHour    `json:"opd_hours"`
	Departments []Department `json:"departments"`
	Treatments  []Treatment  `json:"treatments"`
}
