package model

import "gorm.io/datatypes"

// OpdHour is the window a hospital is open on one weekday.
// A hospital has at most one row per day.
type OpdHour struct {
	ID          uint           `json:"id" gorm:"primaryKey" example:"1"`
	HospitalID  uint           `json:"hospital_id" gorm:"not null;uniqueIndex:idx_opd_hours_hospital_day" example:"1"`
	Day         Weekday        `json:"day" gorm:"size:9;not null;uniqueIndex:idx_opd_hours_hospital_day" example:"Monday"`
	OpeningTime datatypes.Time `json:"opening_time" gorm:"type:time;not null" example:"08:00:00"`
	ClosingTime datatypes.Time `json:"closing_time" gorm:"type:time;not null" example:"17:00:00"`
	IsOpen      bool           `json:"is_open" gorm:"not null"`
}
