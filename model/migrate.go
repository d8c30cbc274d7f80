package model

import "gorm.io/gorm"

// AllModels lists every table owned by the service in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Hospital{},
		&Department{},
		&Treatment{},
		&OpdHour{},
		&Doctor{},
		&DoctorHour{},
		&DepartmentBed{},
		&HospitalRoom{},
		&HospitalDepartment{},
		&HospitalTreatment{},
		&DepartmentTreatment{},
		&AuditLog{},
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
