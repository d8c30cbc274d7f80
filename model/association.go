package model

// HospitalDepartment is one hospital↔department edge.
type HospitalDepartment struct {
	HospitalID   uint `gorm:"primaryKey;autoIncrement:false"`
	DepartmentID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (HospitalDepartment) TableName() string { return "department_hospital" }

// HospitalTreatment is one hospital↔treatment edge.
type HospitalTreatment struct {
	HospitalID  uint `gorm:"primaryKey;autoIncrement:false"`
	TreatmentID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (HospitalTreatment) TableName() string { return "hospital_treatment" }

// DepartmentTreatment is one department↔treatment edge.
type DepartmentTreatment struct {
	DepartmentID uint `gorm:"primaryKey;autoIncrement:false"`
	TreatmentID  uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (DepartmentTreatment) TableName() string { return "department_treatment" }
