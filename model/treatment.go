package model

// TreatmentType classifies a billable treatment.
type TreatmentType string

const (
	TreatmentGeneral    TreatmentType = "general"
	TreatmentConsulting TreatmentType = "consulting"
	TreatmentSurgical   TreatmentType = "surgical"
	TreatmentTherapy    TreatmentType = "therapy"
)

// Valid reports whether t is one of the known treatment types.
func (t TreatmentType) Valid() bool {
	switch t {
	case TreatmentGeneral, TreatmentConsulting, TreatmentSurgical, TreatmentTherapy:
		return true
	}
	return false
}

// Treatment represents a billable treatment catalog entry
// @Description Treatment catalog information
type Treatment struct {
	ID         uint          `json:"id" gorm:"primaryKey" example:"1"`
	Name       string        `json:"name" gorm:"size:191;uniqueIndex;not null" example:"Echocardiography"`
	NepaliName string        `json:"nepali_name" gorm:"size:191;uniqueIndex;not null" example:"इकोकार्डियोग्राफी"`
	Type       TreatmentType `json:"type" gorm:"size:20;not null" example:"consulting"`
	Price      float64       `json:"price" gorm:"type:decimal(9,2);not null" example:"2500.00"`
}
