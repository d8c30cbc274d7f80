package model

// RoomType classifies a hospital room.
type RoomType string

const (
	RoomGeneral RoomType = "general"
	RoomSharing RoomType = "sharing"
	RoomDeluxe  RoomType = "deluxe"
	RoomVIP     RoomType = "vip"
)

// Valid reports whether r is one of the known room types.
func (r RoomType) Valid() bool {
	switch r {
	case RoomGeneral, RoomSharing, RoomDeluxe, RoomVIP:
		return true
	}
	return false
}

// HospitalRoom is a numbered room of a hospital. Room numbers are unique per hospital.
type HospitalRoom struct {
	ID           uint     `json:"id" gorm:"primaryKey" example:"1"`
	HospitalID   uint     `json:"hospital_id" gorm:"not null;uniqueIndex:idx_hospital_rooms_hospital_room_no" example:"1"`
	RoomNo       uint     `json:"room_no" gorm:"not null;uniqueIndex:idx_hospital_rooms_hospital_room_no" example:"101"`
	RoomType     RoomType `json:"room_type" gorm:"size:20;not null" example:"deluxe"`
	Availability bool     `json:"availability" gorm:"not null" example:"true"`
	PricePerDay  float64  `json:"price_per_day" gorm:"type:decimal(9,2);not null" example:"3500.00"`
}
