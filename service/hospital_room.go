package service

import (
	"context"
	"strings"

	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/gorm"
)

type RoomInput struct {
	RoomNo       uint
	RoomType     string
	Availability bool
	PricePerDay  float64
}

func (in *RoomInput) normalize() error {
	in.RoomType = strings.ToLower(strings.TrimSpace(in.RoomType))
	switch {
	case in.RoomNo == 0:
		return InvalidInput("room number is required")
	case !model.RoomType(in.RoomType).Valid():
		return InvalidInput("invalid room type")
	case in.PricePerDay < 0:
		return InvalidInput("price per day must not be negative")
	}
	return nil
}

func (in RoomInput) apply(r *model.HospitalRoom) {
	r.RoomNo = in.RoomNo
	r.RoomType = model.RoomType(in.RoomType)
	r.Availability = in.Availability
	r.PricePerDay = in.PricePerDay
}

func checkRoomUnique(tx *gorm.DB, hospitalID, roomNo, excludeID uint) error {
	dup, err := exists(tx, &model.HospitalRoom{}, "hospital_id = ? AND room_no = ? AND id <> ?", hospitalID, roomNo, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return Conflict("room %d already exists", roomNo)
	}
	return nil
}

func CreateRoom(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint, in RoomInput) (*model.HospitalRoom, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var r model.HospitalRoom
	err := transact(ctx, db, func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Hospital{}, "id = ?", hospitalID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the hospital")
		}
		if err := checkRoomUnique(tx, hospitalID, in.RoomNo, 0); err != nil {
			return err
		}
		in.apply(&r)
		r.HospitalID = hospitalID
		if err := tx.Create(&r).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("room %d already exists", in.RoomNo)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRooms returns the hospital's rooms, optionally filtered by type and availability.
func ListRooms(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint, roomType string, availability *bool) ([]model.HospitalRoom, error) {
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}
	q := db.WithContext(ctx).Where("hospital_id = ?", hospitalID)
	if roomType != "" {
		q = q.Where("room_type = ?", strings.ToLower(roomType))
	}
	if availability != nil {
		q = q.Where("availability = ?", *availability)
	}
	var out []model.HospitalRoom
	if err := q.Order("room_no").Find(&out).Error; err != nil {
		return nil, Internal("failed to list hospital rooms", err)
	}
	return out, nil
}

func GetRoom(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, id uint) (*model.HospitalRoom, error) {
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}
	var r model.HospitalRoom
	found, err := findOne(db.WithContext(ctx), &r, "id = ? AND hospital_id = ?", id, hospitalID)
	if err != nil {
		return nil, Internal("failed to load hospital room", err)
	}
	if !found {
		return nil, NotFound("unable to find the hospital room")
	}
	return &r, nil
}

func UpdateRoom(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, id uint, in RoomInput) (*model.HospitalRoom, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var r model.HospitalRoom
	err := transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &r, "id = ? AND hospital_id = ?", id, hospitalID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the hospital room")
		}
		if err := checkRoomUnique(tx, hospitalID, in.RoomNo, r.ID); err != nil {
			return err
		}
		in.apply(&r)
		return tx.Save(&r).Error
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func DeleteRoom(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, id uint) error {
	if err := scope.CheckHospital(hospitalID); err != nil {
		return err
	}
	return transact(ctx, db, func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND hospital_id = ?", id, hospitalID).Delete(&model.HospitalRoom{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("unable to find the hospital room")
		}
		return nil
	})
}
