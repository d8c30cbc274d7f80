package service

import (
	"context"

	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/gorm"
)

// DoctorHourInput carries the raw day and HH:mm:ss bounds of a doctor's
// availability. IsAvailable is only honoured on update; nil keeps the
// stored value.
type DoctorHourInput struct {
	Day           string
	AvailableFrom string
	AvailableTo   string
	IsAvailable   *bool
}

// loadDoctorForDay loads the doctor, enforces the caller's hospital scope and
// returns the hospital's OPD row for day (nil when not set).
func loadDoctorForDay(tx *gorm.DB, scope Scope, doctorID uint, day model.Weekday) (*model.Doctor, *model.OpdHour, error) {
	var doctor model.Doctor
	found, err := findOne(tx, &doctor, "id = ?", doctorID)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, NotFound("doctor not found")
	}
	if err := scope.CheckHospital(doctor.HospitalID); err != nil {
		return nil, nil, err
	}

	var opd model.OpdHour
	found, err = findOne(tx, &opd, "hospital_id = ? AND day = ?", doctor.HospitalID, day)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return &doctor, nil, nil
	}
	return &doctor, &opd, nil
}

// checkNested applies the containment and ordering rules of a doctor window
// against the hospital's OPD window.
func checkNested(w window, opd *model.OpdHour) error {
	if !w.within(opd.OpeningTime, opd.ClosingTime) {
		return InvalidRange("availability must lie between %s and %s on %s", opd.OpeningTime, opd.ClosingTime, opd.Day)
	}
	if !w.ordered() {
		return InvalidRange("available to must be after available from")
	}
	return nil
}

// CreateDoctorHour stores a doctor's availability for one weekday. The
// window must sit inside the hospital's OPD hours for that day.
func CreateDoctorHour(ctx context.Context, db *gorm.DB, scope Scope, doctorID uint, in DoctorHourInput) (*model.DoctorHour, error) {
	w, err := parseWindow(in.Day, in.AvailableFrom, in.AvailableTo)
	if err != nil {
		return nil, err
	}

	var created model.DoctorHour
	err = transact(ctx, db, func(tx *gorm.DB) error {
		_, opd, err := loadDoctorForDay(tx, scope, doctorID, w.day)
		if err != nil {
			return err
		}
		if opd == nil {
			return InvalidState("operating hours not set for this day")
		}

		dup, err := exists(tx, &model.DoctorHour{}, "doctor_id = ? AND day = ?", doctorID, w.day)
		if err != nil {
			return err
		}
		if dup {
			return Conflict("doctor hours for %s already exist", w.day)
		}
		if err := checkNested(w, opd); err != nil {
			return err
		}

		created = model.DoctorHour{
			DoctorID:      doctorID,
			Day:           w.day,
			AvailableFrom: w.start,
			AvailableTo:   w.end,
			IsAvailable:   true,
		}
		if err := tx.Create(&created).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("doctor hours for %s already exist", w.day)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDoctorHour re-validates and replaces an existing doctor window. The
// duplicate-day check only runs when the day changes.
func UpdateDoctorHour(ctx context.Context, db *gorm.DB, scope Scope, doctorID, id uint, in DoctorHourInput) (*model.DoctorHour, error) {
	w, err := parseWindow(in.Day, in.AvailableFrom, in.AvailableTo)
	if err != nil {
		return nil, err
	}

	var row model.DoctorHour
	err = transact(ctx, db, func(tx *gorm.DB) error {
		_, opd, err := loadDoctorForDay(tx, scope, doctorID, w.day)
		if err != nil {
			return err
		}

		found, err := findOne(tx, &row, "id = ? AND doctor_id = ?", id, doctorID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("doctor hour not found")
		}
		if opd == nil {
			return InvalidState("operating hours not set for this day")
		}

		if w.day != row.Day {
			dup, err := exists(tx, &model.DoctorHour{}, "doctor_id = ? AND day = ? AND id <> ?", doctorID, w.day, row.ID)
			if err != nil {
				return err
			}
			if dup {
				return Conflict("doctor hours for %s already exist", w.day)
			}
		}
		if err := checkNested(w, opd); err != nil {
			return err
		}

		row.Day = w.day
		row.AvailableFrom = w.start
		row.AvailableTo = w.end
		if in.IsAvailable != nil {
			row.IsAvailable = *in.IsAvailable
		}
		if err := tx.Save(&row).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("doctor hours for %s already exist", w.day)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListDoctorHours returns the doctor's windows ordered by id.
func ListDoctorHours(ctx context.Context, db *gorm.DB, doctorID uint) ([]model.DoctorHour, error) {
	found, err := exists(db.WithContext(ctx), &model.Doctor{}, "id = ?", doctorID)
	if err != nil {
		return nil, Internal("failed to load doctor", err)
	}
	if !found {
		return nil, NotFound("doctor not found")
	}

	var rows []model.DoctorHour
	if err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("id").Find(&rows).Error; err != nil {
		return nil, Internal("failed to list doctor hours", err)
	}
	return rows, nil
}

func GetDoctorHour(ctx context.Context, db *gorm.DB, doctorID, id uint) (*model.DoctorHour, error) {
	var row model.DoctorHour
	found, err := findOne(db.WithContext(ctx), &row, "id = ? AND doctor_id = ?", id, doctorID)
	if err != nil {
		return nil, Internal("failed to load doctor hour", err)
	}
	if !found {
		return nil, NotFound("doctor hour not found")
	}
	return &row, nil
}

// DeleteDoctorHour removes one window of the doctor.
func DeleteDoctorHour(ctx context.Context, db *gorm.DB, scope Scope, doctorID, id uint) error {
	return transact(ctx, db, func(tx *gorm.DB) error {
		var doctor model.Doctor
		found, err := findOne(tx, &doctor, "id = ?", doctorID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("doctor not found")
		}
		if err := scope.CheckHospital(doctor.HospitalID); err != nil {
			return err
		}

		res := tx.Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&model.DoctorHour{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("doctor hour not found")
		}
		return nil
	})
}
