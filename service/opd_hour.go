package service

import (
	"context"

	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/gorm"
)

// OpdHourInput carries the raw day and HH:mm:ss bounds of an OPD window.
// IsOpen is only honoured on update; nil keeps the stored value.
type OpdHourInput struct {
	Day         string
	OpeningTime string
	ClosingTime string
	IsOpen      *bool
}

// CreateOpdHour stores the OPD window of a hospital for one weekday.
func CreateOpdHour(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint, in OpdHourInput) (*model.OpdHour, error) {
	w, err := parseWindow(in.Day, in.OpeningTime, in.ClosingTime)
	if err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var created model.OpdHour
	err = transact(ctx, db, func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Hospital{}, "id = ?", hospitalID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("hospital not found")
		}

		dup, err := exists(tx, &model.OpdHour{}, "hospital_id = ? AND day = ?", hospitalID, w.day)
		if err != nil {
			return err
		}
		if dup {
			return Conflict("opd hours for %s already exist", w.day)
		}
		if !w.ordered() {
			return InvalidRange("closing time must be after the opening time")
		}

		created = model.OpdHour{
			HospitalID:  hospitalID,
			Day:         w.day,
			OpeningTime: w.start,
			ClosingTime: w.end,
			IsOpen:      true,
		}
		if err := tx.Create(&created).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("opd hours for %s already exist", w.day)
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

// UpdateOpdHour replaces the window of an existing OPD row. Changing the day
// re-checks per-day uniqueness against the hospital's other rows.
func UpdateOpdHour(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, id uint, in OpdHourInput) (*model.OpdHour, error) {
	w, err := parseWindow(in.Day, in.OpeningTime, in.ClosingTime)
	if err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var row model.OpdHour
	err = transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &row, "id = ? AND hospital_id = ?", id, hospitalID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("opd hour not found")
		}

		if w.day != row.Day {
			dup, err := exists(tx, &model.OpdHour{}, "hospital_id = ? AND day = ? AND id <> ?", hospitalID, w.day, row.ID)
			if err != nil {
				return err
			}
			if dup {
				return Conflict("opd hours for %s already exist", w.day)
			}
		}
		if !w.ordered() {
			return InvalidRange("closing time must be after the opening time")
		}

		row.Day = w.day
		row.OpeningTime = w.start
		row.ClosingTime = w.end
		if in.IsOpen != nil {
			row.IsOpen = *in.IsOpen
		}
		if err := tx.Save(&row).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("opd hours for %s already exist", w.day)
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

// FindOpdHour returns the hospital's row for day, or nil when none is set.
func FindOpdHour(ctx context.Context, db *gorm.DB, hospitalID uint, day model.Weekday) (*model.OpdHour, error) {
	var row model.OpdHour
	found, err := findOne(db.WithContext(ctx), &row, "hospital_id = ? AND day = ?", hospitalID, day)
	if err != nil {
		return nil, Internal("failed to load opd hour", err)
	}
	if !found {
		return nil, nil
	}
	return &row, nil
}

// ListOpdHours returns every OPD row of the hospital ordered by id.
func ListOpdHours(ctx context.Context, db *gorm.DB, hospitalID uint) ([]model.OpdHour, error) {
	found, err := exists(db.WithContext(ctx), &model.Hospital{}, "id = ?", hospitalID)
	if err != nil {
		return nil, Internal("failed to load hospital", err)
	}
	if !found {
		return nil, NotFound("hospital not found")
	}

	var rows []model.OpdHour
	if err := db.WithContext(ctx).Where("hospital_id = ?", hospitalID).Order("id").Find(&rows).Error; err != nil {
		return nil, Internal("failed to list opd hours", err)
	}
	return rows, nil
}

func GetOpdHour(ctx context.Context, db *gorm.DB, hospitalID, id uint) (*model.OpdHour, error) {
	var row model.OpdHour
	found, err := findOne(db.WithContext(ctx), &row, "id = ? AND hospital_id = ?", id, hospitalID)
	if err != nil {
		return nil, Internal("failed to load opd hour", err)
	}
	if !found {
		return nil, NotFound("opd hour not found")
	}
	return &row, nil
}
