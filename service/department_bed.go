package service

import (
	"context"

	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/gorm"
)

// BedInput is the mutable part of a department bed.
type BedInput struct {
	Availability bool
	PricePerDay  float64
}

func (in BedInput) validate() error {
	if in.PricePerDay < 0 {
		return InvalidInput("price per day must not be negative")
	}
	return nil
}

// lockDepartmentOf checks that the hospital exists and owns the department,
// then takes the department row lock that serializes the bed ledger.
func lockDepartmentOf(tx *gorm.DB, hospitalID, departmentID uint) (*model.Department, error) {
	linked, err := exists(tx, &model.HospitalDepartment{}, "hospital_id = ? AND department_id = ?", hospitalID, departmentID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, NotFound("unable to find the hospital or department")
	}

	var dept model.Department
	found, err := lockOne(tx, &dept, "id = ?", departmentID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, NotFound("unable to find the hospital or department")
	}
	return &dept, nil
}

// CreateBed appends a bed to the department and bumps its bed counter in the
// same transaction. Bed numbers continue from the highest number ever issued.
func CreateBed(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, departmentID uint, in BedInput) (bed *model.DepartmentBed, err error) {
	defer func() { observeBedOp("create", err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var created model.DepartmentBed
	err = transact(ctx, db, func(tx *gorm.DB) error {
		dept, err := lockDepartmentOf(tx, hospitalID, departmentID)
		if err != nil {
			return err
		}

		var maxBedNo uint
		if err := tx.Model(&model.DepartmentBed{}).
			Where("department_id = ?", departmentID).
			Select("COALESCE(MAX(bed_no), 0)").
			Scan(&maxBedNo).Error; err != nil {
			return err
		}
		next := dept.LastBedNo
		if maxBedNo > next {
			next = maxBedNo
		}
		next++

		created = model.DepartmentBed{
			HospitalID:   hospitalID,
			DepartmentID: departmentID,
			BedNo:        next,
			Availability: in.Availability,
			PricePerDay:  in.PricePerDay,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return tx.Model(dept).Updates(map[string]interface{}{
			"no_of_beds":  dept.NoOfBeds + 1,
			"last_bed_no": next,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteLastBed removes the department's highest numbered bed and decrements
// its counter. An unavailable last bed cannot be removed.
func DeleteLastBed(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, departmentID uint) (err error) {
	defer func() { observeBedOp("delete_last", err) }()

	if err := scope.CheckHospital(hospitalID); err != nil {
		return err
	}

	return transact(ctx, db, func(tx *gorm.DB) error {
		dept, err := lockDepartmentOf(tx, hospitalID, departmentID)
		if err != nil {
			return err
		}

		var last model.DepartmentBed
		res := tx.Where("department_id = ?", departmentID).Order("bed_no DESC").Limit(1).Find(&last)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("department has no beds")
		}
		// Shared departments number beds across hospitals; only the owner of
		// the last bed may remove it.
		if last.HospitalID != hospitalID {
			return Forbidden("the last bed of this department belongs to another hospital")
		}
		if !last.Availability {
			return Forbidden("cannot delete the last bed while unavailable")
		}

		if err := tx.Delete(&last).Error; err != nil {
			return err
		}
		remaining := dept.NoOfBeds
		if remaining > 0 {
			remaining--
		}
		return tx.Model(dept).Update("no_of_beds", remaining).Error
	})
}

// ListBeds returns the hospital's beds in the department ordered by bed number.
// A nil availability returns every bed.
func ListBeds(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, departmentID uint, availability *bool) ([]model.DepartmentBed, error) {
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	q := db.WithContext(ctx).Where("hospital_id = ? AND department_id = ?", hospitalID, departmentID)
	if availability != nil {
		q = q.Where("availability = ?", *availability)
	}
	var beds []model.DepartmentBed
	if err := q.Order("bed_no").Find(&beds).Error; err != nil {
		return nil, Internal("failed to list department beds", err)
	}
	return beds, nil
}

func GetBed(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, departmentID, id uint) (*model.DepartmentBed, error) {
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var bed model.DepartmentBed
	found, err := findOne(db.WithContext(ctx), &bed, "id = ? AND hospital_id = ? AND department_id = ?", id, hospitalID, departmentID)
	if err != nil {
		return nil, Internal("failed to load department bed", err)
	}
	if !found {
		return nil, NotFound("unable to find the department bed")
	}
	return &bed, nil
}

// UpdateBed changes availability and price only. The bed number and the
// department counter are never touched.
func UpdateBed(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, departmentID, id uint, in BedInput) (bed *model.DepartmentBed, err error) {
	defer func() { observeBedOp("update", err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var row model.DepartmentBed
	err = transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &row, "id = ? AND hospital_id = ? AND department_id = ?", id, hospitalID, departmentID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the department bed")
		}
		row.Availability = in.Availability
		row.PricePerDay = in.PricePerDay
		return tx.Model(&row).Select("availability", "price_per_day").Updates(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
