package service

import (
	"context"
	"strings"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/ariebrainware/hospital-directory/util"
	"gorm.io/gorm"
)

// DepartmentInput is the editable part of a department. A nil TreatmentIDs
// leaves the treatment edges untouched.
type DepartmentInput struct {
	Name         string
	NepaliName   string
	TreatmentIDs []uint
}

func (in *DepartmentInput) normalize() error {
	in.Name = util.NormalizeName(in.Name)
	in.NepaliName = strings.TrimSpace(in.NepaliName)
	if in.Name == "" || in.NepaliName == "" {
		return InvalidInput("department name and nepali name are required")
	}
	return nil
}

func checkDepartmentUnique(tx *gorm.DB, in DepartmentInput, excludeID uint) error {
	dup, err := exists(tx, &model.Department{}, "(name = ? OR nepali_name = ?) AND id <> ?", in.Name, in.NepaliName, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return Conflict("department %q already exists", in.Name)
	}
	return nil
}

// CreateDepartment inserts a department with a zero bed counter and its
// treatment edges in one transaction.
func CreateDepartment(ctx context.Context, db *gorm.DB, in DepartmentInput) (*model.Department, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var d model.Department
	err := transact(ctx, db, func(tx *gorm.DB) error {
		if err := checkDepartmentUnique(tx, in, 0); err != nil {
			return err
		}
		d = model.Department{Name: in.Name, NepaliName: in.NepaliName}
		if err := tx.Create(&d).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("department %q already exists", in.Name)
			}
			return err
		}
		if in.TreatmentIDs != nil {
			return SetDepartmentTreatments(tx, d.ID, in.TreatmentIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func ListDepartments(ctx context.Context, db *gorm.DB) ([]model.Department, error) {
	var out []model.Department
	if err := db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, Internal("failed to list departments", err)
	}
	return out, nil
}

// GetDepartment returns the department with its treatments.
func GetDepartment(ctx context.Context, db *gorm.DB, id uint) (*model.DepartmentDetail, error) {
	tx := db.WithContext(ctx)
	var detail model.DepartmentDetail
	found, err := findOne(tx, &detail.Department, "id = ?", id)
	if err != nil {
		return nil, Internal("failed to load department", err)
	}
	if !found {
		return nil, NotFound("unable to find the department")
	}
	if detail.Treatments, err = treatmentsOfDepartment(tx, id); err != nil {
		return nil, Internal("failed to load treatments", err)
	}
	return &detail, nil
}

// UpdateDepartment renames a department. The bed counter is owned by the
// bed ledger and is never written here.
func UpdateDepartment(ctx context.Context, db *gorm.DB, id uint, in DepartmentInput) (*model.Department, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var d model.Department
	err := transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &d, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the department")
		}
		if err := checkDepartmentUnique(tx, in, d.ID); err != nil {
			return err
		}
		d.Name = in.Name
		d.NepaliName = in.NepaliName
		if err := tx.Model(&d).Select("name", "nepali_name").Updates(&d).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("department %q already exists", in.Name)
			}
			return err
		}
		if in.TreatmentIDs != nil {
			return SetDepartmentTreatments(tx, d.ID, in.TreatmentIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDepartment removes a department, its beds and its edges. A department
// that still has doctors cannot be removed.
func DeleteDepartment(ctx context.Context, db *gorm.DB, id uint) error {
	return transact(ctx, db, func(tx *gorm.DB) error {
		var d model.Department
		found, err := lockOne(tx, &d, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find any departments")
		}
		staffed, err := exists(tx, &model.Doctor{}, "department_id = ?", id)
		if err != nil {
			return err
		}
		if staffed {
			return Conflict("department still has doctors assigned")
		}
		for _, m := range []interface{}{
			&model.DepartmentBed{},
			&model.HospitalDepartment{},
			&model.DepartmentTreatment{},
		} {
			if err := tx.Where("department_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&d).Error
	})
}
