package service

import (
	"context"
	"strings"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/ariebrainware/hospital-directory/util"
	"gorm.io/gorm"
)

// DoctorProfile is the account data of a doctor as known by the identity service.
type DoctorProfile struct {
	UserID       uint
	FullName     string
	EmailAddress string
	MobileNumber string
}

type DoctorInput struct {
	DepartmentID uint
	RegNo        uint
	Degree       string
	Speciality   string
	OnCall       bool
	Profile      DoctorProfile
}

func (in *DoctorInput) normalize() error {
	in.Profile.FullName = util.NormalizeName(in.Profile.FullName)
	in.Profile.EmailAddress = strings.ToLower(strings.TrimSpace(in.Profile.EmailAddress))
	in.Degree = strings.TrimSpace(in.Degree)
	in.Speciality = util.NormalizeName(in.Speciality)
	switch {
	case in.RegNo == 0:
		return InvalidInput("registration number is required")
	case in.Profile.EmailAddress == "":
		return InvalidInput("email address is required")
	case in.Profile.FullName == "":
		return InvalidInput("doctor full name is required")
	}
	return nil
}

func (in DoctorInput) apply(d *model.Doctor) {
	d.DepartmentID = in.DepartmentID
	d.RegNo = in.RegNo
	d.Degree = in.Degree
	d.Speciality = in.Speciality
	d.OnCall = in.OnCall
	d.UserID = in.Profile.UserID
	d.FullName = in.Profile.FullName
	d.EmailAddress = in.Profile.EmailAddress
	d.MobileNumber = in.Profile.MobileNumber
}

func checkDoctorPlacement(tx *gorm.DB, hospitalID, departmentID uint) error {
	linked, err := exists(tx, &model.HospitalDepartment{}, "hospital_id = ? AND department_id = ?", hospitalID, departmentID)
	if err != nil {
		return err
	}
	if !linked {
		return NotFound("unable to find the hospital or department")
	}
	return nil
}

func checkDoctorUnique(tx *gorm.DB, in DoctorInput, excludeID uint) error {
	dup, err := exists(tx, &model.Doctor{}, "reg_no = ? AND id <> ?", in.RegNo, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return Conflict("registration number has already been taken")
	}
	dup, err = exists(tx, &model.Doctor{}, "email_address = ? AND id <> ?", in.Profile.EmailAddress, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return Conflict("email address has already been taken")
	}
	return nil
}

// CreateDoctor attaches a doctor to a department the hospital offers. New
// doctors are pending approval until their status is set.
func CreateDoctor(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint, in DoctorInput) (*model.Doctor, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}

	var d model.Doctor
	err := transact(ctx, db, func(tx *gorm.DB) error {
		if err := checkDoctorPlacement(tx, hospitalID, in.DepartmentID); err != nil {
			return err
		}
		if err := checkDoctorUnique(tx, in, 0); err != nil {
			return err
		}
		in.apply(&d)
		d.HospitalID = hospitalID
		d.Status = false
		if err := tx.Create(&d).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("email address has already been taken")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDoctors returns the hospital's doctors, optionally limited to one department.
func ListDoctors(ctx context.Context, db *gorm.DB, scope Scope, hospitalID, departmentID uint) ([]model.Doctor, error) {
	if err := scope.CheckHospital(hospitalID); err != nil {
		return nil, err
	}
	q := db.WithContext(ctx).Where("hospital_id = ?", hospitalID)
	if departmentID != 0 {
		q = q.Where("department_id = ?", departmentID)
	}
	var out []model.Doctor
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, Internal("failed to list doctors", err)
	}
	return out, nil
}

func GetDoctor(ctx context.Context, db *gorm.DB, id uint) (*model.Doctor, error) {
	var d model.Doctor
	found, err := findOne(db.WithContext(ctx), &d, "id = ?", id)
	if err != nil {
		return nil, Internal("failed to load doctor", err)
	}
	if !found {
		return nil, NotFound("unable to find the doctor")
	}
	return &d, nil
}

// UpdateDoctor edits a doctor. Moving to another department requires the
// hospital to offer it.
func UpdateDoctor(ctx context.Context, db *gorm.DB, scope Scope, id uint, in DoctorInput) (*model.Doctor, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var d model.Doctor
	err := transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &d, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the doctor")
		}
		if err := scope.CheckHospital(d.HospitalID); err != nil {
			return err
		}
		if in.DepartmentID != d.DepartmentID {
			if err := checkDoctorPlacement(tx, d.HospitalID, in.DepartmentID); err != nil {
				return err
			}
		}
		if err := checkDoctorUnique(tx, in, d.ID); err != nil {
			return err
		}
		in.apply(&d)
		return tx.Save(&d).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SetDoctorStatus approves or suspends a doctor.
func SetDoctorStatus(ctx context.Context, db *gorm.DB, scope Scope, id uint, status bool) (*model.Doctor, error) {
	var d model.Doctor
	err := transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &d, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the doctor")
		}
		if err := scope.CheckHospital(d.HospitalID); err != nil {
			return err
		}
		d.Status = status
		return tx.Model(&d).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDoctor removes a doctor and the doctor's hours.
func DeleteDoctor(ctx context.Context, db *gorm.DB, scope Scope, id uint) error {
	return transact(ctx, db, func(tx *gorm.DB) error {
		var d model.Doctor
		found, err := findOne(tx, &d, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the doctor")
		}
		if err := scope.CheckHospital(d.HospitalID); err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", d.ID).Delete(&model.DoctorHour{}).Error; err != nil {
			return err
		}
		return tx.Delete(&d).Error
	})
}
