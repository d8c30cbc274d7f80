package service

import (
	"context"
	"strings"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/ariebrainware/hospital-directory/util"
	"gorm.io/gorm"
)

// HospitalInput is the editable part of a hospital. A nil id slice leaves
// the corresponding edge set untouched; a non-nil one replaces it.
type HospitalInput struct {
	Name          string
	ProvinceID    uint
	DistrictID    uint
	CityID        uint
	PhoneNo       string
	MobileNo      string
	EmailAddress  string
	Website       string
	NoOfBeds      uint
	DepartmentIDs []uint
	TreatmentIDs  []uint
}

func (in *HospitalInput) normalize() error {
	in.Name = util.NormalizeName(in.Name)
	in.EmailAddress = strings.ToLower(strings.TrimSpace(in.EmailAddress))
	in.Website = strings.TrimSpace(in.Website)
	if in.Name == "" {
		return InvalidInput("hospital name is required")
	}
	return nil
}

func (in HospitalInput) apply(h *model.Hospital) {
	h.Name = in.Name
	h.ProvinceID = in.ProvinceID
	h.DistrictID = in.DistrictID
	h.CityID = in.CityID
	h.PhoneNo = in.PhoneNo
	h.MobileNo = in.MobileNo
	h.EmailAddress = in.EmailAddress
	h.Website = in.Website
	h.NoOfBeds = in.NoOfBeds
}

func checkHospitalUnique(tx *gorm.DB, in HospitalInput, excludeID uint) error {
	taken, err := exists(tx, &model.Hospital{}, "email_address = ? AND id <> ?", in.EmailAddress, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Conflict("email address has already been taken")
	}
	taken, err = exists(tx, &model.Hospital{}, "website = ? AND id <> ?", in.Website, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return Conflict("website has already been taken")
	}
	return nil
}

func applyHospitalEdges(tx *gorm.DB, hospitalID uint, in HospitalInput) error {
	if in.DepartmentIDs != nil {
		if err := SetDepartments(tx, hospitalID, in.DepartmentIDs); err != nil {
			return err
		}
	}
	if in.TreatmentIDs != nil {
		if err := SetHospitalTreatments(tx, hospitalID, in.TreatmentIDs); err != nil {
			return err
		}
	}
	return nil
}

// pinHospital resolves which hospital a caller may act on. Super admins may
// target any id; everyone else is pinned to their own hospital.
func pinHospital(scope Scope, hospitalID uint) (uint, error) {
	if scope.IsSuperAdmin() {
		return hospitalID, nil
	}
	if !scope.HospitalScoped() {
		return 0, Forbidden("you are not assigned to a hospital")
	}
	return scope.HospitalID, nil
}

// CreateHospital inserts a hospital and its initial edge sets atomically.
// New hospitals start inactive.
func CreateHospital(ctx context.Context, db *gorm.DB, in HospitalInput) (*model.Hospital, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var h model.Hospital
	err := transact(ctx, db, func(tx *gorm.DB) error {
		if err := checkHospitalUnique(tx, in, 0); err != nil {
			return err
		}
		in.apply(&h)
		h.Status = false
		if err := tx.Create(&h).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("email address or website has already been taken")
			}
			return err
		}
		return applyHospitalEdges(tx, h.ID, in)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHospitals is restricted to super admins.
func ListHospitals(ctx context.Context, db *gorm.DB, scope Scope) ([]model.Hospital, error) {
	if !scope.IsSuperAdmin() {
		return nil, Forbidden("only super admins can list hospitals")
	}
	var out []model.Hospital
	if err := db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, Internal("failed to list hospitals", err)
	}
	return out, nil
}

// GetHospital returns the hospital with its opd hours and edge sets.
func GetHospital(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint) (*model.HospitalDetail, error) {
	id, err := pinHospital(scope, hospitalID)
	if err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx)
	var detail model.HospitalDetail
	found, err := findOne(tx, &detail.Hospital, "id = ?", id)
	if err != nil {
		return nil, Internal("failed to load hospital", err)
	}
	if !found {
		return nil, NotFound("unable to find the hospital")
	}
	if err := tx.Where("hospital_id = ?", id).Order("id").Find(&detail.OpdHours).Error; err != nil {
		return nil, Internal("failed to load opd hours", err)
	}
	if detail.Departments, err = departmentsOf(tx, id); err != nil {
		return nil, Internal("failed to load departments", err)
	}
	if detail.Treatments, err = treatmentsOfHospital(tx, id); err != nil {
		return nil, Internal("failed to load treatments", err)
	}
	return &detail, nil
}

// UpdateHospital edits the caller's hospital and, when given, replaces its
// edge sets in the same transaction.
func UpdateHospital(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint, in HospitalInput) (*model.Hospital, error) {
	id, err := pinHospital(scope, hospitalID)
	if err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var h model.Hospital
	err = transact(ctx, db, func(tx *gorm.DB) error {
		found, err := findOne(tx, &h, "id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the hospital")
		}
		if err := checkHospitalUnique(tx, in, h.ID); err != nil {
			return err
		}
		in.apply(&h)
		if err := tx.Save(&h).Error; err != nil {
			if isDuplicateKey(err) {
				return Conflict("email address or website has already been taken")
			}
			return err
		}
		return applyHospitalEdges(tx, h.ID, in)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// SetHospitalStatus activates or deactivates a hospital. Super admins only.
func SetHospitalStatus(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint, status bool) error {
	if !scope.IsSuperAdmin() {
		return Forbidden("only super admins can change a hospital status")
	}
	return transact(ctx, db, func(tx *gorm.DB) error {
		res := tx.Model(&model.Hospital{}).Where("id = ?", hospitalID).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("unable to find the hospital")
		}
		return nil
	})
}

// DeleteHospital removes a hospital together with everything it owns. Beds
// are removed department by department so each counter stays in step.
func DeleteHospital(ctx context.Context, db *gorm.DB, scope Scope, hospitalID uint) error {
	if !scope.IsSuperAdmin() {
		return Forbidden("only super admins can delete hospitals")
	}

	return transact(ctx, db, func(tx *gorm.DB) error {
		found, err := exists(tx, &model.Hospital{}, "id = ?", hospitalID)
		if err != nil {
			return err
		}
		if !found {
			return NotFound("unable to find the hospital")
		}

		if err := deleteBedsWhere(tx, "hospital_id = ?", hospitalID); err != nil {
			return err
		}
		doctorIDs := tx.Model(&model.Doctor{}).Select("id").Where("hospital_id = ?", hospitalID)
		if err := tx.Where("doctor_id IN (?)", doctorIDs).Delete(&model.DoctorHour{}).Error; err != nil {
			return err
		}
		for _, m := range []interface{}{
			&model.Doctor{},
			&model.OpdHour{},
			&model.HospitalRoom{},
			&model.HospitalDepartment{},
			&model.HospitalTreatment{},
		} {
			if err := tx.Where("hospital_id = ?", hospitalID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Hospital{}, hospitalID).Error
	})
}

// deleteBedsWhere removes the matching beds and decrements the counter of
// every department it touched, locking each department first.
func deleteBedsWhere(tx *gorm.DB, query string, args ...interface{}) error {
	type bedCount struct {
		DepartmentID uint
		Count        uint
	}
	var counts []bedCount
	if err := tx.Model(&model.DepartmentBed{}).
		Select("department_id, COUNT(*) AS count").
		Where(query, args...).
		Group("department_id").
		Order("department_id").
		Scan(&counts).Error; err != nil {
		return err
	}

	for _, c := range counts {
		var dept model.Department
		found, err := lockOne(tx, &dept, "id = ?", c.DepartmentID)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		remaining := uint(0)
		if dept.NoOfBeds > c.Count {
			remaining = dept.NoOfBeds - c.Count
		}
		if err := tx.Model(&dept).Update("no_of_beds", remaining).Error; err != nil {
			return err
		}
	}
	return tx.Where(query, args...).Delete(&model.DepartmentBed{}).Error
}
