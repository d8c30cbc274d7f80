package service

import (
	"context"

	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/gorm"
)

// AssociationKind names one of the many-to-many edge sets.
type AssociationKind string

const (
	AssocDepartments          AssociationKind = "departments"
	AssocHospitalTreatments   AssociationKind = "hospital_treatments"
	AssocDepartmentTreatments AssociationKind = "department_treatments"
)

// ParseAssociationKind validates a kind coming from a request path.
func ParseAssociationKind(s string) (AssociationKind, error) {
	switch k := AssociationKind(s); k {
	case AssocDepartments, AssocHospitalTreatments, AssocDepartmentTreatments:
		return k, nil
	}
	return "", InvalidInput("unknown association kind %q", s)
}

// resolveIDs returns the subset of ids that exist in the table of model,
// ordered ascending. Unknown ids are dropped.
func resolveIDs(tx *gorm.DB, model interface{}, ids []uint) ([]uint, error) {
	matched := []uint{}
	if len(ids) == 0 {
		return matched, nil
	}
	if err := tx.Model(model).Where("id IN ?", ids).Order("id").Pluck("id", &matched).Error; err != nil {
		return nil, err
	}
	return matched, nil
}

// SetDepartments replaces the hospital's department edges with the
// departments among ids that exist. An empty result clears the edge set.
func SetDepartments(tx *gorm.DB, hospitalID uint, ids []uint) error {
	matched, err := resolveIDs(tx, &model.Department{}, ids)
	if err != nil {
		return err
	}
	if err := tx.Where("hospital_id = ?", hospitalID).Delete(&model.HospitalDepartment{}).Error; err != nil {
		return err
	}
	if len(matched) == 0 {
		return nil
	}
	edges := make([]model.HospitalDepartment, 0, len(matched))
	for _, id := range matched {
		edges = append(edges, model.HospitalDepartment{HospitalID: hospitalID, DepartmentID: id})
	}
	return tx.Create(&edges).Error
}

// resolveTreatments is resolveIDs for treatments, failing when nothing matches.
func resolveTreatments(tx *gorm.DB, ids []uint) ([]uint, error) {
	matched, err := resolveIDs(tx, &model.Treatment{}, ids)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, NotFound("treatments couldn't be found")
	}
	return matched, nil
}

// SetHospitalTreatments replaces the hospital's treatment edges. It fails
// NotFound when none of ids names an existing treatment.
func SetHospitalTreatments(tx *gorm.DB, hospitalID uint, ids []uint) error {
	matched, err := resolveTreatments(tx, ids)
	if err != nil {
		return err
	}
	if err := tx.Where("hospital_id = ?", hospitalID).Delete(&model.HospitalTreatment{}).Error; err != nil {
		return err
	}
	edges := make([]model.HospitalTreatment, 0, len(matched))
	for _, id := range matched {
		edges = append(edges, model.HospitalTreatment{HospitalID: hospitalID, TreatmentID: id})
	}
	return tx.Create(&edges).Error
}

// SetDepartmentTreatments replaces the department's treatment edges. It fails
// NotFound when none of ids names an existing treatment.
func SetDepartmentTreatments(tx *gorm.DB, departmentID uint, ids []uint) error {
	matched, err := resolveTreatments(tx, ids)
	if err != nil {
		return err
	}
	if err := tx.Where("department_id = ?", departmentID).Delete(&model.DepartmentTreatment{}).Error; err != nil {
		return err
	}
	edges := make([]model.DepartmentTreatment, 0, len(matched))
	for _, id := range matched {
		edges = append(edges, model.DepartmentTreatment{DepartmentID: departmentID, TreatmentID: id})
	}
	return tx.Create(&edges).Error
}

// SetAssociation replaces one edge set of ownerID in its own transaction.
func SetAssociation(ctx context.Context, db *gorm.DB, scope Scope, kind AssociationKind, ownerID uint, ids []uint) error {
	if _, err := ParseAssociationKind(string(kind)); err != nil {
		return err
	}
	if kind != AssocDepartmentTreatments {
		if err := scope.CheckHospital(ownerID); err != nil {
			return err
		}
	}

	return transact(ctx, db, func(tx *gorm.DB) error {
		switch kind {
		case AssocDepartments, AssocHospitalTreatments:
			found, err := exists(tx, &model.Hospital{}, "id = ?", ownerID)
			if err != nil {
				return err
			}
			if !found {
				return NotFound("hospital not found")
			}
			if kind == AssocDepartments {
				return SetDepartments(tx, ownerID, ids)
			}
			return SetHospitalTreatments(tx, ownerID, ids)
		default:
			found, err := exists(tx, &model.Department{}, "id = ?", ownerID)
			if err != nil {
				return err
			}
			if !found {
				return NotFound("department not found")
			}
			return SetDepartmentTreatments(tx, ownerID, ids)
		}
	})
}

// departmentsOf, treatmentsOfHospital and treatmentsOfDepartment load the
// targets of an edge set for detail views.
func departmentsOf(tx *gorm.DB, hospitalID uint) ([]model.Department, error) {
	var out []model.Department
	err := tx.Joins("JOIN department_hospital ON department_hospital.department_id = departments.id").
		Where("department_hospital.hospital_id = ?", hospitalID).
		Order("departments.id").
		Find(&out).Error
	return out, err
}

func treatmentsOfHospital(tx *gorm.DB, hospitalID uint) ([]model.Treatment, error) {
	var out []model.Treatment
	err := tx.Joins("JOIN hospital_treatment ON hospital_treatment.treatment_id = treatments.id").
		Where("hospital_treatment.hospital_id = ?", hospitalID).
		Order("treatments.id").
		Find(&out).Error
	return out, err
}

func treatmentsOfDepartment(tx *gorm.DB, departmentID uint) ([]model.Treatment, error) {
	var out []model.Treatment
	err := tx.Joins("JOIN department_treatment ON department_treatment.treatment_id = treatments.id").
		Where("department_treatment.department_id = ?", departmentID).
		Order("treatments.id").
		Find(&out).Error
	return out, err
}
